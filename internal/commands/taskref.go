package commands

import (
	"errors"
	"fmt"
	"strconv"
	"unicode"
)

// ErrTaskRefRequired indicates no task number was provided.
var ErrTaskRefRequired = errors.New("task number required")

// ParseTaskNumber parses a single 1-based task number as printed by list.
func ParseTaskNumber(arg string) (int, error) {
	if !isAllDigits(arg) {
		return 0, fmt.Errorf("invalid task number: %s", arg)
	}
	num, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid task number: %s", arg)
	}
	return num, nil
}

// ParseTaskNumbers parses every argument as a task number.
// Repeated numbers are kept; the task list collapses them on removal.
func ParseTaskNumbers(args []string) ([]int, error) {
	if len(args) == 0 {
		return nil, ErrTaskRefRequired
	}
	nums := make([]int, 0, len(args))
	for _, arg := range args {
		num, err := ParseTaskNumber(arg)
		if err != nil {
			return nil, err
		}
		nums = append(nums, num)
	}
	return nums, nil
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
