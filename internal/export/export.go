// Package export renders the task list in formats meant for sharing:
// plain text, CSV, JSON and PDF. None of them is read back.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"todo/internal/output"
)

// Formats lists the accepted format names.
var Formats = []string{"text", "csv", "json", "pdf"}

// Title heads the PDF document.
const Title = "To-Do List"

// Export writes tasks to w in format.
func Export(w io.Writer, format string, tasks []string) error {
	switch strings.ToLower(format) {
	case "text", "":
		output.FormatList(w, tasks)
		return nil
	case "csv":
		return writeCSV(w, tasks)
	case "json":
		return writeJSON(w, tasks)
	case "pdf":
		return writePDF(w, tasks)
	default:
		return fmt.Errorf("unknown format %s", format)
	}
}

func writeCSV(w io.Writer, tasks []string) error {
	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"number", "task"})
	for i, task := range tasks {
		_ = cw.Write([]string{strconv.Itoa(i + 1), task})
	}
	cw.Flush()
	return cw.Error()
}

type document struct {
	Count int      `json:"count"`
	Tasks []string `json:"tasks"`
}

func writeJSON(w io.Writer, tasks []string) error {
	if tasks == nil {
		tasks = []string{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(document{Count: len(tasks), Tasks: tasks})
}

func writePDF(w io.Writer, tasks []string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(40, 10, Title)
	pdf.Ln(12)
	pdf.SetFont("Arial", "", 11)
	for i, task := range tasks {
		line := fmt.Sprintf("%d. %s", i+1, output.DisplayText(task))
		pdf.MultiCell(0, 6, tr(line), "0", "L", false)
	}
	pdf.Ln(4)
	pdf.SetFont("Arial", "I", 10)
	pdf.Cell(40, 6, output.FormatStatus(len(tasks)))

	// Render fully before touching w so a failure leaves it untouched.
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	_, err := w.Write(buf.Bytes())
	return err
}
