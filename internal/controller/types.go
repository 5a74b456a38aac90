package controller

// Event is a user gesture delivered by the presentation layer.
type Event interface {
	event()
}

// AddRequested is the Add button, or Enter in the new-task field.
type AddRequested struct{ Text string }

// DeleteRequested is the Delete button or the Delete key on the list.
type DeleteRequested struct{ Selection []int }

// EditRequested is the Edit button. Selection must hold exactly one row.
type EditRequested struct{ Selection []int }

// RowActivated is a double-click on a row.
type RowActivated struct{ Index int }

// ClearRequested is the Clear All button.
type ClearRequested struct{}

// SaveRequested is the Save button.
type SaveRequested struct{}

// LoadRequested is the Load button.
type LoadRequested struct{}

// CloseRequested is an attempt to close the window.
type CloseRequested struct{}

// Confirmed answers a PromptConfirm.
type Confirmed struct{ Yes bool }

// InputSubmitted answers a PromptInput. Cancelled is set when the user
// dismissed the prompt instead of submitting it.
type InputSubmitted struct {
	Text      string
	Cancelled bool
}

// ExitChosen answers a PromptExit.
type ExitChosen struct{ Choice ExitChoice }

func (AddRequested) event()    {}
func (DeleteRequested) event() {}
func (EditRequested) event()   {}
func (RowActivated) event()    {}
func (ClearRequested) event()  {}
func (SaveRequested) event()   {}
func (LoadRequested) event()   {}
func (CloseRequested) event()  {}
func (Confirmed) event()       {}
func (InputSubmitted) event()  {}
func (ExitChosen) event()      {}

// ExitChoice is the answer to the exit dialog.
type ExitChoice int

const (
	// CancelExit aborts the exit and returns to the application.
	CancelExit ExitChoice = iota

	// SaveAndExit saves, then exits even if the save failed.
	SaveAndExit

	// ExitWithoutSaving exits immediately.
	ExitWithoutSaving
)

func (c ExitChoice) String() string {
	switch c {
	case SaveAndExit:
		return "save-and-exit"
	case ExitWithoutSaving:
		return "exit-without-saving"
	default:
		return "cancel"
	}
}

// Severity classifies a Notice.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "info"
	}
}

// Notice is a message the user must acknowledge.
type Notice struct {
	Severity Severity
	Title    string
	Text     string
}

// PromptKind selects which dialog the presentation layer shows.
type PromptKind int

const (
	// PromptConfirm asks yes/no; answer with Confirmed.
	PromptConfirm PromptKind = iota

	// PromptInput asks for replacement text; answer with InputSubmitted.
	PromptInput

	// PromptExit asks save/discard/cancel; answer with ExitChosen.
	PromptExit
)

// Prompt is a question the controller is waiting on.
type Prompt struct {
	Kind    PromptKind
	Title   string
	Text    string
	Initial string // pre-filled value for PromptInput
}

// Reply is what the presentation layer renders after an event.
type Reply struct {
	Notice *Notice
	Prompt *Prompt

	// Tasks is a snapshot of the list after the event.
	Tasks []string

	// Status is the count readout, e.g. "Tasks: 2".
	Status string

	// Changed is set when the event mutated the list.
	Changed bool

	// ClearInput is set when the new-task field should be emptied.
	ClearInput bool

	// Quit is set when the application should terminate.
	Quit bool
}
