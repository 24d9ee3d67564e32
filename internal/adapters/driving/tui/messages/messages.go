// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewValidate is the document validation view.
	ViewValidate
	// ViewGenerate is the synthetic data view.
	ViewGenerate
	// ViewSchema is the schema browser view.
	ViewSchema
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewValidate:
		return "validate"
	case ViewGenerate:
		return "generate"
	case ViewSchema:
		return "schema"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ValidationCompleted carries the outcome of validating a document.
type ValidationCompleted struct {
	Entity string
	Err    error
}

// GenerationCompleted carries a freshly generated entity rendered as JSON.
type GenerationCompleted struct {
	Entity string
	JSON   string
	Err    error
}

// SchemaLoaded carries a schema document for display.
type SchemaLoaded struct {
	Name string
	JSON string
	Err  error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
