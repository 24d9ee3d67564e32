// Package validate provides the document validation view for the TUI.
package validate

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/orgair-labs/orgair-cli/internal/adapters/driving/tui/messages"
	"github.com/orgair-labs/orgair-cli/internal/adapters/driving/tui/styles"
	"github.com/orgair-labs/orgair-cli/internal/core/domain"
)

// entity pairs a display name with its constructor.
type entity struct {
	name      string
	construct func(domain.Record) error
}

var entities = []entity{
	{"company", func(rec domain.Record) error {
		if _, ok := rec["company_id"]; ok {
			_, err := domain.NewCompany(rec)
			return err
		}
		_, err := domain.NewCompanyCreate(rec)
		return err
	}},
	{"dimension score", func(rec domain.Record) error {
		_, err := domain.NewDimensionScoreInput(rec)
		return err
	}},
	{"sector calibration", func(rec domain.Record) error {
		_, err := domain.NewSectorCalibration(rec)
		return err
	}},
}

// View is the validation view: pick an entity, point at a JSON file,
// see every field error at once.
type View struct {
	styles   *styles.Styles
	input    textinput.Model
	selected int
	result   string
	isErr    bool
	width    int
	height   int
}

// NewView creates a new validation view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	input := textinput.New()
	input.Placeholder = "path/to/document.json"
	input.CharLimit = 512
	input.Width = 60
	input.Focus()

	return &View{
		styles: s,
		input:  input,
		width:  80,
		height: 24,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return textinput.Blink
}

// Reset clears prior results and refocuses the input.
func (v *View) Reset() {
	v.result = ""
	v.isErr = false
	v.input.SetValue("")
	v.input.Focus()
}

// Update handles messages for the validation view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		return v, nil

	case messages.ValidationCompleted:
		if msg.Err != nil {
			v.isErr = true
			v.result = renderValidationError(msg.Err)
		} else {
			v.isErr = false
			v.result = fmt.Sprintf("%s document is valid", msg.Entity)
		}
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		case "tab":
			v.selected = (v.selected + 1) % len(entities)
			return v, nil
		case "enter":
			path := strings.TrimSpace(v.input.Value())
			if path == "" {
				return v, nil
			}
			return v, v.validateFile(entities[v.selected], path)
		}
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// validateFile reads and validates a document off the Update loop.
func (v *View) validateFile(ent entity, path string) tea.Cmd {
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		if err != nil {
			return messages.ValidationCompleted{Entity: ent.name, Err: err}
		}

		decoder := json.NewDecoder(strings.NewReader(string(data)))
		decoder.UseNumber()
		var raw map[string]any
		if err := decoder.Decode(&raw); err != nil {
			return messages.ValidationCompleted{Entity: ent.name, Err: fmt.Errorf("decode JSON: %w", err)}
		}

		return messages.ValidationCompleted{Entity: ent.name, Err: ent.construct(domain.Record(raw))}
	}
}

// renderValidationError expands field errors one per line.
func renderValidationError(err error) string {
	var verrs domain.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d validation error(s):\n", len(verrs))
	for _, fe := range verrs {
		fmt.Fprintf(&b, "  %s: %s\n", fe.Field, fe.Message)
	}
	return strings.TrimRight(b.String(), "\n")
}

// View renders the validation view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Validate"))
	b.WriteString("\n\n")

	b.WriteString(v.styles.Normal.Render("Entity: "))
	for i, ent := range entities {
		label := ent.name
		if i == v.selected {
			b.WriteString(v.styles.Selected.Render(" " + label + " "))
		} else {
			b.WriteString(v.styles.Muted.Render(" " + label + " "))
		}
	}
	b.WriteString("\n\n")

	b.WriteString(v.input.View())
	b.WriteString("\n\n")

	if v.result != "" {
		if v.isErr {
			b.WriteString(v.styles.Error.Render(v.result))
		} else {
			b.WriteString(v.styles.Success.Render(v.result))
		}
		b.WriteString("\n\n")
	}

	b.WriteString(v.styles.Help.Render("[Tab] Entity  [Enter] Validate  [Esc] Menu"))
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// SelectedEntity returns the currently selected entity name.
func (v *View) SelectedEntity() string {
	return entities[v.selected].name
}
