// Package generate provides the synthetic data view for the TUI.
package generate

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/orgair-labs/orgair-cli/internal/adapters/driving/tui/messages"
	"github.com/orgair-labs/orgair-cli/internal/adapters/driving/tui/styles"
	"github.com/orgair-labs/orgair-cli/internal/core/ports/driving"
)

var kinds = []string{"company", "dimension score", "sector calibration"}

// ErrNoSynthService is returned when generation is requested without a
// wired synth service.
var ErrNoSynthService = errors.New("generate: synth service is required")

// View is the synthetic data view: pick an entity kind, generate one,
// inspect the JSON.
type View struct {
	styles   *styles.Styles
	synth    driving.SynthService
	viewport viewport.Model
	selected int
	output   string
	err      error
	width    int
	height   int
}

// NewView creates a new generation view.
func NewView(s *styles.Styles, synth driving.SynthService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	vp := viewport.New(76, 16)

	return &View{
		styles:   s,
		synth:    synth,
		viewport: vp,
		width:    80,
		height:   24,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Reset clears prior output.
func (v *View) Reset() {
	v.output = ""
	v.err = nil
	v.viewport.SetContent("")
}

// Update handles messages for the generation view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.GenerationCompleted:
		v.err = msg.Err
		v.output = msg.JSON
		v.viewport.SetContent(msg.JSON)
		v.viewport.GotoTop()
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		case "tab", "right", "l":
			v.selected = (v.selected + 1) % len(kinds)
			return v, nil
		case "left", "h":
			v.selected = (v.selected + len(kinds) - 1) % len(kinds)
			return v, nil
		case "enter", "g":
			return v, v.generate(kinds[v.selected])
		}
	}

	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

// generate produces one entity of the selected kind.
func (v *View) generate(kind string) tea.Cmd {
	return func() tea.Msg {
		if v.synth == nil {
			return messages.GenerationCompleted{Entity: kind, Err: ErrNoSynthService}
		}

		var entity any
		switch kind {
		case "company":
			entity = v.synth.Company("synthetic-sector")
		case "dimension score":
			entity = v.synth.DimensionScore()
		default:
			entity = v.synth.SectorCalibration("synthetic-sector", "Synthetic Sector")
		}

		data, err := json.MarshalIndent(entity, "", "  ")
		if err != nil {
			return messages.GenerationCompleted{Entity: kind, Err: err}
		}
		return messages.GenerationCompleted{Entity: kind, JSON: string(data)}
	}
}

// View renders the generation view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Generate"))
	b.WriteString("\n\n")

	b.WriteString(v.styles.Normal.Render("Kind: "))
	for i, kind := range kinds {
		if i == v.selected {
			b.WriteString(v.styles.Selected.Render(" " + kind + " "))
		} else {
			b.WriteString(v.styles.Muted.Render(" " + kind + " "))
		}
	}
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(v.err.Error()))
		b.WriteString("\n\n")
	} else if v.output != "" {
		b.WriteString(v.viewport.View())
		b.WriteString("\n")
	}

	b.WriteString(v.styles.Help.Render("[Tab] Kind  [Enter] Generate  [j/k] Scroll  [Esc] Menu"))
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.viewport.Width = width - 4
	if height > 8 {
		v.viewport.Height = height - 8
	}
}

// SelectedKind returns the currently selected entity kind.
func (v *View) SelectedKind() string {
	return kinds[v.selected]
}

// Output returns the last generated JSON.
func (v *View) Output() string {
	return v.output
}
