// Package schema provides the schema browser view for the TUI.
package schema

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/orgair-labs/orgair-cli/internal/adapters/driving/tui/messages"
	"github.com/orgair-labs/orgair-cli/internal/adapters/driving/tui/styles"
	"github.com/orgair-labs/orgair-cli/internal/core/ports/driving"
)

// ErrNoSchemaService is returned when browsing is requested without a
// wired schema service.
var ErrNoSchemaService = errors.New("schema: schema service is required")

// View is the schema browser: pick an entity, read its JSON Schema.
type View struct {
	styles   *styles.Styles
	schema   driving.SchemaService
	viewport viewport.Model
	names    []string
	selected int
	showing  string
	err      error
	width    int
	height   int
}

// NewView creates a new schema browser view.
func NewView(s *styles.Styles, schema driving.SchemaService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	var names []string
	if schema != nil {
		names = schema.List()
	}

	return &View{
		styles:   s,
		schema:   schema,
		viewport: viewport.New(76, 16),
		names:    names,
		width:    80,
		height:   24,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Reset clears the displayed schema.
func (v *View) Reset() {
	v.showing = ""
	v.err = nil
	v.viewport.SetContent("")
}

// Update handles messages for the schema view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.SchemaLoaded:
		v.err = msg.Err
		v.showing = msg.Name
		v.viewport.SetContent(msg.JSON)
		v.viewport.GotoTop()
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			if v.showing != "" {
				v.Reset()
				return v, nil
			}
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		case "up", "k":
			if v.showing == "" && v.selected > 0 {
				v.selected--
				return v, nil
			}
		case "down", "j":
			if v.showing == "" && v.selected < len(v.names)-1 {
				v.selected++
				return v, nil
			}
		case "enter":
			if v.showing == "" && len(v.names) > 0 {
				return v, v.load(v.names[v.selected])
			}
		}
	}

	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

// load fetches one schema document.
func (v *View) load(name string) tea.Cmd {
	return func() tea.Msg {
		if v.schema == nil {
			return messages.SchemaLoaded{Name: name, Err: ErrNoSchemaService}
		}
		data, err := v.schema.JSON(name)
		if err != nil {
			return messages.SchemaLoaded{Name: name, Err: err}
		}
		return messages.SchemaLoaded{Name: name, JSON: string(data)}
	}
}

// View renders the schema browser.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Schemas"))
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(v.err.Error()))
		b.WriteString("\n\n")
	}

	if v.showing != "" {
		b.WriteString(v.styles.Subtitle.Render(v.showing))
		b.WriteString("\n")
		b.WriteString(v.viewport.View())
		b.WriteString("\n")
		b.WriteString(v.styles.Help.Render("[j/k] Scroll  [Esc] Back"))
		return b.String()
	}

	if len(v.names) == 0 {
		b.WriteString(v.styles.Muted.Render("no schemas available"))
		b.WriteString("\n\n")
	}
	for i, name := range v.names {
		cursor := "  "
		style := v.styles.Normal
		if i == v.selected {
			cursor = "> "
			style = v.styles.Subtitle
		}
		b.WriteString(cursor + style.Render(name))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[j/k] Navigate  [Enter] Show  [Esc] Menu"))
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

// Selected returns the currently selected schema index.
func (v *View) Selected() int {
	return v.selected
}

// Showing returns the name of the schema being displayed, if any.
func (v *View) Showing() string {
	return v.showing
}
