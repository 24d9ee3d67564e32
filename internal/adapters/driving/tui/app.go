package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/orgair-labs/orgair-cli/internal/adapters/driving/tui/messages"
	"github.com/orgair-labs/orgair-cli/internal/adapters/driving/tui/styles"
	"github.com/orgair-labs/orgair-cli/internal/adapters/driving/tui/views/generate"
	"github.com/orgair-labs/orgair-cli/internal/adapters/driving/tui/views/menu"
	"github.com/orgair-labs/orgair-cli/internal/adapters/driving/tui/views/schema"
	"github.com/orgair-labs/orgair-cli/internal/adapters/driving/tui/views/validate"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// menuView is the main navigation menu.
	menuView *menu.View

	// validateView is the document validation view.
	validateView *validate.View

	// generateView is the synthetic data view.
	generateView *generate.View

	// schemaView is the schema browser view.
	schemaView *schema.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()

	return &App{
		ports:        ports,
		ctx:          context.Background(),
		styles:       s,
		menuView:     menu.NewView(s),
		validateView: validate.NewView(s),
		generateView: generate.NewView(s, ports.Synth),
		schemaView:   schema.NewView(s, ports.Schema),
		currentView:  messages.ViewMenu, // Start with menu
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("orgair - AI Readiness Toolkit"),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		// Forward to all views for proper sizing
		a.menuView.SetDimensions(msg.Width, msg.Height)
		a.validateView.SetDimensions(msg.Width, msg.Height)
		a.generateView.SetDimensions(msg.Width, msg.Height)
		a.schemaView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		switch a.currentView {
		case messages.ViewMenu:
			a.menuView, cmd = a.menuView.Update(msg)
			return a, cmd

		case messages.ViewValidate:
			a.validateView, cmd = a.validateView.Update(msg)
			return a, cmd

		case messages.ViewGenerate:
			a.generateView, cmd = a.generateView.Update(msg)
			return a, cmd

		case messages.ViewSchema:
			a.schemaView, cmd = a.schemaView.Update(msg)
			return a, cmd

		case messages.ViewHelp:
			// Esc from help goes to menu
			if msg.Type == tea.KeyEsc {
				a.currentView = messages.ViewMenu
				return a, nil
			}
			return a, nil
		}
		return a, nil

	case messages.ViewChanged:
		a.currentView = msg.View
		switch msg.View {
		case messages.ViewValidate:
			a.validateView.Reset()
			return a, a.validateView.Init()
		case messages.ViewGenerate:
			a.generateView.Reset()
			return a, a.generateView.Init()
		case messages.ViewSchema:
			a.schemaView.Reset()
			return a, a.schemaView.Init()
		case messages.ViewMenu, messages.ViewHelp:
			// No special initialisation
		}
		return a, nil

	case messages.ValidationCompleted:
		a.validateView, cmd = a.validateView.Update(msg)
		return a, cmd

	case messages.GenerationCompleted:
		a.generateView, cmd = a.generateView.Update(msg)
		return a, cmd

	case messages.SchemaLoaded:
		a.schemaView, cmd = a.schemaView.Update(msg)
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages to the active view
	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewValidate:
		a.validateView, cmd = a.validateView.Update(msg)
	case messages.ViewGenerate:
		a.generateView, cmd = a.generateView.Update(msg)
	case messages.ViewSchema:
		a.schemaView, cmd = a.schemaView.Update(msg)
	case messages.ViewHelp:
		// Help view doesn't need to handle other messages
	}

	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewMenu:
		return a.menuView.View()
	case messages.ViewValidate:
		return a.validateView.View()
	case messages.ViewGenerate:
		return a.generateView.View()
	case messages.ViewSchema:
		return a.schemaView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.menuView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Navigation:
  esc         Back to Menu
  ctrl+c      Quit

Menu:
  j/k, ↑/↓    Navigate options
  enter       Select option
  q           Quit

Validate:
  tab         Switch entity
  (type)      Enter a JSON file path
  enter       Validate

Generate:
  tab         Switch entity kind
  enter       Generate one entity

Schemas:
  j/k, ↑/↓    Navigate / scroll
  enter       Show schema

[esc] back to menu`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.menuView.SetDimensions(width, height)
}
