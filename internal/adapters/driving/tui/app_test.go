package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orgair-labs/orgair-cli/internal/adapters/driving/tui/messages"
)

func newTestPorts() *Ports {
	return &Ports{
		Registry: &MockRegistryService{},
		Synth:    &MockSynthService{},
		Schema:   &MockSchemaService{},
	}
}

func TestNewApp_Success(t *testing.T) {
	ports := newTestPorts()

	app, err := NewApp(ports)

	require.NoError(t, err)
	require.NotNil(t, app)
	assert.Equal(t, messages.ViewMenu, app.CurrentView())
}

func TestNewApp_InvalidPorts(t *testing.T) {
	ports := &Ports{
		Registry: nil,
		Synth:    &MockSynthService{},
		Schema:   &MockSchemaService{},
	}

	app, err := NewApp(ports)

	assert.Error(t, err)
	assert.Nil(t, app)
}

func TestApp_WithContext(t *testing.T) {
	ports := newTestPorts()
	app, _ := NewApp(ports)

	type contextKey string
	ctx := context.WithValue(context.Background(), contextKey("key"), "value")
	result := app.WithContext(ctx)

	assert.Equal(t, app, result)
}

func TestApp_Init(t *testing.T) {
	ports := newTestPorts()
	app, _ := NewApp(ports)

	cmd := app.Init()

	// Init returns a batch command
	assert.NotNil(t, cmd)
}

func TestApp_Update_WindowSize(t *testing.T) {
	ports := newTestPorts()
	app, _ := NewApp(ports)

	msg := tea.WindowSizeMsg{Width: 80, Height: 24}
	model, cmd := app.Update(msg)

	assert.Equal(t, app, model)
	assert.Nil(t, cmd)
	assert.True(t, app.Ready())
}

func TestApp_Update_CtrlC_Quits(t *testing.T) {
	ports := newTestPorts()
	app, _ := NewApp(ports)

	msg := tea.KeyMsg{Type: tea.KeyCtrlC}
	_, cmd := app.Update(msg)

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_Update_ViewChanged(t *testing.T) {
	ports := newTestPorts()
	app, _ := NewApp(ports)

	app.Update(messages.ViewChanged{View: messages.ViewValidate})
	assert.Equal(t, messages.ViewValidate, app.CurrentView())

	app.Update(messages.ViewChanged{View: messages.ViewGenerate})
	assert.Equal(t, messages.ViewGenerate, app.CurrentView())

	app.Update(messages.ViewChanged{View: messages.ViewSchema})
	assert.Equal(t, messages.ViewSchema, app.CurrentView())

	app.Update(messages.ViewChanged{View: messages.ViewMenu})
	assert.Equal(t, messages.ViewMenu, app.CurrentView())
}

func TestApp_Update_HelpEscReturnsToMenu(t *testing.T) {
	ports := newTestPorts()
	app, _ := NewApp(ports)

	app.Update(messages.ViewChanged{View: messages.ViewHelp})
	require.Equal(t, messages.ViewHelp, app.CurrentView())

	app.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, messages.ViewMenu, app.CurrentView())
}

func TestApp_Update_ErrorOccurred(t *testing.T) {
	ports := newTestPorts()
	app, _ := NewApp(ports)

	err := errors.New("something broke")
	model, cmd := app.Update(messages.ErrorOccurred{Err: err})

	assert.Equal(t, app, model)
	assert.Nil(t, cmd)
	assert.Equal(t, err, app.Err())
}

func TestApp_Update_QuitMessage(t *testing.T) {
	ports := newTestPorts()
	app, _ := NewApp(ports)

	_, cmd := app.Update(messages.Quit{})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_View_NotReady(t *testing.T) {
	ports := newTestPorts()
	app, _ := NewApp(ports)

	assert.Contains(t, app.View(), "Initialising")
}

func TestApp_View_Menu(t *testing.T) {
	ports := newTestPorts()
	app, _ := NewApp(ports)
	app.SetDimensions(80, 24)

	output := app.View()

	assert.Contains(t, output, "orgAIR")
	assert.Contains(t, output, "Validate")
	assert.Contains(t, output, "Generate")
}

func TestApp_View_Help(t *testing.T) {
	ports := newTestPorts()
	app, _ := NewApp(ports)
	app.SetDimensions(80, 24)
	app.Update(messages.ViewChanged{View: messages.ViewHelp})

	output := app.View()

	assert.Contains(t, output, "Help")
	assert.Contains(t, output, "ctrl+c")
}

func TestApp_Update_ValidationCompletedForwarded(t *testing.T) {
	ports := newTestPorts()
	app, _ := NewApp(ports)
	app.SetDimensions(80, 24)
	app.Update(messages.ViewChanged{View: messages.ViewValidate})

	app.Update(messages.ValidationCompleted{Entity: "company", Err: nil})

	output := app.View()
	assert.Contains(t, output, "company document is valid")
}

func TestApp_Update_GenerationCompletedForwarded(t *testing.T) {
	ports := newTestPorts()
	app, _ := NewApp(ports)
	app.SetDimensions(80, 24)
	app.Update(messages.ViewChanged{View: messages.ViewGenerate})

	app.Update(messages.GenerationCompleted{Entity: "company", JSON: `{"company_id": "mock-id"}`})

	output := app.View()
	assert.Contains(t, output, "mock-id")
}
