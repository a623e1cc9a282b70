package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"personal-diary/internal/gui/components"
	"personal-diary/internal/logger"
	"personal-diary/internal/models"
)

const (
	AppTitle     = "🌸 Personal Diary 🌸"
	WindowWidth  = 600
	WindowHeight = 700
)

// Manager owns the main diary window and its widgets.
type Manager struct {
	window     fyne.Window
	logger     logger.Logger
	isShutdown bool

	themeSelect *widget.Select
	form        *components.EntryForm
	status      *components.StatusBar
	toolbar     *components.Toolbar

	themeChangeHandler func(models.ThemeName)
}

func NewManager(window fyne.Window, initial models.ThemeName, log logger.Logger) *Manager {
	if log == nil {
		log = logger.NoOp{}
	}

	manager := &Manager{
		window:  window,
		logger:  log,
		form:    components.NewEntryForm(),
		status:  components.NewStatusBar(),
		toolbar: components.NewToolbar(),
	}

	manager.themeSelect = widget.NewSelect(models.ThemeNames, manager.onThemeChange)
	manager.themeSelect.SetSelected(string(initial))

	log.Info("GUIManager", "initialized", map[string]interface{}{
		"width":  WindowWidth,
		"height": WindowHeight,
		"theme":  string(initial),
	})

	return manager
}

func (m *Manager) GetMainContainer() *fyne.Container {
	title := widget.NewLabelWithStyle(AppTitle, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	header := container.NewBorder(nil, nil, nil,
		container.NewHBox(widget.NewLabel("Theme:"), m.themeSelect),
		title,
	)

	footer := container.NewVBox(
		m.status.GetContainer(),
		m.toolbar.GetContainer(),
	)

	return container.NewBorder(header, footer, nil, nil, m.form.GetContainer())
}

func (m *Manager) GetWindow() fyne.Window {
	return m.window
}

func (m *Manager) Form() *components.EntryForm {
	return m.form
}

func (m *Manager) SetSaveHandler(handler func()) {
	m.toolbar.SetSaveHandler(handler)
}

func (m *Manager) SetViewHandler(handler func()) {
	m.toolbar.SetViewHandler(handler)
}

func (m *Manager) SetSearchHandler(handler func()) {
	m.toolbar.SetSearchHandler(handler)
}

func (m *Manager) SetExitHandler(handler func()) {
	m.toolbar.SetExitHandler(handler)
}

func (m *Manager) SetThemeChangeHandler(handler func(models.ThemeName)) {
	m.themeChangeHandler = handler
}

// SetStats updates the stats line. Call it on the UI goroutine.
func (m *Manager) SetStats(text string) {
	if m.isShutdown {
		return
	}
	m.status.SetStats(text)
}

func (m *Manager) Stats() string {
	return m.status.GetStats()
}

func (m *Manager) onThemeChange(value string) {
	name, err := models.ParseTheme(value)
	if err != nil {
		m.logger.Warning("GUIManager", "ignoring unknown theme", map[string]interface{}{"theme": value})
		return
	}
	m.logger.Debug("GUIManager", "theme change requested", map[string]interface{}{"theme": value})
	if m.themeChangeHandler != nil {
		m.themeChangeHandler(name)
	}
}

func (m *Manager) Shutdown() {
	if m.isShutdown {
		return
	}
	m.isShutdown = true
	m.logger.Info("GUIManager", "shutdown completed", nil)
}
