package app

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"personal-diary/internal/apperr"
	"personal-diary/internal/config"
	"personal-diary/internal/debug"
	"personal-diary/internal/gui"
	"personal-diary/internal/logger"
	"personal-diary/internal/models"
	"personal-diary/internal/services"
	"personal-diary/internal/storage"
)

const (
	AppName    = "Personal Diary"
	AppID      = "com.personaldiary.app"
	AppVersion = "1.0.0"
)

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	guiManager *gui.Manager
	handlers   *Handlers
	auth       *services.AuthGate
	state      *models.AppState
	watcher    *storage.Watcher
	debugCoord *debug.Coordinator
	logger     logger.Logger
	lifecycle  *Lifecycle
	unlocked   bool
}

func NewApplication(cfg *config.Config, log logger.Logger) (*Application, error) {
	return newApplication(app.NewWithID(AppID), cfg, log)
}

func newApplication(fyneApp fyne.App, cfg *config.Config, log logger.Logger) (*Application, error) {
	if log == nil {
		log = logger.NoOp{}
	}

	debugCoord := debug.NewCoordinator(debug.Config{
		EnableTimingTracking: cfg.Debug.Timing,
		EnableFileTracking:   cfg.Debug.Files,
	}, log)

	store := storage.NewFileStore(cfg.DiaryFile, debugCoord)
	journal := services.NewJournal(store, debugCoord)
	state := models.NewAppState(cfg.Theme)

	window := fyneApp.NewWindow(gui.AppTitle)
	window.Resize(fyne.NewSize(gui.WindowWidth, gui.WindowHeight))
	window.CenterOnScreen()
	window.SetMaster()

	guiManager := gui.NewManager(window, state.Theme(), log)
	handlers := NewHandlers(fyneApp, guiManager, journal, state, log)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		guiManager: guiManager,
		handlers:   handlers,
		auth:       services.NewAuthGate(cfg.Password, log),
		state:      state,
		debugCoord: debugCoord,
		logger:     log,
	}

	if cfg.WatchFile {
		watcher, err := storage.NewWatcher(store.Path(), storage.DefaultWatchDelay, log, func() {
			fyne.Do(application.onDiaryChanged)
		})
		if err != nil {
			log.Warning("Application", "diary file watching disabled", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			application.watcher = watcher
		}
	}

	application.lifecycle = NewLifecycle(debugCoord, guiManager, application.watcher, log)
	application.setupHandlers()

	log.Info("Application", "initialization complete", map[string]interface{}{
		"version":    AppVersion,
		"diary_file": store.Path(),
		"theme":      string(state.Theme()),
		"watch":      application.watcher != nil,
	})
	return application, nil
}

func (a *Application) setupHandlers() {
	a.guiManager.SetSaveHandler(a.handlers.HandleSave)
	a.guiManager.SetViewHandler(a.handlers.HandleView)
	a.guiManager.SetSearchHandler(a.handlers.HandleSearch)
	a.guiManager.SetExitHandler(a.handlers.HandleExit)
	a.guiManager.SetThemeChangeHandler(a.handlers.HandleThemeChange)
}

func (a *Application) onDiaryChanged() {
	a.logger.Debug("Application", "diary changed on disk", nil)
	a.handlers.RefreshStats()
	a.handlers.refreshViewers()
}

// Run shows the password prompt and blocks until the application quits.
func (a *Application) Run() error {
	gui.ApplyTheme(a.fyneApp, a.state.Theme())

	a.window.SetContent(a.guiManager.GetMainContainer())
	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "shutdown requested", nil)
		a.lifecycle.Shutdown()
		a.window.Close()
	})

	a.showLogin()

	a.fyneApp.Run()
	a.lifecycle.Shutdown()
	return nil
}

func (a *Application) showLogin() *gui.LoginScreen {
	login := gui.NewLoginScreen(a.fyneApp)
	deny := func() {
		gui.NewWindowDialogs(login.Window()).Fatal(
			apperr.Title(apperr.ErrWrongPassword, "Access Denied"),
			apperr.UserMessage(apperr.ErrWrongPassword),
			a.Quit,
		)
	}

	login.SetUnlockHandler(func(password string) {
		if err := a.auth.Verify(password); err != nil {
			deny()
			return
		}
		a.unlock()
		login.Close()
	})
	login.SetCancelHandler(deny)

	login.Show()
	return login
}

func (a *Application) unlock() {
	a.unlocked = true
	a.handlers.RefreshStats()
	if a.watcher != nil {
		a.watcher.Start()
	}
	a.window.Show()
	a.logger.Info("Application", "diary unlocked", nil)
}

// Quit stops the event loop. It is safe to call from any goroutine.
func (a *Application) Quit() {
	fyne.Do(a.fyneApp.Quit)
}

// Shutdown releases the watcher and debug resources and quits.
func (a *Application) Shutdown() {
	a.lifecycle.Shutdown()
	a.Quit()
}
