package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/airobo-labs/trainer-cli/internal/adapters/driving/tui/components/status"
	"github.com/airobo-labs/trainer-cli/internal/adapters/driving/tui/keymap"
	"github.com/airobo-labs/trainer-cli/internal/adapters/driving/tui/messages"
	"github.com/airobo-labs/trainer-cli/internal/adapters/driving/tui/styles"
	"github.com/airobo-labs/trainer-cli/internal/adapters/driving/tui/views/leaderboard"
	"github.com/airobo-labs/trainer-cli/internal/adapters/driving/tui/views/menu"
	"github.com/airobo-labs/trainer-cli/internal/adapters/driving/tui/views/modules"
	"github.com/airobo-labs/trainer-cli/internal/adapters/driving/tui/views/settings"
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

	// program is the running Bubbletea program, set by Run. The session
	// presenter sends messages through it.
	program *tea.Program

	// menuView is the main navigation menu.
	menuView *menu.View

	// modulesView is the training-module list view.
	modulesView *modules.View

	// leaderboardView is the high-score view.
	leaderboardView *leaderboard.View

	// settingsView is the headset settings view.
	settingsView *settings.View

	// statusBar shows the session status line below the module list.
	statusBar *status.Bar

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

	ctx := context.Background()
	s := styles.DefaultStyles()
	menuView := menu.NewView(s)
	modulesView := modules.NewView(s, ports.Session, ports.Settings.AddEnabled(ctx))
	leaderboardView := leaderboard.NewView(s, ports.Scoring)
	settingsView := settings.NewView(s, ports.Settings)
	statusBar := status.NewBar(s, keymap.DefaultKeyMap())
	statusBar.SetState(status.StateModules)

	return &App{
		ports:           ports,
		ctx:             ctx,
		styles:          s,
		menuView:        menuView,
		modulesView:     modulesView,
		leaderboardView: leaderboardView,
		settingsView:    settingsView,
		statusBar:       statusBar,
		currentView:     messages.ViewMenu, // Start with menu
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("airobo - Motor Imagery Trainer"),
		a.attachPresenter(),
	)
}

// attachPresenter connects the session's presenter port to the running
// program. The attach pushes the initial list state through the presenter.
func (a *App) attachPresenter() tea.Cmd {
	return func() tea.Msg {
		if a.program == nil {
			return nil
		}
		a.ports.Session.Attach(a.ctx, NewPresenter(a.program.Send))
		return nil
	}
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
		a.modulesView.SetDimensions(msg.Width, msg.Height)
		a.leaderboardView.SetDimensions(msg.Width, msg.Height)
		a.settingsView.SetDimensions(msg.Width, msg.Height)
		a.statusBar.SetWidth(msg.Width)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		// Forward key messages to active view
		switch a.currentView {
		case messages.ViewMenu:
			a.menuView, cmd = a.menuView.Update(msg)
			return a, cmd

		case messages.ViewModules:
			a.modulesView, cmd = a.modulesView.Update(msg)
			return a, cmd

		case messages.ViewLeaderboard:
			a.leaderboardView, cmd = a.leaderboardView.Update(msg)
			return a, cmd

		case messages.ViewSettings:
			a.settingsView, cmd = a.settingsView.Update(msg)
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
		// Initialise views when switching to them
		switch msg.View {
		case messages.ViewModules:
			return a, a.modulesView.Init()
		case messages.ViewLeaderboard:
			return a, a.leaderboardView.Init()
		case messages.ViewSettings:
			a.settingsView.Reset()
			return a, a.settingsView.Init()
		case messages.ViewMenu, messages.ViewHelp:
			// Other views don't need special initialisation
		}
		return a, nil

	case messages.StatusChanged:
		a.statusBar.SetState(status.StateModules)
		a.statusBar.SetMessage(msg.Text)
		a.modulesView, cmd = a.modulesView.Update(msg)
		return a, cmd

	case messages.ListRendered, messages.WarningRaised, messages.MutationDone:
		// Session presenter output always lands in the modules view,
		// regardless of which view is active.
		a.modulesView, cmd = a.modulesView.Update(msg)
		return a, cmd

	case messages.LeaderboardLoaded:
		a.leaderboardView, cmd = a.leaderboardView.Update(msg)
		return a, cmd

	case messages.HeadsetLoaded, messages.HeadsetSaved:
		a.settingsView, cmd = a.settingsView.Update(msg)
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages to active view
	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewModules:
		a.modulesView, cmd = a.modulesView.Update(msg)
	case messages.ViewLeaderboard:
		a.leaderboardView, cmd = a.leaderboardView.Update(msg)
	case messages.ViewSettings:
		a.settingsView, cmd = a.settingsView.Update(msg)
	case messages.ViewHelp:
		// Help view doesn't need to handle other messages
	}

	return a, cmd
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewMenu:
		return a.menuView.View()
	case messages.ViewModules:
		return a.modulesView.View() + "\n" + a.statusBar.View()
	case messages.ViewLeaderboard:
		return a.leaderboardView.View()
	case messages.ViewSettings:
		return a.settingsView.View()
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

Training Modules:
  j/k, ↑/↓    Navigate modules
  d           Remove selected module
  c           Clear all modules
  esc         Back to Menu

Leaderboard:
  r           Refresh
  esc         Back to Menu

Settings:
  j/k         Select field
  h/l         Change value
  s           Save
  esc         Back to Menu

[esc] back to menu`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	a.program = p
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
	a.modulesView.SetDimensions(width, height)
	a.leaderboardView.SetDimensions(width, height)
	a.settingsView.SetDimensions(width, height)
}
