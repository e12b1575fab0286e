package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/omarchy/cybex-installer/internal/installer"
	"github.com/omarchy/cybex-installer/internal/options"
)

// visibleOutputLines is the output panel window; once the buffer grows past
// it the view follows the tail.
const visibleOutputLines = 20

// InstalledStore persists installed-state changes. The file-backed
// implementation lives in internal/installstate; tests inject a fake.
type InstalledStore interface {
	MarkInstalled(id string)
	MarkUninstalled(id string)
}

// runFunc starts an action and returns its event channel. Swapped out in
// tests.
type runFunc func(scriptDir, optionID string, uninstall bool) <-chan installer.Event

type Model struct {
	version   string
	scriptDir string
	store     InstalledStore
	catalog   []options.Option

	mode          Mode
	selectedIndex int
	installed     map[string]bool
	outputLines   []string
	outputScroll  int
	currentAction string
	statusMessage string
	lastExitCode  *int
	popupChoice   ActionChoice
	uninstalling  bool
	showOutput    bool
	quitting      bool

	// events is the channel of the in-flight action, nil when idle.
	events <-chan installer.Event

	runAction runFunc

	spinner spinner.Model
	styles  Styles
	keys    keyMap
	width   int
	height  int
}

// NewModel builds the initial model from the persisted installed set.
func NewModel(version, scriptDir string, store InstalledStore, installed map[string]bool, theme Theme) Model {
	if installed == nil {
		installed = make(map[string]bool)
	}

	styles := NewStyles(theme)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	return Model{
		version:       version,
		scriptDir:     scriptDir,
		store:         store,
		catalog:       options.Options,
		mode:          ModeNormal,
		installed:     installed,
		statusMessage: "Ready - press Enter to install/uninstall",
		popupChoice:   ChoiceReinstall,
		runAction:     installer.Run,
		spinner:       sp,
		styles:        styles,
		keys:          newKeyMap(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case installerEventMsg:
		return m.handleInstallerEvent(msg.event)

	case installerClosedMsg:
		// Runner channel closed; the terminal event already cleared it.
		m.events = nil
		return m, nil

	case spinner.TickMsg:
		if m.mode != ModeInstalling {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// listenForInstaller waits for the next runner event. Re-armed after every
// delivered event until a terminal one clears m.events.
func (m Model) listenForInstaller() tea.Cmd {
	events := m.events
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return installerClosedMsg{}
		}
		return installerEventMsg{event: ev}
	}
}
