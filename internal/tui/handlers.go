package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/omarchy/cybex-installer/internal/installer"
)

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Ctrl+C quits unconditionally, whatever the mode. A running action is
	// left to finish on its own; the child is in its own process group.
	if key.Matches(msg, m.keys.ForceQuit) {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.mode {
	case ModeNormal, ModeCompleted:
		return m.handleBrowseKey(msg)
	case ModeConfirmAction:
		return m.handlePopupKey(msg)
	case ModeInstalling:
		// Non-interruptible; every other key is ignored.
		return m, nil
	}
	return m, nil
}

func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.moveUp()
		m.updateStatusForSelection()

	case key.Matches(msg, m.keys.Down):
		m.moveDown()
		m.updateStatusForSelection()

	case key.Matches(msg, m.keys.Enter):
		return m.triggerAction()

	case key.Matches(msg, m.keys.Esc):
		m.clearOutput()
		m.showOutput = false

	case key.Matches(msg, m.keys.PageUp):
		if m.outputScroll > 0 {
			m.outputScroll--
		}

	case key.Matches(msg, m.keys.PageDown):
		if maxScroll := len(m.outputLines) - visibleOutputLines; m.outputScroll < maxScroll {
			m.outputScroll++
		}
	}
	return m, nil
}

func (m Model) handlePopupKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.popupChoice = ChoiceReinstall

	case key.Matches(msg, m.keys.Down):
		m.popupChoice = ChoiceUninstall

	case key.Matches(msg, m.keys.Enter):
		uninstall := m.popupChoice == ChoiceUninstall
		m.mode = ModeNormal
		return m.startAction(uninstall)

	case key.Matches(msg, m.keys.Esc):
		m.mode = ModeNormal
		m.updateStatusForSelection()
	}
	return m, nil
}

// triggerAction decides between the confirm popup and a direct install for
// the selected option.
func (m Model) triggerAction() (tea.Model, tea.Cmd) {
	if m.selectedIndex >= len(m.catalog) {
		return m, nil
	}
	opt := m.catalog[m.selectedIndex]

	if m.installed[opt.ID] {
		m.popupChoice = ChoiceReinstall
		m.mode = ModeConfirmAction
		m.statusMessage = fmt.Sprintf("%s is installed - choose action", opt.Name)
		return m, nil
	}
	return m.startAction(false)
}

// startAction clears previous output and hands the selected option to the
// process runner.
func (m Model) startAction(uninstall bool) (tea.Model, tea.Cmd) {
	if m.selectedIndex >= len(m.catalog) {
		return m, nil
	}
	opt := m.catalog[m.selectedIndex]

	action := fmt.Sprintf("Installing %s", opt.Name)
	if uninstall {
		action = fmt.Sprintf("Uninstalling %s", opt.Name)
	}

	m.clearOutput()
	m.currentAction = action
	m.statusMessage = action
	m.mode = ModeInstalling
	m.showOutput = true
	m.uninstalling = uninstall

	m.events = m.runAction(m.scriptDir, opt.ID, uninstall)

	return m, tea.Batch(m.spinner.Tick, m.listenForInstaller())
}

// handleInstallerEvent applies one drained runner event. Terminal events
// clear the channel reference so no further listen is armed.
func (m Model) handleInstallerEvent(ev installer.Event) (tea.Model, tea.Cmd) {
	switch ev := ev.(type) {
	case installer.OutputLine:
		m.outputLines = append(m.outputLines, ev.Text)
		if len(m.outputLines) > visibleOutputLines {
			m.outputScroll = len(m.outputLines) - visibleOutputLines
		}
		return m, m.listenForInstaller()

	case installer.Completed:
		code := ev.ExitCode
		m.lastExitCode = &code
		m.mode = ModeNormal
		m.events = nil

		if m.selectedIndex < len(m.catalog) {
			opt := m.catalog[m.selectedIndex]
			switch {
			case code != 0:
				m.statusMessage = fmt.Sprintf("Failed with exit code %d - Esc to close output", code)
			case m.uninstalling:
				m.store.MarkUninstalled(opt.ID)
				delete(m.installed, opt.ID)
				m.statusMessage = fmt.Sprintf("Uninstalled %s - press Enter on another option", opt.Name)
			default:
				m.store.MarkInstalled(opt.ID)
				m.installed[opt.ID] = true
				if opt.RequiresReboot {
					m.statusMessage = fmt.Sprintf("Installed %s - reboot required", opt.Name)
				} else {
					m.statusMessage = fmt.Sprintf("Installed %s - press Enter on another option", opt.Name)
				}
			}
		}
		return m, nil

	case installer.Error:
		m.outputLines = append(m.outputLines, "Error: "+ev.Message)
		code := -1
		m.lastExitCode = &code
		m.mode = ModeNormal
		m.events = nil
		m.statusMessage = "Error occurred - Esc to close output"
		return m, nil
	}
	return m, nil
}

// moveUp moves the selection with wrap-around.
func (m *Model) moveUp() {
	if len(m.catalog) == 0 {
		return
	}
	if m.selectedIndex > 0 {
		m.selectedIndex--
	} else {
		m.selectedIndex = len(m.catalog) - 1
	}
}

// moveDown moves the selection with wrap-around.
func (m *Model) moveDown() {
	if len(m.catalog) == 0 {
		return
	}
	if m.selectedIndex < len(m.catalog)-1 {
		m.selectedIndex++
	} else {
		m.selectedIndex = 0
	}
}

func (m *Model) clearOutput() {
	m.outputLines = nil
	m.outputScroll = 0
	m.lastExitCode = nil
}

func (m *Model) updateStatusForSelection() {
	if m.selectedIndex >= len(m.catalog) {
		return
	}
	opt := m.catalog[m.selectedIndex]
	verb := "install"
	if m.installed[opt.ID] {
		verb = "uninstall"
	}
	m.statusMessage = fmt.Sprintf("Press Enter to %s %s", verb, opt.Name)
}
