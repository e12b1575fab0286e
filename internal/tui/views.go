package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.renderBanner())
	b.WriteString("\n\n")

	if m.mode == ModeConfirmAction {
		b.WriteString(m.renderOptionList())
		b.WriteString("\n")
		b.WriteString(m.renderPopup())
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderOptionList())
		b.WriteString("\n")
	}

	if m.showOutput {
		b.WriteString(m.renderOutputPanel())
		b.WriteString("\n")
	}

	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

func (m Model) renderOptionList() string {
	var b strings.Builder

	for i, opt := range m.catalog {
		cursor := "  "
		style := m.styles.Normal
		if i == m.selectedIndex {
			cursor = "> "
			style = m.styles.Selected
		}

		marker := " "
		if m.installed[opt.ID] {
			marker = m.styles.Installed.Render("✓")
		}

		meta := m.styles.Subtle.Render(fmt.Sprintf("%-40s [%s]", opt.Description, opt.Category))
		line := fmt.Sprintf("%s[%s] %-22s %s", cursor, marker, opt.Name, meta)
		b.WriteString(style.Render(line))

		if opt.RequiresReboot {
			b.WriteString(" " + m.styles.Warning.Render("(reboot)"))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) renderOutputPanel() string {
	var b strings.Builder

	if m.mode == ModeInstalling {
		b.WriteString(fmt.Sprintf("%s %s\n", m.spinner.View(), m.styles.Normal.Render(m.currentAction)))
	} else if m.currentAction != "" {
		title := m.currentAction
		if m.lastExitCode != nil {
			if *m.lastExitCode == 0 {
				title = m.styles.Success.Render(title + " ✓")
			} else {
				title = m.styles.Error.Render(fmt.Sprintf("%s ✗ (exit %d)", m.currentAction, *m.lastExitCode))
			}
		}
		b.WriteString(title + "\n")
	}

	// Window of visibleOutputLines starting at the scroll offset.
	start := m.outputScroll
	if start > len(m.outputLines) {
		start = len(m.outputLines)
	}
	end := start + visibleOutputLines
	if end > len(m.outputLines) {
		end = len(m.outputLines)
	}

	body := strings.Join(m.outputLines[start:end], "\n")
	b.WriteString(m.styles.Output.Render(body))

	return b.String()
}

func (m Model) renderPopup() string {
	if m.selectedIndex >= len(m.catalog) {
		return ""
	}
	opt := m.catalog[m.selectedIndex]

	reinstall := m.styles.PopupItem.Render("Reinstall")
	uninstall := m.styles.PopupItem.Render("Uninstall")
	if m.popupChoice == ChoiceReinstall {
		reinstall = m.styles.PopupPick.Render("Reinstall")
	} else {
		uninstall = m.styles.PopupPick.Render("Uninstall")
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Normal.Render(opt.Name),
		"",
		reinstall,
		uninstall,
	)
	return m.styles.Popup.Render(content)
}

func (m Model) renderStatusBar() string {
	return m.styles.StatusBar.Render(m.statusMessage)
}

func (m Model) renderFooter() string {
	bindings := []struct {
		keys string
		desc string
	}{
		{m.keys.Up.Help().Key + "/" + m.keys.Down.Help().Key, "navigate"},
		{m.keys.Enter.Help().Key, m.keys.Enter.Help().Desc},
		{m.keys.Esc.Help().Key, m.keys.Esc.Help().Desc},
		{m.keys.Quit.Help().Key, m.keys.Quit.Help().Desc},
	}

	parts := make([]string, 0, len(bindings))
	for _, bind := range bindings {
		parts = append(parts, m.styles.Key.Render(bind.keys)+" "+m.styles.Subtle.Render(bind.desc))
	}
	return strings.Join(parts, m.styles.Subtle.Render(" • "))
}
