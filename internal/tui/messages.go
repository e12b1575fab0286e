package tui

import "github.com/omarchy/cybex-installer/internal/installer"

type installerEventMsg struct {
	event installer.Event
}

type installerClosedMsg struct{}
