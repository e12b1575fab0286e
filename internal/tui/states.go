package tui

// Mode governs how key input is dispatched.
type Mode int

const (
	ModeNormal Mode = iota
	ModeConfirmAction
	ModeInstalling
	ModeCompleted
)

// ActionChoice is the selected entry in the confirm popup.
type ActionChoice int

const (
	ChoiceReinstall ActionChoice = iota
	ChoiceUninstall
)
