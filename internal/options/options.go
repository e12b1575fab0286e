package options

// Option is a single installable component exposed in the UI.
type Option struct {
	ID              string
	Name            string
	Description     string
	Category        string
	RequiresReboot  bool
	ExcludedFromAll bool
	Aliases         []string
}

// Options is the full catalog in display order. The list is fixed at build
// time; nothing mutates it at runtime.
var Options = []Option{
	{
		ID:          "claude",
		Name:        "Claude Code",
		Description: "Anthropic's AI coding assistant CLI",
		Category:    "AI Tools",
	},
	{
		ID:          "codex",
		Name:        "Codex CLI",
		Description: "OpenAI's Codex command-line interface",
		Category:    "AI Tools",
	},
	{
		ID:          "screensaver",
		Name:        "Custom Screensaver",
		Description: "Personalized ASCII art screensaver",
		Category:    "Customization",
	},
	{
		ID:             "plymouth",
		Name:           "Plymouth Theme",
		Description:    "Cybex boot splash theme",
		Category:       "System",
		RequiresReboot: true,
	},
	{
		ID:          "fish",
		Name:        "Fish Shell",
		Description: "Modern shell with Starship prompt",
		Category:    "Shell",
	},
	{
		ID:          "hyprland",
		Name:        "Hyprland Bindings",
		Description: "Custom key bindings and input config",
		Category:    "Desktop",
		Aliases:     []string{"hyprland-bindings"},
	},
	{
		ID:          "waycorner",
		Name:        "Hot Corners",
		Description: "macOS-style hot corners for Hyprland",
		Category:    "Desktop",
	},
	{
		ID:          "waybar",
		Name:        "Waybar Idle Toggle",
		Description: "Click to toggle idle lock indicator",
		Category:    "Desktop",
	},
	{
		ID:          "ssh",
		Name:        "SSH Key",
		Description: "Generate SSH key for GitHub",
		Category:    "Security",
		Aliases:     []string{"ssh-key"},
	},
	{
		ID:              "passwordless-sudo",
		Name:            "Passwordless Sudo",
		Description:     "Enable passwordless sudo for user",
		Category:        "Security",
		ExcludedFromAll: true,
	},
	{
		ID:          "brave",
		Name:        "Brave Browser",
		Description: "Privacy-focused browser as default",
		Category:    "Applications",
	},
	{
		ID:              "mainline",
		Name:            "Mainline Kernel",
		Description:     "Latest mainline Linux kernel",
		Category:        "System",
		RequiresReboot:  true,
		ExcludedFromAll: true,
	},
	{
		ID:          "noctalia",
		Name:        "Noctalia Shell",
		Description: "Modern desktop shell (replaces Waybar)",
		Category:    "Desktop",
		Aliases:     []string{"noctalia-shell"},
	},
	{
		ID:          "looknfeel",
		Name:        "Animations",
		Description: "Improved Hyprland window animations",
		Category:    "Customization",
	},
}

// Categories lists category names in display order.
var Categories = []string{
	"System",
	"AI Tools",
	"Shell",
	"Desktop",
	"Applications",
	"Security",
	"Customization",
}

// ByID returns the option with the given id or alias.
func ByID(id string) (Option, bool) {
	for _, opt := range Options {
		if opt.ID == id {
			return opt, true
		}
		for _, alias := range opt.Aliases {
			if alias == id {
				return opt, true
			}
		}
	}
	return Option{}, false
}

// ForAll returns the options included in an "install everything" run.
func ForAll() []Option {
	var out []Option
	for _, opt := range Options {
		if !opt.ExcludedFromAll {
			out = append(out, opt)
		}
	}
	return out
}
