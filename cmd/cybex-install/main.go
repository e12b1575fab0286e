package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/omarchy/cybex-installer/internal/errdefs"
	"github.com/omarchy/cybex-installer/internal/installer"
	"github.com/omarchy/cybex-installer/internal/installstate"
	"github.com/omarchy/cybex-installer/internal/log"
	"github.com/omarchy/cybex-installer/internal/options"
	"github.com/omarchy/cybex-installer/internal/prefs"
	"github.com/omarchy/cybex-installer/internal/tui"
)

var Version = "dev"

var stateFile string

var rootCmd = &cobra.Command{
	Use:   "cybex-install [script-dir]",
	Short: "TUI installer for Omarchy Cybex customizations",
	Long: `Browse the catalog of Cybex customizations and install or uninstall
them through the install script in the given directory (default: cwd).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRoot,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(Version)
	},
}

var infoCmd = &cobra.Command{
	Use:   "info <option-id>",
	Short: "Show details for a single catalog option",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := optionInfo(args[0], installstate.New(stateFile).Load())
		if err != nil {
			return err
		}
		fmt.Print(text)
		return nil
	},
}

// optionInfo resolves an option by id or alias and formats its details.
func optionInfo(id string, installed map[string]bool) (string, error) {
	opt, ok := options.ByID(id)
	if !ok {
		return "", errdefs.NewCustomError(errdefs.ErrTypeUnknownOption,
			fmt.Sprintf("unknown option %q", id))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)\n", opt.Name, opt.ID)
	fmt.Fprintf(&b, "  %s\n", opt.Description)
	fmt.Fprintf(&b, "  category: %s\n", opt.Category)
	if opt.RequiresReboot {
		b.WriteString("  reboot required after install\n")
	}
	if installed[opt.ID] {
		b.WriteString("  installed\n")
	}
	return b.String(), nil
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the option catalog with installed markers",
	Run: func(cmd *cobra.Command, args []string) {
		installed := installstate.New(stateFile).Load()
		for _, category := range options.Categories {
			fmt.Printf("%s:\n", category)
			for _, opt := range options.Options {
				if opt.Category != category {
					continue
				}
				marker := " "
				if installed[opt.ID] {
					marker = "x"
				}
				note := ""
				if opt.RequiresReboot {
					note = " (reboot required)"
				}
				fmt.Printf("  [%s] %-20s %s%s\n", marker, opt.ID, opt.Description, note)
			}
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&stateFile, "state-file", installstate.DefaultPath(),
		"path to the installed-state file")
	rootCmd.AddCommand(versionCmd, listCmd, infoCmd)
}

func runRoot(cmd *cobra.Command, args []string) error {
	scriptDir, err := os.Getwd()
	if err != nil {
		return err
	}
	if len(args) == 1 {
		scriptDir, err = filepath.Abs(args[0])
		if err != nil {
			return err
		}
	}

	if err := installer.ValidateScriptDir(scriptDir); err != nil {
		return err
	}

	store := installstate.New(stateFile)
	installed := store.Load()
	userPrefs := prefs.LoadOrInit(afero.NewOsFs(), prefs.DefaultPath())

	log.Infof("starting cybex-install %s (script dir %s, %d options installed)",
		Version, scriptDir, len(installed))

	model := tui.NewModel(Version, scriptDir, store, installed, tui.ThemeByName(userPrefs.Theme))
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
