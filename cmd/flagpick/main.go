package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"
	"github.com/studiowebux/flagpick/internal/help"
	"github.com/studiowebux/flagpick/internal/parser"
	"github.com/studiowebux/flagpick/internal/selection"
	"github.com/studiowebux/flagpick/internal/tui"
	"github.com/studiowebux/flagpick/internal/types"
)

var (
	version = "0.1.0"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flagpick [command]",
	Short: "flagpick - interactive flag picker for any command",
	Long: `flagpick reads the help output of a command (its --help banner, or the
man page as fallback), turns it into a selectable flag list, and composes a
command line from your selections.

Navigate with j/k, toggle flags with space, press Enter to run the composed
command, 'p' to print it instead, 'l' to reload the help text in English
when your locale gets in the way of parsing.

Examples:
  flagpick                  # Pick flags for 'ls'
  flagpick cp               # Pick flags for 'cp'
  flagpick -p tar           # Print the composed command instead of running it
  flagpick -e du            # Ask for locale-neutral (English) help text
  flagpick list grep        # Just print the discovered flags`,
	Version: version,
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target := "ls"
		if len(args) > 0 {
			target = args[0]
		}
		return runPicker(target)
	},
}

var listCmd = &cobra.Command{
	Use:   "list <command>",
	Short: "Print the discovered flags without starting the picker",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(args[0])
	},
}

// Flags for root/list command
var (
	flagEnglish bool
	flagPrint   bool
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagEnglish, "english", "e", false, "Acquire help text with a locale-neutral environment (LC_ALL=C)")
	rootCmd.Flags().BoolVarP(&flagPrint, "print", "p", false, "Print the composed command instead of running it")

	rootCmd.AddCommand(listCmd)
}

// newFetcher wires acquisition and extraction into one selection.Fetcher
func newFetcher() selection.Fetcher {
	acquirer := help.NewAcquirer()
	return func(command string, lang types.Language) ([]types.Flag, error) {
		text, err := acquirer.Acquire(command, lang)
		if err != nil {
			return nil, err
		}
		return parser.Extract(text)
	}
}

// startLanguage returns the language mode selected on the command line
func startLanguage() types.Language {
	if flagEnglish {
		return types.LanguageEnglish
	}
	return types.LanguageSystem
}

// runPicker loads the flag list for target and starts the interactive picker
func runPicker(target string) error {
	lang := startLanguage()
	fetch := newFetcher()

	fmt.Printf("Loading help for %q...\n", target)

	flags, err := fetch(target, lang)
	if err != nil {
		return fmt.Errorf("failed to load help for %q: %w (try another command, or check that 'man' is installed)", target, err)
	}

	sel := selection.New(target, lang, flags, fetch)

	action, err := tui.Run(sel)
	if err != nil {
		return fmt.Errorf("failed to run picker: %w", err)
	}

	switch action {
	case tui.ExitExecute:
		if flagPrint {
			fmt.Println(sel.PreviewString())
			return nil
		}
		return launch(target, sel.SelectedArguments())
	case tui.ExitPrint:
		fmt.Println(sel.PreviewString())
	case tui.ExitCancel:
		fmt.Println("Canceled.")
	}

	return nil
}

// runList prints the discovered flag table to stdout
func runList(target string) error {
	flags, err := newFetcher()(target, startLanguage())
	if err != nil {
		return fmt.Errorf("failed to load help for %q: %w", target, err)
	}

	for _, f := range flags {
		fmt.Printf("%-28s %s\n", f.Label(), f.Description)
	}

	return nil
}

// launch runs the composed command with inherited streams. Unlike
// acquisition this is a direct, unsupervised launch: no timeout, no capture,
// the user asked for exactly this process.
func launch(target string, args []string) error {
	fmt.Printf(">>> %s %s\n", target, strings.Join(args, " "))
	fmt.Println("---------------------------------------------------")

	cmd := exec.Command(target, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			fmt.Printf("\nProcess exited (%s).\n", exitErr.ProcessState)
			return nil
		}
		return fmt.Errorf("failed to launch %s: %w", target, err)
	}

	return nil
}
