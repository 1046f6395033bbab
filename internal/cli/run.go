package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"quizkit/internal/config"
	"quizkit/internal/generate"
	"quizkit/internal/ui/session"
	"quizkit/internal/upload"
)

// runRun builds the handler for the run command.
func runRun(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", "", "Path to config file (default: search for "+config.ConfigFileName+")")
		uiMode := flags.String("ui", "", "UI mode: auto, live, or plain (default: from config)")
		noColor := flags.Bool("no-color", false, "Disable color output")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		resolved, err := resolveConfigPath(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Run failed: %v\n", err)
			return ExitError
		}
		cfg, err := config.Load(resolved)
		if err != nil {
			fmt.Fprintf(stderr, "Run failed: %v\n", err)
			return ExitError
		}

		mode := cfg.UI.Mode
		if *uiMode != "" {
			mode = *uiMode
		}
		decision, err := resolveUIMode(mode, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "Run failed: %v\n", err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		staged, err := stageArgs(flags.Args())
		if err != nil {
			fmt.Fprintf(stderr, "Run failed: %v\n", err)
			return ExitError
		}

		client, err := generate.NewClient(cfg.Generator.BaseURL, cfg.APIKey(), nil)
		if err != nil {
			fmt.Fprintf(stderr, "Run failed: %v\n", err)
			return ExitError
		}
		controller := session.NewController(client)

		if !decision.useLive {
			return runPlain(controller, staged, stdout, stderr)
		}

		model := session.NewModel(controller, session.Options{
			NoColor:     *noColor || cfg.UI.NoColor,
			TermProgram: os.Getenv("TERM_PROGRAM"),
			Staged:      staged,
		})
		program := tea.NewProgram(model, tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			fmt.Fprintf(stderr, "Run failed: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}

// stageArgs stats positional file arguments into upload candidates.
func stageArgs(paths []string) ([]upload.Candidate, error) {
	if len(paths) == 0 {
		return nil, nil
	}
	candidates := make([]upload.Candidate, 0, len(paths))
	for _, path := range paths {
		candidate, err := upload.FromPath(path)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, candidate)
	}
	return candidates, nil
}
