package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var configFile string

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var debugMode bool

	rootCommand := &cobra.Command{
		Use:           "estudia",
		Short:         "Study assistant on top of your own documents",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogger(debugMode)
		},
	}

	flags := rootCommand.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "Path to the configuration file")
	flags.BoolVar(&debugMode, "debug", false, "Enable debug logging")

	rootCommand.AddCommand(
		newLoginCommand(),
		newRegisterCommand(),
		newLogoutCommand(),
		newWhoamiCommand(),
		newNotebookCommand(),
		newChatCommand(),
		newFlashcardsCommand(),
		newQuizCommand(),
		newSummaryCommand(),
	)

	return rootCommand
}

func setupLogger(debugMode bool) {
	level := slog.LevelInfo
	if debugMode {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
