package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/estudia-app/estudia/internal/cli"
	"github.com/estudia-app/estudia/internal/export"
	"github.com/estudia-app/estudia/internal/session"
)

// FormatFlag validates --export values as they are parsed.
type FormatFlag string

// Set implements pflag.Value.
func (f *FormatFlag) Set(v string) error {
	format, err := export.ParseFormat(v)
	if err != nil {
		return err
	}
	*f = FormatFlag(format)
	return nil
}

// String implements pflag.Value.
func (f *FormatFlag) String() string {
	if f == nil {
		return ""
	}
	return string(*f)
}

// Type implements pflag.Value.
func (f *FormatFlag) Type() string {
	return "FormatFlag"
}

var (
	_ pflag.Value = (*FormatFlag)(nil)
)

func newFlashcardsCommand() *cobra.Command {
	var generate bool
	var exportFormat FormatFlag
	command := &cobra.Command{
		Use:   "flashcards <notebook id>",
		Short: "Review a notebook's flashcard deck",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			client, err := newAPIClient(cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = client.Close()
			}()

			if _, err := requireLogin(cmd.Context(), client); err != nil {
				return err
			}
			notebookID, err := parseNotebookID(args[0])
			if err != nil {
				return err
			}

			center := newNotificationCenter()
			defer center.Close()

			chat, err := session.NewChat(cmd.Context(), client, client, center, notebookID)
			if err != nil {
				return fmt.Errorf("session.NewChat > %w", err)
			}
			defer chat.Close()

			if generate {
				workspace := session.NewWorkspace(chat, client, client, center)
				batch, err := workspace.GenerateFlashcards(cmd.Context())
				if err != nil {
					return fmt.Errorf("workspace.GenerateFlashcards > %w", err)
				}
				fmt.Printf("Generated %d new flashcards.\n", len(batch))
			}

			cards := chat.Flashcards()
			if len(cards) == 0 {
				fmt.Println("No flashcards yet. Generate some with --generate.")
				return nil
			}

			if exportFormat != "" {
				path, err := export.Flashcards(cfg.Outputs.ExportDirectory, chat.Notebook(), cards, export.Format(exportFormat))
				if err != nil {
					return fmt.Errorf("export.Flashcards > %w", err)
				}
				fmt.Printf("Exported %d flashcards to %s\n", len(cards), path)
				return nil
			}

			flashcardCLI := cli.NewFlashcardCLI(cards)
			flashcardCLI.ShuffleCards()
			fmt.Printf("Reviewing %d cards\n", flashcardCLI.CardCount())
			return flashcardCLI.Run(cmd.Context(), flashcardCLI)
		},
	}
	flags := command.Flags()
	flags.BoolVar(&generate, "generate", false, "Generate a new flashcard batch before reviewing")
	flags.Var(&exportFormat, "export", "Export the deck instead of reviewing it. Options: md, yaml, pdf")
	return command
}
