package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/estudia-app/estudia/internal/export"
	"github.com/estudia-app/estudia/internal/session"
)

func newSummaryCommand() *cobra.Command {
	var exportFormat string
	command := &cobra.Command{
		Use:   "summary <notebook id>",
		Short: "Generate and print a summary of a notebook's documents",
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

			workspace := session.NewWorkspace(chat, client, client, center)
			summary, err := workspace.GenerateSummary(cmd.Context())
			if err != nil {
				return fmt.Errorf("workspace.GenerateSummary > %w", err)
			}

			if exportFormat != "" {
				format, err := export.ParseFormat(exportFormat)
				if err != nil {
					return err
				}
				path, err := export.Summary(cfg.Outputs.ExportDirectory, chat.Notebook(), summary, format)
				if err != nil {
					return fmt.Errorf("export.Summary > %w", err)
				}
				fmt.Printf("Exported the summary to %s\n", path)
				return nil
			}

			if summary.Title != "" {
				fmt.Println(summary.Title)
				fmt.Println()
			}
			fmt.Println(summary.Text)
			return nil
		},
	}
	command.Flags().StringVar(&exportFormat, "export", "", "Write the summary to a file. Options: md, pdf")
	return command
}
