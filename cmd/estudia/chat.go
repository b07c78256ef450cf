package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/estudia-app/estudia/internal/cli"
	"github.com/estudia-app/estudia/internal/session"
)

func newChatCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "chat <notebook id>",
		Short: "Chat with the assistant about a notebook's documents",
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
			sources := session.NewSourceManager(chat, client, client, center)

			fmt.Printf("Chatting about %q. Type /help for commands, /quit to leave.\n\n", chat.Notebook().Title)
			chatCLI := cli.NewChatCLI(chat, workspace, sources)
			return chatCLI.Run(cmd.Context(), chatCLI)
		},
	}
}
