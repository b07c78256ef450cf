package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/estudia-app/estudia/internal/api"
	"github.com/estudia-app/estudia/internal/session"
)

func newNotebookCommand() *cobra.Command {
	notebookCommands := &cobra.Command{
		Use:   "notebooks",
		Short: "Manage notebooks and their documents",
	}

	notebookCommands.AddCommand(
		newNotebookListCommand(),
		newNotebookShowCommand(),
		newNotebookCreateCommand(),
		newNotebookDeleteCommand(),
	)

	return notebookCommands
}

func newNotebookListCommand() *cobra.Command {
	var skip, limit int
	var all bool
	command := &cobra.Command{
		Use:   "list",
		Short: "List your notebooks",
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

			user, err := requireLogin(cmd.Context(), client)
			if err != nil {
				return err
			}

			var notebooks []api.Notebook
			if all {
				notebooks, err = client.ListNotebooks(cmd.Context(), skip, limit)
				if err != nil {
					return fmt.Errorf("client.ListNotebooks > %w", err)
				}
			} else {
				notebooks, err = client.ListNotebooksByUser(cmd.Context(), user.ID)
				if err != nil {
					return fmt.Errorf("client.ListNotebooksByUser > %w", err)
				}
			}

			if len(notebooks) == 0 {
				fmt.Println("No notebooks yet. Create one with: estudia notebooks create FILE...")
				return nil
			}
			for _, notebook := range notebooks {
				fmt.Printf("%d\t%s\t%s\n", notebook.ID, notebook.Title, notebook.Description)
			}
			return nil
		},
	}
	flags := command.Flags()
	flags.IntVar(&skip, "skip", 0, "Number of notebooks to skip (with --all)")
	flags.IntVar(&limit, "limit", 100, "Maximum number of notebooks to return (with --all)")
	flags.BoolVar(&all, "all", false, "List every notebook instead of only yours")
	return command
}

func newNotebookShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <notebook id>",
		Short: "Show a notebook with its documents and study material",
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

			notebook, err := client.GetNotebook(cmd.Context(), notebookID)
			if err != nil {
				return fmt.Errorf("client.GetNotebook > %w", err)
			}

			fmt.Printf("%s (id %d)\n", notebook.Title, notebook.ID)
			if notebook.Description != "" {
				fmt.Println(notebook.Description)
			}
			fmt.Printf("\nDocuments (%d):\n", len(notebook.Sources))
			for _, source := range notebook.Sources {
				fmt.Printf("  %d\t%s\n", source.ID, source.Name)
			}
			fmt.Printf("\nMessages: %d, flashcards: %d, quizzes: %d, summaries: %d\n",
				len(notebook.Messages), len(notebook.Flashcards), len(notebook.Quizzes), len(notebook.Summaries))
			return nil
		},
	}
}

func newNotebookCreateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create <file>...",
		Short: "Create a notebook from one or more PDF documents",
		Args:  cobra.MinimumNArgs(1),
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

			files := make([]api.UploadFile, 0, len(args))
			for _, path := range args {
				contents, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("os.ReadFile(%s) > %w", path, err)
				}
				files = append(files, api.UploadFile{Name: filepath.Base(path), Contents: contents})
			}
			if err := session.ValidateUpload(files); err != nil {
				return err
			}

			notebook, err := client.CreateNotebook(cmd.Context(), files)
			if err != nil {
				return fmt.Errorf("client.CreateNotebook > %w", err)
			}
			fmt.Printf("Created notebook %d: %s\n", notebook.ID, notebook.Title)
			return nil
		},
	}
}

func newNotebookDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <notebook id>",
		Short: "Delete a notebook",
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

			if err := client.DeleteNotebook(cmd.Context(), notebookID); err != nil {
				return fmt.Errorf("client.DeleteNotebook > %w", err)
			}
			fmt.Printf("Deleted notebook %d\n", notebookID)
			return nil
		},
	}
}
