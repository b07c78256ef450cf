package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/estudia-app/estudia/internal/cli"
	"github.com/estudia-app/estudia/internal/session"
)

func newQuizCommand() *cobra.Command {
	var list bool
	var selectID int64
	command := &cobra.Command{
		Use:   "quiz <notebook id>",
		Short: "Take a multiple-choice quiz on a notebook's documents",
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

			if list {
				quizzes := chat.Quizzes()
				if len(quizzes) == 0 {
					fmt.Println("No quizzes yet. Run the command without --list to generate one.")
					return nil
				}
				for _, quiz := range quizzes {
					fmt.Printf("%d\t%s\t%d questions\n", quiz.ID, quiz.Title, len(quiz.Questions))
				}
				return nil
			}

			workspace := session.NewWorkspace(chat, client, client, center)
			if selectID != 0 {
				if err := workspace.SelectQuiz(selectID); err != nil {
					return err
				}
			} else {
				quiz, err := workspace.GenerateQuiz(cmd.Context())
				if err != nil {
					return fmt.Errorf("workspace.GenerateQuiz > %w", err)
				}
				fmt.Printf("Generated quiz %d with %d questions.\n", quiz.ID, len(quiz.Questions))
			}

			quiz, err := workspace.SelectedQuiz()
			if err != nil {
				return err
			}
			if len(quiz.Questions) == 0 {
				fmt.Println("This quiz has no questions to ask.")
				return nil
			}

			quizCLI := cli.NewQuizCLI(quiz)
			quizCLI.ShuffleQuestions()
			fmt.Printf("Starting quiz with %d questions\n", quizCLI.QuestionCount())
			return quizCLI.Run(cmd.Context(), quizCLI)
		},
	}
	flags := command.Flags()
	flags.BoolVar(&list, "list", false, "List the notebook's quizzes instead of taking one")
	flags.Int64Var(&selectID, "select", 0, "Take an existing quiz by id instead of generating a new one")
	return command
}
