package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/estudia-app/estudia/internal/api"
	"github.com/estudia-app/estudia/internal/session"
)

// ChatCLI is the interactive conversation loop for one notebook. Slash
// commands manage sources and study material; anything else is sent to the
// assistant.
type ChatCLI struct {
	*InteractiveCLI
	chat      *session.Chat
	workspace *session.Workspace
	sources   *session.SourceManager
	rendered  int
}

func NewChatCLI(chat *session.Chat, workspace *session.Workspace, sources *session.SourceManager) *ChatCLI {
	cli := &ChatCLI{
		InteractiveCLI: newInteractiveCLI(),
		chat:           chat,
		workspace:      workspace,
		sources:        sources,
	}
	// History fetched at session start is already on screen duty; render it
	// once up front so the prompt starts below the conversation.
	cli.renderNewMessages()
	return cli
}

func (cli *ChatCLI) Session(ctx context.Context) error {
	input, err := GetSimpleText(cli.stdinReader, "you", cli.stdoutWriter)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	if input == "" {
		return nil
	}

	if strings.HasPrefix(input, "/") {
		return cli.runCommand(ctx, input)
	}

	if _, err := cli.chat.Send(input); err != nil {
		return fmt.Errorf("chat.Send > %w", err)
	}
	cli.chat.Wait()
	cli.renderNewMessages()
	return nil
}

func (cli *ChatCLI) runCommand(ctx context.Context, input string) error {
	fields := strings.Fields(input)
	command, args := fields[0], fields[1:]

	switch command {
	case "/quit", "/exit":
		return errEnd
	case "/help":
		cli.printHelp()
		return nil
	case "/retry":
		return cli.retryLastFailed()
	case "/sources":
		cli.printSources()
		return nil
	case "/upload":
		return cli.uploadSources(ctx, args)
	case "/delete":
		return cli.deleteSource(ctx, args)
	case "/flashcards":
		batch, err := cli.workspace.GenerateFlashcards(ctx)
		if err != nil {
			return nil // already surfaced as a notification
		}
		fmt.Fprintf(cli.stdoutWriter, "Generated %d flashcards. Review them with the flashcards command.\n", len(batch))
		return nil
	case "/quiz":
		quiz, err := cli.workspace.GenerateQuiz(ctx)
		if err != nil {
			return nil
		}
		fmt.Fprintf(cli.stdoutWriter, "Generated quiz %d with %d questions. Take it with the quiz command.\n", quiz.ID, len(quiz.Questions))
		return nil
	case "/summary":
		summary, err := cli.workspace.GenerateSummary(ctx)
		if err != nil {
			return nil
		}
		if summary.Title != "" {
			_, _ = cli.bold.Fprintln(cli.stdoutWriter, summary.Title)
		}
		fmt.Fprintln(cli.stdoutWriter, summary.Text)
		return nil
	}

	fmt.Fprintf(cli.stdoutWriter, "Unknown command %s. Type /help for the list.\n", command)
	return nil
}

func (cli *ChatCLI) printHelp() {
	fmt.Fprint(cli.stdoutWriter, `Commands:
  /sources            list the notebook's documents
  /upload FILE...     add PDF documents to the notebook
  /delete ID          remove one document
  /flashcards         generate a new flashcard batch
  /quiz               generate a new quiz
  /summary            generate a summary of the documents
  /retry              resend the last failed message
  /quit               leave the chat
`)
}

func (cli *ChatCLI) printSources() {
	sources := cli.chat.Sources()
	if len(sources) == 0 {
		fmt.Fprintln(cli.stdoutWriter, "No documents in this notebook yet. Use /upload to add some.")
		return
	}
	for _, source := range sources {
		fmt.Fprintf(cli.stdoutWriter, "  %d\t%s\n", source.ID, source.Name)
	}
}

func (cli *ChatCLI) uploadSources(ctx context.Context, paths []string) error {
	files := make([]api.UploadFile, 0, len(paths))
	for _, path := range paths {
		contents, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("os.ReadFile(%s) > %w", path, err)
		}
		files = append(files, api.UploadFile{Name: filepath.Base(path), Contents: contents})
	}
	// Validation failures surface as notifications; the loop keeps going.
	_ = cli.sources.AddSources(ctx, files)
	return nil
}

func (cli *ChatCLI) deleteSource(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(cli.stdoutWriter, "Usage: /delete ID")
		return nil
	}
	sourceID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(cli.stdoutWriter, "Not a source id: %s\n", args[0])
		return nil
	}
	_ = cli.sources.DeleteSource(ctx, sourceID)
	return nil
}

// retryLastFailed resends the newest failed entry. Retry outcomes land in the
// message list like any other turn.
func (cli *ChatCLI) retryLastFailed() error {
	messages := cli.chat.Messages()
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].State == session.StateFailed {
			if err := cli.chat.Retry(messages[i].LocalID); err != nil {
				return fmt.Errorf("chat.Retry > %w", err)
			}
			cli.chat.Wait()
			cli.renderNewMessages()
			return nil
		}
	}
	fmt.Fprintln(cli.stdoutWriter, "Nothing to retry.")
	return nil
}

func (cli *ChatCLI) renderNewMessages() {
	messages := cli.chat.Messages()
	for ; cli.rendered < len(messages); cli.rendered++ {
		cli.renderMessage(messages[cli.rendered])
	}
}

func (cli *ChatCLI) renderMessage(message session.ChatMessage) {
	speaker := "Assistant"
	if message.IsUserMessage {
		speaker = "You"
	}

	switch message.State {
	case session.StateFailed:
		_, _ = color.New(color.FgRed).Fprintf(cli.stdoutWriter, "❌ %s: %s (not delivered, use /retry)\n", speaker, message.Text)
	case session.StateLoading:
		_, _ = cli.italic.Fprintln(cli.stdoutWriter, "Assistant is thinking...")
	default:
		fmt.Fprintf(cli.stdoutWriter, "%s: %s\n", cli.bold.Sprintf("%s", speaker), message.Text)
	}
}
