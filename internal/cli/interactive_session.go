package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/fatih/color"

	"github.com/estudia-app/estudia/internal/session"
)

// InteractiveCLI contains shared state for the interactive terminal sessions:
// the chat, quiz and flashcard loops all embed it.
type InteractiveCLI struct {
	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	bold         *color.Color
	italic       *color.Color
}

func newInteractiveCLI() *InteractiveCLI {
	return &InteractiveCLI{
		stdinReader:  bufio.NewReader(os.Stdin),
		stdoutWriter: os.Stdout,
		bold:         color.New(color.Bold),
		italic:       color.New(color.Italic),
	}
}

type Session interface {
	Session(context context.Context) error
}

var errEnd = errors.New("end")

// Run drives a session loop until the session signals its natural end, an
// error occurs, or the process is interrupted.
func (cli *InteractiveCLI) Run(ctx context.Context, session Session) error {
	ctx, cancel := signal.NotifyContext(
		ctx,
		os.Interrupt,
	)
	defer cancel()

	errCh := make(chan error)
	go func() {
		defer close(errCh)

	LOOP:
		for {
			select {
			case <-ctx.Done():
				break LOOP
			default:
			}

			if err := session.Session(ctx); err != nil {
				if errors.Is(err, errEnd) {
					break
				}
				errCh <- err
				break
			}
		}
	}()
	select {
	case <-ctx.Done():
		fmt.Println("Received interrupt signal, exiting...")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("error: %w", err)
		}
	}
	return nil
}

// RenderNotification prints one toast with a severity-colored title. Wire it
// as the notification sink so toasts surface the moment they are queued.
func RenderNotification(w io.Writer, notification session.Notification) {
	var paint *color.Color
	switch notification.Severity {
	case session.SeveritySuccess:
		paint = color.New(color.FgGreen)
	case session.SeverityError:
		paint = color.New(color.FgRed)
	default:
		paint = color.New(color.FgCyan)
	}
	fmt.Fprintf(w, "[%s] %s\n", paint.Sprint(notification.Title), notification.Message)
}
