package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/fatih/color"
)

var errEnd = errors.New("end")

// InteractiveCLI contains the terminal IO shared by interactive sessions
type InteractiveCLI struct {
	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	bold         *color.Color
	italic       *color.Color
	correct      *color.Color
	wrong        *color.Color
}

func newInteractiveCLI(stdin io.Reader, stdout io.Writer) *InteractiveCLI {
	return &InteractiveCLI{
		stdinReader:  bufio.NewReader(stdin),
		stdoutWriter: stdout,
		bold:         color.New(color.Bold),
		italic:       color.New(color.Italic),
		correct:      color.New(color.FgGreen),
		wrong:        color.New(color.FgRed),
	}
}

//go:generate mockgen -source=interactive_cli.go -destination=../mocks/cli/mock_session.go -package=mock_cli Session

type Session interface {
	Session(context context.Context) error
}

// Run calls session until it ends, fails, or the process is interrupted.
func (cli *InteractiveCLI) Run(ctx context.Context, session Session) error {
	ctx, cancel := signal.NotifyContext(
		ctx,
		os.Interrupt,
	)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)

		for {
			select {
			case <-ctx.Done():
				return
			default:
			}

			if err := session.Session(ctx); err != nil {
				if !errors.Is(err, errEnd) {
					errCh <- err
				}
				return
			}
		}
	}()
	select {
	case <-ctx.Done():
		_, _ = fmt.Fprintln(cli.stdoutWriter, "Received interrupt signal, exiting...")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("error: %w", err)
		}
	}
	return nil
}

// readLine reads one answer line. io.EOF ends the session.
func (cli *InteractiveCLI) readLine() (string, error) {
	line, err := cli.stdinReader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line == "" {
			return "", errEnd
		}
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("error reading input: %w", err)
		}
	}
	return strings.TrimSpace(line), nil
}
