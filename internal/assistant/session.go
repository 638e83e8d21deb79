package assistant

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/bornholm/exercises/internal/contact"
	"github.com/pkg/errors"
)

// Session runs the command loop against a single contact book.
type Session struct {
	book     *contact.Book
	handlers map[string]Handler
	exits    map[string]struct{}
	opts     *Options
}

func NewSession(book *contact.Book, funcs ...OptionFunc) *Session {
	return &Session{
		book: book,
		handlers: map[string]Handler{
			"hello":  hello,
			"add":    addContact,
			"change": changeContact,
			"phone":  showPhone,
			"all":    showAll,
			"close":  goodBye,
			"exit":   goodBye,
		},
		exits: map[string]struct{}{
			"close": {},
			"exit":  {},
		},
		opts: NewOptions(funcs...),
	}
}

func (s *Session) Book() *contact.Book {
	return s.book
}

// Handle executes one raw input line. The returned boolean is true when the
// command ends the session.
func (s *Session) Handle(input string) (string, bool) {
	command, args := ParseInput(input)

	handler, exists := s.handlers[command]
	if !exists {
		return MessageInvalidCommand, false
	}

	_, exit := s.exits[command]

	return handler(args, s.book), exit
}

// Run reads commands from in until an exit command or the end of the input
// and writes every result to out.
func (s *Session) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	reader := bufio.NewReader(in)

	for {
		if err := ctx.Err(); err != nil {
			return errors.WithStack(err)
		}

		if _, err := io.WriteString(out, s.opts.Prompt); err != nil {
			return errors.WithStack(err)
		}

		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return errors.Wrap(err, "could not read input")
		}

		if errors.Is(err, io.EOF) && line == "" {
			s.opts.Logger.DebugContext(ctx, "end of input, closing session")
			return nil
		}

		result, exit := s.Handle(line)

		s.opts.Logger.DebugContext(ctx, "command handled", slog.Bool("exit", exit))

		if _, err := fmt.Fprintln(out, result); err != nil {
			return errors.WithStack(err)
		}

		if exit || errors.Is(err, io.EOF) {
			return nil
		}
	}
}
