// Package shell implements the line-oriented command loop of cmd/lvtree.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvtree/core"
	"github.com/katalvlaran/lvtree/index"
)

// DefaultPrompt is written before every command unless WithPrompt overrides it.
const DefaultPrompt = "lvtree> "

// ErrUsage reports a malformed command line.
var ErrUsage = errors.New("shell: usage")

// Shell reads commands and applies them to an index.Index.
type Shell struct {
	idx    index.Index
	out    io.Writer
	prompt string
}

// Option configures a Shell.
type Option func(*Shell)

// WithPrompt sets the prompt; an empty prompt disables it.
func WithPrompt(p string) Option {
	return func(s *Shell) { s.prompt = p }
}

// New returns a shell over idx writing to out.
func New(idx index.Index, out io.Writer, opts ...Option) *Shell {
	s := &Shell{idx: idx, out: out, prompt: DefaultPrompt}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Run executes commands from in until EOF, "exit"/"quit", or ctx is done.
// Command errors are printed and do not stop the loop; only read errors
// and ctx cancellation are returned. Cancellation is honoured while Run
// waits for input.
func (s *Shell) Run(ctx context.Context, in io.Reader) error {
	lines := make(chan string)
	readErr := make(chan error, 1)
	done := make(chan struct{})
	defer close(done) // releases the reader if it is waiting to hand off a line

	go readLines(in, lines, readErr, done)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.prompt != "" {
			fmt.Fprint(s.out, s.prompt)
		}

		var line string
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-readErr:
			return err // nil at EOF
		case line = <-lines:
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		quit, err := s.Exec(line)
		if err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
		}
		if quit {
			return nil
		}
	}
}

// readLines scans in and hands every line to lines until EOF, a read error,
// or done is closed. The final scanner error (nil at EOF) goes to errc.
func readLines(in io.Reader, lines chan<- string, errc chan<- error, done <-chan struct{}) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		select {
		case lines <- scanner.Text():
		case <-done:
			return
		}
	}
	errc <- scanner.Err()
}

// Exec runs a single command line. quit is true for "exit" and "quit".
func (s *Shell) Exec(line string) (quit bool, err error) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return false, nil
	}

	switch cmd := strings.ToLower(parts[0]); cmd {
	case "insert", "put":
		return false, s.insert(parts)
	case "search", "get":
		return false, s.search(parts)
	case "delete", "del":
		return false, s.delete(parts)
	case "pre", "in", "post":
		order, _ := core.ParseOrder(cmd)
		s.idx.Traverse(order, func(r core.Record) { fmt.Fprintln(s.out, r) })
		return false, nil
	case "print":
		return false, s.print()
	case "len":
		fmt.Fprintln(s.out, s.idx.Len())
		return false, nil
	case "release":
		s.idx.Release()
		fmt.Fprintln(s.out, "released")
		return false, nil
	case "help":
		s.help()
		return false, nil
	case "exit", "quit":
		return true, nil
	default:
		return false, fmt.Errorf("unknown command %q, type 'help'", cmd)
	}
}

func (s *Shell) insert(parts []string) error {
	if len(parts) < 3 {
		return fmt.Errorf("%w: insert <key> <field>", ErrUsage)
	}
	key, err := parseKey(parts[1])
	if err != nil {
		return err
	}
	if _, ok := s.idx.Search(key); ok {
		return core.DuplicateKey(key)
	}
	if err = s.idx.Insert(key, strings.Join(parts[2:], " ")); err != nil {
		return err
	}
	fmt.Fprintln(s.out, "ok")

	return nil
}

func (s *Shell) search(parts []string) error {
	if len(parts) != 2 {
		return fmt.Errorf("%w: search <key>", ErrUsage)
	}
	key, err := parseKey(parts[1])
	if err != nil {
		return err
	}
	rec, ok := s.idx.Search(key)
	if !ok {
		return core.KeyNotFound(key)
	}
	fmt.Fprintln(s.out, rec)

	return nil
}

func (s *Shell) delete(parts []string) error {
	if len(parts) != 2 {
		return fmt.Errorf("%w: delete <key>", ErrUsage)
	}
	key, err := parseKey(parts[1])
	if err != nil {
		return err
	}
	if err = s.idx.Delete(key); err != nil {
		return err
	}
	fmt.Fprintln(s.out, "deleted")

	return nil
}

func (s *Shell) print() error {
	if r, ok := s.idx.(index.Renderer); ok {
		return r.Render(s.out)
	}
	s.idx.Traverse(core.InOrder, func(r core.Record) { fmt.Fprintln(s.out, r) })

	return nil
}

func (s *Shell) help() {
	fmt.Fprint(s.out, `commands:
  insert <key> <field>   add a record
  search <key>           print the record with key
  delete <key>           remove the record with key
  pre | in | post        list records in that order
  print                  draw the tree
  len                    number of records
  release                drop every record
  exit | quit            leave the shell
`)
}

func parseKey(s string) (int, error) {
	key, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: key must be an integer, got %q", ErrUsage, s)
	}

	return key, nil
}
