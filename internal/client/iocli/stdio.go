package iocli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Stdio is the terminal-backed IO. The streams are injectable so the
// adapter itself can be exercised against buffers; password input only
// suppresses echo when stdin is a real terminal.
type Stdio struct {
	in  *bufio.Reader
	out io.Writer

	// passwordFd is the descriptor used for no-echo reads; negative when
	// no terminal is attached and passwords degrade to plain line reads.
	passwordFd int
}

var _ IO = (*Stdio)(nil)

// NewStdio returns an IO over the process's stdin and stdout.
func NewStdio() IO {
	return &Stdio{
		in:         bufio.NewReader(os.Stdin),
		out:        os.Stdout,
		passwordFd: int(os.Stdin.Fd()),
	}
}

// NewStdioFrom builds an IO over arbitrary streams. Password reads echo,
// since there is no terminal to switch modes on.
func NewStdioFrom(in io.Reader, out io.Writer) IO {
	return &Stdio{
		in:         bufio.NewReader(in),
		out:        out,
		passwordFd: -1,
	}
}

func (s *Stdio) Println(a ...any) {
	fmt.Fprintln(s.out, a...)
}

func (s *Stdio) Printf(format string, a ...any) {
	fmt.Fprintf(s.out, format, a...)
}

// ReadInput prompts and reads one line, trimming surrounding whitespace.
func (s *Stdio) ReadInput(prompt string) (string, error) {
	s.Printf("%s", prompt)
	input, err := s.in.ReadString('\n')
	if err != nil {
		// A final line without a trailing newline is still a valid answer
		if err != io.EOF || input == "" {
			return "", err
		}
	}
	return strings.TrimSpace(input), nil
}

// ReadPassword prompts and reads a line without echoing it back when a
// terminal is attached.
func (s *Stdio) ReadPassword(prompt string) (string, error) {
	if s.passwordFd >= 0 && term.IsTerminal(s.passwordFd) {
		s.Printf("%s", prompt)
		pwBytes, err := term.ReadPassword(s.passwordFd)
		s.Println()
		if err != nil {
			return "", err
		}
		return string(pwBytes), nil
	}
	return s.ReadInput(prompt)
}
