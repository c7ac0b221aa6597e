package ui

import (
	"bufio"
	"fmt"
	"io"

	"github.com/samdwyer/littleprofessor/internal/house"
)

// StreamIO is the line based backend used when stdin is not a terminal.
type StreamIO struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewStreamIO reads lines from in and writes to out.
func NewStreamIO(in io.Reader, out io.Writer) *StreamIO {
	return &StreamIO{scanner: bufio.NewScanner(in), out: out}
}

// ShowGrid prints the house.
func (s *StreamIO) ShowGrid(grid house.Grid) {
	fmt.Fprint(s.out, grid.String())
}

// Print writes a message line.
func (s *StreamIO) Print(text string) {
	fmt.Fprintln(s.out, text)
}

// PrintError writes an error line.
func (s *StreamIO) PrintError(text string) {
	fmt.Fprintln(s.out, text)
}

// ReadLine returns the next input line, or io.EOF at end of input.
func (s *StreamIO) ReadLine() (string, error) {
	fmt.Fprint(s.out, promptPrefix)
	if s.scanner.Scan() {
		return s.scanner.Text(), nil
	}
	if err := s.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// Close does nothing; the streams belong to the caller.
func (s *StreamIO) Close() error {
	return nil
}
