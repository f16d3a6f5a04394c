package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrInputClosed is returned when input ends before an answer is given
var ErrInputClosed = errors.New("input closed")

// Prompter asks questions on out and reads answers line by line from in.
// Every question retries until it gets a usable answer.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPrompter creates a Prompter
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// YesNo asks for a yes or no answer
func (p *Prompter) YesNo(message string) (bool, error) {
	fmt.Fprintf(p.out, "Please enter yes or no for %s.\n", message)
	for {
		line, err := p.readLine()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "yes", "y":
			return true, nil
		case "no", "n":
			return false, nil
		}
		fmt.Fprintln(p.out, "Not a yes or no answer, try again.")
	}
}

// Int asks for a non-negative number
func (p *Prompter) Int(message string) (int, error) {
	fmt.Fprintf(p.out, "Please enter a number for %s.\n", message)
	for {
		line, err := p.readLine()
		if err != nil {
			return 0, err
		}
		if n, ok := parseCount(line); ok {
			return n, nil
		}
		fmt.Fprintln(p.out, "Not a valid number, try again.")
	}
}

// IntInRange asks for a number in [minVal, maxVal)
func (p *Prompter) IntInRange(message string, minVal, maxVal int) (int, error) {
	if minVal >= maxVal {
		return 0, fmt.Errorf("empty range [%d, %d) for %s", minVal, maxVal, message)
	}

	fmt.Fprintf(p.out, "Please enter a number for %s between %d and %d.\n", message, minVal, maxVal-1)
	for {
		line, err := p.readLine()
		if err != nil {
			return 0, err
		}
		n, ok := parseCount(line)
		switch {
		case !ok:
			fmt.Fprintln(p.out, "Not a valid number, try again.")
		case n < minVal || n >= maxVal:
			fmt.Fprintf(p.out, "Not between %d and %d, try again.\n", minVal, maxVal-1)
		default:
			return n, nil
		}
	}
}

func (p *Prompter) readLine() (string, error) {
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", ErrInputClosed
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// parseCount accepts only non-negative decimal integers
func parseCount(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
