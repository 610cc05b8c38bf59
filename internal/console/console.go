// Package console is the line-oriented terminal surface of the interactive
// session: prompts that read and sanitize one line each, and fixed-width
// rendering of product tables.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// Width is the width of separators and centered headers.
const Width = 116

// clearLines is the number of blank lines printed when the terminal cannot
// be cleared with an escape sequence.
const clearLines = 50

// Console reads lines from in and writes prompts and tables to out.
type Console struct {
	in    *bufio.Reader
	out   io.Writer
	ansi  bool
	clear bool
}

// Option configures a Console.
type Option func(*Console)

// WithClear enables clearing the screen between menus. When ansi is true
// the clear uses an escape sequence; otherwise blank lines are printed.
func WithClear(ansi bool) Option {
	return func(c *Console) {
		c.clear = true
		c.ansi = ansi
	}
}

// New creates a Console. Screen clearing is off unless WithClear is given.
func New(in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{
		in:  bufio.NewReader(in),
		out: out,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ReadLine returns the next input line without its line terminator. It
// returns io.EOF once input is exhausted.
func (c *Console) ReadLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Prompt prints label and returns the raw line.
func (c *Console) Prompt(label string) (string, error) {
	fmt.Fprint(c.out, label)
	return c.ReadLine()
}

// Choice prompts for a menu option or identifier and returns it sanitized
// and case-folded.
func (c *Console) Choice(label string) (string, error) {
	line, err := c.Prompt(label)
	if err != nil {
		return "", err
	}
	return types.NormalizeToken(line), nil
}

// Name prompts for a product name and returns it sanitized with case kept.
func (c *Console) Name(label string) (string, error) {
	line, err := c.Prompt(label)
	if err != nil {
		return "", err
	}
	return types.SanitizeName(line), nil
}

// Quantity prompts for a non-negative integer, re-prompting on malformed or
// negative input. ok is false when the user submits an empty line.
func (c *Console) Quantity(label string) (n int, ok bool, err error) {
	fmt.Fprint(c.out, label)
	for {
		line, err := c.ReadLine()
		if err != nil {
			return 0, false, err
		}
		token := types.NormalizeToken(line)
		if token == "" {
			return 0, false, nil
		}
		n, perr := types.ParseQuantity(token)
		if perr == nil {
			return n, true, nil
		}
		fmt.Fprint(c.out, "Invalid quantity - please enter again: ")
	}
}

// Price prompts for a non-negative decimal price, re-prompting on malformed
// or negative input. ok is false when the user submits an empty line.
func (c *Console) Price(label string) (p decimal.Decimal, ok bool, err error) {
	fmt.Fprint(c.out, label)
	for {
		line, err := c.ReadLine()
		if err != nil {
			return decimal.Zero, false, err
		}
		if strings.TrimSpace(line) == "" {
			return decimal.Zero, false, nil
		}
		p, perr := types.ParsePrice(line)
		if perr == nil {
			return p, true, nil
		}
		fmt.Fprint(c.out, "Invalid price - please enter again: ")
	}
}

// Confirm prompts with label and reports whether the answer was "y".
func (c *Console) Confirm(label string) (bool, error) {
	answer, err := c.Choice(label)
	if err != nil {
		return false, err
	}
	return answer == "y", nil
}

// Pause waits for the user to press Enter.
func (c *Console) Pause() error {
	fmt.Fprint(c.out, "Press Enter to continue...")
	_, err := c.ReadLine()
	return err
}

// Clear clears the screen when clearing is enabled.
func (c *Console) Clear() {
	if !c.clear {
		return
	}
	if c.ansi {
		fmt.Fprint(c.out, "\033[H\033[2J")
		return
	}
	fmt.Fprint(c.out, strings.Repeat("\n", clearLines))
}

// Println writes a line to the output.
func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

// Printf writes formatted text to the output.
func (c *Console) Printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}

// Separator writes a full-width line of ch.
func (c *Console) Separator(ch rune) {
	fmt.Fprintln(c.out, strings.Repeat(string(ch), Width))
}

// Header writes title between two dashed separators.
func (c *Console) Header(title string) {
	c.Separator('-')
	fmt.Fprintln(c.out, title)
	c.Separator('-')
}

// Banner writes title centered between two double-line separators.
func (c *Console) Banner(title string) {
	c.Separator('=')
	fmt.Fprintln(c.out, center(title, Width))
	c.Separator('=')
}

// Menu writes numbered options followed by a separator.
func (c *Console) Menu(options ...string) {
	for _, opt := range options {
		fmt.Fprintln(c.out, opt)
	}
	c.Separator('-')
}

func center(text string, width int) string {
	pad := (width - len(text)) / 2
	if pad <= 0 {
		return text
	}
	return strings.Repeat(" ", pad) + text + strings.Repeat(" ", width-len(text)-pad)
}
