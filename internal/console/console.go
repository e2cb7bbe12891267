// Package console implements the interactive tracker menu.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

const menu = "\nCryptocurrency Tracker\n" +
	"1. Fetch data for a single cryptocurrency\n" +
	"2. Fetch data for multiple cryptocurrencies\n" +
	"3. Exit\n"

const (
	promptChoice = "Choose an option: "
	promptSingle = "Enter the cryptocurrency name (e.g., bitcoin, ethereum): "
	promptMany   = "Enter comma-separated cryptocurrency names (e.g., bitcoin, ethereum): "

	msgGoodbye = "Exiting the application. Goodbye!"
	msgInvalid = "Invalid choice. Please try again."
)

// Fetcher is the quote fetcher driven by the menu.
type Fetcher interface {
	Fetch(ctx context.Context, id string)
	Display()
	FetchMany(ctx context.Context, ids []string)
}

type Console struct {
	f   Fetcher
	in  *bufio.Reader
	out io.Writer
}

func New(f Fetcher, in io.Reader, out io.Writer) *Console {
	return &Console{f: f, in: bufio.NewReader(in), out: out}
}

// Run shows the menu until the user exits or input ends. Only read errors
// other than EOF are returned.
func (c *Console) Run(ctx context.Context) error {
	for {
		fmt.Fprint(c.out, menu)
		choice, err := c.readLine(promptChoice)
		if err != nil {
			return c.stop(err)
		}

		switch strings.TrimSpace(choice) {
		case "1":
			name, err := c.readLine(promptSingle)
			if err != nil {
				return c.stop(err)
			}
			c.f.Fetch(ctx, strings.ToLower(strings.TrimSpace(name)))
			c.f.Display()
		case "2":
			names, err := c.readLine(promptMany)
			if err != nil {
				return c.stop(err)
			}
			c.f.FetchMany(ctx, splitIDs(strings.ToLower(names)))
		case "3":
			fmt.Fprintln(c.out, msgGoodbye)
			return nil
		default:
			fmt.Fprintln(c.out, msgInvalid)
		}
	}
}

// readLine prints prompt and returns the next line without its terminator.
// A final line without a newline is returned before io.EOF.
func (c *Console) readLine(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// stop ends the session: EOF exits cleanly, anything else is returned.
func (c *Console) stop(err error) error {
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(c.out)
		fmt.Fprintln(c.out, msgGoodbye)
		return nil
	}
	return fmt.Errorf("reading input: %w", err)
}

// splitIDs splits on commas and trims each entry. Blank entries are kept so
// each one is still fetched and reported.
func splitIDs(s string) []string {
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
