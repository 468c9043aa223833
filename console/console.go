// Package console reads player input and renders the game as text.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"war/meta"
)

// Console is a line-oriented terminal for one session.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// New returns a Console reading lines from in and writing to out.
func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// ReadLine prompts and returns the next line without its newline.
// Lines longer than the read buffer keep only their first chunk.
// It returns io.EOF once input is exhausted.
func (c *Console) ReadLine(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	chunk, isPrefix, err := c.in.ReadLine()
	if err != nil {
		return "", err
	}
	line := strings.ToValidUTF8(string(chunk), "")
	for isPrefix {
		_, isPrefix, err = c.in.ReadLine()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}
	}
	return line, nil
}

// ReadInt prompts until the player enters an integer.
func (c *Console) ReadInt(prompt string) (int, error) {
	for {
		line, err := c.ReadLine(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil {
			return n, nil
		}
		fmt.Fprintln(c.out, "Please enter a whole number.")
	}
}

// ReadText prompts until the player enters a non-blank line.
func (c *Console) ReadText(prompt string) (string, error) {
	for {
		line, err := c.ReadLine(prompt)
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(line) != "" {
			return line, nil
		}
		fmt.Fprintln(c.out, "This field cannot be empty.")
	}
}

// ReadTerritory collects one territory during manual setup.
func (c *Console) ReadTerritory(slot, total int) (string, string, int, error) {
	fmt.Fprintf(c.out, "Territory %d of %d\n", slot+1, total)
	name, err := c.ReadText("  Name: ")
	if err != nil {
		return "", "", 0, err
	}
	color, err := c.ReadText("  Army color: ")
	if err != nil {
		return "", "", 0, err
	}
	for {
		troops, err := c.ReadInt("  Troops: ")
		if err != nil {
			return "", "", 0, err
		}
		if troops >= meta.MIN_TROOPS {
			fmt.Fprintln(c.out)
			return name, color, troops, nil
		}
		fmt.Fprintf(c.out, "A territory needs at least %d troop.\n", meta.MIN_TROOPS)
	}
}

// ReadAttack asks for the 1-based attacker and defender positions.
func (c *Console) ReadAttack(total int) (int, int, error) {
	attacker, err := c.ReadInt(fmt.Sprintf("Attacking territory (1 to %d): ", total))
	if err != nil {
		return 0, 0, err
	}
	defender, err := c.ReadInt(fmt.Sprintf("Defending territory (1 to %d): ", total))
	if err != nil {
		return 0, 0, err
	}
	return attacker, defender, nil
}

// ReadOption asks for a menu choice.
func (c *Console) ReadOption() (int, error) {
	return c.ReadInt("Choose an option: ")
}

// Pause waits for the player to press enter. A closed input does not block.
func (c *Console) Pause() {
	_, err := c.ReadLine("\nPress ENTER to continue...")
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(c.out)
	}
}
