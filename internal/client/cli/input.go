package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword is a seam over term.ReadPassword so tests never need a real
// terminal.
var readPassword = term.ReadPassword

// GetSimpleText shows prompt on w, then reads one line from reader and
// returns it with surrounding whitespace trimmed. A line terminated by EOF
// instead of a newline still counts; only EOF with nothing read is an error.
// Used for the registration and login prompts.
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetPassword reads a password from the terminal without echoing it, then
// prints a newline so the next prompt starts on a fresh line. Callers own the
// returned bytes and should wipe them once the password has been used.
func GetPassword(w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, "Enter password: "); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}
