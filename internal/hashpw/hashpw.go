// Package hashpw implements the hashpw command: it reads a password from the
// command line, the terminal or a pipe and prints its bcrypt hash.
package hashpw

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/geoportal/internal/server/auth"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"
)

// Test seams for the terminal.
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
)

var (
	ErrEmptyPassword    = errors.New("password must not be empty")
	ErrPasswordMismatch = errors.New("passwords do not match")
)

// Tool carries the process streams so Run can be driven from tests.
type Tool struct {
	Stdin   io.Reader
	StdinFd int
	Stdout  io.Writer
	Stderr  io.Writer
}

// Run parses args, obtains the password and writes its hash to Stdout.
func (t *Tool) Run(args []string) error {
	fs := flag.NewFlagSet("hashpw", flag.ContinueOnError)
	fs.SetOutput(t.Stderr)
	cost := fs.Int("cost", auth.DefaultHashCost, "bcrypt cost")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *cost < bcrypt.MinCost || *cost > bcrypt.MaxCost {
		return fmt.Errorf("cost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}

	password, err := t.password(fs.Args())
	if err != nil {
		return err
	}

	hash, err := auth.HashPassword(password, *cost)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(t.Stdout, hash)
	return err
}

func (t *Tool) password(args []string) (string, error) {
	var pw string
	switch {
	case len(args) > 0:
		pw = args[0]
	case isTerminal(t.StdinFd):
		first, err := t.prompt("Enter password: ")
		if err != nil {
			return "", err
		}
		second, err := t.prompt("Repeat password: ")
		if err != nil {
			return "", err
		}
		if first != second {
			return "", ErrPasswordMismatch
		}
		pw = first
	default:
		line, err := bufio.NewReader(t.Stdin).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", err
		}
		pw = strings.TrimRight(line, "\r\n")
	}

	if pw == "" {
		return "", ErrEmptyPassword
	}
	return pw, nil
}

// prompt reads one password from the terminal without echo.
func (t *Tool) prompt(label string) (string, error) {
	if _, err := fmt.Fprint(t.Stderr, label); err != nil {
		return "", err
	}
	pw, err := readPassword(t.StdinFd)
	fmt.Fprintln(t.Stderr)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}
