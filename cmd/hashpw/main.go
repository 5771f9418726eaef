// Command hashpw prints the bcrypt hash of a password, for seeding rows of
// the users table.
//
//	hashpw [-cost N] [password]
//
// Without an argument the password is read from the terminal (twice, without
// echo) or, when stdin is not a terminal, from its first line.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/dmitrijs2005/geoportal/internal/hashpw"
)

func main() {
	tool := &hashpw.Tool{
		Stdin:   os.Stdin,
		StdinFd: int(os.Stdin.Fd()),
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}

	if err := tool.Run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "hashpw:", err)
		os.Exit(1)
	}
}
