// swot is a spaced-repetition flashcard tool over a directory of markdown
// cards.
package main

import (
	"os"
	"strings"

	"github.com/darius/swot/internal/cli"
)

func main() {
	environ := os.Environ()
	env := make(map[string]string, len(environ))
	for _, e := range environ {
		if k, v, ok := strings.Cut(e, "="); ok {
			env[k] = v
		}
	}

	os.Exit(cli.Run(os.Stdin, os.Stdout, os.Stderr, os.Args, env))
}
