// Package cli implements the swot command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

var errMissingFlagValue = errors.New("flag requires a value")

// globalFlags are the options accepted before the command name.
type globalFlags struct {
	workDir    string
	deckDir    string
	configPath string
	remaining  []string
}

// Run is the main entry point. Returns the process exit code.
func Run(in io.Reader, out, errOut io.Writer, args []string, env map[string]string) int {
	o := NewIO(out, errOut)

	if len(args) < 2 {
		printUsage(o)
		return 0
	}

	flags, err := parseGlobalFlags(args[1:])
	if err != nil {
		o.Errorln("error:", err)
		return 1
	}

	workDir := flags.workDir
	if workDir == "" {
		workDir, err = os.Getwd()
		if err != nil {
			o.Errorln("error: cannot get working directory:", err)
			return 1
		}
	}

	cfg, sources, err := LoadConfig(workDir, flags.configPath, Config{DeckDir: flags.deckDir}, env)
	if err != nil {
		o.Errorln("error:", err)
		return 1
	}

	deckDir := cfg.DeckDir
	if !filepath.IsAbs(deckDir) {
		deckDir = filepath.Join(workDir, deckDir)
	}

	if len(flags.remaining) == 0 {
		printUsage(o)
		return 0
	}

	cmd := flags.remaining[0]
	rest := flags.remaining[1:]

	if cmd == "-h" || cmd == "--help" || cmd == "help" {
		printUsage(o)
		return 0
	}

	var cmdErr error
	switch cmd {
	case "new":
		cmdErr = cmdNew(o, deckDir, rest)
	case "due":
		cmdErr = cmdDue(o, deckDir, rest)
	case "review":
		cmdErr = cmdReview(o, in, deckDir, rest)
	case "print-config":
		cmdErr = cmdPrintConfig(o, cfg, sources)
	default:
		o.Errorln("error: unknown command:", cmd)
		printUsage(o)
		return 1
	}

	if cmdErr != nil {
		o.Errorln("error:", cmdErr)
		return 1
	}
	return 0
}

// parseGlobalFlags consumes leading global options; everything from the
// first non-flag argument on belongs to the command.
func parseGlobalFlags(args []string) (globalFlags, error) {
	var f globalFlags
	i := 0
	for i < len(args) {
		switch args[i] {
		case "-C", "--chdir":
			val, err := flagValue(args, i)
			if err != nil {
				return globalFlags{}, err
			}
			f.workDir = val
			i += 2
		case "--deck":
			val, err := flagValue(args, i)
			if err != nil {
				return globalFlags{}, err
			}
			f.deckDir = val
			i += 2
		case "--config":
			val, err := flagValue(args, i)
			if err != nil {
				return globalFlags{}, err
			}
			f.configPath = val
			i += 2
		default:
			f.remaining = args[i:]
			return f, nil
		}
	}
	return f, nil
}

func flagValue(args []string, i int) (string, error) {
	if i+1 >= len(args) {
		return "", fmt.Errorf("%w: %s", errMissingFlagValue, args[i])
	}
	return args[i+1], nil
}

func printUsage(o *IO) {
	o.Println(`Usage: swot [global flags] <command> [flags]

Commands:
  new <question> [-a answer]   Create a card, due today
  due                          List cards due for review
  review [--seed n]            Run an interactive review session
  print-config                 Show the resolved configuration

Global flags:
  -C, --chdir <dir>   Run as if started in <dir>
  --deck <dir>        Deck directory (default: .deck)
  --config <path>     Explicit config file`)
}

func cmdPrintConfig(o *IO, cfg Config, sources ConfigSources) error {
	o.Println("deck_dir:", cfg.DeckDir)
	if sources.Global != "" {
		o.Println("global config:", sources.Global)
	}
	if sources.Project != "" {
		o.Println("project config:", sources.Project)
	}
	return nil
}
