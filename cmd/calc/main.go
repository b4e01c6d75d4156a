package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	calc "github.com/Jishnu-Palit/Calc-repo"
)

const (
	appName     = "calc"
	historyFile = ".calc_history"
	promptMain  = "==> "
)

var banner = fmt.Sprintf("Calc %s REPL\nType digits, . + - * / %% = as keys; c clears, e clears entry, < deletes, ~ toggles sign.\nCtrl+C cancels input, Ctrl+D exits. Type :quit to exit.", calc.Version)

func red(s string) string   { return "\x1b[31m" + s + "\x1b[0m" }
func green(s string) string { return "\x1b[32m" + s + "\x1b[0m" }
func blue(s string) string  { return "\x1b[94m" + s + "\x1b[0m" }

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cmd := os.Args[1]
	switch cmd {
	case "repl":
		os.Exit(cmdRepl(os.Args[2:]))
	case "eval":
		os.Exit(cmdEval(os.Args[2:]))
	case "version":
		fmt.Println(calc.Version)
		return
	case "-h", "--help", "help":
		usage()
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", appName, cmd)
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Printf(`Calc %s (built %s)

Usage:
  %s repl [-q]          Start the interactive calculator.
  %s eval "<keys>"      Feed a key sequence, print the result line.
  %s version            Print the compiled version.

Keys: 0-9 digits, '.' decimal point, '+ - * /' operators, '%%' percent,
'=' equals, 'c' clear-all, 'e' clear-entry, '<' backspace, '~' sign toggle.
Spaces are ignored.

`, calc.Version, calc.BuildDate, appName, appName, appName)
}

// feedKey routes one key rune to the matching session event. Whitespace is
// skipped; an unknown key is reported and otherwise ignored.
func feedKey(s *calc.Session, k rune) (calc.Display, error) {
	switch {
	case k >= '0' && k <= '9':
		return s.Digit(byte(k)), nil
	case k == '.':
		return s.Dot(), nil
	case k < 128 && calc.IsOpKind(byte(k)):
		return s.Operator(byte(k)), nil
	case k == '%':
		return s.Percent(), nil
	case k == '=':
		return s.Equals(), nil
	case k == 'c' || k == 'C':
		return s.ClearAll(), nil
	case k == 'e' || k == 'E':
		return s.ClearEntry(), nil
	case k == '<':
		return s.Backspace(), nil
	case k == '~':
		return s.ToggleSign(), nil
	case k == ' ' || k == '\t':
		return s.Render(), nil
	default:
		return s.Render(), fmt.Errorf("unknown key %q", k)
	}
}

// feedKeys runs a whole key string through the session, returning the final
// display. Unknown keys are collected as a single error after the run.
func feedKeys(s *calc.Session, keys string) (calc.Display, error) {
	var bad []string
	d := s.Render()
	for _, k := range keys {
		var err error
		d, err = feedKey(s, k)
		if err != nil {
			bad = append(bad, fmt.Sprintf("%q", k))
		}
	}
	if len(bad) > 0 {
		return d, fmt.Errorf("unknown keys: %s", strings.Join(bad, ", "))
	}
	return d, nil
}

// paint writes the two-line screen: expression on top, result below.
func paint(w io.Writer, d calc.Display) {
	if d.Expression != "" {
		fmt.Fprintln(w, blue(d.Expression))
	}
	if d.Err {
		fmt.Fprintln(w, red(d.Result))
		return
	}
	fmt.Fprintln(w, green(d.Result))
}

// -----------------------------------------------------------------------------
// repl
// -----------------------------------------------------------------------------

func cmdRepl(args []string) int {
	fs := flag.NewFlagSet("repl", flag.ContinueOnError)
	quiet := fs.Bool("q", false, "suppress the banner")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if !*quiet {
		fmt.Println(banner)
	}

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	s := calc.NewSession()

	for {
		line, err := ln.Prompt(promptMain)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			break
		}
		if err != nil {
			continue
		}

		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, ":") {
			switch strings.ToLower(trimmed) {
			case ":quit":
				return 0
			default:
				fmt.Printf("unknown command. Type :quit to exit.\n")
			}
			continue
		}
		if trimmed == "" {
			paint(os.Stdout, s.Render())
			continue
		}

		d, err := feedKeys(s, line)
		if err != nil {
			fmt.Fprintln(os.Stderr, red(err.Error()))
		}
		paint(os.Stdout, d)
		ln.AppendHistory(line)
	}

	return 0
}

// -----------------------------------------------------------------------------
// eval (one-shot, scriptable)
// -----------------------------------------------------------------------------

func cmdEval(args []string) int {
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "usage: %s eval \"<keys>\"\n", appName)
		return 2
	}

	s := calc.NewSession()
	d, err := feedKeys(s, strings.Join(args, " "))
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return 2
	}
	fmt.Println(d.Result)
	if d.Err {
		return 1
	}
	return 0
}
