package main

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/luanpanno/lox/internal/report"
	"github.com/luanpanno/lox/internal/scanner"
)

// run scans one chunk of source and prints its token stream. Lexical errors
// go through the reporter; the tokens that did scan are printed regardless.
func run(source string, reporter report.Reporter, out io.Writer) {
	scan := scanner.New(source, reporter)
	tokens := scan.ScanTokens()

	for _, tok := range tokens {
		fmt.Fprintln(out, tok)
	}
}

func runFile(path string) error {
	content, err := ioutil.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read file: %w", err)
	}

	reporter := report.NewConsole(os.Stderr)
	run(string(content), reporter, os.Stdout)
	if reporter.HadError() {
		os.Exit(65)
	}

	return nil
}

func runPrompt() error {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(func(prefix string) []string {
		var matches []string
		for _, word := range scanner.Keywords() {
			if strings.HasPrefix(word, prefix) {
				matches = append(matches, word)
			}
		}
		return matches
	})

	historyFile := filepath.Join(os.TempDir(), ".lox_history")
	if f, err := os.Open(historyFile); err == nil {
		line.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(historyFile); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
	}()

	reporter := report.NewConsole(os.Stderr)
	for {
		input, err := line.Prompt("> ")
		if err == liner.ErrPromptAborted {
			continue
		} else if err == io.EOF {
			fmt.Println()
			break
		} else if err != nil {
			return fmt.Errorf("could not read line: %w", err)
		}

		if input != "" {
			line.AppendHistory(input)
		}

		reporter.Reset()
		run(input, reporter, os.Stdout)
	}

	return nil
}

func main() {
	var err error

	if len(os.Args) > 2 {
		fmt.Println("Usage: lox [script]")
		os.Exit(64)
	} else if len(os.Args) == 2 {
		err = runFile(os.Args[1])
	} else {
		err = runPrompt()
	}

	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
