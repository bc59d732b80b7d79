package main

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/luanpanno/lox/internal/report"
	"github.com/luanpanno/lox/internal/scanner"

	"github.com/michael-go/go-jsn/jsn"
)

type jsonToken struct {
	Type    string `json:"type"`
	Lexeme  string `json:"lexeme"`
	Literal any    `json:"literal"`
	Line    int    `json:"line"`
}

func printTokens(source string) error {
	reporter := &report.Collector{}
	scan := scanner.New(source, reporter)
	tokens := scan.ScanTokens()

	if reporter.HadError() {
		for _, d := range reporter.Diagnostics {
			fmt.Println(d)
		}
		return fmt.Errorf("failed to scan: %d lexical error(s)", reporter.Count())
	}

	out := make([]jsonToken, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, jsonToken{
			Type:    tok.Type.String(),
			Lexeme:  tok.Lexeme,
			Literal: tok.Literal.Value(),
			Line:    tok.Line,
		})
	}

	json, err := jsn.NewJson(out)
	if err != nil {
		return fmt.Errorf("failed to convert tokens to json: %w", err)
	}
	fmt.Println(json.Pretty())

	return nil
}

func main() {
	if len(os.Args) != 2 {
		fmt.Println("Usage: print-tokens [lox source file]")
		os.Exit(1)
	}

	source, err := ioutil.ReadFile(os.Args[1])
	if err != nil {
		fmt.Println("Could not read file:", err)
		os.Exit(1)
	}

	if err := printTokens(string(source)); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
