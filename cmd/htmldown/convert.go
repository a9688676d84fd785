package main

import (
	"fmt"
	"io"
	"os"

	"github.com/htmldown/htmldown"
)

// ConvertCmd is the "convert" subcommand.
type ConvertCmd struct {
	Path string `arg:"" optional:"" help:"HTML file to convert (stdin when omitted)"`
	Toc  bool   `help:"Print the heading outline instead of the Markdown"`

	convertOptions
}

// Run executes the convert command.
func (c *ConvertCmd) Run(deps *Dependencies) error {
	input, err := c.readInput(deps.Stdin)
	if err != nil {
		return err
	}

	if c.Scope != "" {
		scoped, err := c.newScoper(deps.Logger).Scope(input, c.Scope)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", htmldown.ErrorMessage(err))
			return err
		}
		input = scoped
	}

	converter, err := c.newConverter(deps.Logger)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", htmldown.ErrorMessage(err))
		return err
	}

	markdown, err := converter.Convert(input)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", htmldown.ErrorMessage(err))
		return err
	}

	if c.Toc {
		for _, h := range htmldown.Outline(markdown) {
			for i := 1; i < h.Level; i++ {
				fmt.Fprint(deps.Stdout, "  ")
			}
			fmt.Fprintf(deps.Stdout, "- [%s](#%s)\n", h.Text, h.Anchor)
		}
		return nil
	}

	fmt.Fprintln(deps.Stdout, markdown)
	return nil
}

// readInput reads the HTML source from the file argument or stdin.
func (c *ConvertCmd) readInput(stdin io.Reader) (string, error) {
	if c.Path == "" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(c.Path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
