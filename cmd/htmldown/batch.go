package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/htmldown/htmldown"
	hdfs "github.com/htmldown/htmldown/fs"
)

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	Root        string `arg:"" help:"Directory tree of HTML files to convert"`
	OutDir      string `short:"o" required:"" help:"Output directory for Markdown files"`
	Concurrency int    `short:"c" default:"4" help:"Concurrent conversion limit"`

	convertOptions
}

// Run executes the batch command: it converts every HTML file under Root
// and mirrors the tree under OutDir with .md extensions.
func (c *BatchCmd) Run(deps *Dependencies) error {
	paths, err := collectHTML(c.Root)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		fmt.Fprintf(deps.Stderr, "no HTML files found under %s\n", c.Root)
		return nil
	}

	docs := make([]string, len(paths))
	for i, path := range paths {
		data, err := os.ReadFile(filepath.Join(c.Root, path))
		if err != nil {
			return err
		}
		docs[i] = string(data)
	}

	if c.Scope != "" {
		scoper := c.newScoper(deps.Logger)
		for i, doc := range docs {
			scoped, err := scoper.Scope(doc, c.Scope)
			if err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s: %s\n", paths[i], htmldown.ErrorMessage(err))
				return err
			}
			docs[i] = scoped
		}
	}

	converter, err := c.newConverter(deps.Logger)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", htmldown.ErrorMessage(err))
		return err
	}

	results, err := htmldown.ConvertEach(deps.Ctx, converter, docs, c.Concurrency)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", htmldown.ErrorMessage(err))
		return err
	}

	writer := hdfs.NewWriter(c.OutDir)
	for i, markdown := range results {
		if err := writer.WriteDocument(paths[i], markdown); err != nil {
			return fmt.Errorf("write %s: %w", paths[i], err)
		}
	}

	fmt.Fprintf(deps.Stdout, "converted %d files to %s\n", len(results), c.OutDir)
	return nil
}

// collectHTML returns the paths of all HTML files under root, relative
// to root, in walk order.
func collectHTML(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".html", ".htm", ".xhtml":
			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			paths = append(paths, rel)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}
