package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/htmldown/htmldown"
	"github.com/htmldown/htmldown/goquery"
	"github.com/htmldown/htmldown/render"
	hdslog "github.com/htmldown/htmldown/slog"
)

// Dependencies holds the streams and logger for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Convert ConvertCmd `cmd:"" default:"withargs" help:"Convert an HTML file (or stdin) to Markdown"`
	Batch   BatchCmd   `cmd:"" help:"Convert a directory tree of HTML files"`

	Verbose bool `short:"v" help:"Enable debug logging"`
}

// convertOptions are the conversion flags shared by all commands.
type convertOptions struct {
	HeadingStyle string   `default:"atx" enum:"atx,setext" help:"Heading style (${enum})"`
	LinkStyle    string   `default:"inline" enum:"inline,referenced" help:"Link style (${enum})"`
	CodeFence    string   `default:"backtick" enum:"backtick,tilde" help:"Code fence character (${enum})"`
	Bullet       string   `default:"-" enum:"-,*,+" help:"Bullet list marker (${enum})"`
	BaseURL      string   `help:"Base URL for resolving relative links"`
	Exclude      []string `short:"x" help:"CSS selector to exclude (repeatable)"`
	Include      []string `short:"i" help:"CSS selector to re-include inside excluded regions (repeatable)"`
	Scope        string   `short:"s" help:"CSS selector to scope conversion to"`
}

// toOptions maps the flag values onto conversion options.
func (o *convertOptions) toOptions() htmldown.Options {
	opts := htmldown.DefaultOptions()
	opts.HeadingStyle = htmldown.HeadingStyle(o.HeadingStyle)
	opts.LinkStyle = htmldown.LinkStyle(o.LinkStyle)
	if o.CodeFence == "tilde" {
		opts.CodeFence = htmldown.FenceTilde
	}
	opts.BulletMarker = rune(o.Bullet[0])
	opts.BaseURL = o.BaseURL
	opts.ExcludeSelectors = o.Exclude
	opts.IncludeSelectors = o.Include
	return opts
}

// newConverter builds the conversion pipeline from the flags: the
// rendering engine, optionally wrapped with debug logging.
func (o *convertOptions) newConverter(logger *slog.Logger) (htmldown.Converter, error) {
	c, err := render.New(o.toOptions())
	if err != nil {
		return nil, err
	}
	return hdslog.NewLoggingConverter(c, logger), nil
}

// newScoper builds the scoper used when --scope is set.
func (o *convertOptions) newScoper(logger *slog.Logger) htmldown.Scoper {
	return hdslog.NewLoggingScoper(goquery.NewScoper(), logger)
}
