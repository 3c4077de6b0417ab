// Package generator maps a config.Config to a written ENV_VARS.hpp.
package generator

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/hartyporpoise/envheader/internal/config"
	"github.com/hartyporpoise/envheader/internal/header"
	"github.com/hartyporpoise/envheader/internal/size"
)

// Generator renders and writes the header for one Config.
type Generator struct {
	cfg    config.Config
	output string
	logger *log.Logger
	stdout io.Writer
}

// Option configures a Generator.
type Option func(*Generator)

// WithOutput sets the header path. Defaults to header.DefaultPath.
func WithOutput(path string) Option {
	return func(g *Generator) { g.output = path }
}

// WithLogger sets the logger used for warnings.
func WithLogger(l *log.Logger) Option {
	return func(g *Generator) { g.logger = l }
}

// WithStdout sets where the success message is printed.
func WithStdout(w io.Writer) Option {
	return func(g *Generator) { g.stdout = w }
}

// New returns a Generator for cfg. Warnings and the success message go to
// os.Stdout unless overridden.
func New(cfg config.Config, opts ...Option) *Generator {
	g := &Generator{
		cfg:    cfg,
		output: header.DefaultPath,
		stdout: os.Stdout,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = log.NewWithOptions(g.stdout, log.Options{Prefix: "envheader"})
	}
	return g
}

// Output returns the path Generate writes to.
func (g *Generator) Output() string { return g.output }

// Render returns the header bytes without touching the filesystem.
// An invalid FILE_SIZE is logged and its define omitted; it is not an error.
func (g *Generator) Render() []byte {
	return header.Compose(g.cfg, g.fileSize()).Render()
}

// Generate writes the header and reports success on stdout.
func (g *Generator) Generate() error {
	if err := header.Write(g.output, g.Render()); err != nil {
		return err
	}
	fmt.Fprintf(g.stdout, "Header file '%s' generated successfully.\n", g.output)
	return nil
}

func (g *Generator) fileSize() string {
	if g.cfg.FileSize == "" {
		return ""
	}
	expr, err := size.ParseFileSize(g.cfg.FileSize)
	if err != nil {
		g.logger.Warn(fmt.Sprintf("%v. Skipping FILE_SIZE define.", err))
		return ""
	}
	return expr
}
