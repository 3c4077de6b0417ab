// envheader — generates include/ENV_VARS.hpp from build environment variables
//
// Usage:
//
//	FILE_LOGGING=yes FILE_SIZE=10MB LOG_FILE_NAME=app envheader
//	envheader --env-file build.env --output include/ENV_VARS.hpp
//	envheader size 10MB
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/hartyporpoise/envheader/internal/config"
	"github.com/hartyporpoise/envheader/internal/generator"
	"github.com/hartyporpoise/envheader/internal/header"
	"github.com/hartyporpoise/envheader/internal/size"
)

type options struct {
	output   string
	envFile  string
	toStdout bool
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	var opts options

	root := &cobra.Command{
		Use:   "envheader",
		Short: "Generate ENV_VARS.hpp from FILE_LOGGING, FILE_SIZE and LOG_FILE_* variables",
		Long: `envheader reads FILE_LOGGING, FILE_SIZE, LOG_FILE_PATH, LOG_FILE_NAME and
LOG_FILE_EXTN from the environment and writes a header of #define constants.
Unset variables are simply left out of the header.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(stdout, cmd.ErrOrStderr(), &opts)
		},
	}

	f := root.Flags()
	f.StringVarP(&opts.output, "output", "o", header.DefaultPath, "Path of the generated header")
	f.StringVar(&opts.envFile, "env-file", "",
		"Optional dotenv file read before the process environment (empty = disabled)")
	f.BoolVar(&opts.toStdout, "stdout", false, "Print the header instead of writing it")

	root.AddCommand(newSizeCmd(stdout))
	return root
}

func newSizeCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "size <literal>",
		Short: "Print the FILE_SIZE expression for a size literal (e.g. 10MB)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr, err := size.ParseFileSize(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(stdout, expr)
			return nil
		},
	}
}

func runGenerate(stdout, stderr io.Writer, opts *options) error {
	cfg, err := config.Load(opts.envFile)
	if err != nil {
		return err
	}

	// With --stdout the header itself is the output; warnings must not mix into it.
	logOut := stdout
	if opts.toStdout {
		logOut = stderr
	}
	gen := generator.New(cfg,
		generator.WithOutput(opts.output),
		generator.WithStdout(stdout),
		generator.WithLogger(log.NewWithOptions(logOut, log.Options{Prefix: "envheader"})),
	)
	if opts.toStdout {
		_, err := stdout.Write(gen.Render())
		return err
	}
	return gen.Generate()
}
