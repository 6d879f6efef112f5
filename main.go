// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"gopkg.microglot.org/parsecomb.go/internal/fs"
)

type opts struct {
	Format        string
	AllowTrailing bool
	Verbose       int
}

func bindParseFlags(flags *pflag.FlagSet, op *opts) {
	flags.StringVarP(&op.Format, "format", "f", formatJSON, "Output format: json, yaml, or text.")
	flags.BoolVar(&op.AllowTrailing, "allow-trailing", false, "Accept documents followed by unparsed input.")
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	op := &opts{}
	root := &cobra.Command{
		Use:           "pcjson",
		Short:         "Parse JSON-like documents with the parsecomb example grammar",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(op.Verbose, nil)
		},
	}
	root.PersistentFlags().CountVarP(&op.Verbose, "verbose", "v", "Increase log output; -vv traces every grammar rule.")
	root.AddCommand(newParseCmd(ctx, op), newCheckCmd(ctx, op))

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func newParseCmd(ctx context.Context, op *opts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse FILE...",
		Short: "Parse documents and print their value trees",
		Long:  "Parse each FILE, or every document in a directory, and print the value tree. Use - to read standard input.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(op, cmd)
			if err != nil {
				return err
			}
			return a.run(ctx, args, true)
		},
	}
	bindParseFlags(cmd.Flags(), op)
	return cmd
}

func newCheckCmd(ctx context.Context, op *opts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check FILE...",
		Short: "Verify that documents parse without printing them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(op, cmd)
			if err != nil {
				return err
			}
			return a.run(ctx, args, false)
		},
	}
	cmd.Flags().BoolVar(&op.AllowTrailing, "allow-trailing", false, "Accept documents followed by unparsed input.")
	return cmd
}

func newApp(op *opts, cmd *cobra.Command) (*app, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	local, err := fs.NewFileSystemLocal(cwd)
	if err != nil {
		return nil, err
	}
	rooted, err := fs.NewFileSystemLocal(filepath.VolumeName(cwd) + string(filepath.Separator))
	if err != nil {
		return nil, err
	}
	return &app{
		opts:   *op,
		cwd:    cwd,
		fs:     fs.FileSystemMulti{local, rooted},
		stdin:  cmd.InOrStdin(),
		stdout: cmd.OutOrStdout(),
		stderr: cmd.ErrOrStderr(),
	}, nil
}
