package main

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/imgk/go-containers/list"
	"github.com/imgk/go-containers/optional"
)

func newListCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "list [values...]",
		Short: "Build a singly linked list from the arguments",
		RunE: func(cmd *cobra.Command, args []string) error {
			l := list.Of(args...)
			c.lg.Debug("list built", zap.Int("size", l.Size()))

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, l)
			if c.opts.dump {
				spew.Fdump(out, l.Size(), args)
			}
			return nil
		},
	}
}

func newOptionalCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "optional [value]",
		Short: "Read an optional value given as argument",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o := optional.None[string]()
			if len(args) == 1 {
				o.Set(args[0])
			}

			out := cmd.OutOrStdout()
			v, err := o.Value()
			if errors.Is(err, optional.ErrBadOptionalAccess) {
				c.lg.Warn("optional is empty", zap.Error(err))
				fmt.Fprintln(out, "<none>")
				return nil
			}
			fmt.Fprintln(out, *v)
			return nil
		},
	}
}
