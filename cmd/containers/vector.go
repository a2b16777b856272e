package main

import (
	"fmt"
	"unsafe"

	"github.com/davecgh/go-spew/spew"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/imgk/go-containers/vector"
)

// dumpLimit caps the number of elements printed by --dump.
const dumpLimit = 16

func newVectorCommand(c *cli) *cobra.Command {
	var (
		count   int
		reserve int
	)
	cmd := &cobra.Command{
		Use:   "vector",
		Short: "Push integers into a vector and report its growth",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runVector(cmd, c, count, reserve)
		},
	}
	cmd.Flags().IntVar(&count, "count", 100500, "number of elements to push")
	cmd.Flags().IntVar(&reserve, "reserve", 0, "capacity to reserve before pushing")
	return cmd
}

func runVector(cmd *cobra.Command, c *cli, count, reserve int) error {
	v := &vector.Vector[int]{}
	defer v.Free()

	if err := v.Reserve(reserve); err != nil {
		c.lg.Error("reserve", zap.Int("capacity", reserve), zap.Error(err))
		return err
	}

	capacity := v.Capacity()
	for i := range count {
		if err := v.PushBack(i); err != nil {
			c.lg.Error("push back", zap.Int("index", i), zap.Error(err))
			return err
		}
		if v.Capacity() != capacity {
			capacity = v.Capacity()
			c.lg.Debug("vector grew", zap.Int("size", v.Size()), zap.Int("capacity", capacity))
		}
	}
	c.lg.Info("vector filled", zap.Int("size", v.Size()), zap.Int("capacity", v.Capacity()))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "size %s, capacity %s (%s)\n",
		humanize.Comma(int64(v.Size())),
		humanize.Comma(int64(v.Capacity())),
		humanize.IBytes(uint64(v.Capacity())*uint64(unsafe.Sizeof(int(0)))),
	)
	if c.opts.dump {
		spew.Fdump(out, v.Slice()[:min(v.Size(), dumpLimit)])
	}
	return nil
}
