package main

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/imgk/go-containers/matrix"
)

func newMatrixCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "matrix",
		Short: "Transpose a 2x3 matrix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMatrix(cmd, c)
		},
	}
}

func runMatrix(cmd *cobra.Command, c *cli) error {
	out := cmd.OutOrStdout()

	shape := matrix.Shape{Rows: 2, Cols: 3}
	f := []int{0, 1, 2, 3, 4, 5}

	src, err := matrix.FromData(shape.Rows, shape.Cols, f)
	if err != nil {
		return err
	}
	fmt.Fprint(out, src)

	m := matrix.New[int](shape)
	if _, err := m.TransposeFrom(f); err != nil {
		c.lg.Error("transpose", zap.Error(err))
		return err
	}
	*m.At(0, 0) = -1
	fmt.Fprint(out, m)

	tr := m.T()
	for i := range tr.Shape().Rows {
		fmt.Fprintln(out, tr.Row(i)[0])
	}
	c.lg.Debug("matrix transposed", zap.Int("rows", m.Shape().Rows), zap.Int("cols", m.Shape().Cols))

	if c.opts.dump {
		spew.Fdump(out, m.Shape(), m.Data())
	}
	return nil
}
