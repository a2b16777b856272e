// Command containers runs small demonstrations of the container packages.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type options struct {
	logLevel string
	dev      bool
	dump     bool
}

type cli struct {
	opts options
	lg   *zap.Logger
}

func bindFlags(fs *pflag.FlagSet, o *options) {
	fs.StringVar(&o.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	fs.BoolVar(&o.dev, "dev", false, "human readable development logging")
	fs.BoolVar(&o.dump, "dump", false, "dump final container state")
}

func newLogger(o options) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(o.logLevel)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	if o.dev {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	return cfg.Build()
}

func newRootCommand(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:          "containers",
		Short:        "Demonstrate the generic containers",
		SilenceUsage: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			if c.lg != nil {
				return nil
			}
			lg, err := newLogger(c.opts)
			if err != nil {
				return err
			}
			c.lg = lg
			return nil
		},
	}
	bindFlags(root.PersistentFlags(), &c.opts)

	root.AddCommand(
		newVectorCommand(c),
		newMatrixCommand(c),
		newListCommand(c),
		newOptionalCommand(c),
	)
	return root
}

func main() {
	c := &cli{}
	err := newRootCommand(c).Execute()
	if c.lg != nil {
		_ = c.lg.Sync()
	}
	if err != nil {
		os.Exit(1)
	}
}
