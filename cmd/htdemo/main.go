package main

import (
	"fmt"
	"github.com/cockroachdb/errors"
	"github.com/gostonefire/hashtable"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"io"
	"log/slog"
	"os"
	"strings"
)

// levelValue - A slog.Level settable from the command line
type levelValue struct {
	level slog.Level
}

var _ pflag.Value = (*levelValue)(nil)

// String implements the pflag.Value interface.
func (l *levelValue) String() string {
	return strings.ToLower(l.level.String())
}

// Type implements the pflag.Value interface.
func (l *levelValue) Type() string { return "<level>" }

// Set implements the pflag.Value interface.
func (l *levelValue) Set(v string) error {
	if err := l.level.UnmarshalText([]byte(v)); err != nil {
		return errors.Newf("unknown log level: %q", v)
	}
	return nil
}

// demoConf - Flags of the demo command
type demoConf struct {
	keys       int
	capacity   int64
	polynomial bool
	logLevel   levelValue
}

func newDemoCommand() *cobra.Command {
	conf := &demoConf{logLevel: levelValue{level: slog.LevelInfo}}

	cmd := &cobra.Command{
		Use:   "htdemo",
		Short: "Fills a hash table with key-N/value-N entries and removes them again",
		Long: `Puts --keys entries into a new table, printing count and buckets after each put,
then removes them all in the same order and prints the final table statistics.
Resizes are logged at debug level on stderr.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: conf.logLevel.level}))
			return runDemo(cmd.OutOrStdout(), logger, conf)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&conf.keys, "keys", 50, "number of entries to put and remove")
	flags.Int64Var(&conf.capacity, "capacity", hashtable.DefaultCapacity, "initial capacity of the table")
	flags.BoolVar(&conf.polynomial, "polynomial", false, "use the polynomial hash algorithm instead of xxhash")
	flags.Var(&conf.logLevel, "log-level", "log level, one of debug, info, warn or error")

	return cmd
}

func runDemo(out io.Writer, logger *slog.Logger, conf *demoConf) error {
	tableConf := hashtable.TableConf{Capacity: conf.capacity, Logger: logger}
	if conf.polynomial {
		tableConf.HashAlgorithm = hashtable.NewPolynomialHashAlgorithm(conf.capacity)
	}

	table, err := hashtable.NewTable(tableConf)
	if err != nil {
		return err
	}
	defer table.Destroy()

	for i := 0; i < conf.keys; i++ {
		key := fmt.Sprintf("key-%d", i)
		value := []byte(fmt.Sprintf("value-%d", i))
		if err = table.Put(key, value, int64(len(value))); err != nil {
			return errors.Wrapf(err, "demo put #%d", i)
		}
		fmt.Fprintf(out, "put %s count=%d buckets=%d\n", key, table.Count(), table.Buckets())
	}

	for i := 0; i < conf.keys; i++ {
		key := fmt.Sprintf("key-%d", i)
		if !table.Remove(key) {
			return errors.Newf("demo remove of %s found nothing", key)
		}
		fmt.Fprintf(out, "remove %s count=%d buckets=%d\n", key, table.Count(), table.Buckets())
	}

	stat := table.Stat()
	fmt.Fprintf(out, "buckets=%d capacity=%d occupied=%d tombstones=%d empty=%d load=%.2f\n",
		stat.Buckets, stat.Capacity, stat.Occupied, stat.Tombstones, stat.Empty, stat.LoadFactor)

	return nil
}

func main() {
	if err := newDemoCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
