// Package cli implements the vinfo command: a reporting tool that
// inspects the topological structure of a vector map.
package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/beetlebugorg/vectopo/pkg/vectopo"
)

// columnsDefault is what the bare --columns flag parses to: report
// the first attribute layer.
const columnsDefault = "."

// options is the parsed and validated flag state for one invocation.
type options struct {
	region   bool
	topology bool
	columns  bool
	level1   bool
	layer    string
	table    string

	precision int
	verbose   bool
}

// NewRootCmd builds the vinfo command.
//
// Report selection flags are independent; with none given the full
// report is printed. Sections always come out in the fixed order
// region, topology, columns.
func NewRootCmd() *cobra.Command {
	var (
		region     bool
		topology   bool
		columnsArg string
		all        bool
		level1     bool
		precision  int
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "vinfo <map>",
		Short: "Report the topological structure of a vector map",
		Long: `vinfo prints a structured report on a vector map: its bounding
region, topology counts with consistency findings, and attribute
column schema. With no selection flags the full report is printed.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return &ErrInvalidOption{Reason: "exactly one map argument is required"}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := viper.New()
			v.SetEnvPrefix("VINFO")
			v.AutomaticEnv()
			if err := v.BindPFlag("precision", cmd.Flags().Lookup("precision")); err != nil {
				return err
			}

			opts, err := parseOptions(region, topology, columnsArg, all, level1)
			if err != nil {
				return err
			}
			opts.precision = v.GetInt("precision")
			opts.verbose = verbose

			return run(cmd, args[0], opts)
		},
	}

	// Flag-parse failures are option errors, not open failures.
	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &ErrInvalidOption{Reason: err.Error()}
	})

	flags := cmd.Flags()
	flags.BoolVar(&region, "region", false, "print the bounding region")
	flags.BoolVar(&topology, "topology", false, "print topology counts and consistency findings")
	flags.StringVar(&columnsArg, "columns", "", "print attribute columns of layer[.table]")
	flags.Lookup("columns").NoOptDefVal = columnsDefault
	flags.BoolVar(&all, "all", false, "print every section (the default)")
	flags.BoolVar(&level1, "level1", false, "print the reduced level 1 report (region and columns)")
	flags.IntVar(&precision, "precision", vectopo.DefaultPrecision, "decimal precision for coordinates (env VINFO_PRECISION)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

// parseOptions validates the flag combination and resolves the
// columns selector. A combination that leaves nothing to report is an
// option error.
func parseOptions(region, topology bool, columnsArg string, all, level1 bool) (options, error) {
	opts := options{
		region:   region,
		topology: topology,
		columns:  columnsArg != "",
		level1:   level1,
	}

	if level1 && topology {
		return options{}, &ErrInvalidOption{
			Reason: "--level1 excludes the topology section, --topology requires it",
		}
	}
	if level1 && all {
		return options{}, &ErrInvalidOption{
			Reason: "--level1 prints a reduced report, --all the full one",
		}
	}
	if all {
		opts.region, opts.topology, opts.columns = false, false, false
		if columnsArg == "" {
			columnsArg = columnsDefault
		}
	}

	if opts.columns || all || level1 {
		layer, table, err := parseColumnsSelector(columnsArg)
		if err != nil {
			return options{}, err
		}
		opts.layer, opts.table = layer, table
	}

	return opts, nil
}

// parseColumnsSelector splits a layer[.table] selector. The bare-flag
// sentinel and the empty selector both mean the first layer.
func parseColumnsSelector(arg string) (layer, table string, err error) {
	if arg == "" || arg == columnsDefault {
		return "", "", nil
	}
	layer, table, _ = strings.Cut(arg, ".")
	if layer == "" {
		return "", "", &ErrInvalidOption{
			Reason: "columns selector " + arg + " has no layer",
		}
	}
	return layer, table, nil
}

// run opens the map and dispatches the selected reports.
func run(cmd *cobra.Command, path string, opts options) error {
	logger := newLogger(opts.verbose)
	defer logger.Sync()

	m, err := vectopo.Open(path)
	if err != nil {
		return err
	}
	logger.Debug("opened map",
		zap.String("path", path),
		zap.String("name", m.Name()),
		zap.Stringer("support", m.SupportLevel()),
	)

	report := vectopo.ReportOptions{
		Region:    opts.region,
		Topology:  opts.topology,
		Columns:   opts.columns,
		Layer:     opts.layer,
		Table:     opts.table,
		Precision: opts.precision,
	}

	if opts.level1 {
		return m.LevelOneInfo(cmd.OutOrStdout(), report)
	}
	return m.Report(cmd.OutOrStdout(), report)
}

// newLogger builds the CLI logger: errors only by default, debug
// tracing with --verbose. Always to stderr so report output stays
// clean.
func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	if verbose {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
