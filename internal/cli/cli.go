// Package cli wires the syngraph commands to the msog pipelines.
//
// Usage:
//
//	syngraph [flags] mso   <input_file> <output_file>
//	syngraph [flags] mso_p <input_file> <output_file> [max_paralog]
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/olehluchkiv/syngraph/internal/config"
	"github.com/olehluchkiv/syngraph/internal/logging"
	"github.com/olehluchkiv/syngraph/internal/msog"
)

// ErrArgs marks a wrong argument count or an argument of the wrong type.
var ErrArgs = errors.New("argument mismatch")

// Command enumerates the operations syngraph can run.
type Command int

const (
	CommandMSO Command = iota
	CommandMSOP
)

// Commands lists every Command in help order.
var Commands = []Command{CommandMSO, CommandMSOP}

func (c Command) String() string {
	switch c {
	case CommandMSO:
		return "mso"
	case CommandMSOP:
		return "mso_p"
	default:
		return fmt.Sprintf("Command(%d)", int(c))
	}
}

// runFunc executes one command once arguments and logging are resolved.
type runFunc func(ctx context.Context, inv *invocation, args []string) (msog.Result, error)

// commandDef describes how a Command is exposed on the command line.
type commandDef struct {
	short   string
	long    string
	minArgs int
	maxArgs int
	run     runFunc
}

var commandDefs = map[Command]commandDef{
	CommandMSO: {
		short:   "Group genes co-occurring on any row (labels Group1, Group2, ...)",
		long:    "Every whitespace-separated token of a row is a gene. All genes of a row are\nlinked, and each connected component is written as one Group<N> line.",
		minArgs: 2,
		maxArgs: 2,
		run:     runMSO,
	},
	CommandMSOP: {
		short: "Group genes after dropping paralog-rich rows (labels MS1, MS2, ...)",
		long: "The first token of a row is a block label; the rest are genes. A row is\n" +
			"dropped when any species (first two '_'-separated fields of a gene) has more\n" +
			"than max_paralog genes on it. max_paralog defaults to 2.",
		minArgs: 2,
		maxArgs: 3,
		run:     runMSOP,
	},
}

// options holds flag values shared by all commands.
type options struct {
	configFile string
	logLevel   string
	logFile    string
	maxParalog int
}

// invocation is the resolved state for one command run.
type invocation struct {
	cmd    *cobra.Command
	opts   *options
	cfg    config.Config
	logger *slog.Logger
}

// NewRootCmd builds the syngraph command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "syngraph",
		Short: "Multi-syntenic ortholog grouping",
		Long: `syngraph - group genes into multi-syntenic ortholog groups.

Each input row lists genes found together in a syntenic block. All genes of a
row are linked, and every connected component of the resulting graph is
written as one tab-separated output line with its genes sorted.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return fmt.Errorf("%w: a command is required (mso or mso_p)", ErrArgs)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configFile, "config", "", "YAML config file (max_paralog, log_level, log_file)")
	pf.StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.StringVar(&opts.logFile, "log-file", "", "also append logs to this file")

	for _, c := range Commands {
		root.AddCommand(newCommand(c, opts))
	}
	return root
}

func newCommand(c Command, opts *options) *cobra.Command {
	s := commandDefs[c]
	use := c.String() + " <input_file> <output_file>"
	if s.maxArgs > s.minArgs {
		use += " [max_paralog]"
	}

	cmd := &cobra.Command{
		Use:   use,
		Short: s.short,
		Long:  s.long,
		Args:  rangeArgs(c, s.minArgs, s.maxArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, cleanup, err := newInvocation(cmd, c, opts)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := s.run(cmd.Context(), inv, args)
			if err != nil {
				inv.logger.Error("command failed", "error", err)
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d groups to %s\n", res.Components, args[1])
			return nil
		},
	}
	if c == CommandMSOP {
		cmd.Flags().IntVar(&opts.maxParalog, "max-paralog", 0, "maximum genes per species on a row (default from config, else 2)")
	}
	return cmd
}

func rangeArgs(c Command, lo, hi int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < lo || len(args) > hi {
			if lo == hi {
				return fmt.Errorf("%w: %s takes %d arguments, got %d", ErrArgs, c, lo, len(args))
			}
			return fmt.Errorf("%w: %s takes %d to %d arguments, got %d", ErrArgs, c, lo, hi, len(args))
		}
		return nil
	}
}

func newInvocation(cmd *cobra.Command, c Command, opts *options) (*invocation, func(), error) {
	cfg := config.Default()
	if opts.configFile != "" {
		loaded, err := config.Load(opts.configFile)
		if err != nil {
			return nil, nil, err
		}
		cfg = loaded
	}

	levelName := cfg.LogLevel
	if opts.logLevel != "" {
		levelName = opts.logLevel
	}
	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return nil, nil, err
	}
	logFile := cfg.LogFile
	if opts.logFile != "" {
		logFile = opts.logFile
	}

	logger, cleanup, err := logging.Setup(cmd.ErrOrStderr(), logFile, level)
	if err != nil {
		return nil, nil, fmt.Errorf("setting up logging: %w", err)
	}
	logger = logger.With("run_id", uuid.NewString(), "command", c.String())

	return &invocation{cmd: cmd, opts: opts, cfg: cfg, logger: logger}, cleanup, nil
}

func runMSO(ctx context.Context, inv *invocation, args []string) (msog.Result, error) {
	return msog.MSO(ctx, args[0], args[1], inv.logger)
}

func runMSOP(ctx context.Context, inv *invocation, args []string) (msog.Result, error) {
	maxParalog, err := resolveMaxParalog(inv, args)
	if err != nil {
		return msog.Result{}, err
	}
	return msog.MSOP(ctx, args[0], args[1], maxParalog, inv.logger)
}

// resolveMaxParalog picks the threshold from the positional argument, then the
// --max-paralog flag, then the config file.
func resolveMaxParalog(inv *invocation, args []string) (int, error) {
	if len(args) > 2 {
		n, err := strconv.Atoi(args[2])
		if err != nil {
			return 0, fmt.Errorf("%w: max_paralog must be an integer, got %q", ErrArgs, args[2])
		}
		return n, nil
	}
	if inv.cmd.Flags().Changed("max-paralog") {
		return inv.opts.maxParalog, nil
	}
	return inv.cfg.MaxParalog, nil
}

// Execute runs the command line in args and returns the process exit status.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
