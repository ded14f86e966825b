package cli

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/willibrandon/botlog/configuration"
	"github.com/willibrandon/botlog/core"
)

type emitOptions struct {
	level   string
	fields  []string
	errMsgs []string
}

func newEmitCommand(v *viper.Viper) *cobra.Command {
	opts := &emitOptions{}

	emitCmd := &cobra.Command{
		Use:   "emit <message>",
		Short: "Write one log record to the console",
		Long: `Write one log record through the full formatter chain to the console.

Field values are typed: integers too large for int64 become big numbers and
are printed as strings, like any other big number.

Examples:
  # Informational record with two fields
  botlog emit "Checked positions" --field at=Liquidator#update --field count=3

  # Error record with a stack trace
  botlog emit "Update failed" --level error --error "rpc timeout"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEmit(cmd, v, opts, args)
		},
	}

	emitCmd.Flags().StringVarP(&opts.level, "level", "l", "info", "Record level (verbose/debug/info/warn/error/fatal)")
	emitCmd.Flags().StringArrayVarP(&opts.fields, "field", "f", nil, "Extra field as key=value (repeatable)")
	emitCmd.Flags().StringArrayVarP(&opts.errMsgs, "error", "e", nil, "Attach an error with this message (repeatable)")
	return emitCmd
}

func runEmit(cmd *cobra.Command, v *viper.Viper, opts *emitOptions, args []string) error {
	level, err := core.ParseLevel(opts.level)
	if err != nil {
		return fmt.Errorf("invalid --level: %w", err)
	}

	keysAndValues := make([]any, 0, 2*len(opts.fields)+2)
	for _, field := range opts.fields {
		key, value, ok := strings.Cut(field, "=")
		if !ok || key == "" {
			return fmt.Errorf("invalid --field %q: expected key=value", field)
		}
		keysAndValues = append(keysAndValues, key, parseFieldValue(value))
	}
	switch len(opts.errMsgs) {
	case 0:
	case 1:
		keysAndValues = append(keysAndValues, "error", errors.New(opts.errMsgs[0]))
	default:
		errs := make([]error, len(opts.errMsgs))
		for i, msg := range opts.errMsgs {
			errs[i] = errors.New(msg)
		}
		keysAndValues = append(keysAndValues, "error", errs)
	}

	cfg, err := configuration.FromViper(v)
	if err != nil {
		return err
	}
	cfg.Output = cmd.OutOrStdout()

	logger, err := configuration.Build(cfg)
	if err != nil {
		return err
	}
	logger.Write(level, strings.Join(args, " "), keysAndValues...)
	return logger.Close()
}

// parseFieldValue turns s into an int64, a *big.Int, a float64 or a bool
// when it parses as one, and leaves it a string otherwise.
func parseFieldValue(s string) any {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if n, ok := new(big.Int).SetString(s, 10); ok {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return s
}
