package main

import (
	"strings"

	"github.com/joeycumines/go-summator"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix = `summator`

	flagExact       = `exact`
	flagMaxDigits   = `max-digits`
	flagMaxLineSize = `max-line-size`
	flagLogLevel    = `log-level`
)

type options struct {
	logLevel    string
	maxDigits   int
	maxLineSize int
	exact       bool
}

func newCommand() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(`-`, `_`))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:   `summator`,
		Short: `Sum alternating lines of integers from stdin`,
		Long: `summator reads one integer per line from stdin, until EOF. Values on even
lines (0-based) are summed separately from values on odd lines, and both sums
are printed divided by 10, separated by a single space.

Any invalid line causes the command to fail, without printing a result.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return execute(cmd, loadOptions(v))
		},
	}

	registerFlags(cmd.Flags())

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		panic(err)
	}

	return cmd
}

func registerFlags(flags *pflag.FlagSet) {
	flags.Bool(flagExact, false, `print exact decimal quotients, instead of float64 quotients`)
	flags.Int(flagMaxDigits, summator.DefaultMaxDigits, `maximum digits per integer, negative to disable`)
	flags.Int(flagMaxLineSize, summator.DefaultMaxLineSize, `maximum line length in bytes`)
	flags.String(flagLogLevel, `disabled`, `log level, one of: `+strings.Join(levelNames(), `, `))
}

func loadOptions(v *viper.Viper) options {
	return options{
		logLevel:    v.GetString(flagLogLevel),
		maxDigits:   v.GetInt(flagMaxDigits),
		maxLineSize: v.GetInt(flagMaxLineSize),
		exact:       v.GetBool(flagExact),
	}
}

func execute(cmd *cobra.Command, opts options) error {
	logger, err := newLogger(cmd.ErrOrStderr(), opts.logLevel)
	if err != nil {
		return err
	}

	mode := summator.ModeFloat
	if opts.exact {
		mode = summator.ModeExact
	}

	logger.Debug().
		Stringer(`mode`, mode).
		Int(`max_digits`, opts.maxDigits).
		Int(`max_line_size`, opts.maxLineSize).
		Log(`starting`)

	result, err := summator.Summarize(cmd.Context(), cmd.InOrStdin(), &summator.Config{
		Logger:      logger,
		MaxDigits:   opts.maxDigits,
		MaxLineSize: opts.maxLineSize,
	})
	if err != nil {
		return err
	}

	b, err := result.AppendText(nil, mode)
	if err != nil {
		logger.Err().
			Err(err).
			Log(`failed to format result`)
		return err
	}
	b = append(b, '\n')

	if _, err := cmd.OutOrStdout().Write(b); err != nil {
		return err
	}

	logger.Info().
		Int(`lines`, result.Lines).
		Log(`wrote result`)

	return nil
}
