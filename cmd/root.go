package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mmuldo/pigmix/pigment"
)

// NewRootCmd builds the pigmix command tree. Settings come from flags,
// then PIGMIX_* environment variables, then the config file.
func NewRootCmd() *cobra.Command {
	var (
		cfgFile  string
		logLevel string
	)
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "pigmix",
		Short: "Mixes colors like paint",
		Long: `pigmix mixes colors the way pigments mix rather than the way light does,
so blue and yellow give green instead of gray.

Colors can be given as hex (#002185), rgb(0, 33, 133), CSS names or the
names of reference paints such as "cobalt blue".`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if e := initConfig(v, cfgFile); e != nil {
				return e
			}
			if e := fromConfig(v, cmd.Flags()); e != nil {
				return e
			}
			if e := initLogger(cmd, v, logLevel); e != nil {
				return e
			}
			_, e := pigment.DefaultLUT()
			return e
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.pigmix.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log to stderr at this level (debug, info, warn, error)")

	rootCmd.AddCommand(
		newMixCmd(),
		newGradientCmd(),
		newPaletteCmd(),
		newChartCmd(),
		newPigmentsCmd(),
		newLatentCmd(),
	)
	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if e := NewRootCmd().Execute(); e != nil {
		os.Exit(1)
	}
}

func initConfig(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, e := homedir.Dir()
		if e != nil {
			return e
		}
		v.AddConfigPath(home)
		v.SetConfigName(".pigmix")
	}

	v.SetEnvPrefix("pigmix")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if e := v.ReadInConfig(); e != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(e, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config: %w", e)
	}
	return nil
}

// fromConfig fills every flag the user did not set on the command line
// from v.
func fromConfig(v *viper.Viper, flags *pflag.FlagSet) error {
	var e error
	flags.VisitAll(func(f *pflag.Flag) {
		if e != nil || f.Changed || f.Name == "config" || !v.IsSet(f.Name) {
			return
		}

		val := v.GetString(f.Name)
		if strings.HasSuffix(f.Value.Type(), "Slice") {
			val = strings.Join(v.GetStringSlice(f.Name), ",")
		}
		if err := f.Value.Set(val); err != nil {
			e = fmt.Errorf("config key %s: %w", f.Name, err)
		}
	})
	return e
}

func initLogger(cmd *cobra.Command, v *viper.Viper, level string) error {
	if level == "" {
		pigment.SetLogger(nil)
		return nil
	}

	var lvl slog.Level
	if e := lvl.UnmarshalText([]byte(level)); e != nil {
		return fmt.Errorf("log level: %w", e)
	}

	l := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl}))
	pigment.SetLogger(l)
	if f := v.ConfigFileUsed(); f != "" {
		l.Debug("using config file", "path", f)
	}
	return nil
}

// output returns a termenv output for cmd, degrading to plain text when
// stdout is not a terminal.
func output(cmd *cobra.Command) *termenv.Output {
	return termenv.NewOutput(cmd.OutOrStdout())
}

// swatch renders a small block of c.
func swatch(o *termenv.Output, c pigment.Color) string {
	return o.String("    ").Background(o.FromColor(c.NRGBA())).String()
}

func parseColors(args []string) ([]pigment.Color, error) {
	cs := make([]pigment.Color, len(args))
	for i, a := range args {
		c, e := pigment.ParseColor(a)
		if e != nil {
			return nil, e
		}
		cs[i] = c
	}
	return cs, nil
}
