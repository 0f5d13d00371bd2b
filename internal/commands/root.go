package commands

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ledgerkit/ing2qif/internal/buildinfo"
	"github.com/ledgerkit/ing2qif/internal/config"
	"github.com/ledgerkit/ing2qif/internal/convert"
	"github.com/ledgerkit/ing2qif/internal/importer"
)

// EnvPrefix prefixes the environment variables that override flags.
const EnvPrefix = "ING2QIF"

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:   "ing2qif [file]",
		Short: "Convert ING bank CSV exports to QIF",
		Long: `Convert ING bank CSV exports to QIF.

Run with a file path (or drop a file on the binary) to convert it in one
step; this is the same as "ing2qif convert <file>".`,
		Version: buildinfo.String(),
		Args:    cobra.MaximumNArgs(1),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runConvert(cmd, v, args[0])
		},
	}

	rootCmd.PersistentFlags().String("config", "", "config file (default ./"+config.DefaultFile+" when present)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")
	addConvertFlags(rootCmd)

	rootCmd.AddCommand(newConvertCommand(v))
	rootCmd.AddCommand(newPreviewCommand(v))
	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}

// bindFlags makes every flag of fs readable through v, with env overrides.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	if err := v.BindPFlags(fs); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}
	return nil
}

func newLogger(cmd *cobra.Command, v *viper.Viper) (*log.Logger, error) {
	level, err := log.ParseLevel(v.GetString("log-level"))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", v.GetString("log-level"), err)
	}
	return log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		ReportTimestamp: true,
		Prefix:          "ing2qif",
		Level:           level,
	}), nil
}

// newService resolves the config and input overrides shared by convert and
// preview, and builds the conversion service.
func newService(cmd *cobra.Command, v *viper.Viper) (*convert.Service, *log.Logger, error) {
	if err := bindFlags(v, cmd.Flags()); err != nil {
		return nil, nil, err
	}
	logger, err := newLogger(cmd, v)
	if err != nil {
		return nil, nil, err
	}

	cfg, err := config.Resolve(v.GetString("config"))
	if err != nil {
		return nil, nil, err
	}
	if enc := v.GetString("encoding"); enc != "" {
		cfg.Input.Encoding = enc
	}
	if delim := v.GetString("delimiter"); delim != "" {
		cfg.Input.Delimiter = delim
	}
	if _, err := cfg.Comma(); err != nil {
		return nil, nil, err
	}
	logger.Debug("config", "format", cfg.Format, "encoding", cfg.Input.Encoding, "delimiter", cfg.Input.Delimiter)

	return convert.NewService(cfg, importer.DefaultRegistry(), logger), logger, nil
}
