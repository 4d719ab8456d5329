// Package cmd provides the axname command-line interface.
//
// Configuration System:
//
//	Settings come from several sources with clear precedence:
//	1. Command-line flags (--output, --rules, ...) - highest priority
//	2. Individual environment variables (AXNAME_AUDIT_RULES, ...)
//	3. The configuration file: --config, else AXNAME_CONFIG_FILE, else
//	   .axname.yml in the working directory
//	4. Built-in defaults - lowest priority
//
// Environment Variables:
//
//	AXNAME_CONFIG_FILE: Path to a custom configuration file
//	AXNAME_LOGGING_LEVEL: Override the log level
//	AXNAME_WATCH_DEBOUNCE: Override the watch debounce, e.g. 500ms
//	And every other key following the AXNAME_<SECTION>_<KEY> pattern
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/conneroisu/axname/internal/accessibility"
	"github.com/conneroisu/axname/internal/config"
	"github.com/conneroisu/axname/internal/logging"
)

var cfgFile string

// Populated by PersistentPreRunE for the running command.
var (
	appConfig  *config.Config
	appLogger  logging.Logger
	fileLogger *logging.FileLogger
)

// configBindings maps flags of each command to configuration keys.
var configBindings = map[string]map[string]string{
	"axname": {
		"log-level":  "logging.level",
		"log-format": "logging.format",
		"log-dir":    "logging.dir",
	},
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "axname",
	Short: "Compute accessible roles, names and descriptions of HTML",
	Long: `axname computes what assistive technology sees in an HTML document:
the ARIA role, accessible name and accessible description of every element,
and whether it is hidden or focusable.

Commands:
  axname inspect page.html              Print the accessibility tree
  axname query page.html --role button  Find elements by role and name
  axname audit site/                    Check pages against accessibility rules
  axname watch site/                    Re-inspect pages as they change

Use "-" as a file name to read from standard input.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupCommand,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return ExecuteContext(context.Background())
}

// ExecuteContext runs the CLI with ctx as the command context.
func ExecuteContext(ctx context.Context) error {
	defer closeLogs()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .axname.yml, can also use AXNAME_CONFIG_FILE env var)")
	rootCmd.PersistentFlags().StringP("log-level", "l", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "log format (text, json)")
	rootCmd.PersistentFlags().String("log-dir", "", "also write logs to a dated file in this directory")

	AddFlagValidation(rootCmd.PersistentFlags(), "log-level", func(level string) error {
		return ValidateFormatWithSuggestion(level, config.LogLevels)
	})
	AddFlagValidation(rootCmd.PersistentFlags(), "log-format", func(format string) error {
		return ValidateFormatWithSuggestion(format, config.LogFormats)
	})
}

// initConfig points viper at the configuration file and environment.
func initConfig() {
	v := viper.GetViper()
	config.SetDefaults(v)
	config.BindEnv(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv("AXNAME_CONFIG_FILE"); envConfigFile != "" {
		v.SetConfigFile(envConfigFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".axname")
	}
}

// setupCommand binds the running command's flags, loads the configuration
// and builds the logger.
func setupCommand(cmd *cobra.Command, _ []string) error {
	v := viper.GetViper()

	if err := v.ReadInConfig(); err != nil {
		// A missing default file is normal; an explicit file must exist.
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return fmt.Errorf("reading config %s: %w", v.ConfigFileUsed(), err)
		}
	}

	if err := bindFlags(v, cmd.Root().PersistentFlags(), configBindings[cmd.Root().Name()]); err != nil {
		return err
	}
	if err := bindFlags(v, cmd.Flags(), configBindings[cmd.Name()]); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	appConfig = cfg

	logger, err := newLogger(cmd, cfg.Logging)
	if err != nil {
		return err
	}
	appLogger = logger.WithComponent(cmd.Name())

	if used := v.ConfigFileUsed(); used != "" {
		appLogger.Debug(cmd.Context(), "Using config file", "path", used)
	}

	return nil
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet, bindings map[string]string) error {
	for flagName, key := range bindings {
		flag := flags.Lookup(flagName)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("binding --%s: %w", flagName, err)
		}
	}
	return nil
}

func newLogger(cmd *cobra.Command, cfg config.LoggingConfig) (logging.Logger, error) {
	level, err := logging.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	loggerConfig := &logging.LoggerConfig{
		Level:  level,
		Format: cfg.Format,
		Output: cmd.ErrOrStderr(),
	}
	console := logging.NewLogger(loggerConfig)
	if cfg.Dir == "" {
		return console, nil
	}

	closeLogs()
	fl, err := logging.NewFileLogger(loggerConfig, cfg.Dir)
	if err != nil {
		return nil, err
	}
	fileLogger = fl
	return logging.NewMultiLogger(console, fl), nil
}

func closeLogs() {
	if fileLogger != nil {
		_ = fileLogger.Close()
		fileLogger = nil
	}
}

func newInspector() *accessibility.Inspector {
	return accessibility.NewInspector(appLogger, nil)
}
