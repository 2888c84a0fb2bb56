package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/grindlemire/go-pin"
	"github.com/grindlemire/go-pin/internal/logging"
)

const version = "0.1.0"

// settings is the decoded configuration.
type settings struct {
	Pin    pin.Config     `mapstructure:"pin"`
	Logger logging.Config `mapstructure:"logger"`
}

type app struct {
	v        *viper.Viper
	cfgFile  string
	settings settings
	logger   *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), logger: zap.NewNop()}

	root := &cobra.Command{
		Use:               "pin",
		Short:             "Pin page elements while scrolling",
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.initialize,
		PersistentPostRun: func(*cobra.Command, []string) { _ = a.logger.Sync() },
	}
	root.SetVersionTemplate("pin version {{.Version}}\n")

	defaults := pin.DefaultConfig()
	logDefaults := logging.DefaultConfig()
	f := root.PersistentFlags()
	f.StringVarP(&a.cfgFile, "config", "c", "", "config file (default is ./pin.yaml)")
	f.String("class-name", defaults.ClassName, "class added to pinned elements")
	f.Bool("contain", defaults.Contain, "keep pinned elements inside their parent")
	f.Bool("hard", defaults.Hard, "pin elements at their initial position")
	f.Float64("top-spacing", defaults.TopSpacing, "distance from the viewport top at which elements pin")
	f.Float64("bottom-spacing", defaults.BottomSpacing, "space kept above the container bottom")
	f.Int("z-index", defaults.ZIndex, "z-index applied while pinned")
	f.Bool("reserve-space", defaults.ReserveSpace, "keep a hidden copy in place of pinned elements")
	f.String("log-level", logDefaults.Level, "log level (debug, info, warn, error)")
	f.String("log-format", logDefaults.Format, "log format (console, json)")
	f.String("log-file", "", "also write JSON logs to this file")

	bindings := map[string]string{
		"pin.class_name":     "class-name",
		"pin.contain":        "contain",
		"pin.hard":           "hard",
		"pin.top_spacing":    "top-spacing",
		"pin.bottom_spacing": "bottom-spacing",
		"pin.z_index":        "z-index",
		"pin.reserve_space":  "reserve-space",
		"logger.level":       "log-level",
		"logger.format":      "log-format",
		"logger.file":        "log-file",
	}
	for key, flag := range bindings {
		_ = a.v.BindPFlag(key, f.Lookup(flag))
	}
	a.v.SetDefault("logger.max_size", logDefaults.MaxSize)
	a.v.SetDefault("logger.max_backups", logDefaults.MaxBackups)

	root.AddCommand(newSimulateCmd(a), newBrowseCmd(a), newVersionCmd())
	return root
}

// initialize reads the config file and environment, then builds the logger.
func (a *app) initialize(cmd *cobra.Command, _ []string) error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		a.v.AddConfigPath(".")
		a.v.SetConfigName("pin")
		a.v.SetConfigType("yaml")
	}
	a.v.SetEnvPrefix("PIN")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || a.cfgFile != "" {
			return fmt.Errorf("read config: %w", err)
		}
	}

	if err := a.v.Unmarshal(&a.settings); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}

	logger, err := logging.New(a.settings.Logger, zapcore.Lock(zapcore.AddSync(os.Stderr)))
	if err != nil {
		return err
	}
	a.logger = logger.Named(cmd.Name())
	return nil
}

// pinOptions returns the manager options for the decoded configuration.
// Callbacks are appended by the caller.
func (a *app) pinOptions() []pin.Option {
	return []pin.Option{
		pin.WithConfig(a.settings.Pin),
		pin.WithLogger(a.logger),
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "pin version %s\n", version)
		},
	}
}
