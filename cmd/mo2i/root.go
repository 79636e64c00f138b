package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/DonovanMods/mo2-inspect/internal/core"
	"github.com/DonovanMods/mo2-inspect/internal/logging"
	"github.com/DonovanMods/mo2-inspect/internal/storage/config"

	"github.com/spf13/cobra"
)

// ErrNoInstall is returned when neither the flags nor the config name an installation
var ErrNoInstall = errors.New("no Mod Organizer installation specified; use --install-dir or set install_dir in the config file")

var (
	version = "0.3.0"

	// Global flags
	configDir    string
	configFile   string
	dataDir      string
	installDir   string
	instanceName string
	sharedRoot   string
	logLevel     string
	verbose      bool
	jsonOutput   bool
	noColor      bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mo2i",
	Short: "mo2i - read-only inspector for Mod Organizer 2 instances",
	Long: `mo2i reads a Mod Organizer 2 instance (portable or shared) and reports its
load order, mods, categories, plugins and the downloads they were installed from.

It never writes into the instance. Run 'mo2i --help' for available commands.`,
	Version:       version,
	SilenceUsage:  true, // Runtime errors should not print usage
	SilenceErrors: true, // We handle error output in Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "config directory (default: ~/.config/mo2-inspect)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config-file", "", "explicit config file (absolute .yaml path)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "data directory (default: ~/.local/share/mo2-inspect)")
	rootCmd.PersistentFlags().StringVarP(&installDir, "install-dir", "i", "", "Mod Organizer installation directory")
	rootCmd.PersistentFlags().StringVarP(&instanceName, "instance", "n", "", "shared instance name (empty: portable instance)")
	rootCmd.PersistentFlags().StringVar(&sharedRoot, "shared-root", "", "directory holding shared instances (default: $LOCALAPPDATA)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format (status, list, mod, categories, downloads, snapshot)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// colorEnabled returns true if colored output should be used (respects --no-color and NO_COLOR env).
// NO_COLOR: if set (any value), color is disabled per https://no-color.org
func colorEnabled() bool {
	if noColor {
		return false
	}
	return os.Getenv("NO_COLOR") == ""
}

const (
	ansiReset  = "\033[0m"
	ansiGreen  = "\033[32m"
	ansiRed    = "\033[31m"
	ansiYellow = "\033[33m"
)

func colorize(color, s string) string {
	if !colorEnabled() {
		return s
	}
	return color + s + ansiReset
}

func colorGreen(s string) string  { return colorize(ansiGreen, s) }
func colorRed(s string) string    { return colorize(ansiRed, s) }
func colorYellow(s string) string { return colorize(ansiYellow, s) }

// Execute runs the root command. Exit codes: 0 = success, 1 = error.
// When --json is set and an error occurs, prints {"error":"..."} to stdout before exiting.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if jsonOutput {
			fmt.Printf(`{"error":%q}`+"\n", err.Error())
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// resolveConfigDir returns the config directory, defaulting to ~/.config/mo2-inspect
func resolveConfigDir() (string, error) {
	if configDir != "" {
		return configDir, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "mo2-inspect"), nil
}

// resolveDataDir returns the data directory, defaulting to ~/.local/share/mo2-inspect
func resolveDataDir() (string, error) {
	if dataDir != "" {
		return dataDir, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home directory: %w", err)
	}
	return filepath.Join(homeDir, ".local", "share", "mo2-inspect"), nil
}

// loadConfig reads --config-file when given, otherwise config.yaml from the
// config directory. Flags override the file.
func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if configFile != "" {
		path, perr := config.ParseConfigPath(configFile)
		if perr != nil {
			return nil, perr
		}
		cfg, err = config.LoadFile(path)
	} else {
		dir, derr := resolveConfigDir()
		if derr != nil {
			return nil, derr
		}
		cfg, err = config.Load(dir)
	}
	if err != nil {
		return nil, err
	}

	if installDir != "" {
		cfg.InstallDir = installDir
	}
	if instanceName != "" {
		cfg.InstanceName = instanceName
	}
	if sharedRoot != "" {
		cfg.SharedDataRoot = sharedRoot
	}
	if cfg.SharedDataRoot == "" {
		cfg.SharedDataRoot = os.Getenv("LOCALAPPDATA")
	}
	switch {
	case logLevel != "":
		cfg.LogLevel = logLevel
	case verbose:
		cfg.LogLevel = "debug"
	}

	return cfg, nil
}

// openOrganizer loads the config and opens the instance it names
func openOrganizer(cmd *cobra.Command) (*core.Organizer, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	if cfg.InstallDir == "" {
		return nil, nil, ErrNoInstall
	}

	logger, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}

	org, err := core.New(core.Config{
		InstanceOptions: core.InstanceOptions{
			InstallDir:     cfg.InstallDir,
			InstanceName:   cfg.InstanceName,
			SharedDataRoot: cfg.SharedDataRoot,
		},
		Logger: logger,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("opening instance: %w", err)
	}
	return org, cfg, nil
}
