package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

var (
	// Global flags
	verbose    bool
	quiet      bool
	jsonOut    bool
	configFile string

	// Set by the persistent pre-run hook.
	cfg    = defaultConfig()
	logger = slog.New(slog.DiscardHandler)
)

var rootCmd = &cobra.Command{
	Use:   "lnkctl [file]",
	Short: "Inspect Windows shell link (.lnk) files",
	Long: `lnkctl decodes Windows shell link (.lnk) files and prints the stored
target information: description, paths, arguments, icon, window state,
hot key, volume and network share details, and the resolved target path.

With a file argument it behaves like "lnkctl info <file>". Without one it
prints this usage note.

Example:
  lnkctl Notepad.lnk
  lnkctl Notepad.lnk --output yaml
  lnkctl resolve Notepad.lnk`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd.Root().PersistentFlags())
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			fmt.Fprint(os.Stdout, cmd.UsageString())
			return nil
		}
		return runInfo(args)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output and debug logging")
	flags.BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	flags.BoolVar(&jsonOut, "json", false, "Output in JSON format (same as --output json)")
	flags.StringVar(&configFile, "config", "", "Config file (default: lnkctl.yaml in ., $HOME/.lnkctl, /etc/lnkctl)")
	// Read back through viper, see loadConfig.
	flags.String("codepage", "", "Code page for legacy path strings, e.g. 1252, 932, shift_jis")
	flags.StringP("output", "o", outputText, "Output format: text, json or yaml")
	flags.Bool("mmap", false, "Read the file through a memory mapping")
	flags.Bool("resolve", true, "Resolve the target path against the local filesystem")
	flags.String("log-file", "", "Write JSON logs to this file")
}

func execute() {
	err := rootCmd.Execute()
	_ = closeLog()
	if err != nil {
		printError("%v\n", err)
		os.Exit(1)
	}
}

// setup loads configuration and builds the logger for this invocation.
func setup(flags *pflag.FlagSet) error {
	c, err := loadConfig(configFile, flags)
	if err != nil {
		return err
	}
	if jsonOut {
		c.Output = outputJSON
	}
	l, err := newLogger(c.LogFile, verbose)
	if err != nil {
		return err
	}
	cfg, logger = c, l
	return nil
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// printYAML outputs data as YAML
func printYAML(v any) error {
	encoder := yaml.NewEncoder(os.Stdout)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return err
	}
	return encoder.Close()
}

// printStructured writes v in the configured machine-readable format. It
// reports false for text output.
func printStructured(v any) (bool, error) {
	switch cfg.Output {
	case outputJSON:
		return true, printJSON(v)
	case outputYAML:
		return true, printYAML(v)
	default:
		return false, nil
	}
}
