package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/slotcheck/internal/config"
	"github.com/javiermolinar/slotcheck/internal/conflict"
	"github.com/javiermolinar/slotcheck/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	var show bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Interactive configuration management.

If no config file exists, creates one with default values.
Otherwise, displays current config and allows editing.`,
		Example: `  slotcheck config
  slotcheck config --show`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := a.configPath
			if path == "" {
				path = config.DefaultConfigPath()
			}
			if show {
				printConfig(cmd.OutOrStdout(), a.config)
				return nil
			}
			return runConfigInteractive(cmd.InOrStdin(), cmd.OutOrStdout(), path)
		},
	}

	cmd.Flags().BoolVar(&show, "show", false, "Print the effective configuration and exit")
	return cmd
}

func runConfigInteractive(in io.Reader, out io.Writer, configPath string) error {
	fmt.Fprintf(out, "Config file: %s\n\n", configPath)

	// Load existing config or create defaults
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	_, fileErr := os.Stat(configPath)
	if os.IsNotExist(fileErr) {
		fmt.Fprintln(out, "No config file found. Creating with default values...")
		if err := cfg.SaveTo(configPath); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Fprintf(out, "Created %s\n\n", configPath)
	}

	printConfig(out, cfg)

	reader := bufio.NewReader(in)
	if !promptYesNo(reader, out, "\nWould you like to edit the configuration?") {
		return nil
	}

	cfg.Schedule.DayStart = promptValue(reader, out, "Day start", cfg.Schedule.DayStart)
	cfg.Schedule.DayEnd = promptValue(reader, out, "Day end", cfg.Schedule.DayEnd)
	cfg.Detect.Mode = promptChoice(reader, out, "Detection mode", cfg.Detect.Mode,
		[]string{string(conflict.ModeAdjacent), string(conflict.ModeSweep)})
	cfg.Storage.Backend = promptChoice(reader, out, "Storage backend", cfg.Storage.Backend,
		[]string{config.BackendMemory, config.BackendSQLite})
	cfg.UI.Theme = promptChoice(reader, out, "UI theme", cfg.UI.Theme, theme.Available())
	cfg.Log.Level = promptValue(reader, out, "Log level", cfg.Log.Level)
	cfg.Log.Path = promptValue(reader, out, "Log path", cfg.Log.Path)

	// Validate before saving
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := cfg.SaveTo(configPath); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintln(out, "\nConfiguration saved!")
	return nil
}

func printConfig(w io.Writer, cfg *config.Config) {
	fmt.Fprintln(w, "Current configuration:")
	fmt.Fprintln(w, "──────────────────────")
	fmt.Fprintln(w, "[schedule]")
	fmt.Fprintf(w, "  day_start = %s\n", cfg.Schedule.DayStart)
	fmt.Fprintf(w, "  day_end   = %s\n", cfg.Schedule.DayEnd)
	fmt.Fprintln(w, "\n[detect]")
	fmt.Fprintf(w, "  mode      = %s\n", cfg.Detect.Mode)
	fmt.Fprintln(w, "\n[storage]")
	fmt.Fprintf(w, "  backend   = %s\n", cfg.Storage.Backend)
	fmt.Fprintln(w, "\n[ui]")
	fmt.Fprintf(w, "  theme     = %s\n", cfg.UI.Theme)
	fmt.Fprintln(w, "\n[log]")
	fmt.Fprintf(w, "  level     = %s\n", cfg.Log.Level)
	fmt.Fprintf(w, "  path      = %s\n", cfg.Log.Path)
}

func promptYesNo(reader *bufio.Reader, w io.Writer, question string) bool {
	fmt.Fprintf(w, "%s [y/N]: ", question)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

func promptValue(reader *bufio.Reader, w io.Writer, label, current string) string {
	if current == "" {
		fmt.Fprintf(w, "  %s: ", label)
	} else {
		fmt.Fprintf(w, "  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

// promptChoice asks until the answer is one of options. EOF keeps current.
func promptChoice(reader *bufio.Reader, w io.Writer, label, current string, options []string) string {
	joined := strings.Join(options, ", ")
	full := fmt.Sprintf("%s (%s)", label, joined)
	for {
		value := strings.ToLower(promptValue(reader, w, full, current))
		for _, opt := range options {
			if value == opt {
				return value
			}
		}
		fmt.Fprintf(w, "  Invalid value %q. Available: %s\n", value, joined)
		if _, err := reader.Peek(1); err != nil {
			return current
		}
	}
}
