package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lancaster-music-hall/boxoffice/internal/config"
	"github.com/lancaster-music-hall/boxoffice/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	var edit bool
	cmd := &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Show the configuration, creating the file with default values if it
does not exist yet. With --edit, prompts for each setting.`,
		Example: `  boxoffice config
  boxoffice config --edit`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfig(cmd.InOrStdin(), cmd.OutOrStdout(), config.DefaultConfigPath(), edit)
		},
	}
	cmd.Flags().BoolVarP(&edit, "edit", "e", false, "Edit the configuration interactively")
	return cmd
}

func runConfig(in io.Reader, out io.Writer, configPath string, edit bool) error {
	fmt.Fprintf(out, "Config file: %s\n\n", configPath)

	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if _, statErr := os.Stat(configPath); os.IsNotExist(statErr) {
		fmt.Fprintln(out, "No config file found. Creating with default values...")
		if err := cfg.SaveTo(configPath); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Fprintf(out, "Created %s\n\n", configPath)
	}

	printConfig(out, cfg)
	if !edit {
		return nil
	}

	reader := bufio.NewReader(in)
	fmt.Fprintln(out)

	cfg.Booking.BaseCost = promptInt(reader, out, "Base cost (£)", cfg.Booking.BaseCost)
	cfg.Booking.PerAttendeeCost = promptInt(reader, out, "Cost per attendee (£)", cfg.Booking.PerAttendeeCost)
	cfg.Booking.MaxAttendees = promptInt(reader, out, "Max attendees", cfg.Booking.MaxAttendees)
	cfg.Booking.DefaultAttendees = promptInt(reader, out, "Default attendees", cfg.Booking.DefaultAttendees)
	cfg.Booking.DefaultPaymentType = promptChoice(reader, out, "Default payment", config.PaymentTypes, cfg.Booking.DefaultPaymentType)
	cfg.Calendar.AnimationDurationMs = promptInt(reader, out, "Slide duration (ms)", cfg.Calendar.AnimationDurationMs)
	cfg.Calendar.AnimationSteps = promptInt(reader, out, "Slide steps", cfg.Calendar.AnimationSteps)
	cfg.Storage.DBPath = promptValue(reader, out, "Database path", cfg.Storage.DBPath)
	cfg.Staff.AuthFile = promptValue(reader, out, "Staff credentials file", cfg.Staff.AuthFile)
	cfg.UI.Theme = promptChoice(reader, out, "UI theme", theme.Available(), cfg.UI.Theme)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if err := cfg.SaveTo(configPath); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintln(out, "\nConfiguration saved!")
	return nil
}

func printConfig(out io.Writer, cfg *config.Config) {
	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintln(out, "──────────────────────")
	fmt.Fprintln(out, "[calendar]")
	fmt.Fprintf(out, "  animation_duration_ms = %d\n", cfg.Calendar.AnimationDurationMs)
	fmt.Fprintf(out, "  animation_steps       = %d\n", cfg.Calendar.AnimationSteps)
	fmt.Fprintf(out, "  hover_debounce_ms     = %d\n", cfg.Calendar.HoverDebounceMs)
	fmt.Fprintf(out, "  year_window_before    = %d\n", cfg.Calendar.YearWindowBefore)
	fmt.Fprintf(out, "  year_window_after     = %d\n", cfg.Calendar.YearWindowAfter)
	fmt.Fprintln(out, "\n[booking]")
	fmt.Fprintf(out, "  base_cost             = %d\n", cfg.Booking.BaseCost)
	fmt.Fprintf(out, "  per_attendee_cost     = %d\n", cfg.Booking.PerAttendeeCost)
	fmt.Fprintf(out, "  default_attendees     = %d\n", cfg.Booking.DefaultAttendees)
	fmt.Fprintf(out, "  max_attendees         = %d\n", cfg.Booking.MaxAttendees)
	fmt.Fprintf(out, "  default_payment_type  = %s\n", cfg.Booking.DefaultPaymentType)
	fmt.Fprintln(out, "\n[storage]")
	fmt.Fprintf(out, "  db_path               = %s\n", cfg.Storage.DBPath)
	fmt.Fprintln(out, "\n[staff]")
	fmt.Fprintf(out, "  auth_file             = %s\n", cfg.Staff.AuthFile)
	fmt.Fprintln(out, "\n[ui]")
	fmt.Fprintf(out, "  theme                 = %s\n", cfg.UI.Theme)
}

func promptValue(reader *bufio.Reader, out io.Writer, label, current string) string {
	if current == "" {
		fmt.Fprintf(out, "  %s: ", label)
	} else {
		fmt.Fprintf(out, "  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

func promptInt(reader *bufio.Reader, out io.Writer, label string, current int) int {
	for {
		value := promptValue(reader, out, label, strconv.Itoa(current))
		n, err := strconv.Atoi(value)
		if err == nil {
			return n
		}
		fmt.Fprintf(out, "  %q is not a number\n", value)
		if _, err := reader.Peek(1); err != nil {
			return current
		}
	}
}

// promptChoice matches case-insensitively and re-prompts until the answer
// is one of options. On EOF the current value is kept.
func promptChoice(reader *bufio.Reader, out io.Writer, label string, options []string, current string) string {
	joined := strings.Join(options, ", ")
	full := fmt.Sprintf("%s (%s)", label, joined)
	for {
		value := promptValue(reader, out, full, current)
		for _, o := range options {
			if strings.EqualFold(o, value) {
				return o
			}
		}
		fmt.Fprintf(out, "  Invalid choice %q. Available: %s\n", value, joined)
		if _, err := reader.Peek(1); err != nil {
			return current
		}
	}
}
