package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"pomotimer/internal/core/model"
	"pomotimer/internal/core/timer"
	"pomotimer/internal/storage"
)

func NewPrefsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Inspect or edit the saved preferences",
	}

	cmd.AddCommand(
		newPrefsShowCommand(),
		newPrefsPathCommand(),
		newPrefsSetCommand(),
		newPrefsResetCommand(),
	)

	return cmd
}

func newPrefsShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective preferences",
		Long:  `Print the preferences as the timer would load them. Customized fields are highlighted.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			file, err := openPreferences()
			if err != nil {
				return err
			}
			printPreferences(cmd.OutOrStdout(), file.Path(), file.Load())
			return nil
		},
	}
}

func newPrefsPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the preferences file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			file, err := openPreferences()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), file.Path())
			return nil
		},
	}
}

func newPrefsSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set <field> <value>",
		Short: "Change a single preference",
		Long: `Change a single preference and save it.

Fields: sfx_volume, upper_timer_color, lower_timer_color, work_minutes,
short_break_minutes, long_break_minutes, long_break_frequency.
Colors are written as #rrggbb or #rrggbbaa. Counts are clamped to 1..9999.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := openPreferences()
			if err != nil {
				return err
			}
			prefs, err := applyPreference(file, args[0], args[1])
			if err != nil {
				return err
			}
			printPreferences(cmd.OutOrStdout(), file.Path(), prefs)
			return nil
		},
	}
}

func newPrefsResetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Delete the preferences file so defaults apply",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			if err := store.Remove(prefsFile); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", store.Path(prefsFile))
			return nil
		},
	}
}

// applyPreference routes one edit through a headless engine so the CLI
// follows the same parsing and clamping as the options popup.
func applyPreference(file *storage.PreferencesFile, name, value string) (model.Preferences, error) {
	field, ok := model.ParseField(name)
	if !ok {
		return model.Preferences{}, fmt.Errorf("unknown field %q", name)
	}

	engine := timer.New(file.Load(), timer.Collaborators{Store: file})
	switch field {
	case model.FieldSfxVolume:
		volume, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return model.Preferences{}, fmt.Errorf("invalid volume %q: %w", value, err)
		}
		engine.SetSfxVolume(volume)
	case model.FieldUpperTimerColor, model.FieldLowerTimerColor:
		parsed, err := model.ParseHexColor(value)
		if err != nil {
			return model.Preferences{}, err
		}
		if field == model.FieldUpperTimerColor {
			engine.SetUpperColor(parsed)
		} else {
			engine.SetLowerColor(parsed)
		}
	case model.FieldLongBreakFrequency:
		if _, ok := timer.ParseCount(value); !ok {
			return model.Preferences{}, fmt.Errorf("invalid count %q", value)
		}
		engine.SetLongBreakFrequency(value)
	default:
		phase, _ := field.DurationPhase()
		if _, ok := timer.ParseCount(value); !ok {
			return model.Preferences{}, fmt.Errorf("invalid count %q", value)
		}
		engine.SetDuration(phase, value)
	}

	return engine.Preferences(), nil
}

func printPreferences(out io.Writer, path string, prefs model.Preferences) {
	customized := prefs.Customized(model.DefaultPreferences())

	fmt.Fprintf(out, "%s %s\n", bold("File:"), path)
	fmt.Fprintf(out, "%s %d\n", bold("Version:"), prefs.Version)
	for _, field := range model.Fields {
		value := fieldValue(prefs, field)
		if customized[field] {
			value = color.YellowString("%s (customized)", value)
		}
		fmt.Fprintf(out, "  %s %s\n", bold("%s:", field), value)
	}
	fmt.Fprintf(out, "  %s %.0fx%.0f\n", bold("window_size:"), prefs.WindowSize.Width, prefs.WindowSize.Height)
}

func fieldValue(prefs model.Preferences, field model.Field) string {
	switch field {
	case model.FieldSfxVolume:
		return strconv.FormatFloat(prefs.SfxVolume, 'f', -1, 64)
	case model.FieldUpperTimerColor:
		return model.HexColor(prefs.UpperTimerColor)
	case model.FieldLowerTimerColor:
		return model.HexColor(prefs.LowerTimerColor)
	case model.FieldLongBreakFrequency:
		return strconv.Itoa(prefs.LongBreakFrequency)
	default:
		phase, _ := field.DurationPhase()
		return strconv.Itoa(prefs.MinutesFor(phase))
	}
}

func bold(format string, a ...interface{}) string {
	return color.New(color.Bold).Sprintf(format, a...)
}
