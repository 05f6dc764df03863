package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Carmen-Shannon/oxy-sleeve/engine/settings"
)

func newSettingsCommand(ctx *commandContext) *cobra.Command {
	settingsCmd := &cobra.Command{
		Use:   "settings",
		Short: "Inspect and edit the saved sleeve configuration",
	}

	settingsCmd.AddCommand(newSettingsShowCommand(ctx))
	settingsCmd.AddCommand(newSettingsSetCommand(ctx))
	settingsCmd.AddCommand(newSettingsResetCommand(ctx))

	return settingsCmd
}

// withStore opens the provisioner and store for the duration of fn.
func (c *commandContext) withStore(cmd *cobra.Command, fn func(settings.Store, func(string) bool) error) error {
	logger, err := c.newLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	prov, err := c.newProvisioner(logger)
	if err != nil {
		return err
	}
	store, closeStore, err := c.openStore(prov, logger)
	if err != nil {
		return err
	}
	defer closeStore()
	return fn(store, prov.IsPreset)
}

func newSettingsShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the saved sleeve configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			return ctx.withStore(cmd, func(store settings.Store, _ func(string) bool) error {
				current := store.Load()
				defaults := settings.Default()

				rows := make([][]string, 0, len(settings.Fields))
				for _, f := range settings.Fields {
					value, _ := current.Value(f.Key)
					def, _ := defaults.Value(f.Key)
					rows = append(rows, []string{f.Folder, f.Key, formatValue(value), formatValue(def)})
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Storage: %s (key %s)\n", cfg.Storage.Backend, store.Key())
				fmt.Fprintln(out, renderTable(
					[]string{"Folder", "Setting", "Value", "Default"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight},
				))
				return nil
			})
		},
	}
}

func newSettingsSetCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "set <setting> <value>",
		Short: "Change one saved setting",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			field, ok := settings.LookupField(args[0])
			if !ok {
				return fmt.Errorf("unknown setting %q", args[0])
			}
			value, err := parseValue(field, args[1])
			if err != nil {
				return err
			}
			return ctx.withStore(cmd, func(store settings.Store, isPreset func(string) bool) error {
				current := store.Load()
				if err := current.Set(field.Key, value, isPreset); err != nil {
					return err
				}
				store.Save(current)
				stored, _ := current.Value(field.Key)
				fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", field.Key, formatValue(stored))
				return nil
			})
		},
	}
}

func newSettingsResetCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Remove the saved sleeve configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(cmd, func(store settings.Store, _ func(string) bool) error {
				if err := store.Reset(); err != nil {
					return fmt.Errorf("reset settings: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Settings reset to defaults")
				return nil
			})
		},
	}
}

func parseValue(f settings.Field, raw string) (any, error) {
	switch f.Kind {
	case settings.FieldRange:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("setting %q: %q is not a number", f.Key, raw)
		}
		return v, nil
	case settings.FieldToggle:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("setting %q: %q is not a boolean", f.Key, raw)
		}
		return v, nil
	default:
		return raw, nil
	}
}

func formatValue(v any) string {
	switch t := v.(type) {
	case float64:
		return strconv.FormatFloat(t, 'g', 4, 64)
	case bool:
		return strconv.FormatBool(t)
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}
