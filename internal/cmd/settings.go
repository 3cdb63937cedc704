package cmd

import (
	"encoding/json"
	"fmt"
	"sort"
	"text/tabwriter"

	"workset/internal/config"
)

// SettingsCmd manages settings
type SettingsCmd struct {
	Meta SettingsMetaCmd `cmd:"meta" help:"Show settings file location and available options" default:"1"`
}

// SettingsMetaCmd displays settings metadata
type SettingsMetaCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the meta command
func (s *SettingsMetaCmd) Run(cli *CLI) error {
	out := cli.Stdout()
	settingsFile := config.GetSettingsPath()
	example := config.GetSettingsExample()

	if s.Format == "json" {
		output := map[string]any{
			"settings_file": settingsFile,
			"format":        example,
		}
		data, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	// Table format
	fmt.Fprintf(out, "Settings file: %s\n\n", settingsFile)
	fmt.Fprintln(out, "Example settings.json:")
	fmt.Fprintln(out)

	keys := make([]string, 0, len(example))
	for key := range example {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, key := range keys {
		var valueStr string
		switch v := example[key].(type) {
		case []string:
			// Format string arrays as JSON
			data, _ := json.Marshal(v)
			valueStr = string(data)
		case string:
			valueStr = v
		case bool:
			valueStr = fmt.Sprintf("%t", v)
		case int:
			valueStr = fmt.Sprintf("%d", v)
		default:
			valueStr = fmt.Sprintf("%v", v)
		}

		fmt.Fprintf(w, "%s\t%s\n", key, valueStr)
	}
	w.Flush()

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Create or edit this file to configure workset.")
	fmt.Fprintln(out, "Every setting can also be set with a WORKSET_* environment variable.")

	return nil
}
