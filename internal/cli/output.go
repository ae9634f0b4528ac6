package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// outputFormat resolves --output, falling back to the configured default.
func outputFormat(cmd *cobra.Command, app *App) (string, error) {
	format := ""
	if f := cmd.Flag("output"); f != nil {
		format = f.Value.String()
	}
	if format == "" {
		format = app.Output
	}
	switch format = strings.ToLower(format); format {
	case "", config.OutputText:
		return config.OutputText, nil
	case config.OutputJSON, config.OutputYAML:
		return format, nil
	default:
		return "", fmt.Errorf("unknown output format %q: use text, json or yaml", format)
	}
}

// render writes v in the selected structured format, or the text produced
// by text for plain output.
func render(cmd *cobra.Command, app *App, v any, text func() string) error {
	format, err := outputFormat(cmd, app)
	if err != nil {
		return err
	}
	return write(cmd.OutOrStdout(), format, v, text)
}

func write(w io.Writer, format string, v any, text func() string) error {
	switch format {
	case config.OutputJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	default:
		_, err := fmt.Fprint(w, text())
		return err
	}
}
