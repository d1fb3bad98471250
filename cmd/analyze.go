package cmd

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/lehigh-university-libraries/waterprint/internal/analysis"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newAnalyzeCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "analyze <image>",
		Short: "Analyze a single image file and print the result",
		Long: `Runs the same pipeline as POST /analyze on a local image file and prints
the response envelope ({"success": ..., "data": ...}) to stdout.

Exits non-zero when the analysis fails, including when the model reply could
not be parsed (the fallback payload is still printed).`,
		Example: `  waterprint analyze apple.jpg
  waterprint analyze --format yaml almonds.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "json" && format != "yaml" {
				return fmt.Errorf("invalid --format %q (want json or yaml)", format)
			}

			cfg, err := loadConfig(cmd, "", "", "")
			if err != nil {
				return err
			}

			model := analysis.LoadModel(cmd.Context(), cfg)
			defer closeModel(model)

			return runAnalyze(cmd.Context(), cmd.OutOrStdout(), analysis.NewService(model), args[0], format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "Output format: json or yaml")

	return cmd
}

func runAnalyze(ctx context.Context, w io.Writer, svc *analysis.Service, path, format string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read image: %w", err)
	}

	rec, err := svc.Analyze(ctx, base64.StdEncoding.EncodeToString(data))
	status, body := analysis.Envelope(rec, err)

	if err := writeEnvelope(w, format, body); err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("analysis failed: %v", body["error"])
	}
	return nil
}

func writeEnvelope(w io.Writer, format string, body map[string]any) error {
	if format == "yaml" {
		// Go through JSON first so struct tags and json.Number values render as plain YAML
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		var generic any
		if err := json.Unmarshal(encoded, &generic); err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(generic); err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		return enc.Close()
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(body)
}
