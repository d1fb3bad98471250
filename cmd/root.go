package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/lehigh-university-libraries/waterprint/internal/logging"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "waterprint",
		Short: "Water footprint analysis of agricultural products from photos",
		Long: `Waterprint identifies the agricultural product in an image with a
vision-capable LLM and returns a structured water footprint analysis.

It can run as a web service or analyze a single image from the command line.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
			logging.Setup(os.Stderr, os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))
		},
	}

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newAnalyzeCmd())
	cmd.AddCommand(newHealthCmd())

	return cmd
}
