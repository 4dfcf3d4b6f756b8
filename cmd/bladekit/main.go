// bladekit serves and validates hierarchical i18n resource trees.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Version information (set via -ldflags during build)
var (
	version = "dev"
	commit  = "none"
)

var configPath string

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "bladekit",
		Short: "Locale-aware bundling and serving for blade applications",
		Long: `bladekit merges hierarchical properties resources into per-locale token
tables, validates translation coverage, and serves applications with
locale forwarding and on-the-fly token substitution.

Commands:
  validate    Check resources for duplicates and missing translations
  serve       Run the development server`,
		Version:       fmt.Sprintf("%s (%s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "bladekit.yaml", "path to the configuration file")

	root.AddCommand(newValidateCmd())
	root.AddCommand(newServeCmd())

	return root
}

func main() {
	// Local overrides for addr and default locale; absence is not an error.
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
