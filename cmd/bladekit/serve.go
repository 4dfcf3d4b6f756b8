package main

import (
	"github.com/spf13/cobra"

	"github.com/bladekit/bladekit"
	"github.com/bladekit/bladekit/middlewares"
	"github.com/bladekit/bladekit/pkg/logger"
)

func newServeCmd() *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the development server",
		Long: `serve runs the application: it forwards unqualified requests to a
locale-qualified URL and streams assets through token substitution.

With --watch, edits to properties files under the resource directory are
picked up without a restart.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := bladekit.LoadConfig(configPath)
			if err != nil {
				return err
			}

			opts := []bladekit.Option{
				bladekit.WithLogger(logger.New(
					middlewares.RequestIDExtractor(),
					middlewares.LocaleExtractor(),
				)),
			}
			if watch {
				opts = append(opts, bladekit.WithWatch())
			}

			app, err := bladekit.New(cfg, opts...)
			if err != nil {
				return err
			}
			return app.Run()
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "reload resources on file changes")

	return cmd
}
