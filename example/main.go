package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/siherrmann/tableViewer"
	"github.com/siherrmann/tableViewer/helper"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// main is the entry point of the table viewer. Flags override TABLE_VIEWER_* environment variables.
func main() {
	if err := newRootCommand(helper.NewViper()).Execute(); err != nil {
		color.New(color.FgRed, color.Bold).Fprint(os.Stderr, "error: ")
		color.New(color.FgRed).Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand(v *viper.Viper) *cobra.Command {

	cmd := &cobra.Command{
		Use:           "table-viewer",
		Short:         "Serve two CSV datasets as HTML pages and JSON",
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			// Flags only win over the environment when set explicitly.
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return fmt.Errorf("failed to bind flags: %w", err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := helper.LoadConfig(v)
			if err != nil {
				return err
			}

			logger, cleanup := helper.NewLogger(config)
			defer cleanup()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return tableViewer.TableServer(ctx, config, logger)
		},
	}

	flags := cmd.Flags()
	flags.String("port", "3000", "port to listen on")
	flags.String("mode", helper.MODE_PRODUCTION, "server mode: development or production")
	flags.String("table-path", "table.csv", "path of the first dataset inside the storage")
	flags.String("table2-path", "table2.csv", "path of the second dataset inside the storage")
	flags.String("template-dir", "", "directory with page templates, embedded templates when empty")
	flags.String("log-level", "info", "log level: debug, info, warn or error")
	flags.String("seq-url", "", "Seq server URL for structured logs, disabled when empty")
	flags.String("storage-mode", helper.STORAGE_MODE_LOCAL, "dataset storage: local, memory (sample datasets) or s3")
	flags.String("storage-path", "./templates", "base directory of the local storage")
	flags.String("s3-endpoint", "", "endpoint of an S3 compatible service")
	flags.String("s3-region", "us-east-1", "S3 region")
	flags.String("s3-bucket-name", "", "S3 bucket holding the datasets")
	flags.String("s3-access-key-id", "", "S3 access key id")
	flags.String("s3-secret-access-key", "", "S3 secret access key")

	return cmd
}
