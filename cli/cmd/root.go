package cmd

import (
	"github.com/gofrs/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "jpqlrewrite",
		Short:        "jpqlrewrite",
		SilenceUsage: true,
		Long:         `CLI tool for rewriting JPQL 3.1 queries: sort injection, count-query synthesis, alias/projection inspection.`,
	}

	directory   string
	sortProfile string
	debugRender bool

	logger logrus.FieldLogger = logrus.StandardLogger()
)

// Execute executes the root command.
func Execute() error {
	rootCmd.PersistentFlags().StringVarP(&directory, "directory", "d", ".", "directory jpqlrewrite.yaml and batch scans are resolved against")
	rootCmd.PersistentFlags().StringVar(&sortProfile, "sort-profile", "", "named sort profile from jpqlrewrite.yaml to apply")
	rootCmd.PersistentFlags().BoolVar(&debugRender, "debug-render", false, "render with per-token grammar-production tags")

	correlationID, err := uuid.NewV4()
	if err != nil {
		return err
	}
	logger = logrus.StandardLogger().WithField("correlation_id", correlationID.String())

	return rootCmd.Execute()
}
