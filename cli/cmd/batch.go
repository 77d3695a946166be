package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jpqlkit/jpqlrewrite"
	"github.com/jpqlkit/jpqlrewrite/batchrewrite"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Rewrite every .jpql file under --directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 0 {
			_ = cmd.Help()
			return errors.New("too many arguments")
		}

		sort, err := resolvedSort(nil)
		if err != nil {
			return err
		}

		f := jpqlrewrite.NewFacade(logger)
		report, err := batchrewrite.Run(os.DirFS(directory), f, jpqlrewrite.Options{
			Sort:        sort,
			DebugRender: debugRender,
		})
		if err != nil {
			return err
		}

		for _, r := range report.Results {
			if r.Err != nil {
				logger.WithField("path", r.Path).WithError(r.Err).Error("jpqlrewrite: batch rewrite failed")
				continue
			}
			fmt.Printf("%s:\n%s\n", r.Path, r.Rewritten)
		}

		if failed := report.Failed(); len(failed) > 0 {
			return fmt.Errorf("%d of %d files failed to rewrite", len(failed), len(report.Results))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)
}
