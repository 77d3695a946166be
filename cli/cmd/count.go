package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jpqlkit/jpqlrewrite"
)

var countProjectionFlag string

var countCmd = &cobra.Command{
	Use:   "count <query>",
	Short: "Derive a count-query variant of a JPQL query",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			_ = cmd.Help()
			return errors.New("need to specify argument <query>")
		}

		f := jpqlrewrite.NewFacade(logger)
		out, err := f.CountQueryOptions(args[0], jpqlrewrite.Options{
			CountProjection: countProjectionFlag,
			DebugRender:     debugRender,
		})
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	},
}

func init() {
	countCmd.Flags().StringVar(&countProjectionFlag, "projection", "", "override the inner count(...) projection")
	rootCmd.AddCommand(countCmd)
}
