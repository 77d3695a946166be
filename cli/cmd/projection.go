package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jpqlkit/jpqlrewrite"
)

var projectionCmd = &cobra.Command{
	Use:   "projection <query>",
	Short: "Print the top-level select-clause projection of a JPQL query",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			_ = cmd.Help()
			return errors.New("need to specify argument <query>")
		}

		f := jpqlrewrite.NewFacade(logger)
		fmt.Println(f.Projection(args[0]))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(projectionCmd)
}
