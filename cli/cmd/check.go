package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jpqlkit/jpqlrewrite"
)

var checkCmd = &cobra.Command{
	Use:   "check <query>",
	Short: "Report whether a JPQL query's projection is a constructor expression",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			_ = cmd.Help()
			return errors.New("need to specify argument <query>")
		}

		f := jpqlrewrite.NewFacade(logger)
		has, err := f.HasConstructorExpression(args[0])
		if err != nil {
			return err
		}
		fmt.Println(has)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
