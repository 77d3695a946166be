package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jpqlkit/jpqlrewrite"
)

var aliasCmd = &cobra.Command{
	Use:   "alias <query>",
	Short: "Print the top-level range-variable alias of a JPQL query",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			_ = cmd.Help()
			return errors.New("need to specify argument <query>")
		}

		f := jpqlrewrite.NewFacade(logger)
		alias, ok := f.DetectAlias(args[0])
		if !ok {
			return errors.New("could not detect an alias: query did not parse")
		}
		fmt.Println(alias)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(aliasCmd)
}
