package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jpqlkit/jpqlrewrite"
)

var orderByFlags []string

var rewriteCmd = &cobra.Command{
	Use:   "rewrite <query>",
	Short: "Re-render a JPQL query, optionally injecting a sort",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			_ = cmd.Help()
			return errors.New("need to specify argument <query>")
		}

		sort, err := resolvedSort(orderByFlags)
		if err != nil {
			return err
		}

		f := jpqlrewrite.NewFacade(logger)
		out, err := f.RewriteOptions(args[0], jpqlrewrite.Options{Sort: sort, DebugRender: debugRender})
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	},
}

func init() {
	rewriteCmd.Flags().StringArrayVar(&orderByFlags, "order-by", nil, "property:dir[:ignorecase], repeatable")
	rootCmd.AddCommand(rewriteCmd)
}
