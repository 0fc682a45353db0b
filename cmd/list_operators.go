package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conneroisu/leanmutator/internal/operator"
)

var listOperatorsCmd = &cobra.Command{
	Use:   "list-operators",
	Short: "List registered mutation operators",
	Long:  "Print every built-in mutation operator in registration order, one per line.",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := operator.NewRegistry()
		for _, name := range reg.Names() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listOperatorsCmd)
}
