package main

import (
	"fmt"
	"text/tabwriter"

	"recipefinder/internal/domain/entity"

	"github.com/spf13/cobra"
)

// foodTypesCommand creates the food-types subcommand
func foodTypesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "food-types",
		Short: "Print the food type vocabulary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tICON")
			for _, ft := range entity.FoodTypes {
				fmt.Fprintf(w, "%s\t%s\n", ft.Name, ft.Icon)
			}

			return w.Flush()
		},
	}
}
