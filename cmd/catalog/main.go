// Command catalog seeds and inspects the recipe catalog.
package main

import (
	"fmt"
	"os"

	"recipefinder/config"

	"github.com/spf13/cobra"
)

// configLoader loads the application configuration.
type configLoader func() (*config.Config, error)

func main() {
	if err := rootCommand(config.New).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// rootCommand creates the catalog command tree.
func rootCommand(loadConfig configLoader) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "catalog",
		Short:         "Recipe catalog maintenance",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		seedCommand(loadConfig),
		foodTypesCommand(),
		tokenCommand(loadConfig),
	)

	return rootCmd
}
