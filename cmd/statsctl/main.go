package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "statsctl",
		Short:         "Ferramentas de operação das estatísticas de posts",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(reportCmd())

	return root
}
