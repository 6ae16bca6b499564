// Comando plexoractl: tareas administrativas sobre la base de datos (migrar, sembrar datos demo).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version se sobrescribe con -ldflags en el build.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:           "plexoractl",
	Short:         "Herramientas administrativas de Plexora",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Muestra la versión",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "plexoractl %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd, migrateCmd, newSeedDemoCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
