package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use: "javaparse",
	Short: "javaparse - a Java source parser",
	Long: `javaparse parses Java source text, through JDK 25 language features,
into a compact arena-backed AST.

It provides:
 - A one-shot "parse" command for one or more files
 - A "watch" daemon that reparses files as they change on disk
 - A "serve-metrics" daemon exposing Prometheus metrics and health endpoints
 - A "history" command querying the parse audit trail

For more information, visit: https://github.com/javalang/javaparse`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "javaparse.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.CompletionOptions.DisableDefaultCmd = false
}
