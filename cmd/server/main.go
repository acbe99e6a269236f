// Package main is the entry point for the critter arena gRPC server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/critter-arena/cmd/server/client"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:   "critter-arena",
	Short: "Critter Arena gRPC Server",
	Long:  `Critter Arena provides a gRPC interface for collecting creatures, building teams and battling matchmade opponents.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "optional .env file to load")
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
