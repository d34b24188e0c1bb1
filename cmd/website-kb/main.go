package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	_ = godotenv.Load()

	var configPath string
	root := &cobra.Command{
		Use:   "website-kb",
		Short: "website knowledge base service",
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "path to YAML config file")

	root.AddCommand(
		newServeCommand(&configPath),
		newReindexCommand(&configPath),
		newSearchCommand(&configPath),
		newSourceCommand(&configPath),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
