package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const defaultConfigPath = "config.toml"

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "hotelsite",
		Short:         "Hotel Principal: сайт отеля и мастер бронирования",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath, "путь к файлу конфигурации")

	root.AddCommand(newServeCmd(&configPath))
	root.AddCommand(newQuoteCmd(&configPath))
	root.AddCommand(newRoomsCmd(&configPath))
	root.AddCommand(newKeysCmd())

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
