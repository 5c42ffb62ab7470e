package main

import (
	"encoding/base64"
	"fmt"

	"github.com/gorilla/securecookie"
	"github.com/spf13/cobra"
)

func newKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "Сгенерировать session.hash_key и session.block_key (base64)",
		RunE: func(cmd *cobra.Command, args []string) error {
			hashKey := securecookie.GenerateRandomKey(64)
			blockKey := securecookie.GenerateRandomKey(32)
			if hashKey == nil || blockKey == nil {
				return fmt.Errorf("failed to generate random keys")
			}

			fmt.Fprintf(cmd.OutOrStdout(), "hash_key = %q\n", base64.StdEncoding.EncodeToString(hashKey))
			fmt.Fprintf(cmd.OutOrStdout(), "block_key = %q\n", base64.StdEncoding.EncodeToString(blockKey))
			return nil
		},
	}
}
