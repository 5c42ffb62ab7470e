package main

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/m04kA/HotelPrincipal-Site/internal/config"
	catalogRepo "github.com/m04kA/HotelPrincipal-Site/internal/infra/storage/catalog"
	"github.com/m04kA/HotelPrincipal-Site/pkg/money"
)

func newRoomsCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rooms",
		Short: "Показать каталог комнат",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfigOrDefault(*configPath)
			if err != nil {
				return err
			}

			catalog, closeCatalog, err := openCatalog(cfg)
			if err != nil {
				return err
			}
			defer closeCatalog()

			rooms, err := catalog.List(cmd.Context())
			if err != nil {
				return err
			}

			formatter := money.NewFormatter(cfg.Contact.Locale)
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNOMBRE\tHUÉSPEDES\tCAMAS\tPRECIO\tAMENIDADES")
			for _, room := range rooms {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t%s\n",
					room.ID, room.Name, room.Occupancy, room.Beds,
					formatter.Format(room.NightlyPrice), strings.Join(room.Amenities, ", "))
			}
			return tw.Flush()
		},
	}

	cmd.AddCommand(newRoomsSeedCmd(configPath))
	return cmd
}

func newRoomsSeedCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Записать встроенный каталог комнат в PostgreSQL (заменяет существующие записи)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			db, err := openDatabase(cfg.Database)
			if err != nil {
				return err
			}
			defer db.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			if err := catalogRepo.NewRepository(db).ReplaceAll(ctx, catalogRepo.DefaultRooms); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d rooms into %s\n", len(catalogRepo.DefaultRooms), cfg.Database.DBName)
			return nil
		},
	}
}
