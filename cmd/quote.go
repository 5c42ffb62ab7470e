package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/m04kA/HotelPrincipal-Site/internal/domain"
	getQuoteUC "github.com/m04kA/HotelPrincipal-Site/internal/usecase/get_quote"
	"github.com/m04kA/HotelPrincipal-Site/pkg/logger"
	"github.com/m04kA/HotelPrincipal-Site/pkg/money"
)

func newQuoteCmd(configPath *string) *cobra.Command {
	var (
		roomID   string
		checkIn  string
		checkOut string
		rooms    int
		extras   []string
	)

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Рассчитать стоимость проживания",
		Example: "  hotelsite quote --room doble --check-in 2026-01-10 --check-out 2026-01-13 " +
			"--rooms 1 --extra breakfast --extra airport",
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

			req := &getQuoteUC.Request{RoomID: roomID, Rooms: rooms}
			if req.CheckIn, err = time.Parse(domain.DateFormat, checkIn); err != nil {
				return fmt.Errorf("invalid --check-in %q, expected YYYY-MM-DD", checkIn)
			}
			if req.CheckOut, err = time.Parse(domain.DateFormat, checkOut); err != nil {
				return fmt.Errorf("invalid --check-out %q, expected YYYY-MM-DD", checkOut)
			}
			for _, id := range extras {
				req.Extras = append(req.Extras, domain.ExtraID(id))
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()

			resp, err := getQuoteUC.NewUseCase(catalog, logger.NewNop()).Execute(ctx, req)
			if err != nil {
				return err
			}

			printQuote(cmd.OutOrStdout(), resp, money.NewFormatter(cfg.Contact.Locale))
			return nil
		},
	}

	cmd.Flags().StringVar(&roomID, "room", "", "ID комнаты (пусто - комната по умолчанию)")
	cmd.Flags().StringVar(&checkIn, "check-in", "", "дата заезда YYYY-MM-DD")
	cmd.Flags().StringVar(&checkOut, "check-out", "", "дата выезда YYYY-MM-DD")
	cmd.Flags().IntVar(&rooms, "rooms", 1, "количество комнат")
	cmd.Flags().StringArrayVar(&extras, "extra", nil, "дополнительная услуга (можно указать несколько раз)")
	_ = cmd.MarkFlagRequired("check-in")
	_ = cmd.MarkFlagRequired("check-out")

	return cmd
}

func printQuote(w io.Writer, resp *getQuoteUC.Response, formatter *money.Formatter) {
	q := resp.Quote

	fmt.Fprintf(w, "%s\n", resp.Room.Name)
	fmt.Fprintf(w, "%s → %s\n", resp.CheckIn.Format(domain.DateFormat), resp.CheckOut.Format(domain.DateFormat))
	fmt.Fprintf(w, "%s x %d noche(s) x %d habitación(es) = %s\n",
		formatter.Format(q.NightlyPrice), q.Nights, q.Rooms, formatter.Format(q.BaseTotal))
	for _, extra := range q.SelectedExtras {
		fmt.Fprintf(w, "  + %s: %s\n", extra.Name, formatter.Format(extra.Price))
	}
	fmt.Fprintf(w, "Total: %s\n", formatter.Format(q.GrandTotal))
}
