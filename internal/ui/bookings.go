package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/lancaster-music-hall/boxoffice/internal/booking"
	"github.com/lancaster-music-hall/boxoffice/internal/dateutil"
	"github.com/lancaster-music-hall/boxoffice/internal/export"
	"github.com/lancaster-music-hall/boxoffice/internal/venue"
)

// ErrAlreadyDecided is returned when approving or denying a booking twice.
var ErrAlreadyDecided = errors.New("booking has already been decided")

func (a *App) bookingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "bookings",
		Aliases: []string{"b"},
		Short:   "List and manage bookings",
	}
	cmd.AddCommand(a.bookingsListCmd())
	cmd.AddCommand(a.bookingsShowCmd())
	cmd.AddCommand(a.decideCmd("approve", booking.StatusApproved))
	cmd.AddCommand(a.decideCmd("deny", booking.StatusDenied))
	return cmd
}

// parseStatusFlag accepts an empty string for "any status".
func parseStatusFlag(s string) (booking.Status, error) {
	if s == "" {
		return "", nil
	}
	return booking.ParseStatus(s)
}

// listBookings applies the shared --status, --from and --to flags.
func (a *App) listBookings(ctx context.Context, status, from, to string) ([]*booking.Booking, error) {
	st, err := parseStatusFlag(status)
	if err != nil {
		return nil, err
	}
	if from == "" && to == "" {
		return a.repo.ListBookings(ctx, st)
	}
	if from == "" {
		from = to
	}
	dateRange, err := dateutil.NewDateRange(from, to)
	if err != nil {
		return nil, err
	}
	all, err := a.repo.ListBookingsByDateRange(ctx, dateRange.Start, dateRange.End)
	if err != nil {
		return nil, err
	}
	if st == "" {
		return all, nil
	}
	filtered := all[:0]
	for _, b := range all {
		if b.Status == st {
			filtered = append(filtered, b)
		}
	}
	return filtered, nil
}

func (a *App) bookingsListCmd() *cobra.Command {
	var (
		status  string
		from    string
		to      string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List bookings",
		Long: `List bookings grouped by date.

Without --from/--to every booking is listed. With only --from, a single
day is listed; with both, the range is inclusive.`,
		Example: `  boxoffice bookings list
  boxoffice bookings list --status pending
  boxoffice bookings list --from 2025-06-01 --to 2025-06-30 -v`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}
			bookings, err := a.listBookings(cmd.Context(), status, from, to)
			if err != nil {
				return fmt.Errorf("listing bookings: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(bookings) == 0 {
				fmt.Fprintln(out, "No bookings found.")
				return nil
			}
			stats := PrintBookings(out, bookings, PrintOpts{Verbose: verbose})
			fmt.Fprintln(out)
			PrintStats(out, stats)
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Filter by status (pending, approved, denied)")
	cmd.Flags().StringVar(&from, "from", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "End date (YYYY-MM-DD, defaults to --from)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show contact details and notes")
	return cmd
}

func (a *App) getBooking(ctx context.Context, id string) (*booking.Booking, error) {
	b, err := a.repo.GetBooking(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading booking %s: %w", id, err)
	}
	if b == nil {
		return nil, fmt.Errorf("%w: %s", booking.ErrNotFound, id)
	}
	return b, nil
}

func (a *App) bookingsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [booking-id]",
		Short: "Show one booking",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}
			b, err := a.getBooking(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			PrintBookingDetail(cmd.OutOrStdout(), b)
			return nil
		},
	}
}

func (a *App) decideCmd(verb string, status booking.Status) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:     verb + " [booking-id]",
		Short:   fmt.Sprintf("Mark a booking %s", status),
		Example: fmt.Sprintf("  boxoffice bookings %s BK-1A2B3C4D", verb),
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}
			ctx := cmd.Context()
			b, err := a.getBooking(ctx, args[0])
			if err != nil {
				return err
			}
			if b.IsDecided() && !force {
				return fmt.Errorf("%w: %s is %s (use --force to change it)", ErrAlreadyDecided, b.ID, b.Status)
			}
			if err := a.repo.SetStatus(ctx, b.ID, status); err != nil {
				return fmt.Errorf("updating booking: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", formatAccent(b.ID), formatStatus(status))
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Change a booking that was already decided")
	return cmd
}

func (a *App) inquiriesCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "inquiries",
		Short: "List inquiries, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}
			inquiries, err := a.repo.ListInquiries(cmd.Context())
			if err != nil {
				return fmt.Errorf("listing inquiries: %w", err)
			}
			out := cmd.OutOrStdout()
			if len(inquiries) == 0 {
				fmt.Fprintln(out, "No inquiries yet.")
				return nil
			}
			PrintInquiries(out, inquiries, verbose)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show contact names and messages")
	return cmd
}

func (a *App) messagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "messages",
		Short: "List messages sent from the contact form, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}
			messages, err := a.repo.ListMessages(cmd.Context())
			if err != nil {
				return fmt.Errorf("listing messages: %w", err)
			}
			out := cmd.OutOrStdout()
			if len(messages) == 0 {
				fmt.Fprintln(out, "No messages yet.")
				return nil
			}
			PrintMessages(out, messages)
			return nil
		},
	}
}

func (a *App) subscribersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "subscribers",
		Short: "List newsletter subscribers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}
			subs, err := a.repo.ListSubscriptions(cmd.Context())
			if err != nil {
				return fmt.Errorf("listing subscribers: %w", err)
			}
			out := cmd.OutOrStdout()
			if len(subs) == 0 {
				fmt.Fprintln(out, "No subscribers yet.")
				return nil
			}
			PrintSubscriptions(out, subs)
			return nil
		},
	}
}

func (a *App) venuesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "venues",
		Short: "Show venues and hire rates",
		RunE: func(cmd *cobra.Command, _ []string) error {
			venues, err := venue.All()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, v := range venues {
				if i > 0 {
					fmt.Fprintln(out)
				}
				PrintVenue(out, v)
			}
			return nil
		},
	}
}

func (a *App) exportCmd() *cobra.Command {
	var (
		status string
		from   string
		to     string
		out    string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export bookings as an iCalendar (.ics) file",
		Example: `  boxoffice export --status approved --out bookings.ics
  boxoffice export --from 2025-06-01 --to 2025-06-30 > june.ics`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}
			bookings, err := a.listBookings(cmd.Context(), status, from, to)
			if err != nil {
				return fmt.Errorf("listing bookings: %w", err)
			}

			var w io.Writer = cmd.OutOrStdout()
			if out != "" && out != "-" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("creating %s: %w", out, err)
				}
				defer func() { _ = f.Close() }()
				w = f
			}
			if err := export.WriteICS(w, bookings, time.Now()); err != nil {
				return fmt.Errorf("writing calendar: %w", err)
			}
			if out != "" && out != "-" {
				fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d bookings to %s\n", len(bookings), out)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "Filter by status (pending, approved, denied)")
	cmd.Flags().StringVar(&from, "from", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "End date (YYYY-MM-DD, defaults to --from)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default stdout)")
	return cmd
}
