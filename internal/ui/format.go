package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/lancaster-music-hall/boxoffice/internal/booking"
	"github.com/lancaster-music-hall/boxoffice/internal/venue"
)

// Stats aggregates a set of bookings.
type Stats struct {
	Total     int
	Pending   int
	Approved  int
	Denied    int
	Guests    int // Across pending and approved bookings
	Confirmed int // Revenue from approved bookings, in pounds
}

// Add counts one booking.
func (s *Stats) Add(b *booking.Booking) {
	s.Total++
	switch b.Status {
	case booking.StatusApproved:
		s.Approved++
		s.Guests += b.Attendees
		s.Confirmed += b.TotalCost
	case booking.StatusDenied:
		s.Denied++
	default:
		s.Pending++
		s.Guests += b.Attendees
	}
}

// PrintOpts configures booking printing.
type PrintOpts struct {
	Verbose      bool // Show contact details and notes
	MaxNameWidth int  // 0 = derive from terminal width
}

// CalcMaxNameWidth returns the customer column width.
func (o PrintOpts) CalcMaxNameWidth(defaultWidth int) int {
	if o.MaxNameWidth > 0 {
		return o.MaxNameWidth
	}
	// "  BK-XXXXXXXX  Pending   " + "  NNN guests  £NNNNN  Credit Card" = ~60 cells
	available := termWidth() - 60
	if available > defaultWidth {
		return min(available, 40)
	}
	return defaultWidth
}

// truncate shortens s to width cells, marking the cut with an ellipsis.
func truncate(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// pad right-pads s to width cells. Unlike %-*s it counts cells, not bytes.
func pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// PrintBookings prints bookings grouped by date.
func PrintBookings(w io.Writer, bookings []*booking.Booking, opts PrintOpts) Stats {
	var stats Stats
	nameWidth := opts.CalcMaxNameWidth(20)

	var currentDate string
	for _, b := range bookings {
		date := b.DateString()
		if date != currentDate {
			if currentDate != "" {
				fmt.Fprintln(w)
			}
			fmt.Fprintln(w, formatHeader("=== "+date+" ==="))
			currentDate = date
		}
		PrintBookingRow(w, b, nameWidth, opts.Verbose)
		stats.Add(b)
	}
	return stats
}

// PrintBookingRow prints one booking on a single line, plus detail lines
// when verbose.
func PrintBookingRow(w io.Writer, b *booking.Booking, nameWidth int, verbose bool) {
	// Pad before coloring so escape codes do not skew the column.
	status := formatStatus(b.Status) + strings.Repeat(" ", max(len(booking.StatusApproved)-len(b.Status), 0))
	fmt.Fprintf(w, "  %s  %s  %s  %4d guests  %s  %s\n",
		formatAccent(b.ID),
		status,
		pad(truncate(b.CustomerName, nameWidth), nameWidth),
		b.Attendees,
		pad(fmt.Sprintf("£%d", b.TotalCost), 7),
		b.PaymentType,
	)
	if !verbose {
		return
	}
	fmt.Fprintf(w, "      %s  %s\n", b.Email, b.Phone)
	if b.Notes != "" {
		fmt.Fprintf(w, "      %s\n", formatMuted(b.Notes))
	}
}

// PrintStats prints the summary line.
func PrintStats(w io.Writer, s Stats) {
	fmt.Fprintf(w, "%d bookings: %s pending, %s approved, %s denied | %d guests | £%d confirmed\n",
		s.Total,
		colorPending.Sprint(s.Pending),
		colorApproved.Sprint(s.Approved),
		colorDenied.Sprint(s.Denied),
		s.Guests,
		s.Confirmed,
	)
}

// PrintBookingDetail prints every field of one booking.
func PrintBookingDetail(w io.Writer, b *booking.Booking) {
	rows := [][2]string{
		{"ID", formatAccent(b.ID)},
		{"Status", formatStatus(b.Status)},
		{"Date", b.DateString()},
		{"Customer", b.CustomerName},
		{"Email", b.Email},
		{"Phone", b.Phone},
		{"Attendees", fmt.Sprintf("%d", b.Attendees)},
		{"Payment", b.PaymentType},
		{"Total cost", fmt.Sprintf("£%d", b.TotalCost)},
		{"Created", b.CreatedAt.Format("2006-01-02 15:04")},
	}
	if b.Notes != "" {
		rows = append(rows, [2]string{"Notes", b.Notes})
	}
	for _, r := range rows {
		fmt.Fprintf(w, "%s %s\n", formatHeader(pad(r[0]+":", 12)), r[1])
	}
}

// PrintInquiries prints inquiries, newest first.
func PrintInquiries(w io.Writer, inquiries []*booking.Inquiry, verbose bool) {
	for _, q := range inquiries {
		preferred := formatMuted("no date")
		if q.PreferredDate != nil {
			preferred = q.PreferredDate.Format("2006-01-02")
		}
		fmt.Fprintf(w, "  %s  %s  %s  %s <%s>  %s\n",
			formatAccent(q.ID),
			q.CreatedAt.Format("2006-01-02"),
			pad(string(q.Kind), 18),
			q.Organisation,
			q.Email,
			preferred,
		)
		if verbose {
			fmt.Fprintf(w, "      %s %s\n", q.ContactName, q.Phone)
			if q.Message != "" {
				fmt.Fprintf(w, "      %s\n", formatMuted(q.Message))
			}
		}
	}
}

// PrintMessages prints contact messages with their bodies.
func PrintMessages(w io.Writer, messages []*booking.Message) {
	for _, msg := range messages {
		subject := msg.Subject
		if subject == "" {
			subject = formatMuted("(no subject)")
		}
		fmt.Fprintf(w, "  %s  %s  %s <%s>  %s\n",
			formatAccent(msg.ID),
			msg.CreatedAt.Format("2006-01-02"),
			msg.Name,
			msg.Email,
			subject,
		)
		fmt.Fprintf(w, "      %s\n", formatMuted(msg.Body))
	}
}

// PrintSubscriptions prints one subscriber per line.
func PrintSubscriptions(w io.Writer, subs []*booking.Subscription) {
	for _, sub := range subs {
		interests := sub.InterestList()
		if interests == "" {
			interests = formatMuted("all topics")
		}
		fmt.Fprintf(w, "  %s  %s  %s\n", pad(sub.Email, 28), pad(sub.Name, 20), interests)
	}
}

// PrintVenue prints a venue with its rate card.
func PrintVenue(w io.Writer, v venue.Venue) {
	fmt.Fprintf(w, "%s %s\n", formatHeader(v.Name), formatMuted(fmt.Sprintf("(capacity %d)", v.Capacity)))
	if v.Description != "" {
		fmt.Fprintf(w, "  %s\n", v.Description)
	}
	if len(v.Facilities) > 0 {
		fmt.Fprintf(w, "  Facilities: %s\n", strings.Join(v.Facilities, ", "))
	}
	for _, line := range v.Rates.Lines() {
		fmt.Fprintf(w, "  %s %s\n", pad(line.Label+":", 14), formatAccent(line.Price))
	}
}
