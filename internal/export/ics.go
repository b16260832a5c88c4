// Package export writes bookings to iCalendar files.
package export

import (
	"fmt"
	"io"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/lancaster-music-hall/boxoffice/internal/booking"
)

// ProductID identifies boxoffice as the calendar producer.
const ProductID = "-//Lancaster Music Hall//boxoffice//EN"

// UIDDomain is appended to booking IDs to form event UIDs.
const UIDDomain = "boxoffice.lancaster-music-hall"

// Calendar builds a PUBLISH calendar with one all-day event per booking.
func Calendar(bookings []*booking.Booking, stamp time.Time) *ics.Calendar {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(ProductID)
	cal.SetName("Lancaster Music Hall bookings")

	for _, b := range bookings {
		ev := cal.AddEvent(EventUID(b.ID))
		ev.SetDtStampTime(stamp)
		ev.SetAllDayStartAt(b.Date)
		ev.SetAllDayEndAt(b.Date.AddDate(0, 0, 1))
		ev.SetSummary(fmt.Sprintf("%s (%d guests)", b.CustomerName, b.Attendees))
		ev.SetDescription(describe(b))
		ev.SetStatus(eventStatus(b.Status))
	}
	return cal
}

// WriteICS serialises bookings as an .ics document.
func WriteICS(w io.Writer, bookings []*booking.Booking, stamp time.Time) error {
	if _, err := io.WriteString(w, Calendar(bookings, stamp).Serialize()); err != nil {
		return fmt.Errorf("writing calendar: %w", err)
	}
	return nil
}

// EventUID returns the iCalendar UID for a booking ID.
func EventUID(bookingID string) string {
	return bookingID + "@" + UIDDomain
}

func describe(b *booking.Booking) string {
	desc := fmt.Sprintf("Booking %s\nContact: %s, %s\nPayment: %s\nTotal: £%d\nStatus: %s",
		b.ID, b.Email, b.Phone, b.PaymentType, b.TotalCost, b.Status)
	if b.Notes != "" {
		desc += "\nNotes: " + b.Notes
	}
	return desc
}

func eventStatus(s booking.Status) ics.ObjectStatus {
	switch s {
	case booking.StatusApproved:
		return ics.ObjectStatusConfirmed
	case booking.StatusDenied:
		return ics.ObjectStatusCancelled
	default:
		return ics.ObjectStatusTentative
	}
}
