package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"bookingapi/internal/domain/models"
	"bookingapi/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// ConfirmationService renders a printable PDF confirmation for a booking.
type ConfirmationService struct {
	Loader    func(context.Context, int64) (models.Booking, error)
	RequestID string
	Now       func() time.Time
}

func (s ConfirmationService) Generate(ctx context.Context, bookingID int64) ([]byte, string, error) {
	b, err := s.Loader(ctx, bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_confirmation", fmt.Sprintf("booking_id=%d", bookingID))
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	return buildConfirmationPDF(b, now())
}

func buildConfirmationPDF(b models.Booking, issued time.Time) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Confirmation", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BOOKING CONFIRMATION")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Booking no.  : #%d", b.ID),
		fmt.Sprintf("Name         : %s %s", safe(b.Firstname, "-"), safe(b.Lastname, "-")),
		fmt.Sprintf("Party size   : %d", b.NumPeople),
		fmt.Sprintf("Date / time  : %s", safe(b.BookingDatetime, "-")),
		fmt.Sprintf("Issued       : %s", utils.FormatDateTime(issued)),
	}
	for _, s := range lines {
		pdf.Cell(0, 7, s)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Please quote the booking number when changing this reservation.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("BOOKING_%d_%s.pdf", b.ID, safeFilenamePart(b.Lastname+"_"+b.Firstname))
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if r := []rune(s); len(r) > 40 {
		s = string(r[:40])
	}
	return s
}
