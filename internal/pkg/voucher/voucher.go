// Package voucher renders booking vouchers as PDF documents. The whole
// document is buffered in memory; vouchers are a single page.
package voucher

import (
	"bytes"
	"fmt"
	"strconv"

	"hotelbooking/internal/domain"

	"github.com/go-pdf/fpdf"
)

const dateLayout = "02/01/2006"

// Generate renders the voucher for a booking. The booking must have its
// User and Room references resolved.
func Generate(b *domain.Booking) ([]byte, error) {
	if b.User == nil || b.Room == nil {
		return nil, fmt.Errorf("voucher: booking %d is missing user or room data", b.ID)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Voucher", false)
	pdf.AddPage()

	// Header
	pdf.SetFont("Helvetica", "B", 22)
	pdf.SetTextColor(46, 134, 193)
	pdf.CellFormat(0, 12, "Voucher Document", "", 1, "L", false, 0, "")
	pdf.Ln(6)

	writeSubheader(pdf, "Client Information")
	writeRow(pdf, "Name:", b.User.FullName())
	writeRow(pdf, "Email:", b.User.Email)
	pdf.Ln(6)

	writeSubheader(pdf, "Booking Details")
	writeRow(pdf, "Room Type:", string(b.Room.Type))
	writeRow(pdf, "Room Number:", strconv.Itoa(b.Room.Number))
	writeRow(pdf, "Description:", b.Room.Description)
	writeRow(pdf, "Number of Beds:", strconv.Itoa(b.Room.NumberOfBeds))
	writeRow(pdf, "Check-in Date:", b.ArrivalDate.Format(dateLayout))
	writeRow(pdf, "Check-out Date:", b.DepartureDate.Format(dateLayout))
	writeRow(pdf, "Booking Status:", statusLabel(b))
	writeRow(pdf, "Voucher Number:", fmt.Sprintf("VCH/%s/%06d", b.CreatedAt.Format("20060102"), b.ID))

	pdf.Ln(12)
	pdf.SetFont("Helvetica", "I", 14)
	pdf.SetTextColor(46, 204, 113)
	pdf.CellFormat(0, 10, "Thank you for choosing our service!", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeSubheader(pdf *fpdf.Fpdf, text string) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(40, 116, 166)
	pdf.CellFormat(0, 10, text, "", 1, "L", false, 0, "")
	pdf.Ln(2)
}

func writeRow(pdf *fpdf.Fpdf, label, value string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(52, 73, 94)
	pdf.CellFormat(55, 8, label, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	pdf.SetTextColor(44, 62, 80)
	pdf.MultiCell(0, 8, value, "", "L", false)
}

func statusLabel(b *domain.Booking) string {
	switch b.State() {
	case domain.BookingApproved:
		return "Approved"
	case domain.BookingRejected:
		return "Declined"
	default:
		return "Pending"
	}
}
