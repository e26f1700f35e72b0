package messages

import (
	"encoding/csv"
	"io"
	"time"

	"github.com/skaran/portfolio/internal/models"
)

// ExportCSV writes the messages as CSV with Name/Email/Message/Date columns,
// the same shape the admin panel download produces.
func ExportCSV(w io.Writer, contacts []models.Contact) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"Name", "Email", "Message", "Date"}); err != nil {
		return err
	}
	for _, c := range contacts {
		record := []string{
			c.Name,
			c.Email,
			c.Message,
			c.CreatedAt.Format(time.RFC3339),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ExportFilename names the download file for the given day, e.g.
// contact-messages-2026-09-01.csv.
func ExportFilename(now time.Time) string {
	return "contact-messages-" + now.Format("2006-01-02") + ".csv"
}
