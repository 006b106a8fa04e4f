// Package csvexport renders the document register as CSV for download.
package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"

	"edms/internal/domain"
)

// utf8BOM makes Excel detect the encoding when the file is opened directly.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var registerHeader = []string{
	"Document ID",
	"Employee ID",
	"Employee Name",
	"Department",
	"Category Code",
	"Category",
	"Status",
	"File Size (bytes)",
	"Uploaded At",
}

// WriteRegister writes the document register rows as CSV, prefixed with a
// UTF-8 BOM.
func WriteRegister(w io.Writer, docs []domain.DocumentView) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return fmt.Errorf("csvexport: writing BOM: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(registerHeader); err != nil {
		return fmt.Errorf("csvexport: writing header: %w", err)
	}

	for _, d := range docs {
		record := []string{
			d.ID.String(),
			d.EmployeeID,
			d.EmployeeName,
			d.Department,
			d.CategoryCode,
			d.CategoryLabel,
			string(d.Status),
			fmt.Sprintf("%d", d.FileSize),
			d.UploadedAt.UTC().Format("2006-01-02 15:04:05"),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("csvexport: writing record: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("csvexport: flush: %w", err)
	}
	return nil
}
