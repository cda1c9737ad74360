// Package export renders an account statement as CSV, XLSX or PDF.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/shandysiswandi/gobank/internal/bank/entity"
	"github.com/shandysiswandi/gobank/internal/pkg/pkgerror"
	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
	FormatPDF  Format = "pdf"
)

var ErrUnknownFormat = errors.New("format must be one of csv, xlsx, pdf")

var header = []string{"ID", "Recipient ID", "Amount", "Date"}

// Statement is the snapshot of one account that gets rendered.
type Statement struct {
	AccountID    string
	Balance      decimal.Decimal
	GeneratedAt  string
	Transactions []entity.Transaction
}

func ParseFormat(value string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(value))); f {
	case FormatCSV, FormatXLSX, FormatPDF:
		return f, nil
	case "":
		return FormatCSV, nil
	default:
		return "", pkgerror.NewInvalidInput(ErrUnknownFormat)
	}
}

func (f Format) ContentType() string {
	switch f {
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatPDF:
		return "application/pdf"
	default:
		return "text/csv"
	}
}

func (f Format) Filename(accountID string) string {
	return fmt.Sprintf("statement_%s.%s", accountID, f)
}

func Render(w io.Writer, format Format, st Statement) error {
	switch format {
	case FormatCSV:
		return renderCSV(w, st)
	case FormatXLSX:
		return renderXLSX(w, st)
	case FormatPDF:
		return renderPDF(w, st)
	default:
		return pkgerror.NewInvalidInput(ErrUnknownFormat)
	}
}

func row(tx entity.Transaction) []string {
	return []string{
		strconv.FormatInt(tx.ID, 10),
		tx.RecipientID,
		tx.Amount.String(),
		tx.Timestamp,
	}
}

func renderCSV(w io.Writer, st Statement) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return err
	}
	for _, tx := range st.Transactions {
		if err := cw.Write(row(tx)); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func renderXLSX(w io.Writer, st Statement) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Transactions")
	if err != nil {
		return err
	}

	r := sheet.AddRow()
	for _, h := range header {
		r.AddCell().SetString(h)
	}

	for _, tx := range st.Transactions {
		r = sheet.AddRow()
		for _, v := range row(tx) {
			r.AddCell().SetString(v)
		}
	}

	sheet.AddRow()
	r = sheet.AddRow()
	r.AddCell().SetString("Balance")
	r.AddCell().SetString(st.Balance.String())

	return file.Write(w)
}

func renderPDF(w io.Writer, st Statement) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Account Statement")
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(40, 7, "Account: "+st.AccountID)
	pdf.Ln(6)
	pdf.Cell(40, 7, "Balance: "+st.Balance.String())
	pdf.Ln(6)
	if st.GeneratedAt != "" {
		pdf.Cell(40, 7, "Generated: "+st.GeneratedAt)
		pdf.Ln(6)
	}
	pdf.Ln(4)

	widths := []float64{45, 45, 40, 50}

	pdf.SetFont("Arial", "B", 11)
	for i, h := range header {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "", false, 0, "")
	}
	pdf.Ln(7)

	pdf.SetFont("Arial", "", 11)
	for _, tx := range st.Transactions {
		for i, v := range row(tx) {
			pdf.CellFormat(widths[i], 7, v, "1", 0, "", false, 0, "")
		}
		pdf.Ln(7)
	}

	return pdf.Output(w)
}
