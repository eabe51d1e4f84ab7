// Package export renders print views as documents.
package export

import (
	"fmt"
	"io"

	"github.com/Syed-Hadii/ERP-Software-sub003/internal/core/domain"
	portssvc "github.com/Syed-Hadii/ERP-Software-sub003/internal/core/ports/services"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Voucher"

// XLSXExporter writes a print view as a single-sheet workbook.
type XLSXExporter struct{}

var _ portssvc.PrintExporter = XLSXExporter{}

// NewXLSXExporter creates the spreadsheet exporter.
func NewXLSXExporter() XLSXExporter {
	return XLSXExporter{}
}

func (XLSXExporter) WriteXLSX(view domain.PrintView, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return err
	}

	row := 1
	set := func(col string, value any) {
		_ = f.SetCellValue(sheetName, fmt.Sprintf("%s%d", col, row), value)
	}

	set("A", view.Title)
	if bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}}); err == nil {
		_ = f.SetCellStyle(sheetName, "A1", "A1", bold)
	}
	row += 2

	header := [][2]string{
		{"Voucher Number", view.VoucherNumber},
		{"Date", view.Date},
		{"Reference", view.Reference},
		{"Description", view.Description},
		{"Status", view.Status},
	}
	if view.VoucherType != domain.JournalVoucher {
		header = append(header,
			[2]string{"Payment Method", view.PaymentMethod},
			[2]string{"Account", view.SettlementAccount},
		)
		if view.TransactionNumber != "" {
			header = append(header,
				[2]string{"Transaction Number", view.TransactionNumber},
				[2]string{"Clearance Date", view.ClearanceDate},
			)
		}
	}
	if view.PartyType != "" {
		header = append(header,
			[2]string{"Party", view.PartyType},
			[2]string{"Party Name", view.PartyName},
		)
	}
	for _, kv := range header {
		set("A", kv[0])
		set("B", kv[1])
		row++
	}
	row++

	columns, cells := lineLayout(view)
	for i, title := range columns {
		set(column(i), title)
	}
	row++
	for _, line := range view.Lines {
		for i, value := range cells(line) {
			set(column(i), value)
		}
		row++
	}

	last := len(columns) - 1
	if view.VoucherType == domain.JournalVoucher {
		set(column(last-2), "Total")
		set(column(last-1), view.TotalDebit)
		set(column(last), view.TotalCredit)
	} else {
		set(column(last-1), "Total")
		set(column(last), view.Total)
	}

	_ = f.SetColWidth(sheetName, "A", "F", 22)
	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// lineLayout returns the column titles of the entry table and how to fill a row.
func lineLayout(view domain.PrintView) ([]string, func(domain.PrintLine) []string) {
	switch view.VoucherType {
	case domain.JournalVoucher:
		return []string{"Account", "Debit", "Credit"}, func(l domain.PrintLine) []string {
			return []string{l.Account, l.Debit, l.Credit}
		}
	case domain.BatchVoucher:
		return []string{"Date", "Account", "Party", "Narration", "Amount"}, func(l domain.PrintLine) []string {
			return []string{l.Date, l.Account, l.Party, l.Narration, l.Amount}
		}
	default:
		return []string{"Account", "Narration", "Amount"}, func(l domain.PrintLine) []string {
			return []string{l.Account, l.Narration, l.Amount}
		}
	}
}

func column(i int) string {
	name, err := excelize.ColumnNumberToName(i + 1)
	if err != nil {
		return "A"
	}
	return name
}
