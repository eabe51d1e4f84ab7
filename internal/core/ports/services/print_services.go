package services

import (
	"context"
	"io"

	"github.com/Syed-Hadii/ERP-Software-sub003/internal/core/domain"
)

// PrintSvc builds and archives printable views of finalized vouchers.
type PrintSvc interface {
	// BuildPrintView renders a voucher. It never fails; missing values render as N/A.
	BuildPrintView(voucher domain.Voucher, ref *domain.ReferenceData) domain.PrintView

	// ArchivePrintView keeps a view retrievable by its voucher number.
	ArchivePrintView(view domain.PrintView)

	// GetPrintView returns apperrors.ErrNotFound for unknown or evicted numbers.
	GetPrintView(ctx context.Context, voucherNumber string) (*domain.PrintView, error)

	// ExportXLSX writes the archived view as a spreadsheet.
	ExportXLSX(ctx context.Context, voucherNumber string, w io.Writer) error
}

// PrintExporter writes a print view in a document format.
type PrintExporter interface {
	WriteXLSX(view domain.PrintView, w io.Writer) error
}
