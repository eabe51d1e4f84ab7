package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/Syed-Hadii/ERP-Software-sub003/internal/apperrors"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/core/domain"
	portssvc "github.com/Syed-Hadii/ERP-Software-sub003/internal/core/ports/services"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/utils/accounting"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/utils/numfmt"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// PrintDateLayout is how dates appear on printed vouchers.
const PrintDateLayout = "02 Jan 2006"

const (
	defaultArchiveSize = 256
	defaultArchiveTTL  = 24 * time.Hour
)

var voucherTitles = map[domain.VoucherType]string{
	domain.PaymentVoucher: "Payment Voucher",
	domain.ReceiptVoucher: "Receipt Voucher",
	domain.JournalVoucher: "Journal Voucher",
	domain.BatchVoucher:   "Batch Voucher",
}

type printService struct {
	BaseService
	formatter *numfmt.Formatter
	archive   *expirable.LRU[string, domain.PrintView]
	exporter  portssvc.PrintExporter
}

// PrintServiceOption is a functional option for configuring the print service
type PrintServiceOption func(*printService)

// WithPrintFormatter sets the formatter used for amounts.
func WithPrintFormatter(f *numfmt.Formatter) PrintServiceOption {
	return func(s *printService) {
		if f != nil {
			s.formatter = f
		}
	}
}

// WithPrintArchive sizes the archive of recent print views.
func WithPrintArchive(size int, ttl time.Duration) PrintServiceOption {
	return func(s *printService) {
		if size <= 0 {
			size = defaultArchiveSize
		}
		s.archive = expirable.NewLRU[string, domain.PrintView](size, nil, ttl)
	}
}

// NewPrintService creates the print service.
func NewPrintService(exporter portssvc.PrintExporter, options ...PrintServiceOption) portssvc.PrintSvc {
	svc := &printService{
		formatter: numfmt.Default(),
		archive:   expirable.NewLRU[string, domain.PrintView](defaultArchiveSize, nil, defaultArchiveTTL),
		exporter:  exporter,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.PrintSvc = (*printService)(nil)

func (s *printService) BuildPrintView(v domain.Voucher, ref *domain.ReferenceData) domain.PrintView {
	title, ok := voucherTitles[v.VoucherType]
	if !ok {
		title = "Voucher"
	}
	view := domain.PrintView{
		Title:         title,
		VoucherNumber: orNA(v.VoucherNumber),
		VoucherType:   v.VoucherType,
		Date:          printDate(v.Date),
		Reference:     orNA(v.Reference),
		Description:   orNA(v.Description),
		Status:        orNA(string(v.Status)),
	}

	if v.VoucherType != domain.JournalVoucher {
		view.PaymentMethod = orNA(string(v.PaymentMethod))
		switch v.PaymentMethod {
		case domain.Cash:
			view.SettlementAccount = resolved(ref.AccountName(v.CashAccount), v.CashAccount)
		case domain.Bank:
			view.SettlementAccount = resolved(ref.BankName(v.BankAccount), v.BankAccount)
			view.TransactionNumber = orNA(v.TransactionNumber)
			view.ClearanceDate = printDate(v.ClearanceDate)
		default:
			view.SettlementAccount = domain.NotAvailable
		}
	}

	switch {
	case v.VoucherType == domain.JournalVoucher:
		s.journalLines(&view, v, ref)
	case v.VoucherType == domain.BatchVoucher:
		s.batchLines(&view, v, ref)
	default:
		view.PartyType = orNA(string(v.Party))
		view.PartyName = partyName(ref, v.Party, v.Customer, v.Supplier)
		s.simpleLines(&view, v, ref)
	}
	return view
}

func (s *printService) simpleLines(view *domain.PrintView, v domain.Voucher, ref *domain.ReferenceData) {
	view.Lines = make([]domain.PrintLine, 0, len(v.Entries))
	for _, e := range v.Entries {
		view.Lines = append(view.Lines, domain.PrintLine{
			Account:   resolved(ref.AccountName(e.ChartAccount), e.ChartAccount),
			Narration: orNA(e.Narration),
			Amount:    s.formatter.FormatDecimal(e.Amount),
		})
	}
	total := accounting.SumSimple(v.Entries)
	if len(v.Entries) == 0 {
		total = v.TotalAmount
	}
	view.Total = s.formatter.FormatDecimal(total)
}

func (s *printService) journalLines(view *domain.PrintView, v domain.Voucher, ref *domain.ReferenceData) {
	view.Lines = make([]domain.PrintLine, 0, len(v.JournalEntries))
	for _, e := range v.JournalEntries {
		view.Lines = append(view.Lines, domain.PrintLine{
			Account: resolved(ref.AccountName(e.AccountID), e.AccountID),
			Debit:   s.formatter.FormatDecimal(e.DebitAmount),
			Credit:  s.formatter.FormatDecimal(e.CreditAmount),
		})
	}
	debit, credit := accounting.SumJournal(v.JournalEntries)
	view.TotalDebit = s.formatter.FormatDecimal(debit)
	view.TotalCredit = s.formatter.FormatDecimal(credit)
	view.Total = view.TotalDebit
}

func (s *printService) batchLines(view *domain.PrintView, v domain.Voucher, ref *domain.ReferenceData) {
	view.Lines = make([]domain.PrintLine, 0, len(v.BatchEntries))
	for _, e := range v.BatchEntries {
		view.Lines = append(view.Lines, domain.PrintLine{
			Date:      printDate(e.Date),
			Account:   resolved(ref.AccountName(e.ChartAccount), e.ChartAccount),
			Party:     partyName(ref, e.Party, e.Customer, e.Supplier),
			Narration: orNA(e.Narration),
			Amount:    s.formatter.FormatDecimal(e.Amount),
		})
	}
	total := accounting.SumBatch(v.BatchEntries)
	if len(v.BatchEntries) == 0 {
		total = v.TotalAmount
	}
	view.Total = s.formatter.FormatDecimal(total)
}

func (s *printService) ArchivePrintView(view domain.PrintView) {
	if view.VoucherNumber == "" || view.VoucherNumber == domain.NotAvailable {
		return
	}
	s.archive.Add(view.VoucherNumber, view)
}

func (s *printService) GetPrintView(ctx context.Context, voucherNumber string) (*domain.PrintView, error) {
	view, ok := s.archive.Get(voucherNumber)
	if !ok {
		s.LogDebug(ctx, "Print view not archived", slog.String("voucher_number", voucherNumber))
		return nil, fmt.Errorf("%w: print view for voucher %s", apperrors.ErrNotFound, voucherNumber)
	}
	return &view, nil
}

func (s *printService) ExportXLSX(ctx context.Context, voucherNumber string, w io.Writer) error {
	view, err := s.GetPrintView(ctx, voucherNumber)
	if err != nil {
		return err
	}
	if s.exporter == nil {
		return fmt.Errorf("no spreadsheet exporter configured")
	}
	if err := s.exporter.WriteXLSX(*view, w); err != nil {
		s.LogError(ctx, err, "Failed to export print view", slog.String("voucher_number", voucherNumber))
		return fmt.Errorf("failed to export voucher %s: %w", voucherNumber, err)
	}
	return nil
}

func printDate(d domain.Date) string {
	if d.IsZero() {
		return domain.NotAvailable
	}
	return d.Format(PrintDateLayout)
}

func orNA(s string) string {
	if s == "" {
		return domain.NotAvailable
	}
	return s
}

// resolved prefers a looked-up display name, then the raw id, then N/A.
func resolved(name, id string) string {
	if name != "" {
		return name
	}
	return orNA(id)
}

func partyName(ref *domain.ReferenceData, party domain.PartyType, customer, supplier string) string {
	switch party {
	case domain.PartyCustomer:
		return resolved(ref.CustomerName(customer), customer)
	case domain.PartySupplier:
		return resolved(ref.SupplierName(supplier), supplier)
	case domain.PartyOther:
		return string(domain.PartyOther)
	}
	return domain.NotAvailable
}
