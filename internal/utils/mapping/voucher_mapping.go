package mapping

import (
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/core/domain"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/dto"
)

// ToDomainVoucher converts a backend voucher record. Unparsable dates become zero dates.
func ToDomainVoucher(r dto.VoucherRecord) domain.Voucher {
	v := domain.Voucher{
		ID:                r.ID,
		VoucherNumber:     r.VoucherNumber,
		VoucherType:       domain.VoucherType(r.VoucherType),
		Date:              lenientDate(r.Date),
		Reference:         r.Reference,
		Description:       r.Description,
		PaymentMethod:     domain.PaymentMethod(r.PaymentMethod),
		CashAccount:       r.CashAccount,
		BankAccount:       r.BankAccount,
		TransactionNumber: r.TransactionNumber,
		ClearanceDate:     lenientDate(r.ClearanceDate),
		Party:             domain.PartyType(r.Party),
		Customer:          r.Customer,
		Supplier:          r.Supplier,
		TotalAmount:       r.TotalAmount,
		Status:            domain.VoucherStatus(r.Status),
		IsBatch:           r.IsBatch,
		CreatedAt:         r.CreatedAt,
	}
	if v.VoucherNumber == "" {
		v.VoucherNumber = r.BatchNumber
	}

	switch {
	case v.VoucherType == domain.JournalVoucher:
		for _, e := range r.Entries {
			account := e.AccountID
			if account == "" {
				account = e.ChartAccount
			}
			v.JournalEntries = append(v.JournalEntries, domain.JournalEntry{
				AccountID:    account,
				DebitAmount:  e.DebitAmount,
				CreditAmount: e.CreditAmount,
			})
		}
	case v.VoucherType == domain.BatchVoucher || r.BatchNumber != "":
		v.VoucherType = domain.BatchVoucher
		for _, e := range r.Entries {
			v.BatchEntries = append(v.BatchEntries, domain.BatchEntry{
				Date:         lenientDate(e.Date),
				Party:        domain.PartyType(e.Party),
				Customer:     e.Customer,
				Supplier:     e.Supplier,
				ChartAccount: e.ChartAccount,
				Amount:       e.Amount,
				Narration:    e.Narration,
			})
		}
	default:
		for _, e := range r.Entries {
			v.Entries = append(v.Entries, domain.SimpleEntry{
				ChartAccount: e.ChartAccount,
				Amount:       e.Amount,
				Narration:    e.Narration,
			})
		}
	}
	return v
}

// ToDomainVouchers converts a page of backend records.
func ToDomainVouchers(records []dto.VoucherRecord) []domain.Voucher {
	out := make([]domain.Voucher, 0, len(records))
	for _, r := range records {
		out = append(out, ToDomainVoucher(r))
	}
	return out
}

// VoucherToDraft loads a saved voucher into an editable draft.
func VoucherToDraft(v domain.Voucher) domain.VoucherDraft {
	d := domain.NewVoucherDraft(v.VoucherType)
	d.VoucherID = v.ID
	d.Date = v.Date
	d.Reference = v.Reference
	d.Description = v.Description
	d.PaymentMethod = v.PaymentMethod
	d.CashAccount = v.CashAccount
	d.BankAccount = v.BankAccount
	d.TransactionNumber = v.TransactionNumber
	d.ClearanceDate = v.ClearanceDate
	d.Party = v.Party
	d.Customer = v.Customer
	d.Supplier = v.Supplier
	d.TotalAmount = v.TotalAmount
	d.Status = v.Status
	if len(v.Entries) > 0 {
		d.Entries = v.Entries
	}
	if len(v.JournalEntries) > 0 {
		d.JournalEntries = v.JournalEntries
	}
	if len(v.BatchEntries) > 0 {
		d.BatchEntries = v.BatchEntries
	}
	return d
}

// ToDomainChartAccounts converts backend chart of account rows.
func ToDomainChartAccounts(records []dto.ChartAccountRecord) []domain.ChartAccount {
	out := make([]domain.ChartAccount, 0, len(records))
	for _, r := range records {
		out = append(out, domain.ChartAccount{ID: r.ID, Code: r.Code, Name: r.Name})
	}
	return out
}

// ToDomainCashAccounts converts backend cash account rows.
func ToDomainCashAccounts(records []dto.ChartAccountRecord) []domain.CashAccount {
	out := make([]domain.CashAccount, 0, len(records))
	for _, r := range records {
		out = append(out, domain.CashAccount{ID: r.ID, Name: r.Name})
	}
	return out
}

// ToDomainBanks converts backend bank rows.
func ToDomainBanks(records []dto.BankRecord) []domain.BankAccount {
	out := make([]domain.BankAccount, 0, len(records))
	for _, r := range records {
		out = append(out, domain.BankAccount{ID: r.ID, Name: r.BankName, AccountNumber: r.AccountNumber})
	}
	return out
}

// ToDomainCustomers converts backend customer rows.
func ToDomainCustomers(records []dto.PartyRecord) []domain.Customer {
	out := make([]domain.Customer, 0, len(records))
	for _, r := range records {
		out = append(out, domain.Customer{ID: r.ID, Name: r.Name})
	}
	return out
}

// ToDomainSuppliers converts backend supplier rows.
func ToDomainSuppliers(records []dto.PartyRecord) []domain.Supplier {
	out := make([]domain.Supplier, 0, len(records))
	for _, r := range records {
		out = append(out, domain.Supplier{ID: r.ID, Name: r.Name})
	}
	return out
}

func lenientDate(s string) domain.Date {
	d, err := domain.ParseDate(s)
	if err != nil {
		return domain.Date{}
	}
	return d
}
