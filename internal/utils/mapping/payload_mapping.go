package mapping

import (
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/core/domain"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/dto"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/utils/accounting"
)

// ToTransactionEntryPayload maps a Payment or Receipt draft to its wire payload.
// Settlement and party fields that do not apply to the selection are dropped.
func ToTransactionEntryPayload(d domain.VoucherDraft) dto.TransactionEntryPayload {
	p := dto.TransactionEntryPayload{
		VoucherType:   string(d.VoucherType),
		Date:          d.Date.String(),
		Reference:     d.Reference,
		Description:   d.Description,
		PaymentMethod: string(d.PaymentMethod),
		Party:         string(d.Party),
		TotalAmount:   d.TotalAmount.InexactFloat64(),
		IsBatch:       true,
		Entries:       make([]dto.SimpleEntryPayload, 0, len(d.Entries)),
	}
	if d.Status != "" {
		p.Status = string(d.Status)
	}
	applySettlement(d, &p.CashAccount, &p.BankAccount, &p.TransactionNumber, &p.ClearanceDate)
	switch d.Party {
	case domain.PartyCustomer:
		p.Customer = d.Customer
	case domain.PartySupplier:
		p.Supplier = d.Supplier
	}
	for _, e := range d.Entries {
		p.Entries = append(p.Entries, dto.SimpleEntryPayload{
			ChartAccount: e.ChartAccount,
			Amount:       e.Amount.InexactFloat64(),
			Narration:    e.Narration,
		})
	}
	return p
}

// ToJournalVoucherPayload maps a Journal draft to its wire payload.
func ToJournalVoucherPayload(d domain.VoucherDraft) dto.JournalVoucherPayload {
	debit, credit := accounting.SumJournal(d.JournalEntries)
	p := dto.JournalVoucherPayload{
		Date:        d.Date.String(),
		Reference:   d.Reference,
		Description: d.Description,
		TotalDebit:  debit.InexactFloat64(),
		TotalCredit: credit.InexactFloat64(),
		Entries:     make([]dto.JournalEntryPayload, 0, len(d.JournalEntries)),
	}
	for _, e := range d.JournalEntries {
		p.Entries = append(p.Entries, dto.JournalEntryPayload{
			AccountID:    e.AccountID,
			DebitAmount:  e.DebitAmount.InexactFloat64(),
			CreditAmount: e.CreditAmount.InexactFloat64(),
		})
	}
	return p
}

// ToBatchEntryPayload maps a Batch draft to its wire payload.
func ToBatchEntryPayload(d domain.VoucherDraft) dto.BatchEntryPayload {
	p := dto.BatchEntryPayload{
		Reference:     d.Reference,
		Description:   d.Description,
		PaymentMethod: string(d.PaymentMethod),
		TotalAmount:   accounting.SumBatch(d.BatchEntries).InexactFloat64(),
		Entries:       make([]dto.BatchLinePayload, 0, len(d.BatchEntries)),
	}
	applySettlement(d, &p.CashAccount, &p.BankAccount, &p.TransactionNumber, &p.ClearanceDate)
	for _, e := range d.BatchEntries {
		line := dto.BatchLinePayload{
			Date:         e.Date.String(),
			Party:        string(e.Party),
			ChartAccount: e.ChartAccount,
			Amount:       e.Amount.InexactFloat64(),
			Narration:    e.Narration,
		}
		switch e.Party {
		case domain.PartyCustomer:
			line.Customer = e.Customer
		case domain.PartySupplier:
			line.Supplier = e.Supplier
		}
		p.Entries = append(p.Entries, line)
	}
	return p
}

func applySettlement(d domain.VoucherDraft, cash, bank, txn, clearance *string) {
	switch d.PaymentMethod {
	case domain.Cash:
		*cash = d.CashAccount
	case domain.Bank:
		*bank = d.BankAccount
		*txn = d.TransactionNumber
		*clearance = d.ClearanceDate.String()
	}
}
