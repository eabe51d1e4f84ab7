package accounting

import (
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SumSimple totals the committed amounts of Payment/Receipt rows.
func SumSimple(entries []domain.SimpleEntry) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range entries {
		sum = sum.Add(e.Amount)
	}
	return sum
}

// SumBatch totals the committed amounts of batch lines.
func SumBatch(entries []domain.BatchEntry) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range entries {
		sum = sum.Add(e.Amount)
	}
	return sum
}

// SumJournal returns the debit and credit totals of journal lines.
func SumJournal(entries []domain.JournalEntry) (debit, credit decimal.Decimal) {
	debit, credit = decimal.Zero, decimal.Zero
	for _, e := range entries {
		debit = debit.Add(e.DebitAmount)
		credit = credit.Add(e.CreditAmount)
	}
	return debit, credit
}

// DraftTotal is the derived total of a draft: the row sum for simple and batch
// vouchers, the debit side for journals.
func DraftTotal(d *domain.VoucherDraft) decimal.Decimal {
	switch {
	case d.VoucherType == domain.JournalVoucher:
		debit, _ := SumJournal(d.JournalEntries)
		return debit
	case d.VoucherType == domain.BatchVoucher:
		return SumBatch(d.BatchEntries)
	default:
		return SumSimple(d.Entries)
	}
}

// IsBalanced reports whether journal debits equal credits and are non-zero.
func IsBalanced(entries []domain.JournalEntry) bool {
	debit, credit := SumJournal(entries)
	return debit.Equal(credit) && debit.IsPositive()
}
