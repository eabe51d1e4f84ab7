package accounting

import (
	"testing"

	"github.com/Syed-Hadii/ERP-Software-sub003/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDraftTotal(t *testing.T) {
	d := domain.NewVoucherDraft(domain.PaymentVoucher)
	d.Entries = []domain.SimpleEntry{
		{ChartAccount: "a", Amount: decimal.NewFromInt(40)},
		{ChartAccount: "b", Amount: decimal.NewFromInt(60)},
	}
	assert.True(t, DraftTotal(&d).Equal(decimal.NewFromInt(100)))

	j := domain.NewVoucherDraft(domain.JournalVoucher)
	j.JournalEntries = []domain.JournalEntry{
		{AccountID: "a", DebitAmount: decimal.NewFromInt(100), CreditAmount: decimal.Zero},
		{AccountID: "b", DebitAmount: decimal.Zero, CreditAmount: decimal.NewFromInt(99)},
	}
	assert.True(t, DraftTotal(&j).Equal(decimal.NewFromInt(100)), "journal total is the debit side")
	assert.False(t, IsBalanced(j.JournalEntries))

	j.JournalEntries[1].CreditAmount = decimal.NewFromInt(100)
	assert.True(t, IsBalanced(j.JournalEntries))
}

func TestIsBalancedRejectsEmptyJournal(t *testing.T) {
	assert.False(t, IsBalanced([]domain.JournalEntry{domain.NewJournalEntry(), domain.NewJournalEntry()}))
}
