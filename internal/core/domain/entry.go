package domain

import "github.com/shopspring/decimal"

// Row field names, shared by the entry-row model, validation keys and the shadow buffer.
const (
	FieldChartAccount = "chartAccount"
	FieldAmount       = "amount"
	FieldNarration    = "narration"
	FieldAccountID    = "accountId"
	FieldDebitAmount  = "debitAmount"
	FieldCreditAmount = "creditAmount"
	FieldDate         = "date"
	FieldParty        = "party"
	FieldCustomer     = "customer"
	FieldSupplier     = "supplier"
)

// SimpleEntry is one account line of a Payment or Receipt voucher.
type SimpleEntry struct {
	ChartAccount string          `json:"chartAccount"`
	Amount       decimal.Decimal `json:"amount"`
	Narration    string          `json:"narration"`
}

// NewSimpleEntry returns a zero-valued simple row.
func NewSimpleEntry() SimpleEntry {
	return SimpleEntry{Amount: decimal.Zero}
}

// JournalEntry is one debit or credit line of a Journal voucher.
// Exactly one of DebitAmount and CreditAmount is expected to be non-zero.
type JournalEntry struct {
	AccountID    string          `json:"accountId"`
	DebitAmount  decimal.Decimal `json:"debitAmount"`
	CreditAmount decimal.Decimal `json:"creditAmount"`
}

// NewJournalEntry returns a zero-valued journal row.
func NewJournalEntry() JournalEntry {
	return JournalEntry{DebitAmount: decimal.Zero, CreditAmount: decimal.Zero}
}

// IsDebit reports whether the line carries a debit amount.
func (e JournalEntry) IsDebit() bool {
	return !e.DebitAmount.IsZero()
}

// BatchEntry is a self-contained mini voucher inside a batch.
// It shares the batch's payment method but carries its own date and party.
type BatchEntry struct {
	Date         Date            `json:"date"`
	Party        PartyType       `json:"party"`
	Customer     string          `json:"customer,omitempty"`
	Supplier     string          `json:"supplier,omitempty"`
	ChartAccount string          `json:"chartAccount"`
	Amount       decimal.Decimal `json:"amount"`
	Narration    string          `json:"narration"`
}

// NewBatchEntry returns a zero-valued batch row.
func NewBatchEntry() BatchEntry {
	return BatchEntry{Party: PartyOther, Amount: decimal.Zero}
}
