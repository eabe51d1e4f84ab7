package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Voucher is a voucher as stored by the ERP backend.
type Voucher struct {
	ID            string        `json:"id"`
	VoucherNumber string        `json:"voucherNumber"`
	VoucherType   VoucherType   `json:"voucherType"`
	Date          Date          `json:"date"`
	Reference     string        `json:"reference"`
	Description   string        `json:"description"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`

	CashAccount       string `json:"cashAccount,omitempty"`
	BankAccount       string `json:"bankAccount,omitempty"`
	TransactionNumber string `json:"transactionNumber,omitempty"`
	ClearanceDate     Date   `json:"clearanceDate"`

	Party    PartyType `json:"party"`
	Customer string    `json:"customer,omitempty"`
	Supplier string    `json:"supplier,omitempty"`

	Entries        []SimpleEntry  `json:"entries,omitempty"`
	JournalEntries []JournalEntry `json:"journalEntries,omitempty"`
	BatchEntries   []BatchEntry   `json:"batchEntries,omitempty"`

	TotalAmount decimal.Decimal `json:"totalAmount"`
	Status      VoucherStatus   `json:"status"`
	IsBatch     bool            `json:"isBatch"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// VoucherPage is one page of a backend voucher listing.
type VoucherPage struct {
	Vouchers   []Voucher `json:"vouchers"`
	Page       int       `json:"page"`
	Limit      int       `json:"limit"`
	Total      int       `json:"total"`
	TotalPages int       `json:"totalPages"`
}

// HasMore reports whether pages follow this one.
func (p VoucherPage) HasMore() bool {
	return p.Page < p.TotalPages
}

// VoucherFilter narrows a voucher listing.
type VoucherFilter struct {
	Page        int
	Limit       int
	Search      string
	VoucherType VoucherType
	Status      VoucherStatus
	IsBatch     *bool
}
