package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Envelope is the response wrapper every ERP backend endpoint uses.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Message string `json:"message"`
}

// SimpleEntryPayload is one account line of a transaction entry.
type SimpleEntryPayload struct {
	ChartAccount string  `json:"chartAccount"`
	Amount       float64 `json:"amount"`
	Narration    string  `json:"narration,omitempty"`
}

// TransactionEntryPayload is the body of POST /transaction-entry/add and PUT /transaction-entry/update/:id.
type TransactionEntryPayload struct {
	VoucherType       string               `json:"voucherType"`
	Date              string               `json:"date"`
	Reference         string               `json:"reference,omitempty"`
	Description       string               `json:"description,omitempty"`
	PaymentMethod     string               `json:"paymentMethod"`
	CashAccount       string               `json:"cashAccount,omitempty"`
	BankAccount       string               `json:"bankAccount,omitempty"`
	TransactionNumber string               `json:"transactionNumber,omitempty"`
	ClearanceDate     string               `json:"clearanceDate,omitempty"`
	Party             string               `json:"party"`
	Customer          string               `json:"customer,omitempty"`
	Supplier          string               `json:"supplier,omitempty"`
	Entries           []SimpleEntryPayload `json:"entries"`
	TotalAmount       float64              `json:"totalAmount"`
	Status            string               `json:"status,omitempty"`
	IsBatch           bool                 `json:"isBatch"`
}

// JournalEntryPayload is one debit or credit line of a journal voucher.
type JournalEntryPayload struct {
	AccountID    string  `json:"accountId"`
	DebitAmount  float64 `json:"debitAmount"`
	CreditAmount float64 `json:"creditAmount"`
}

// JournalVoucherPayload is the body of POST /journalvoucher/add.
type JournalVoucherPayload struct {
	Date        string                `json:"date"`
	Reference   string                `json:"reference,omitempty"`
	Description string                `json:"description,omitempty"`
	Entries     []JournalEntryPayload `json:"entries"`
	TotalDebit  float64               `json:"totalDebit"`
	TotalCredit float64               `json:"totalCredit"`
}

// BatchLinePayload is one mini voucher of a batch.
type BatchLinePayload struct {
	Date         string  `json:"date"`
	Party        string  `json:"party"`
	Customer     string  `json:"customer,omitempty"`
	Supplier     string  `json:"supplier,omitempty"`
	ChartAccount string  `json:"chartAccount"`
	Amount       float64 `json:"amount"`
	Narration    string  `json:"narration,omitempty"`
}

// BatchEntryPayload is the body of POST /batch-entry and PUT /batch-entry/:id.
type BatchEntryPayload struct {
	Reference         string             `json:"reference,omitempty"`
	Description       string             `json:"description,omitempty"`
	PaymentMethod     string             `json:"paymentMethod"`
	CashAccount       string             `json:"cashAccount,omitempty"`
	BankAccount       string             `json:"bankAccount,omitempty"`
	TransactionNumber string             `json:"transactionNumber,omitempty"`
	ClearanceDate     string             `json:"clearanceDate,omitempty"`
	Entries           []BatchLinePayload `json:"entries"`
	TotalAmount       float64            `json:"totalAmount"`
}

// StatusPayload is the body of a status-only voucher update.
type StatusPayload struct {
	Status string `json:"status"`
}

// EntryRecord is an entry line as returned by the backend. Which fields are set depends on
// the voucher kind.
type EntryRecord struct {
	ChartAccount string          `json:"chartAccount,omitempty"`
	AccountID    string          `json:"accountId,omitempty"`
	Amount       decimal.Decimal `json:"amount"`
	DebitAmount  decimal.Decimal `json:"debitAmount"`
	CreditAmount decimal.Decimal `json:"creditAmount"`
	Narration    string          `json:"narration,omitempty"`
	Date         string          `json:"date,omitempty"`
	Party        string          `json:"party,omitempty"`
	Customer     string          `json:"customer,omitempty"`
	Supplier     string          `json:"supplier,omitempty"`
}

// VoucherRecord is a voucher or batch as returned by the backend.
type VoucherRecord struct {
	ID                string          `json:"_id"`
	VoucherNumber     string          `json:"voucherNumber"`
	BatchNumber       string          `json:"batchNumber,omitempty"`
	VoucherType       string          `json:"voucherType"`
	Date              string          `json:"date"`
	Reference         string          `json:"reference"`
	Description       string          `json:"description"`
	PaymentMethod     string          `json:"paymentMethod"`
	CashAccount       string          `json:"cashAccount,omitempty"`
	BankAccount       string          `json:"bankAccount,omitempty"`
	TransactionNumber string          `json:"transactionNumber,omitempty"`
	ClearanceDate     string          `json:"clearanceDate,omitempty"`
	Party             string          `json:"party,omitempty"`
	Customer          string          `json:"customer,omitempty"`
	Supplier          string          `json:"supplier,omitempty"`
	Entries           []EntryRecord   `json:"entries"`
	TotalAmount       decimal.Decimal `json:"totalAmount"`
	Status            string          `json:"status"`
	IsBatch           bool            `json:"isBatch"`
	CreatedAt         time.Time       `json:"createdAt"`
}

// PaginationRecord is the paging block of a backend listing.
type PaginationRecord struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// VoucherListRecord is the data block of a backend voucher listing.
type VoucherListRecord struct {
	Entries    []VoucherRecord  `json:"entries"`
	Pagination PaginationRecord `json:"pagination"`
}

// ChartAccountRecord is a chart of accounts row as returned by the backend.
type ChartAccountRecord struct {
	ID   string `json:"_id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// BankRecord is a bank row as returned by the backend.
type BankRecord struct {
	ID            string `json:"_id"`
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
}

// PartyRecord is a customer or supplier row as returned by the backend.
type PartyRecord struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}
