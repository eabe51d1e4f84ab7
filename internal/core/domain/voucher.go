package domain

import (
	"github.com/shopspring/decimal"
)

// VoucherType identifies which finance form a draft belongs to.
type VoucherType string

const (
	PaymentVoucher VoucherType = "Payment"
	ReceiptVoucher VoucherType = "Receipt"
	JournalVoucher VoucherType = "Journal"
	BatchVoucher   VoucherType = "Batch"
)

// IsValid reports whether t is one of the known voucher types.
func (t VoucherType) IsValid() bool {
	switch t {
	case PaymentVoucher, ReceiptVoucher, JournalVoucher, BatchVoucher:
		return true
	}
	return false
}

// IsSimple reports whether t uses simple entry rows (Payment and Receipt share one shape).
func (t VoucherType) IsSimple() bool {
	return t == PaymentVoucher || t == ReceiptVoucher
}

// PaymentMethod gates which settlement fields are required.
type PaymentMethod string

const (
	Cash PaymentMethod = "Cash"
	Bank PaymentMethod = "Bank"
)

// PartyType gates whether a customer or supplier reference is required.
type PartyType string

const (
	PartyCustomer PartyType = "Customer"
	PartySupplier PartyType = "Supplier"
	PartyOther    PartyType = "Other"
)

// IsValid reports whether p is one of the known party types.
func (p PartyType) IsValid() bool {
	return p == PartyCustomer || p == PartySupplier || p == PartyOther
}

// VoucherStatus is the lifecycle state of a voucher on the backend.
type VoucherStatus string

const (
	StatusDraft  VoucherStatus = "Draft"
	StatusPosted VoucherStatus = "Posted"
	// StatusVoid is only ever set by the backend; no client path produces it.
	StatusVoid VoucherStatus = "Void"
)

// CanTransitionTo reports whether the client may move a voucher from s to next.
// Only Draft -> Posted is allowed.
func (s VoucherStatus) CanTransitionTo(next VoucherStatus) bool {
	return s == StatusDraft && next == StatusPosted
}

// VoucherDraft is the transient form state of a voucher being composed.
type VoucherDraft struct {
	DraftID     string      `json:"draftID"`
	VoucherType VoucherType `json:"voucherType"`
	// VoucherID is set when the draft edits an already saved voucher.
	VoucherID string `json:"voucherID,omitempty"`

	Date        Date   `json:"date"`
	Reference   string `json:"reference"`
	Description string `json:"description"`

	PaymentMethod     PaymentMethod `json:"paymentMethod"`
	CashAccount       string        `json:"cashAccount,omitempty"`
	BankAccount       string        `json:"bankAccount,omitempty"`
	TransactionNumber string        `json:"transactionNumber,omitempty"`
	ClearanceDate     Date          `json:"clearanceDate"`

	Party    PartyType `json:"party"`
	Customer string    `json:"customer,omitempty"`
	Supplier string    `json:"supplier,omitempty"`

	Entries        []SimpleEntry  `json:"entries,omitempty"`
	JournalEntries []JournalEntry `json:"journalEntries,omitempty"`
	BatchEntries   []BatchEntry   `json:"batchEntries,omitempty"`

	TotalAmount decimal.Decimal `json:"totalAmount"`
	Status      VoucherStatus   `json:"status"`

	// InputValues holds raw amount strings keyed "field.index" while they are being edited.
	InputValues map[string]string `json:"inputValues,omitempty"`

	OwnerID string `json:"ownerID"`
	AuditFields
}

// NewVoucherDraft returns the empty shape a form starts from.
// Journal forms start with two rows, every other form with one.
func NewVoucherDraft(voucherType VoucherType) VoucherDraft {
	d := VoucherDraft{
		VoucherType: voucherType,
		Status:      StatusDraft,
		TotalAmount: decimal.Zero,
		InputValues: map[string]string{},
	}
	switch {
	case voucherType == JournalVoucher:
		d.JournalEntries = []JournalEntry{NewJournalEntry(), NewJournalEntry()}
	case voucherType == BatchVoucher:
		d.BatchEntries = []BatchEntry{NewBatchEntry()}
	default:
		d.Party = PartyOther
		d.Entries = []SimpleEntry{NewSimpleEntry()}
	}
	return d
}

// Reset returns the draft to its initial empty shape, keeping identity and ownership.
func (d VoucherDraft) Reset() VoucherDraft {
	fresh := NewVoucherDraft(d.VoucherType)
	fresh.DraftID = d.DraftID
	fresh.OwnerID = d.OwnerID
	fresh.AuditFields = d.AuditFields
	return fresh
}

// RowCount returns the number of entry rows for the draft's voucher type.
func (d *VoucherDraft) RowCount() int {
	switch {
	case d.VoucherType == JournalVoucher:
		return len(d.JournalEntries)
	case d.VoucherType == BatchVoucher:
		return len(d.BatchEntries)
	default:
		return len(d.Entries)
	}
}

// EntryDates returns the dates of all batch lines.
func (d *VoucherDraft) EntryDates() []Date {
	dates := make([]Date, 0, len(d.BatchEntries))
	for _, e := range d.BatchEntries {
		dates = append(dates, e.Date)
	}
	return dates
}
