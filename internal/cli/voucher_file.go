package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/core/domain"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/utils/accounting"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/utils/numfmt"
	"github.com/shopspring/decimal"
)

// VoucherFile is a voucher as written by hand in a JSON or TOML file.
// Amounts are display strings, so "1,250.75" is accepted.
type VoucherFile struct {
	VoucherType       string      `json:"voucherType" toml:"voucher_type"`
	VoucherID         string      `json:"voucherID" toml:"voucher_id"`
	Date              string      `json:"date" toml:"date"`
	Reference         string      `json:"reference" toml:"reference"`
	Description       string      `json:"description" toml:"description"`
	PaymentMethod     string      `json:"paymentMethod" toml:"payment_method"`
	CashAccount       string      `json:"cashAccount" toml:"cash_account"`
	BankAccount       string      `json:"bankAccount" toml:"bank_account"`
	TransactionNumber string      `json:"transactionNumber" toml:"transaction_number"`
	ClearanceDate     string      `json:"clearanceDate" toml:"clearance_date"`
	Party             string      `json:"party" toml:"party"`
	Customer          string      `json:"customer" toml:"customer"`
	Supplier          string      `json:"supplier" toml:"supplier"`
	TotalAmount       string      `json:"totalAmount" toml:"total_amount"`
	Entries           []EntryFile `json:"entries" toml:"entries"`
}

// EntryFile is one entry line. Which fields apply depends on the voucher type.
type EntryFile struct {
	Date         string `json:"date" toml:"date"`
	Party        string `json:"party" toml:"party"`
	Customer     string `json:"customer" toml:"customer"`
	Supplier     string `json:"supplier" toml:"supplier"`
	ChartAccount string `json:"chartAccount" toml:"chart_account"`
	AccountID    string `json:"accountId" toml:"account_id"`
	Amount       string `json:"amount" toml:"amount"`
	Debit        string `json:"debit" toml:"debit"`
	Credit       string `json:"credit" toml:"credit"`
	Narration    string `json:"narration" toml:"narration"`
}

// LoadVoucherFile reads path as TOML when it ends in .toml and as JSON otherwise.
func LoadVoucherFile(path string) (*VoucherFile, error) {
	var vf VoucherFile
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.DecodeFile(path, &vf); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		return &vf, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, &vf); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &vf, nil
}

// Draft converts the file into a voucher draft. A missing total on a Payment, Receipt or
// Batch voucher is taken from the entries.
func (vf *VoucherFile) Draft(f *numfmt.Formatter) (domain.VoucherDraft, error) {
	voucherType := domain.VoucherType(vf.VoucherType)
	if !voucherType.IsValid() {
		return domain.VoucherDraft{}, fmt.Errorf("unknown voucher type %q", vf.VoucherType)
	}
	d := domain.NewVoucherDraft(voucherType)
	d.VoucherID = vf.VoucherID
	d.Reference = vf.Reference
	d.Description = vf.Description
	d.PaymentMethod = domain.PaymentMethod(vf.PaymentMethod)
	d.CashAccount = vf.CashAccount
	d.BankAccount = vf.BankAccount
	d.TransactionNumber = vf.TransactionNumber
	d.Customer = vf.Customer
	d.Supplier = vf.Supplier
	if vf.Party != "" {
		d.Party = domain.PartyType(vf.Party)
	}

	var err error
	if d.Date, err = domain.ParseDate(vf.Date); err != nil {
		return d, err
	}
	if d.ClearanceDate, err = domain.ParseDate(vf.ClearanceDate); err != nil {
		return d, fmt.Errorf("clearance date: %w", err)
	}

	switch {
	case voucherType == domain.JournalVoucher:
		d.JournalEntries = make([]domain.JournalEntry, 0, len(vf.Entries))
		for i, e := range vf.Entries {
			debit, err := amount(f, e.Debit)
			if err != nil {
				return d, fmt.Errorf("entry %d debit: %w", i+1, err)
			}
			credit, err := amount(f, e.Credit)
			if err != nil {
				return d, fmt.Errorf("entry %d credit: %w", i+1, err)
			}
			account := e.AccountID
			if account == "" {
				account = e.ChartAccount
			}
			d.JournalEntries = append(d.JournalEntries, domain.JournalEntry{AccountID: account, DebitAmount: debit, CreditAmount: credit})
		}
	case voucherType == domain.BatchVoucher:
		d.BatchEntries = make([]domain.BatchEntry, 0, len(vf.Entries))
		for i, e := range vf.Entries {
			value, err := amount(f, e.Amount)
			if err != nil {
				return d, fmt.Errorf("entry %d amount: %w", i+1, err)
			}
			date, err := domain.ParseDate(e.Date)
			if err != nil {
				return d, fmt.Errorf("entry %d: %w", i+1, err)
			}
			d.BatchEntries = append(d.BatchEntries, domain.BatchEntry{
				Date:         date,
				Party:        domain.PartyType(e.Party),
				Customer:     e.Customer,
				Supplier:     e.Supplier,
				ChartAccount: e.ChartAccount,
				Amount:       value,
				Narration:    e.Narration,
			})
		}
	default:
		d.Entries = make([]domain.SimpleEntry, 0, len(vf.Entries))
		for i, e := range vf.Entries {
			value, err := amount(f, e.Amount)
			if err != nil {
				return d, fmt.Errorf("entry %d amount: %w", i+1, err)
			}
			d.Entries = append(d.Entries, domain.SimpleEntry{ChartAccount: e.ChartAccount, Amount: value, Narration: e.Narration})
		}
	}

	if strings.TrimSpace(vf.TotalAmount) != "" {
		total, err := amount(f, vf.TotalAmount)
		if err != nil {
			return d, fmt.Errorf("total amount: %w", err)
		}
		d.TotalAmount = total
	} else {
		d.TotalAmount = accounting.DraftTotal(&d)
	}
	return d, nil
}

// amount parses a display string. Blank is zero; anything else unparseable is an error.
func amount(f *numfmt.Formatter, raw string) (decimal.Decimal, error) {
	if strings.TrimSpace(raw) == "" {
		return decimal.Zero, nil
	}
	value, ok := f.Parse(raw)
	if !ok {
		return decimal.Zero, fmt.Errorf("%q is not a number", raw)
	}
	return value, nil
}
