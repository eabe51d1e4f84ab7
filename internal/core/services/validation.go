package services

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/Syed-Hadii/ERP-Software-sub003/internal/apperrors"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/core/domain"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/utils/accounting"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/utils/numfmt"
	"github.com/shopspring/decimal"
)

// FieldError is one validation failure, keyed "field" or "field.index".
type FieldError struct {
	Key     string `json:"key"`
	Message string `json:"message"`
}

// ValidationErrors accumulates field errors in check order. The first message recorded
// for a key wins.
type ValidationErrors struct {
	errs []FieldError
	seen map[string]struct{}
}

// Add records msg under key unless the key already failed.
func (v *ValidationErrors) Add(key, msg string) {
	if v.seen == nil {
		v.seen = map[string]struct{}{}
	}
	if _, dup := v.seen[key]; dup {
		return
	}
	v.seen[key] = struct{}{}
	v.errs = append(v.errs, FieldError{Key: key, Message: msg})
}

// Len returns the number of failed keys.
func (v *ValidationErrors) Len() int { return len(v.errs) }

// Has reports whether key failed.
func (v *ValidationErrors) Has(key string) bool {
	_, ok := v.seen[key]
	return ok
}

// First returns the earliest failure, the one a first-error-wins consumer surfaces.
func (v *ValidationErrors) First() FieldError {
	if len(v.errs) == 0 {
		return FieldError{}
	}
	return v.errs[0]
}

// Fields returns all failures in check order.
func (v *ValidationErrors) Fields() []FieldError {
	out := make([]FieldError, len(v.errs))
	copy(out, v.errs)
	return out
}

// Map returns the failures keyed by field.
func (v *ValidationErrors) Map() map[string]string {
	m := make(map[string]string, len(v.errs))
	for _, e := range v.errs {
		m[e.Key] = e.Message
	}
	return m
}

func (v *ValidationErrors) Error() string {
	if len(v.errs) == 0 {
		return apperrors.ErrValidation.Error()
	}
	if len(v.errs) == 1 {
		return v.errs[0].Message
	}
	return fmt.Sprintf("%s (and %d more)", v.errs[0].Message, len(v.errs)-1)
}

func (v *ValidationErrors) Unwrap() error {
	return apperrors.ErrValidation
}

func (v *ValidationErrors) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Map())
}

// err returns nil when nothing failed.
func (v *ValidationErrors) err() error {
	if v.Len() == 0 {
		return nil
	}
	return v
}

// Validator runs the per voucher type rule sets. "Today" is taken from an injectable clock
// in a configurable location.
type Validator struct {
	now       func() time.Time
	loc       *time.Location
	formatter *numfmt.Formatter
}

// ValidatorOption configures a Validator.
type ValidatorOption func(*Validator)

// WithValidatorClock overrides the clock used for "today".
func WithValidatorClock(now func() time.Time) ValidatorOption {
	return func(v *Validator) {
		v.now = now
	}
}

// WithValidatorLocation sets the timezone in which "today" is evaluated.
func WithValidatorLocation(loc *time.Location) ValidatorOption {
	return func(v *Validator) {
		if loc != nil {
			v.loc = loc
		}
	}
}

// WithValidatorFormatter sets the formatter used to render amounts in messages.
func WithValidatorFormatter(f *numfmt.Formatter) ValidatorOption {
	return func(v *Validator) {
		if f != nil {
			v.formatter = f
		}
	}
}

// NewValidator creates a Validator.
func NewValidator(options ...ValidatorOption) *Validator {
	v := &Validator{now: time.Now, loc: time.Local, formatter: numfmt.Default()}
	for _, option := range options {
		option(v)
	}
	return v
}

// Today returns the current calendar date in the validator's location.
func (v *Validator) Today() domain.Date {
	return domain.DateOf(v.now().In(v.loc))
}

// Validate checks a draft and returns *ValidationErrors (wrapping apperrors.ErrValidation)
// or nil.
func (v *Validator) Validate(d domain.VoucherDraft) error {
	errs := &ValidationErrors{}
	switch {
	case d.VoucherType.IsSimple():
		v.validateSimple(&d, errs)
	case d.VoucherType == domain.JournalVoucher:
		v.validateJournal(&d, errs)
	case d.VoucherType == domain.BatchVoucher:
		v.validateBatch(&d, errs)
	default:
		errs.Add("voucherType", "Voucher type must be Payment, Receipt, Journal or Batch")
	}
	return errs.err()
}

func (v *Validator) validateSimple(d *domain.VoucherDraft, errs *ValidationErrors) {
	if d.Date.IsZero() {
		errs.Add("date", "Date is required")
	}
	checkParty(errs, "", d.Party, d.Customer, d.Supplier, true)
	switch {
	case !d.TotalAmount.IsPositive():
		errs.Add("totalAmount", "Total amount must be greater than zero")
	case !numfmt.InRange(d.TotalAmount):
		errs.Add("totalAmount", amountTooLarge)
	}
	checkParty(errs, "", d.Party, d.Customer, d.Supplier, false)

	checkPaymentMethod(errs, d)
	v.checkClearance(errs, d, d.Date, "Clearance date cannot be before the voucher date")

	if len(d.Entries) == 0 {
		errs.Add("entries", "At least one entry is required")
	}
	accounts := make([]string, len(d.Entries))
	for i, e := range d.Entries {
		accounts[i] = e.ChartAccount
	}
	checkDuplicateAccounts(errs, accounts)
	summable := numfmt.InRange(d.TotalAmount)
	for i, e := range d.Entries {
		if e.ChartAccount == "" {
			errs.Add(FieldKey(domain.FieldChartAccount, i), "Account is required")
		}
		if !checkAmount(errs, FieldKey(domain.FieldAmount, i), e.Amount) {
			summable = false
		}
	}
	if !summable {
		return
	}

	sum := accounting.SumSimple(d.Entries)
	if !sum.Equal(d.TotalAmount) {
		errs.Add("balance", fmt.Sprintf("Entries total %s does not match the voucher total %s",
			v.formatter.FormatDecimal(sum), v.formatter.FormatDecimal(d.TotalAmount)))
	}
}

func (v *Validator) validateJournal(d *domain.VoucherDraft, errs *ValidationErrors) {
	if d.Date.IsZero() {
		errs.Add("date", "Date is required")
	}
	if len(d.JournalEntries) < minJournalRows {
		errs.Add("entries", "A journal voucher needs at least two entries")
	}

	seen := map[string]struct{}{}
	summable := true
	for i, e := range d.JournalEntries {
		accountKey := FieldKey(domain.FieldAccountID, i)
		if e.AccountID == "" {
			errs.Add(accountKey, "Account is required")
		} else if _, dup := seen[e.AccountID]; dup {
			errs.Add(accountKey, "Account is already used in another entry")
		} else {
			seen[e.AccountID] = struct{}{}
		}

		amountKey := FieldKey(domain.FieldAmount, i)
		hasDebit, hasCredit := !e.DebitAmount.IsZero(), !e.CreditAmount.IsZero()
		switch {
		case !numfmt.InRange(e.DebitAmount) || !numfmt.InRange(e.CreditAmount):
			errs.Add(amountKey, amountTooLarge)
			summable = false
		case e.DebitAmount.IsNegative() || e.CreditAmount.IsNegative():
			errs.Add(amountKey, "Amounts cannot be negative")
		case hasDebit && hasCredit:
			errs.Add(amountKey, "Enter either a debit or a credit amount, not both")
		case !hasDebit && !hasCredit:
			errs.Add(amountKey, "Enter a debit or a credit amount")
		}
	}

	if summable && !accounting.IsBalanced(d.JournalEntries) {
		debit, credit := accounting.SumJournal(d.JournalEntries)
		if debit.Equal(credit) {
			errs.Add("balance", "Journal total must be greater than zero")
		} else {
			errs.Add("balance", fmt.Sprintf("Total debit %s does not equal total credit %s",
				v.formatter.FormatDecimal(debit), v.formatter.FormatDecimal(credit)))
		}
	}
}

func (v *Validator) validateBatch(d *domain.VoucherDraft, errs *ValidationErrors) {
	if len(d.BatchEntries) == 0 {
		errs.Add("entries", "At least one entry is required")
	}
	for i, e := range d.BatchEntries {
		if e.Date.IsZero() {
			errs.Add(FieldKey(domain.FieldDate, i), "Date is required")
		}
		checkParty(errs, fmt.Sprintf(".%d", i), e.Party, e.Customer, e.Supplier, true)
		checkParty(errs, fmt.Sprintf(".%d", i), e.Party, e.Customer, e.Supplier, false)
	}

	checkPaymentMethod(errs, d)
	v.checkClearance(errs, d, domain.MaxDate(d.EntryDates()...), "Clearance date cannot be before the latest entry date")

	accounts := make([]string, len(d.BatchEntries))
	for i, e := range d.BatchEntries {
		accounts[i] = e.ChartAccount
	}
	checkDuplicateAccounts(errs, accounts)
	for i, e := range d.BatchEntries {
		if e.ChartAccount == "" {
			errs.Add(FieldKey(domain.FieldChartAccount, i), "Account is required")
		}
		checkAmount(errs, FieldKey(domain.FieldAmount, i), e.Amount)
	}
}

const amountTooLarge = "Amount is too large"

// amountsInRange reports whether every amount of d passes numfmt.InRange.
func amountsInRange(d domain.VoucherDraft) bool {
	amounts := []decimal.Decimal{d.TotalAmount}
	for _, e := range d.Entries {
		amounts = append(amounts, e.Amount)
	}
	for _, e := range d.JournalEntries {
		amounts = append(amounts, e.DebitAmount, e.CreditAmount)
	}
	for _, e := range d.BatchEntries {
		amounts = append(amounts, e.Amount)
	}
	for _, a := range amounts {
		if !numfmt.InRange(a) {
			return false
		}
	}
	return true
}

// checkDuplicateAccounts flags every row whose chart account already appears on an earlier row.
func checkDuplicateAccounts(errs *ValidationErrors, accounts []string) {
	seen := make(map[string]struct{}, len(accounts))
	for i, id := range accounts {
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			errs.Add(FieldKey(domain.FieldChartAccount, i), "Account is already used in another entry")
			continue
		}
		seen[id] = struct{}{}
	}
}

// checkAmount reports false when amount is out of range, which makes totals over it meaningless.
func checkAmount(errs *ValidationErrors, key string, amount decimal.Decimal) bool {
	switch {
	case !numfmt.InRange(amount):
		errs.Add(key, amountTooLarge)
		return false
	case !amount.IsPositive():
		errs.Add(key, "Amount must be greater than zero")
	}
	return true
}

// checkParty runs either the presence check of the party selection (selection=true) or the
// customer/supplier reference check it gates. suffix is "" or ".i".
func checkParty(errs *ValidationErrors, suffix string, party domain.PartyType, customer, supplier string, selection bool) {
	if selection {
		switch {
		case party == "":
			errs.Add(domain.FieldParty+suffix, "Party is required")
		case !party.IsValid():
			errs.Add(domain.FieldParty+suffix, "Party must be Customer, Supplier or Other")
		}
		return
	}
	switch {
	case party == domain.PartyCustomer && customer == "":
		errs.Add(domain.FieldCustomer+suffix, "Customer is required")
	case party == domain.PartySupplier && supplier == "":
		errs.Add(domain.FieldSupplier+suffix, "Supplier is required")
	}
}

func checkPaymentMethod(errs *ValidationErrors, d *domain.VoucherDraft) {
	switch d.PaymentMethod {
	case "":
		errs.Add("paymentMethod", "Payment method is required")
	case domain.Cash:
		if d.CashAccount == "" {
			errs.Add("cashAccount", "Cash account is required")
		}
	case domain.Bank:
		if d.BankAccount == "" {
			errs.Add("bankAccount", "Bank account is required")
		}
		if d.TransactionNumber == "" {
			errs.Add("transactionNumber", "Transaction number is required")
		}
		if d.ClearanceDate.IsZero() {
			errs.Add("clearanceDate", "Clearance date is required")
		}
	default:
		errs.Add("paymentMethod", "Payment method must be Cash or Bank")
	}
}

// checkClearance enforces clearance >= reference date and >= today, both inclusive.
func (v *Validator) checkClearance(errs *ValidationErrors, d *domain.VoucherDraft, reference domain.Date, beforeReference string) {
	if d.PaymentMethod != domain.Bank || d.ClearanceDate.IsZero() {
		return
	}
	if !reference.IsZero() && d.ClearanceDate.Before(reference) {
		errs.Add("clearanceDate", beforeReference)
	}
	if d.ClearanceDate.Before(v.Today()) {
		errs.Add("clearanceDate", "Clearance date cannot be in the past")
	}
}
