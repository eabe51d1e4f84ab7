package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Syed-Hadii/ERP-Software-sub003/internal/apperrors"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/core/domain"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/utils/accounting"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/utils/numfmt"
	"github.com/shopspring/decimal"
)

// minJournalRows is the fewest rows a journal form may have.
const minJournalRows = 2

// FieldKey builds the "field.index" key used by the shadow buffer and validation errors.
func FieldKey(field string, index int) string {
	return field + "." + strconv.Itoa(index)
}

// splitFieldKey is the inverse of FieldKey.
func splitFieldKey(key string) (string, int, bool) {
	dot := strings.LastIndexByte(key, '.')
	if dot < 0 {
		return "", 0, false
	}
	idx, err := strconv.Atoi(key[dot+1:])
	if err != nil {
		return "", 0, false
	}
	return key[:dot], idx, true
}

// rowFields lists the editable fields of a row and whether each holds an amount.
func rowFields(t domain.VoucherType) map[string]bool {
	switch {
	case t == domain.JournalVoucher:
		return map[string]bool{
			domain.FieldAccountID:    false,
			domain.FieldDebitAmount:  true,
			domain.FieldCreditAmount: true,
		}
	case t == domain.BatchVoucher:
		return map[string]bool{
			domain.FieldDate:         false,
			domain.FieldParty:        false,
			domain.FieldCustomer:     false,
			domain.FieldSupplier:     false,
			domain.FieldChartAccount: false,
			domain.FieldAmount:       true,
			domain.FieldNarration:    false,
		}
	default:
		return map[string]bool{
			domain.FieldChartAccount: false,
			domain.FieldAmount:       true,
			domain.FieldNarration:    false,
		}
	}
}

// AddRow appends a zero-valued row.
func AddRow(d *domain.VoucherDraft) {
	switch {
	case d.VoucherType == domain.JournalVoucher:
		d.JournalEntries = append(d.JournalEntries, domain.NewJournalEntry())
	case d.VoucherType == domain.BatchVoucher:
		d.BatchEntries = append(d.BatchEntries, domain.NewBatchEntry())
	default:
		d.Entries = append(d.Entries, domain.NewSimpleEntry())
	}
}

// RemoveRow deletes the row at index. Journals keep at least two rows; the first row of
// every other voucher type is permanent.
func RemoveRow(d *domain.VoucherDraft, index int) error {
	if index < 0 || index >= d.RowCount() {
		return fmt.Errorf("%w: index %d", apperrors.ErrRowOutOfRange, index)
	}
	switch {
	case d.VoucherType == domain.JournalVoucher:
		if len(d.JournalEntries) <= minJournalRows {
			return apperrors.ErrJournalRowFloor
		}
		d.JournalEntries = append(d.JournalEntries[:index], d.JournalEntries[index+1:]...)
	case index == 0:
		return apperrors.ErrFirstRowRequired
	case d.VoucherType == domain.BatchVoucher:
		d.BatchEntries = append(d.BatchEntries[:index], d.BatchEntries[index+1:]...)
	default:
		d.Entries = append(d.Entries[:index], d.Entries[index+1:]...)
	}
	reindexBuffer(d, index)
	d.TotalAmount = accounting.DraftTotal(d)
	return nil
}

// reindexBuffer drops buffered values of the removed row and shifts later rows down.
func reindexBuffer(d *domain.VoucherDraft, removed int) {
	if len(d.InputValues) == 0 {
		return
	}
	shifted := make(map[string]string, len(d.InputValues))
	for key, raw := range d.InputValues {
		field, idx, ok := splitFieldKey(key)
		switch {
		case !ok || idx < removed:
			shifted[key] = raw
		case idx == removed:
		default:
			shifted[FieldKey(field, idx-1)] = raw
		}
	}
	d.InputValues = shifted
}

// UpdateRow sets one field of one row. Amount fields are held raw in the shadow buffer
// and the committed amount reads as zero until CommitRow.
func UpdateRow(d *domain.VoucherDraft, index int, field, value string) error {
	if index < 0 || index >= d.RowCount() {
		return fmt.Errorf("%w: index %d", apperrors.ErrRowOutOfRange, index)
	}
	isAmount, known := rowFields(d.VoucherType)[field]
	if !known {
		return fmt.Errorf("%w: %q", apperrors.ErrUnknownField, field)
	}
	if isAmount {
		if d.InputValues == nil {
			d.InputValues = map[string]string{}
		}
		d.InputValues[FieldKey(field, index)] = value
		setAmount(d, index, field, decimal.Zero)
		return nil
	}

	switch {
	case d.VoucherType == domain.JournalVoucher:
		d.JournalEntries[index].AccountID = value
	case d.VoucherType == domain.BatchVoucher:
		return updateBatchField(&d.BatchEntries[index], field, value)
	default:
		e := &d.Entries[index]
		if field == domain.FieldChartAccount {
			e.ChartAccount = value
		} else {
			e.Narration = value
		}
	}
	return nil
}

func updateBatchField(e *domain.BatchEntry, field, value string) error {
	switch field {
	case domain.FieldDate:
		date, err := domain.ParseDate(value)
		if err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		e.Date = date
	case domain.FieldParty:
		party := domain.PartyType(value)
		if value != "" && !party.IsValid() {
			return fmt.Errorf("%w: unknown party %q", apperrors.ErrValidation, value)
		}
		e.Party = party
	case domain.FieldCustomer:
		e.Customer = value
	case domain.FieldSupplier:
		e.Supplier = value
	case domain.FieldChartAccount:
		e.ChartAccount = value
	case domain.FieldNarration:
		e.Narration = value
	}
	return nil
}

// CommitRow parses the buffered raw value of an amount field into the row.
// Negative or unparsable input commits as empty (zero). The draft total is recomputed.
func CommitRow(d *domain.VoucherDraft, index int, field string, f *numfmt.Formatter) error {
	if index < 0 || index >= d.RowCount() {
		return fmt.Errorf("%w: index %d", apperrors.ErrRowOutOfRange, index)
	}
	isAmount, known := rowFields(d.VoucherType)[field]
	if !known {
		return fmt.Errorf("%w: %q", apperrors.ErrUnknownField, field)
	}
	if !isAmount {
		return nil
	}

	key := FieldKey(field, index)
	if raw, buffered := d.InputValues[key]; buffered {
		amount, ok := f.Parse(raw)
		if !ok || amount.IsNegative() {
			amount = decimal.Zero
		}
		setAmount(d, index, field, amount)
		delete(d.InputValues, key)
	}
	d.TotalAmount = accounting.DraftTotal(d)
	return nil
}

func setAmount(d *domain.VoucherDraft, index int, field string, amount decimal.Decimal) {
	switch {
	case d.VoucherType == domain.JournalVoucher && field == domain.FieldDebitAmount:
		d.JournalEntries[index].DebitAmount = amount
	case d.VoucherType == domain.JournalVoucher:
		d.JournalEntries[index].CreditAmount = amount
	case d.VoucherType == domain.BatchVoucher:
		d.BatchEntries[index].Amount = amount
	default:
		d.Entries[index].Amount = amount
	}
}
