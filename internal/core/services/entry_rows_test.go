package services_test

import (
	"errors"
	"testing"

	"github.com/Syed-Hadii/ERP-Software-sub003/internal/apperrors"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/core/domain"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/core/services"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/utils/numfmt"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVoucherDraft_InitialRows(t *testing.T) {
	assert.Len(t, domain.NewVoucherDraft(domain.JournalVoucher).JournalEntries, 2)
	assert.Len(t, domain.NewVoucherDraft(domain.BatchVoucher).BatchEntries, 1)
	assert.Len(t, domain.NewVoucherDraft(domain.PaymentVoucher).Entries, 1)
	assert.Equal(t, domain.PartyOther, domain.NewVoucherDraft(domain.ReceiptVoucher).Party)
}

func TestRemoveRow_JournalFloor(t *testing.T) {
	d := domain.NewVoucherDraft(domain.JournalVoucher)

	err := services.RemoveRow(&d, 1)
	assert.ErrorIs(t, err, apperrors.ErrJournalRowFloor)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Len(t, d.JournalEntries, 2)

	services.AddRow(&d)
	require.NoError(t, services.RemoveRow(&d, 0), "any journal row may go once there are three")
	assert.Len(t, d.JournalEntries, 2)
}

func TestRemoveRow_FirstRowIsPermanent(t *testing.T) {
	for _, vt := range []domain.VoucherType{domain.PaymentVoucher, domain.ReceiptVoucher, domain.BatchVoucher} {
		t.Run(string(vt), func(t *testing.T) {
			d := domain.NewVoucherDraft(vt)
			services.AddRow(&d)

			assert.ErrorIs(t, services.RemoveRow(&d, 0), apperrors.ErrFirstRowRequired)
			require.NoError(t, services.RemoveRow(&d, 1))
			assert.Equal(t, 1, d.RowCount())
		})
	}
}

func TestRemoveRow_OutOfRange(t *testing.T) {
	d := domain.NewVoucherDraft(domain.PaymentVoucher)
	assert.ErrorIs(t, services.RemoveRow(&d, 3), apperrors.ErrRowOutOfRange)
	assert.ErrorIs(t, services.RemoveRow(&d, -1), apperrors.ErrRowOutOfRange)
}

func TestRemoveRow_ReindexesBufferAndTotal(t *testing.T) {
	d := domain.NewVoucherDraft(domain.PaymentVoucher)
	services.AddRow(&d)
	services.AddRow(&d)
	d.Entries[0].Amount = decimal.NewFromInt(10)
	d.Entries[1].Amount = decimal.NewFromInt(20)
	d.Entries[2].Amount = decimal.NewFromInt(30)
	d.InputValues = map[string]string{
		"amount.0": "10",
		"amount.1": "2",
		"amount.2": "3,000",
	}

	require.NoError(t, services.RemoveRow(&d, 1))

	assert.Equal(t, map[string]string{"amount.0": "10", "amount.1": "3,000"}, d.InputValues)
	assert.True(t, d.TotalAmount.Equal(decimal.NewFromInt(40)), "total is %s", d.TotalAmount)
}

func TestUpdateRow_AmountIsBufferedUntilCommit(t *testing.T) {
	d := domain.NewVoucherDraft(domain.PaymentVoucher)
	d.Entries[0].Amount = decimal.NewFromInt(99)

	require.NoError(t, services.UpdateRow(&d, 0, domain.FieldAmount, "1,250.5"))
	assert.Equal(t, "1,250.5", d.InputValues["amount.0"])
	assert.True(t, d.Entries[0].Amount.IsZero(), "the committed amount reads as zero while editing")

	require.NoError(t, services.CommitRow(&d, 0, domain.FieldAmount, numfmt.Default()))
	assert.True(t, d.Entries[0].Amount.Equal(decimal.RequireFromString("1250.5")))
	assert.NotContains(t, d.InputValues, "amount.0")
	assert.True(t, d.TotalAmount.Equal(decimal.RequireFromString("1250.5")))
}

func TestCommitRow_ClampsBadInput(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"negative", "-40"},
		{"text", "forty"},
		{"blank", ""},
		{"exponent", "1e50000000"},
		{"sixteen integer digits", "1,000,000,000,000,000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := domain.NewVoucherDraft(domain.BatchVoucher)
			require.NoError(t, services.UpdateRow(&d, 0, domain.FieldAmount, tt.raw))
			require.NoError(t, services.CommitRow(&d, 0, domain.FieldAmount, numfmt.Default()))
			assert.True(t, d.BatchEntries[0].Amount.IsZero())
			assert.True(t, d.TotalAmount.IsZero())
		})
	}
}

func TestCommitRow_JournalTotalIsDebitSide(t *testing.T) {
	d := domain.NewVoucherDraft(domain.JournalVoucher)
	f := numfmt.Default()

	require.NoError(t, services.UpdateRow(&d, 0, domain.FieldDebitAmount, "700"))
	require.NoError(t, services.CommitRow(&d, 0, domain.FieldDebitAmount, f))
	require.NoError(t, services.UpdateRow(&d, 1, domain.FieldCreditAmount, "700"))
	require.NoError(t, services.CommitRow(&d, 1, domain.FieldCreditAmount, f))

	assert.True(t, d.TotalAmount.Equal(decimal.NewFromInt(700)))
	assert.True(t, d.JournalEntries[1].CreditAmount.Equal(decimal.NewFromInt(700)))
}

func TestUpdateRow_TextFields(t *testing.T) {
	d := domain.NewVoucherDraft(domain.BatchVoucher)

	require.NoError(t, services.UpdateRow(&d, 0, domain.FieldDate, "2024-06-10"))
	require.NoError(t, services.UpdateRow(&d, 0, domain.FieldParty, "Customer"))
	require.NoError(t, services.UpdateRow(&d, 0, domain.FieldCustomer, "cus-1"))
	require.NoError(t, services.UpdateRow(&d, 0, domain.FieldNarration, "Milk sale"))

	e := d.BatchEntries[0]
	assert.Equal(t, domain.MustParseDate("2024-06-10"), e.Date)
	assert.Equal(t, domain.PartyCustomer, e.Party)
	assert.Equal(t, "cus-1", e.Customer)
	assert.Equal(t, "Milk sale", e.Narration)

	err := services.UpdateRow(&d, 0, domain.FieldDate, "10/06/2024")
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
	err = services.UpdateRow(&d, 0, domain.FieldParty, "Neighbour")
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}

func TestUpdateRow_UnknownField(t *testing.T) {
	d := domain.NewVoucherDraft(domain.JournalVoucher)
	assert.ErrorIs(t, services.UpdateRow(&d, 0, domain.FieldChartAccount, "acc-1"), apperrors.ErrUnknownField)
	assert.ErrorIs(t, services.CommitRow(&d, 0, "total", numfmt.Default()), apperrors.ErrUnknownField)
}

func TestFieldKey(t *testing.T) {
	assert.Equal(t, "amount.3", services.FieldKey(domain.FieldAmount, 3))
}
