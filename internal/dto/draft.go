package dto

import (
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/core/domain"
)

// CreateDraftRequest opens a new voucher form.
type CreateDraftRequest struct {
	VoucherType domain.VoucherType `json:"voucherType" binding:"required,oneof=Payment Receipt Journal Batch"`
}

// UpdateDraftHeaderRequest changes header fields of a draft. Nil fields are left untouched.
type UpdateDraftHeaderRequest struct {
	Date              *string `json:"date,omitempty" binding:"omitempty,voucherdate"`
	Reference         *string `json:"reference,omitempty" binding:"omitempty,max=100"`
	Description       *string `json:"description,omitempty" binding:"omitempty,max=500"`
	PaymentMethod     *string `json:"paymentMethod,omitempty" binding:"omitempty,oneof=Cash Bank"`
	CashAccount       *string `json:"cashAccount,omitempty"`
	BankAccount       *string `json:"bankAccount,omitempty"`
	TransactionNumber *string `json:"transactionNumber,omitempty" binding:"omitempty,max=64"`
	ClearanceDate     *string `json:"clearanceDate,omitempty" binding:"omitempty,voucherdate"`
	Party             *string `json:"party,omitempty" binding:"omitempty,oneof=Customer Supplier Other"`
	Customer          *string `json:"customer,omitempty"`
	Supplier          *string `json:"supplier,omitempty"`
	// TotalAmount lets callers declare the voucher total; row commits overwrite it.
	TotalAmount *string `json:"totalAmount,omitempty"`
	VoucherID   *string `json:"voucherID,omitempty"`
}

// UpdateRowRequest sets one field of one entry row.
type UpdateRowRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

// CommitRowRequest commits the buffered raw value of an amount field.
type CommitRowRequest struct {
	Field string `json:"field" binding:"required"`
}

// DraftResponse is a draft together with the fields currently shown for it.
type DraftResponse struct {
	Draft         domain.VoucherDraft `json:"draft"`
	VisibleFields []string            `json:"visibleFields"`
}

// ListDraftsParams defines parameters for listing a user's drafts.
type ListDraftsParams struct {
	Limit     int     `form:"limit" binding:"omitempty,min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// ListDraftsResponse is one page of drafts.
type ListDraftsResponse struct {
	Drafts    []domain.VoucherDraft `json:"drafts"`
	NextToken *string               `json:"nextToken,omitempty"`
}

// SubmitResult is returned after the backend accepted a voucher.
type SubmitResult struct {
	VoucherNumber string              `json:"voucherNumber"`
	Voucher       domain.Voucher      `json:"voucher"`
	Print         domain.PrintView    `json:"print"`
	Draft         domain.VoucherDraft `json:"draft"`
}
