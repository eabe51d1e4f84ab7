package dto

import (
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/core/domain"
)

// ListVouchersParams defines the query parameters of a voucher listing.
type ListVouchersParams struct {
	Page        int     `form:"page" binding:"omitempty,min=1"`
	Limit       int     `form:"limit" binding:"omitempty,min=1,max=100"`
	Search      string  `form:"search" binding:"omitempty,max=100"`
	VoucherType string  `form:"voucherType" binding:"omitempty,oneof=Payment Receipt Journal Batch"`
	Status      string  `form:"status" binding:"omitempty,oneof=Draft Posted Void"`
	IsBatch     *bool   `form:"isBatch"`
	NextToken   *string `form:"nextToken"`
}

// ListVouchersResponse is one page of saved vouchers.
type ListVouchersResponse struct {
	Vouchers   []domain.Voucher `json:"vouchers"`
	Page       int              `json:"page"`
	Total      int              `json:"total"`
	TotalPages int              `json:"totalPages"`
	NextToken  *string          `json:"nextToken,omitempty"`
}

// ChangeStatusRequest moves a saved voucher between statuses.
type ChangeStatusRequest struct {
	CurrentStatus domain.VoucherStatus `json:"currentStatus" binding:"required,oneof=Draft Posted Void"`
	Status        domain.VoucherStatus `json:"status" binding:"required,oneof=Draft Posted Void"`
}
