package services_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/Syed-Hadii/ERP-Software-sub003/internal/apperrors"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/core/domain"
	portssvc "github.com/Syed-Hadii/ERP-Software-sub003/internal/core/ports/services"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/core/services"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type VoucherServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	backend *MockERPBackend
	service portssvc.VoucherSvcFacade
}

func (suite *VoucherServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.backend = new(MockERPBackend)
	suite.service = services.NewVoucherService(suite.backend, services.WithVoucherValidator(newTestValidator()))
}

func (suite *VoucherServiceTestSuite) TestListVouchers_DefaultsAndNextToken() {
	suite.backend.On("ListTransactionEntries", mock.Anything, domain.VoucherFilter{Page: 1, Limit: 10, Search: "rent"}).
		Return(&domain.VoucherPage{
			Vouchers:   []domain.Voucher{{ID: "v-1", VoucherNumber: "PV-0001"}},
			Page:       1,
			Limit:      10,
			Total:      14,
			TotalPages: 2,
		}, nil).Once()

	resp, err := suite.service.ListVouchers(suite.ctx, dto.ListVouchersParams{Search: "  rent "})
	suite.Require().NoError(err)
	suite.Len(resp.Vouchers, 1)
	suite.Equal(14, resp.Total)
	suite.Require().NotNil(resp.NextToken)

	suite.backend.On("ListTransactionEntries", mock.Anything, domain.VoucherFilter{Page: 2, Limit: 10, Search: "rent"}).
		Return(&domain.VoucherPage{Page: 2, Limit: 10, Total: 14, TotalPages: 2}, nil).Once()

	resp, err = suite.service.ListVouchers(suite.ctx, dto.ListVouchersParams{Search: "rent", NextToken: resp.NextToken})
	suite.Require().NoError(err)
	suite.NotNil(resp.Vouchers)
	suite.Empty(resp.Vouchers)
	suite.Nil(resp.NextToken, "last page has no token")
	suite.backend.AssertExpectations(suite.T())
}

func (suite *VoucherServiceTestSuite) TestListVouchers_TokenFromAnotherQuery() {
	suite.backend.On("ListTransactionEntries", mock.Anything, mock.Anything).
		Return(&domain.VoucherPage{Page: 1, TotalPages: 3}, nil).Once()
	resp, err := suite.service.ListVouchers(suite.ctx, dto.ListVouchersParams{Search: "rent"})
	suite.Require().NoError(err)

	_, err = suite.service.ListVouchers(suite.ctx, dto.ListVouchersParams{Search: "feed", NextToken: resp.NextToken})
	suite.ErrorIs(err, apperrors.ErrValidation)

	garbage := "not-a-token"
	_, err = suite.service.ListVouchers(suite.ctx, dto.ListVouchersParams{NextToken: &garbage})
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.backend.AssertNumberOfCalls(suite.T(), "ListTransactionEntries", 1)
}

func (suite *VoucherServiceTestSuite) TestListBatches_ForcesBatchFilter() {
	suite.backend.On("ListBatchEntries", mock.Anything, mock.MatchedBy(func(f domain.VoucherFilter) bool {
		return f.IsBatch != nil && *f.IsBatch && f.Limit == 10
	})).Return(&domain.VoucherPage{Page: 1, TotalPages: 1}, nil).Once()

	_, err := suite.service.ListBatches(suite.ctx, dto.ListVouchersParams{})
	suite.NoError(err)
	suite.backend.AssertExpectations(suite.T())
}

func (suite *VoucherServiceTestSuite) TestListVouchers_BackendFailure() {
	suite.backend.On("ListTransactionEntries", mock.Anything, mock.Anything).
		Return(nil, &apperrors.BackendError{StatusCode: http.StatusInternalServerError}).Once()

	_, err := suite.service.ListVouchers(suite.ctx, dto.ListVouchersParams{})

	var appErr *apperrors.AppError
	suite.Require().True(errors.As(err, &appErr))
	suite.Equal(services.GenericSubmitFailure, appErr.Message)
}

func (suite *VoucherServiceTestSuite) TestChangeStatus() {
	suite.backend.On("UpdateTransactionStatus", mock.Anything, "v-1", domain.StatusPosted).
		Return(&domain.Voucher{ID: "v-1"}, nil).Once()

	v, err := suite.service.ChangeStatus(suite.ctx, "v-1", dto.ChangeStatusRequest{CurrentStatus: domain.StatusDraft, Status: domain.StatusPosted})
	suite.Require().NoError(err)
	suite.Equal(domain.StatusPosted, v.Status)

	for _, req := range []dto.ChangeStatusRequest{
		{CurrentStatus: domain.StatusPosted, Status: domain.StatusDraft},
		{CurrentStatus: domain.StatusDraft, Status: domain.StatusVoid},
		{CurrentStatus: domain.StatusPosted, Status: domain.StatusPosted},
	} {
		_, err := suite.service.ChangeStatus(suite.ctx, "v-1", req)
		suite.ErrorIs(err, apperrors.ErrStatusTransition)
		suite.ErrorIs(err, apperrors.ErrConflict)
	}
	suite.backend.AssertNumberOfCalls(suite.T(), "UpdateTransactionStatus", 1)
}

func (suite *VoucherServiceTestSuite) TestUpdateVoucher() {
	d := validPayment()
	suite.backend.On("UpdateTransactionEntry", mock.Anything, "v-7", mock.MatchedBy(func(p dto.TransactionEntryPayload) bool {
		return p.TotalAmount == 500 && len(p.Entries) == 2
	})).Return(&domain.Voucher{ID: "v-7", VoucherNumber: "PV-0007"}, nil).Once()

	v, err := suite.service.UpdateVoucher(suite.ctx, "v-7", d)
	suite.Require().NoError(err)
	suite.Equal(domain.PaymentVoucher, v.VoucherType)
	suite.Equal("cash-1", v.CashAccount)
}

func (suite *VoucherServiceTestSuite) TestUpdateVoucher_Rejections() {
	_, err := suite.service.UpdateVoucher(suite.ctx, "j-1", validJournal())
	suite.ErrorIs(err, apperrors.ErrValidation)

	invalid := validPayment()
	invalid.TotalAmount = invalid.TotalAmount.Add(invalid.TotalAmount)
	_, err = suite.service.UpdateVoucher(suite.ctx, "v-1", invalid)
	var verrs *services.ValidationErrors
	suite.True(errors.As(err, &verrs))

	suite.backend.AssertNotCalled(suite.T(), "UpdateTransactionEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *VoucherServiceTestSuite) TestUpdateVoucher_BatchDelegates() {
	suite.backend.On("UpdateBatchEntry", mock.Anything, "b-1", mock.Anything).
		Return(&domain.Voucher{ID: "b-1", IsBatch: true}, nil).Once()

	v, err := suite.service.UpdateVoucher(suite.ctx, "b-1", validBatch())
	suite.Require().NoError(err)
	suite.True(v.IsBatch)
	suite.Len(v.BatchEntries, 2)

	_, err = suite.service.UpdateBatch(suite.ctx, "b-1", validPayment())
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *VoucherServiceTestSuite) TestDelete() {
	suite.backend.On("DeleteTransactionEntry", mock.Anything, "v-1").Return(nil).Once()
	suite.backend.On("DeleteBatchEntry", mock.Anything, "b-1").
		Return(&apperrors.BackendError{StatusCode: http.StatusNotFound, Message: "Batch not found"}).Once()

	suite.NoError(suite.service.DeleteVoucher(suite.ctx, "v-1"))

	err := suite.service.DeleteBatch(suite.ctx, "b-1")
	var appErr *apperrors.AppError
	suite.Require().True(errors.As(err, &appErr))
	suite.Equal("Batch not found", appErr.Message)
}

func TestVoucherService(t *testing.T) {
	suite.Run(t, new(VoucherServiceTestSuite))
}
