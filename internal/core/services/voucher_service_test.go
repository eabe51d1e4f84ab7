package services_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/Syed-Hadii/ERP-Software-sub003/internal/apperrors"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/core/domain"
	portssvc "github.com/Syed-Hadii/ERP-Software-sub003/internal/core/ports/services"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/core/services"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/dto"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/repositories/memory"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockObserver struct {
	mock.Mock
}

func (m *MockObserver) TrackVoucherSubmitted(ownerID string, voucher domain.Voucher) {
	m.Called(ownerID, voucher)
}

func strPtr(s string) *string { return &s }

type DraftServiceTestSuite struct {
	suite.Suite
	ctx      context.Context
	ownerID  string
	repo     *memory.DraftRepository
	backend  *MockERPBackend
	observer *MockObserver
	guard    portssvc.SubmissionGuard
	print    portssvc.PrintSvc
	service  portssvc.DraftSvcFacade
}

func (suite *DraftServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.ownerID = uuid.NewString()
	suite.repo = memory.NewDraftRepository()
	suite.backend = new(MockERPBackend)
	suite.observer = new(MockObserver)
	suite.guard = services.NewLocalSubmissionGuard()
	suite.print = services.NewPrintService(nil)

	suite.service = services.NewDraftService(
		suite.repo,
		suite.backend,
		services.NewReferenceService(suite.backend, time.Minute),
		suite.print,
		services.WithSubmissionGuard(suite.guard),
		services.WithDraftValidator(newTestValidator()),
		services.WithSubmissionObserver(suite.observer),
		services.WithDraftClock(func() time.Time { return fixedNow }),
	)
}

// composePayment builds a 500 cash payment to a supplier through the row operations.
func (suite *DraftServiceTestSuite) composePayment() *domain.VoucherDraft {
	draft, err := suite.service.CreateDraft(suite.ctx, suite.ownerID, domain.PaymentVoucher)
	suite.Require().NoError(err)

	_, err = suite.service.UpdateHeader(suite.ctx, draft.DraftID, suite.ownerID, dto.UpdateDraftHeaderRequest{
		Date:          strPtr("2024-06-15"),
		Reference:     strPtr("INV-77"),
		PaymentMethod: strPtr("Cash"),
		CashAccount:   strPtr("cash-1"),
		Party:         strPtr("Supplier"),
		Supplier:      strPtr("sup-1"),
	})
	suite.Require().NoError(err)

	_, err = suite.service.UpdateRow(suite.ctx, draft.DraftID, suite.ownerID, 0, domain.FieldChartAccount, "acc-rent")
	suite.Require().NoError(err)
	_, err = suite.service.UpdateRow(suite.ctx, draft.DraftID, suite.ownerID, 0, domain.FieldAmount, "500")
	suite.Require().NoError(err)
	draft, err = suite.service.CommitRow(suite.ctx, draft.DraftID, suite.ownerID, 0, domain.FieldAmount)
	suite.Require().NoError(err)
	return draft
}

func (suite *DraftServiceTestSuite) TestCreateDraft() {
	draft, err := suite.service.CreateDraft(suite.ctx, suite.ownerID, domain.JournalVoucher)

	suite.Require().NoError(err)
	suite.NotEmpty(draft.DraftID)
	suite.Equal(suite.ownerID, draft.OwnerID)
	suite.Equal(int64(1), draft.Version)
	suite.Len(draft.JournalEntries, 2)

	stored, err := suite.repo.FindDraftByID(suite.ctx, draft.DraftID)
	suite.Require().NoError(err)
	suite.Equal(domain.JournalVoucher, stored.VoucherType)
}

func (suite *DraftServiceTestSuite) TestCreateDraft_UnknownType() {
	_, err := suite.service.CreateDraft(suite.ctx, suite.ownerID, "Invoice")
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *DraftServiceTestSuite) TestDraftsArePrivate() {
	draft, err := suite.service.CreateDraft(suite.ctx, suite.ownerID, domain.PaymentVoucher)
	suite.Require().NoError(err)

	_, err = suite.service.GetDraft(suite.ctx, draft.DraftID, "someone-else")
	suite.ErrorIs(err, apperrors.ErrForbidden)
	_, err = suite.service.AddRow(suite.ctx, draft.DraftID, "someone-else")
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.ErrorIs(suite.service.DiscardDraft(suite.ctx, draft.DraftID, "someone-else"), apperrors.ErrForbidden)
}

func (suite *DraftServiceTestSuite) TestRejectedChangeLeavesDraftUntouched() {
	draft, err := suite.service.CreateDraft(suite.ctx, suite.ownerID, domain.JournalVoucher)
	suite.Require().NoError(err)

	_, err = suite.service.RemoveRow(suite.ctx, draft.DraftID, suite.ownerID, 0)
	suite.ErrorIs(err, apperrors.ErrJournalRowFloor)

	stored, err := suite.repo.FindDraftByID(suite.ctx, draft.DraftID)
	suite.Require().NoError(err)
	suite.Len(stored.JournalEntries, 2)
	suite.Equal(int64(1), stored.Version)
}

func (suite *DraftServiceTestSuite) TestUpdateHeader_TotalAmountClamped() {
	draft, err := suite.service.CreateDraft(suite.ctx, suite.ownerID, domain.ReceiptVoucher)
	suite.Require().NoError(err)

	updated, err := suite.service.UpdateHeader(suite.ctx, draft.DraftID, suite.ownerID, dto.UpdateDraftHeaderRequest{TotalAmount: strPtr("-12")})
	suite.Require().NoError(err)
	suite.True(updated.TotalAmount.IsZero())

	updated, err = suite.service.UpdateHeader(suite.ctx, draft.DraftID, suite.ownerID, dto.UpdateDraftHeaderRequest{TotalAmount: strPtr("1,200.50")})
	suite.Require().NoError(err)
	suite.True(updated.TotalAmount.Equal(decimal.RequireFromString("1200.5")))
}

func (suite *DraftServiceTestSuite) TestSubmitPayment_EndToEnd() {
	draft := suite.composePayment()
	suite.True(draft.TotalAmount.Equal(decimal.NewFromInt(500)))

	suite.backend.expectReferenceLists()
	suite.backend.On("AddTransactionEntry", mock.Anything, mock.MatchedBy(func(p dto.TransactionEntryPayload) bool {
		return p.VoucherType == "Payment" &&
			p.Date == "2024-06-15" &&
			p.TotalAmount == 500 &&
			p.IsBatch &&
			p.CashAccount == "cash-1" && p.BankAccount == "" &&
			p.Supplier == "sup-1" && p.Customer == "" &&
			len(p.Entries) == 1 && p.Entries[0].ChartAccount == "acc-rent" && p.Entries[0].Amount == 500
	})).Return(&domain.Voucher{ID: "v-1", VoucherNumber: "PV-0001", Status: domain.StatusDraft}, nil).Once()
	suite.observer.On("TrackVoucherSubmitted", suite.ownerID, mock.MatchedBy(func(v domain.Voucher) bool {
		return v.VoucherNumber == "PV-0001"
	})).Once()

	result, err := suite.service.SubmitDraft(suite.ctx, draft.DraftID, suite.ownerID)
	suite.Require().NoError(err)

	suite.Equal("PV-0001", result.VoucherNumber)
	suite.Equal(domain.PaymentVoucher, result.Voucher.VoucherType, "terse responses are completed from the draft")

	view := result.Print
	suite.Equal("Payment Voucher", view.Title)
	suite.Equal("15 Jun 2024", view.Date)
	suite.Equal("INV-77", view.Reference)
	suite.Equal(domain.NotAvailable, view.Description)
	suite.Equal("Cash in Hand", view.SettlementAccount)
	suite.Equal("Seed Co", view.PartyName)
	suite.Require().Len(view.Lines, 1)
	suite.Equal("5100 - Rent Expense", view.Lines[0].Account)
	suite.Equal("500", view.Total)

	suite.Equal(draft.DraftID, result.Draft.DraftID)
	suite.Len(result.Draft.Entries, 1)
	suite.True(result.Draft.TotalAmount.IsZero())
	suite.True(result.Draft.Date.IsZero())

	stored, err := suite.repo.FindDraftByID(suite.ctx, draft.DraftID)
	suite.Require().NoError(err)
	suite.True(stored.TotalAmount.IsZero(), "the stored form is reset")
	suite.Empty(stored.Reference)

	archived, err := suite.print.GetPrintView(suite.ctx, "PV-0001")
	suite.Require().NoError(err)
	suite.Equal(view, *archived)

	suite.backend.AssertExpectations(suite.T())
	suite.observer.AssertExpectations(suite.T())
}

func (suite *DraftServiceTestSuite) TestSubmit_InvalidNeverReachesBackend() {
	draft, err := suite.service.CreateDraft(suite.ctx, suite.ownerID, domain.PaymentVoucher)
	suite.Require().NoError(err)

	_, err = suite.service.SubmitDraft(suite.ctx, draft.DraftID, suite.ownerID)

	var verrs *services.ValidationErrors
	suite.Require().True(errors.As(err, &verrs))
	suite.Equal("date", verrs.First().Key)
	suite.backend.AssertNotCalled(suite.T(), "AddTransactionEntry", mock.Anything, mock.Anything)
}

func (suite *DraftServiceTestSuite) TestSubmit_BackendRejectionKeepsDraft() {
	draft := suite.composePayment()
	suite.backend.On("AddTransactionEntry", mock.Anything, mock.Anything).
		Return(nil, &apperrors.BackendError{StatusCode: http.StatusBadRequest, Message: "Insufficient balance in cash account"}).Once()

	_, err := suite.service.SubmitDraft(suite.ctx, draft.DraftID, suite.ownerID)

	var appErr *apperrors.AppError
	suite.Require().True(errors.As(err, &appErr))
	suite.Equal(http.StatusBadGateway, appErr.Code)
	suite.Equal("Insufficient balance in the selected account for this transaction.", appErr.Message)
	suite.ErrorIs(err, apperrors.ErrBackend)

	stored, err := suite.repo.FindDraftByID(suite.ctx, draft.DraftID)
	suite.Require().NoError(err)
	suite.True(stored.TotalAmount.Equal(decimal.NewFromInt(500)))
	suite.observer.AssertNotCalled(suite.T(), "TrackVoucherSubmitted", mock.Anything, mock.Anything)
}

func (suite *DraftServiceTestSuite) TestSubmit_OneInFlightPerDraft() {
	draft := suite.composePayment()

	release, err := suite.guard.Acquire(suite.ctx, "draft:"+draft.DraftID)
	suite.Require().NoError(err)

	_, err = suite.service.SubmitDraft(suite.ctx, draft.DraftID, suite.ownerID)
	suite.ErrorIs(err, apperrors.ErrSubmissionInFlight)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.backend.AssertNotCalled(suite.T(), "AddTransactionEntry", mock.Anything, mock.Anything)

	release()
	suite.backend.expectReferenceLists()
	suite.backend.On("AddTransactionEntry", mock.Anything, mock.Anything).
		Return(&domain.Voucher{ID: "v-2", VoucherNumber: "PV-0002"}, nil).Once()
	suite.observer.On("TrackVoucherSubmitted", mock.Anything, mock.Anything).Once()

	_, err = suite.service.SubmitDraft(suite.ctx, draft.DraftID, suite.ownerID)
	suite.NoError(err)
}

func (suite *DraftServiceTestSuite) TestSubmitVoucher_Journal() {
	suite.backend.On("ListChartAccounts", mock.Anything).Return(nil, apperrors.ErrUnauthenticated)
	suite.backend.On("ListCashAccounts", mock.Anything).Return([]domain.CashAccount{}, nil)
	suite.backend.On("ListBanks", mock.Anything).Return([]domain.BankAccount{}, nil)
	suite.backend.On("ListCustomers", mock.Anything).Return([]domain.Customer{}, nil)
	suite.backend.On("ListSuppliers", mock.Anything).Return([]domain.Supplier{}, nil)
	suite.backend.On("AddJournalVoucher", mock.Anything, mock.MatchedBy(func(p dto.JournalVoucherPayload) bool {
		return p.TotalDebit == 1250.75 && p.TotalCredit == 1250.75 && len(p.Entries) == 2
	})).Return(&domain.Voucher{ID: "j-1", VoucherNumber: "JV-0001"}, nil).Once()
	suite.observer.On("TrackVoucherSubmitted", suite.ownerID, mock.Anything).Once()

	result, err := suite.service.SubmitVoucher(suite.ctx, suite.ownerID, validJournal())
	suite.Require().NoError(err)

	suite.Equal("JV-0001", result.VoucherNumber)
	suite.Equal("1,250.75", result.Print.TotalDebit)
	suite.Equal("1,250.75", result.Print.TotalCredit)
	suite.Equal("acc-rent", result.Print.Lines[0].Account, "without reference data the raw id is shown")
	suite.Len(result.Draft.JournalEntries, 2)
}

func savedPayment() domain.Voucher {
	d := validPayment()
	return domain.Voucher{
		ID:            "v-7",
		VoucherNumber: "PV-0007",
		VoucherType:   d.VoucherType,
		Date:          d.Date,
		PaymentMethod: d.PaymentMethod,
		CashAccount:   d.CashAccount,
		Party:         d.Party,
		Supplier:      d.Supplier,
		Entries:       d.Entries,
		TotalAmount:   d.TotalAmount,
		Status:        domain.StatusDraft,
	}
}

func (suite *DraftServiceTestSuite) TestOpenVoucher_SubmitUpdatesSavedVoucher() {
	draft, err := suite.service.OpenVoucher(suite.ctx, suite.ownerID, savedPayment())
	suite.Require().NoError(err)
	suite.Equal("v-7", draft.VoucherID)
	suite.Equal(int64(1), draft.Version)
	suite.Len(draft.Entries, 2)

	stored, err := suite.service.GetDraft(suite.ctx, draft.DraftID, suite.ownerID)
	suite.Require().NoError(err)
	suite.Equal("sup-1", stored.Supplier)

	suite.backend.expectReferenceLists()
	suite.backend.On("UpdateTransactionEntry", mock.Anything, "v-7", mock.MatchedBy(func(p dto.TransactionEntryPayload) bool {
		return p.TotalAmount == 500 && len(p.Entries) == 2
	})).Return(&domain.Voucher{ID: "v-7", VoucherNumber: "PV-0007"}, nil).Once()
	suite.observer.On("TrackVoucherSubmitted", suite.ownerID, mock.Anything).Once()

	result, err := suite.service.SubmitDraft(suite.ctx, draft.DraftID, suite.ownerID)
	suite.Require().NoError(err)
	suite.Equal("PV-0007", result.Voucher.VoucherNumber)
	suite.backend.AssertNotCalled(suite.T(), "AddTransactionEntry", mock.Anything, mock.Anything)
}

func (suite *DraftServiceTestSuite) TestOpenVoucher_Rejected() {
	journal := domain.Voucher{ID: "j-1", VoucherType: domain.JournalVoucher}
	void := savedPayment()
	void.Status = domain.StatusVoid

	oversized := savedPayment()
	oversized.Entries[0].Amount = decimal.New(1, 50000000)

	for _, v := range []domain.Voucher{journal, void, oversized, {VoucherType: domain.PaymentVoucher}} {
		_, err := suite.service.OpenVoucher(suite.ctx, suite.ownerID, v)
		suite.ErrorIs(err, apperrors.ErrValidation)
	}
	resp, err := suite.service.ListDrafts(suite.ctx, suite.ownerID, dto.ListDraftsParams{})
	suite.Require().NoError(err)
	suite.Empty(resp.Drafts)
}

func (suite *DraftServiceTestSuite) TestSubmitVoucher_SavedJournalCannotBeEdited() {
	d := validJournal()
	d.VoucherID = "j-1"

	_, err := suite.service.SubmitVoucher(suite.ctx, suite.ownerID, d)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.backend.AssertNotCalled(suite.T(), "AddJournalVoucher", mock.Anything, mock.Anything)
}

func (suite *DraftServiceTestSuite) TestSubmitVoucher_BatchUpdate() {
	d := validBatch()
	d.VoucherID = "b-1"
	suite.backend.expectReferenceLists()
	suite.backend.On("UpdateBatchEntry", mock.Anything, "b-1", mock.MatchedBy(func(p dto.BatchEntryPayload) bool {
		return len(p.Entries) == 2 && p.BankAccount == "bank-1" && p.ClearanceDate == "2024-06-20"
	})).Return(&domain.Voucher{ID: "b-1", VoucherNumber: "BV-0001", IsBatch: true}, nil).Once()
	suite.observer.On("TrackVoucherSubmitted", suite.ownerID, mock.Anything).Once()

	result, err := suite.service.SubmitVoucher(suite.ctx, suite.ownerID, d)
	suite.Require().NoError(err)

	suite.Equal("Farm Bank (0042)", result.Print.SettlementAccount)
	suite.Equal("Green Grocers", result.Print.Lines[0].Party)
	suite.Equal("Other", result.Print.Lines[1].Party)
	suite.Equal("100", result.Print.Total)
}

func (suite *DraftServiceTestSuite) TestListAndDiscardDrafts() {
	first, err := suite.service.CreateDraft(suite.ctx, suite.ownerID, domain.PaymentVoucher)
	suite.Require().NoError(err)
	_, err = suite.service.CreateDraft(suite.ctx, suite.ownerID, domain.ReceiptVoucher)
	suite.Require().NoError(err)
	_, err = suite.service.CreateDraft(suite.ctx, "other-owner", domain.ReceiptVoucher)
	suite.Require().NoError(err)

	page, err := suite.service.ListDrafts(suite.ctx, suite.ownerID, dto.ListDraftsParams{})
	suite.Require().NoError(err)
	suite.Len(page.Drafts, 2)

	suite.Require().NoError(suite.service.DiscardDraft(suite.ctx, first.DraftID, suite.ownerID))
	_, err = suite.service.GetDraft(suite.ctx, first.DraftID, suite.ownerID)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestDraftService(t *testing.T) {
	suite.Run(t, new(DraftServiceTestSuite))
}
