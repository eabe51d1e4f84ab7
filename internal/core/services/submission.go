package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Syed-Hadii/ERP-Software-sub003/internal/apperrors"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/core/domain"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/dto"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/platform/metrics"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/utils/mapping"
)

// GenericSubmitFailure is shown when the backend gave no usable message.
const GenericSubmitFailure = "Failed to save the voucher. Please try again."

// friendlyBackendMessages rewrites known backend messages, matched case-insensitively.
var friendlyBackendMessages = []struct {
	needle  string
	message string
}{
	{"duplicate", "Each account can appear only once in a voucher. Remove the duplicate account entries."},
	{"customer id", "Please select a customer for this voucher."},
	{"supplier id", "Please select a supplier for this voucher."},
	{"invalid cash account", "The selected cash account is not valid. Choose another cash account."},
	{"insufficient balance", "Insufficient balance in the selected account for this transaction."},
}

// FriendlyBackendMessage maps a backend failure to the message shown to the user.
func FriendlyBackendMessage(err error) string {
	var backendErr *apperrors.BackendError
	if !errors.As(err, &backendErr) {
		return GenericSubmitFailure
	}
	lower := strings.ToLower(backendErr.Message)
	for _, fm := range friendlyBackendMessages {
		if strings.Contains(lower, fm.needle) {
			return fm.message
		}
	}
	if strings.TrimSpace(backendErr.Message) != "" {
		return backendErr.Message
	}
	return GenericSubmitFailure
}

// translateBackendError wraps backend failures into an AppError carrying the friendly
// message. Other errors pass through.
func translateBackendError(err error) error {
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperrors.ErrBackend) {
		return err
	}
	return apperrors.NewAppError(http.StatusBadGateway, FriendlyBackendMessage(err), err)
}

// submissionKey identifies a voucher for the submission guard.
func submissionKey(ownerID string, d domain.VoucherDraft) string {
	switch {
	case d.DraftID != "":
		return "draft:" + d.DraftID
	case d.VoucherID != "":
		return "voucher:" + d.VoucherID
	default:
		return "owner:" + ownerID + ":" + string(d.VoucherType)
	}
}

// submit validates d, then holds the submission guard while the voucher is posted and
// onAccepted stores the reset form. The guard is released on every path.
func (s *draftService) submit(ctx context.Context, ownerID string, d domain.VoucherDraft, onAccepted func(reset domain.VoucherDraft) domain.VoucherDraft) (*dto.SubmitResult, error) {
	voucherType := string(d.VoucherType)
	if err := s.validator.Validate(d); err != nil {
		s.recordValidationFailure(ctx, d, err)
		metrics.Submissions.WithLabelValues(voucherType, "invalid").Inc()
		return nil, err
	}

	release, err := s.guard.Acquire(ctx, submissionKey(ownerID, d))
	if err != nil {
		if errors.Is(err, apperrors.ErrSubmissionInFlight) {
			metrics.Submissions.WithLabelValues(voucherType, "in_flight").Inc()
		}
		return nil, err
	}
	defer release()

	var voucher *domain.Voucher
	switch {
	case d.VoucherType.IsSimple() && d.VoucherID != "":
		voucher, err = s.backend.UpdateTransactionEntry(ctx, d.VoucherID, mapping.ToTransactionEntryPayload(d))
	case d.VoucherType.IsSimple():
		voucher, err = s.backend.AddTransactionEntry(ctx, mapping.ToTransactionEntryPayload(d))
	case d.VoucherType == domain.JournalVoucher && d.VoucherID != "":
		return nil, fmt.Errorf("%w: saved journal vouchers cannot be edited", apperrors.ErrValidation)
	case d.VoucherType == domain.JournalVoucher:
		voucher, err = s.backend.AddJournalVoucher(ctx, mapping.ToJournalVoucherPayload(d))
	case d.VoucherID != "":
		voucher, err = s.backend.UpdateBatchEntry(ctx, d.VoucherID, mapping.ToBatchEntryPayload(d))
	default:
		voucher, err = s.backend.AddBatchEntry(ctx, mapping.ToBatchEntryPayload(d))
	}
	if err != nil {
		metrics.Submissions.WithLabelValues(voucherType, "rejected").Inc()
		s.LogError(ctx, err, "Backend rejected voucher", slog.String("voucher_type", voucherType))
		return nil, translateBackendError(err)
	}

	metrics.Submissions.WithLabelValues(voucherType, "posted").Inc()
	completeFromDraft(voucher, d)

	reset := d.Reset()
	if onAccepted != nil {
		reset = onAccepted(reset)
	}
	return s.finishSubmission(ctx, ownerID, *voucher, reset), nil
}

func (s *draftService) recordValidationFailure(ctx context.Context, d domain.VoucherDraft, err error) {
	var verrs *ValidationErrors
	if !errors.As(err, &verrs) {
		return
	}
	for _, fe := range verrs.Fields() {
		field := fe.Key
		if name, _, ok := splitFieldKey(fe.Key); ok {
			field = name
		}
		metrics.ValidationFailures.WithLabelValues(string(d.VoucherType), field).Inc()
	}
	s.LogDebug(ctx, "Voucher failed validation",
		slog.String("voucher_type", string(d.VoucherType)),
		slog.Int("failures", verrs.Len()),
		slog.String("first", verrs.First().Key))
}

// completeFromDraft fills what a terse backend response left out, so the print view
// always shows the voucher that was submitted.
func completeFromDraft(v *domain.Voucher, d domain.VoucherDraft) {
	if v.VoucherType == "" {
		v.VoucherType = d.VoucherType
	}
	if v.Date.IsZero() {
		v.Date = d.Date
	}
	if v.Reference == "" {
		v.Reference = d.Reference
	}
	if v.Description == "" {
		v.Description = d.Description
	}
	if v.PaymentMethod == "" {
		v.PaymentMethod = d.PaymentMethod
		v.CashAccount = d.CashAccount
		v.BankAccount = d.BankAccount
		v.TransactionNumber = d.TransactionNumber
		v.ClearanceDate = d.ClearanceDate
	}
	if v.Party == "" {
		v.Party = d.Party
		v.Customer = d.Customer
		v.Supplier = d.Supplier
	}
	if len(v.Entries) == 0 && len(v.JournalEntries) == 0 && len(v.BatchEntries) == 0 {
		v.Entries = d.Entries
		v.JournalEntries = d.JournalEntries
		v.BatchEntries = d.BatchEntries
	}
	if v.TotalAmount.IsZero() {
		v.TotalAmount = d.TotalAmount
	}
	if v.Status == "" {
		v.Status = d.Status
	}
}
