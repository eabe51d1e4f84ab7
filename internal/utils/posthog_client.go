// posthog_client.go wraps the posthog client so callers need not care whether analytics is configured.
package utils

import (
	"log/slog"

	"github.com/Syed-Hadii/ERP-Software-sub003/internal/core/domain"
	"github.com/posthog/posthog-go"
)

// VoucherSubmittedEvent is sent for every voucher the ERP backend accepted.
const VoucherSubmittedEvent = "voucher_submitted"

// PosthogClientWrapper is a nil-safe analytics sink. A wrapper without a client drops events.
type PosthogClientWrapper struct {
	posthogClient posthog.Client
	logger        *slog.Logger
}

// InitializePosthogClient creates a wrapper. An empty key yields a wrapper that drops events.
func InitializePosthogClient(apiKey string, logger *slog.Logger) *PosthogClientWrapper {
	if apiKey == "" {
		logger.Warn("Posthog API key is empty, analytics disabled")
		return &PosthogClientWrapper{logger: logger}
	}
	client, err := posthog.NewWithConfig(apiKey, posthog.Config{Endpoint: "https://eu.i.posthog.com"})
	if err != nil {
		logger.Error("Failed to create posthog client, analytics disabled", slog.String("error", err.Error()))
		return &PosthogClientWrapper{logger: logger}
	}
	return NewPosthogClientWrapper(client, logger)
}

// NewPosthogClientWrapper wraps an existing client.
func NewPosthogClientWrapper(client posthog.Client, logger *slog.Logger) *PosthogClientWrapper {
	return &PosthogClientWrapper{posthogClient: client, logger: logger}
}

func (w *PosthogClientWrapper) IsInitialized() bool {
	return w != nil && w.posthogClient != nil
}

func (w *PosthogClientWrapper) Enqueue(distinctID string, event string, properties map[string]any) {
	if !w.IsInitialized() {
		return
	}
	err := w.posthogClient.Enqueue(posthog.Capture{
		DistinctId: distinctID,
		Event:      event,
		Properties: properties,
	})
	if err != nil && w.logger != nil {
		w.logger.Warn("Failed to enqueue analytics event", slog.String("event", event), slog.String("error", err.Error()))
	}
}

// TrackVoucherSubmitted records an accepted voucher. Amounts are not sent.
func (w *PosthogClientWrapper) TrackVoucherSubmitted(ownerID string, voucher domain.Voucher) {
	w.Enqueue(ownerID, VoucherSubmittedEvent, map[string]any{
		"voucher_type":   string(voucher.VoucherType),
		"voucher_number": voucher.VoucherNumber,
		"payment_method": string(voucher.PaymentMethod),
		"rows":           len(voucher.Entries) + len(voucher.JournalEntries) + len(voucher.BatchEntries),
	})
}

func (w *PosthogClientWrapper) Close() {
	if !w.IsInitialized() {
		return
	}
	if err := w.posthogClient.Close(); err != nil && w.logger != nil {
		w.logger.Warn("Failed to flush analytics", slog.String("error", err.Error()))
	}
}
