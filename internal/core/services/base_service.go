package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Syed-Hadii/ERP-Software-sub003/internal/apperrors"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/core/domain"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct{}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// LogWarn logs a warning with consistent formatting
func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Warn(msg, keyvals...)
}

// AuthorizeOwner checks that userID owns the draft. Drafts are private to their creator.
func (s *BaseService) AuthorizeOwner(ctx context.Context, draft *domain.VoucherDraft, userID string) error {
	if draft.OwnerID == userID {
		return nil
	}
	s.LogDebug(ctx, "Draft access denied",
		slog.String("draft_id", draft.DraftID),
		slog.String("user_id", userID))
	return fmt.Errorf("%w: draft %s belongs to another user", apperrors.ErrForbidden, draft.DraftID)
}
