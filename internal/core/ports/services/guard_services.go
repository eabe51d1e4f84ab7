package services

import "context"

// SubmissionGuard keeps one submission per key in flight.
// Acquire fails with apperrors.ErrSubmissionInFlight when the key is held.
type SubmissionGuard interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
}

// CredentialProvider supplies the bearer token for backend calls.
type CredentialProvider interface {
	// GetToken returns apperrors.ErrUnauthenticated when no token is stored.
	GetToken() (string, error)
	SetToken(token string) error
	Clear() error
}
