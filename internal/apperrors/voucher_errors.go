package apperrors

import "fmt"

// ErrJournalRowFloor is returned when removing a row would leave a journal with fewer than two.
var ErrJournalRowFloor = fmt.Errorf("%w: a journal voucher needs at least two entries", ErrValidation)

// ErrFirstRowRequired is returned when removing the first row of a payment, receipt or batch.
var ErrFirstRowRequired = fmt.Errorf("%w: the first entry row cannot be removed", ErrValidation)

// ErrRowOutOfRange is returned for row indexes outside the entry list.
var ErrRowOutOfRange = fmt.Errorf("%w: entry row does not exist", ErrValidation)

// ErrUnknownField is returned for row fields the voucher type does not have.
var ErrUnknownField = fmt.Errorf("%w: unknown entry field", ErrValidation)

// ErrSubmissionInFlight is returned while another submission of the same voucher is running.
var ErrSubmissionInFlight = fmt.Errorf("%w: a submission for this voucher is already in progress", ErrConflict)

// ErrStatusTransition is returned for any status change other than Draft to Posted.
var ErrStatusTransition = fmt.Errorf("%w: only Draft vouchers can be posted", ErrConflict)
