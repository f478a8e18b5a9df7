package ledger

import "errors"

// Error kinds surfaced by ledger operations. Handlers map these onto
// HTTP status codes with errors.Is; every failure leaves the ledger
// unchanged.
var (
	ErrUnknownUser      = errors.New("unknown user")
	ErrUnknownComplaint = errors.New("unknown complaint")
	ErrUnknownBin       = errors.New("unknown bin")
	ErrUnknownProduct   = errors.New("unknown product")
	ErrDuplicateUser    = errors.New("username already exists")
	ErrRole             = errors.New("role not permitted")
	ErrState            = errors.New("invalid state for requested transition")
	ErrValidation       = errors.New("invalid input")
)
