package commands

import "errors"

// Command errors.
var (
	ErrBatchFailed         = errors.New("batch operation failed")
	ErrConfigureNoTerminal = errors.New("secret access key must be passed with --secret-access-key when stdin is not a terminal")
)
