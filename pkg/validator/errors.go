package validator

import "errors"

// ErrUnknownFormat is returned by Format when the rule is nil.
var ErrUnknownFormat = errors.New("unknown format rule")
