package domain

import "errors"

var (
	ErrInvalidTransition = errors.New("invalid campaign status transition")
	ErrReactivation      = errors.New("campaign cannot be activated: balance exhausted or cost exceeds daily budget")
)
