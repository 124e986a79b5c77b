package punchlog

import "errors"

var (
	ErrPunchNotFound  = errors.New("punch log not found")
	ErrInvalidKind    = errors.New("invalid punch kind")
	ErrDuplicatePunch = errors.New("an identical punch was already recorded for this minute")
)
