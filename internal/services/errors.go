package services

import "errors"

var (
	// ErrNotFound covers missing clients and leads on update, delete
	// and convert.
	ErrNotFound = errors.New("record not found")

	// ErrClientLimitReached fires before the 1000th client would be
	// created; the 3-digit display id space is full.
	ErrClientLimitReached = errors.New("client limit (999) reached")

	// ErrLegacyNotSupported rejects edits addressed to the legacy
	// source, which is read/delete only.
	ErrLegacyNotSupported = errors.New("legacy record editing not implemented")
)
