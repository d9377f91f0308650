package model

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrAlreadyExists      = errors.New("already exists")
	ErrInvalidParticipant = errors.New("invalid participant")
	ErrInvalidRoom        = errors.New("invalid room")
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrNotFriends         = errors.New("users are not friends")
	ErrRequestNotPending  = errors.New("friend request is not pending")

	// ErrDecryptionDegraded is logged when a stored message body cannot be
	// decrypted. It never leaves the vault.
	ErrDecryptionDegraded = errors.New("decryption degraded")
)
