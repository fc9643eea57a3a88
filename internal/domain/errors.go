package domain

import "errors"

var (
	ErrCredentialsInvalid = errors.New("invalid credentials")
	ErrSessionExpired     = errors.New("session expired, please log in again")
	ErrNoSession          = errors.New("no active session")
	ErrRoomNotFound       = errors.New("room not found")
	ErrNoInvitation       = errors.New("no pending call invitation")
	ErrInvalidRating      = errors.New("rating must be between 1 and 5")
	ErrSecretNotFound     = errors.New("secret not found")
	ErrRecordNotFound     = errors.New("session record not found")
)
