package domain

import "errors"

var (
	ErrProfileNotFound      = errors.New("profile not found")
	ErrProfileAlreadyExists = errors.New("profile already exists")
	ErrMatchNotFound        = errors.New("match not found")
	ErrMatchAlreadyExists   = errors.New("match already exists")
	ErrPhotoNotFound        = errors.New("photo not found")
	ErrPrimaryPhotoExists   = errors.New("profile already has a primary photo")
	ErrMessageNotFound      = errors.New("message not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrCannotActOnSelf      = errors.New("cannot act on own profile")
	ErrNotMatchParticipant  = errors.New("not a participant of this match")
	ErrMatchNotActive       = errors.New("match is not in matched state")
	ErrAlreadyBlocked       = errors.New("user already blocked")
	ErrInvalidInput         = errors.New("invalid input")
	ErrInvalidSignature     = errors.New("invalid identity signature")
	ErrSessionNotFound      = errors.New("session not found")
)
