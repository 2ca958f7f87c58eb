package store

import "errors"

var (
	ErrUserNotFound = errors.New("user not found")
	ErrRideNotFound = errors.New("ride not found")
	ErrChatNotFound = errors.New("chat not found")
)
