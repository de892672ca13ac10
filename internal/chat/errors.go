package chat

import "errors"

var (
	ErrRoomNotFound = errors.New("chat: room not found")
	ErrUserNotFound = errors.New("chat: user not found")
	ErrValidation   = errors.New("chat: invalid input")
)
