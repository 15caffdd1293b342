package design

import "errors"

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrInvalidSlot     = errors.New("slot index out of range for layout")
	ErrPhotoNotFound   = errors.New("photo not found")
	ErrNoStep          = errors.New("no step in that direction")
)
