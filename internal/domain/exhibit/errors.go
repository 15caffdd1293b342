package exhibit

import "errors"

var (
	ErrSessionNotFound = errors.New("exhibit session not found")
	ErrPhotoNotFound   = errors.New("photo not found")
)
