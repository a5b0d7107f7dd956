package apperror

import "errors"

var (
	ErrGameNotFound      = errors.New("game not found")
	ErrInvalidGameID     = errors.New("invalid game id")
	ErrInvalidPitID      = errors.New("invalid pit id")
	ErrConcurrentUpdate  = errors.New("game was modified concurrently")
	ErrGameAlreadyExists = errors.New("game already exists")
)
