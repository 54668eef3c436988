package services

import "errors"

// Sentinel errors returned by the service layer. Handlers map them onto
// HTTP status codes with errors.Is; nothing below this layer crafts HTTP
// responses.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrConflict           = errors.New("resource already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnknownRole        = errors.New("unknown role")
	ErrIntegrity          = errors.New("integrity constraint violated")
)
