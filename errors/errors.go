package errors

import "fmt"

var (
	ErrUnauthenticated       = fmt.Errorf("unauthenticated")
	ErrStoreFailure          = fmt.Errorf("store failure")
	ErrUnsupportedOrderField = fmt.Errorf("unsupported order field")
	ErrWatchUnsupported      = fmt.Errorf("store does not support watching")
	ErrInvalidSession        = fmt.Errorf("invalid session")
	ErrInvalidPassword       = fmt.Errorf("invalid password")
	ErrUserAlreadyExists     = fmt.Errorf("user already exists")
	ErrInvalidCredentials    = fmt.Errorf("invalid credentials")
	ErrTokenGeneration       = fmt.Errorf("token generation failed")
)
