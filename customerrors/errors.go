package customerrors

import "errors"

var (
	ErrUserAlreadyExists = errors.New("an account with this email already exists")
	ErrTickerNotFound    = errors.New("ticker is unknown to the stock service")
	ErrUnavailable       = errors.New("stock service request failed")
	ErrBadPayload        = errors.New("stock service returned a malformed payload")
)
