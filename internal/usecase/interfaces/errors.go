package interfaces

import "errors"

// ErrDuplicateShortCode is returned by IServiceOrderRepository.Create when
// the short code is already taken. The use case retries the sequence instead
// of overwriting the existing order.
var ErrDuplicateShortCode = errors.New("short code already in use")
