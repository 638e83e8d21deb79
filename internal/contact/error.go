package contact

import "errors"

var ErrNotFound = errors.New("not found")
