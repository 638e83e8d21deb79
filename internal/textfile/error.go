package textfile

import "errors"

var (
	ErrNotFound = errors.New("file not found")
	ErrNotFile  = errors.New("path is not a file")
)
