package datasink

import "errors"

// ErrWriterClosed indicates a write was attempted after Close.
var ErrWriterClosed = errors.New("datasink: writer already closed")
