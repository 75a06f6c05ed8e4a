package logger

import "errors"

// ErrLogFileOpen is returned when the file sink cannot be created or opened.
// The server treats this as fatal at startup.
var ErrLogFileOpen = errors.New("cannot open log file")
