package views

import "errors"

// MaxStep bounds how many weeks or months a view may move from its anchor.
const MaxStep = 1200

// ErrInvalidQuery indicates unparseable view parameters.
var ErrInvalidQuery = errors.New("invalid view query")
