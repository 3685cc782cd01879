package ksio

import "errors"

var (
	// ErrEmptyInput indicates the reader held no non-blank lines.
	ErrEmptyInput = errors.New("ksio: input is empty")
	// ErrBadHeader indicates the first non-blank line is not "n capacity".
	ErrBadHeader = errors.New("ksio: malformed header line")
	// ErrBadItemLine indicates an item line is not "value weight".
	ErrBadItemLine = errors.New("ksio: malformed item line")
	// ErrItemCount indicates fewer item lines than the header declared.
	ErrItemCount = errors.New("ksio: item lines do not match declared count")
)
