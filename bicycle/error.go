package bicycle

import "errors"

var (
	// ErrDecode JSON input is not a list of parts
	ErrDecode = errors.New("bicycle: malformed parts")

	// ErrNullPart a part or its needs_spare flag is JSON null
	ErrNullPart = errors.New("part is null")
)
