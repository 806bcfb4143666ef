package distance

import (
	"errors"
	"strconv"
	"strings"
)

// ErrUnknownPlace is wrapped by every UnknownPlaceError.
var ErrUnknownPlace = errors.New("place not found")

// UnknownPlaceError reports the query names that have no entry in the table.
type UnknownPlaceError struct {
	Names []string
}

func (e *UnknownPlaceError) Error() string {
	quoted := make([]string, len(e.Names))
	for i, name := range e.Names {
		quoted[i] = strconv.Quote(name)
	}

	return ErrUnknownPlace.Error() + ": " + strings.Join(quoted, ", ")
}

func (e *UnknownPlaceError) Unwrap() error {
	return ErrUnknownPlace
}
