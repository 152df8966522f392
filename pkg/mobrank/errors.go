package mobrank

import (
	"errors"
	"fmt"

	"github.com/Ehmachado/rel6500-go/pkg/mobrank/parser"
)

// ErrOpen indicates the input spreadsheet could not be opened.
var ErrOpen = errors.New("cannot open spreadsheet")

// ErrNoSheets indicates a workbook without any worksheet.
var ErrNoSheets = parser.ErrNoSheets

// ErrInvalidColumn indicates a malformed column label in a group layout.
var ErrInvalidColumn = parser.ErrInvalidColumn

// GroupError represents a failure while processing one group.
type GroupError struct {
	Group     string
	Component string // "extract", "rank"
	Err       error
}

func (e *GroupError) Error() string {
	return fmt.Sprintf("group %q (%s): %v", e.Group, e.Component, e.Err)
}

func (e *GroupError) Unwrap() error {
	return e.Err
}

// NewGroupError creates a new GroupError.
func NewGroupError(group, component string, err error) *GroupError {
	return &GroupError{
		Group:     group,
		Component: component,
		Err:       err,
	}
}
