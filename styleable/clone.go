package styleable

import (
	"fmt"

	"github.com/npillmayer/styling"
)

// Cloneable is the capability to duplicate a prototype value. Border- and
// icon-like values living in a shared defaults table implement it so that
// styling one target never mutates the prototype other targets see.
type Cloneable interface {
	CloneForStyling() interface{}
}

// Clone duplicates a prototype value through its Cloneable capability.
// Prototypes without the capability, and clones coming back nil, fail
// with an InvalidAssignmentError.
func Clone(prototype interface{}) (interface{}, error) {
	c, ok := prototype.(Cloneable)
	if !ok {
		return nil, &styling.InvalidAssignmentError{
			Reason: fmt.Sprintf("cannot clone prototype of type %T", prototype),
		}
	}
	fresh := c.CloneForStyling()
	if fresh == nil {
		return nil, &styling.InvalidAssignmentError{
			Reason: fmt.Sprintf("cloning prototype of type %T failed", prototype),
		}
	}
	return fresh, nil
}

// HasStyle is implemented by targets carrying their currently attached
// style, be it a style string or a mapping.
type HasStyle interface {
	Style() interface{}
}

// StyleOf returns the style attached to a target, or nil. No parsing is
// involved; this is a plain attribute read.
func StyleOf(target interface{}) interface{} {
	if h, ok := target.(HasStyle); ok {
		return h.Style()
	}
	return nil
}
