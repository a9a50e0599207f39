package styling

import "fmt"

// SyntaxError reports malformed style text: a statement without a colon,
// or with an empty key or value. Raised during parsing, never while
// applying.
type SyntaxError struct {
	Part   string // the offending statement, trimmed
	Reason string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s in '%s'", e.Reason, e.Part)
}

// UnknownStyleError reports a style key which does not correspond to any
// styleable slot on the target, nor to any other interpretable directive.
// Raised by apply functions and surfaced unchanged.
type UnknownStyleError struct {
	Key string
}

func (e *UnknownStyleError) Error() string {
	return fmt.Sprintf("unknown style '%s'", e.Key)
}

// InvalidAssignmentError reports a value which cannot be assigned: the
// slot is final, the value's type does not fit the slot, or a prototype
// value could not be cloned. Raised by apply functions and surfaced
// unchanged.
type InvalidAssignmentError struct {
	Key    string // empty when no single key is involved
	Reason string
}

func (e *InvalidAssignmentError) Error() string {
	if e.Key == "" {
		return e.Reason
	}
	return fmt.Sprintf("cannot style '%s': %s", e.Key, e.Reason)
}
