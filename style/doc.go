/*
Package style provides typed style values and the coercion of raw style
tokens into them.

A Value is a variant record with one constructor per supported kind:
booleans, numbers, strings, colors, dimensions, percentages, insets,
fonts, named references and opaque external values. A Coercer turns the
raw tokens of a style statement into Values, resolving indirect
references ("$name") against an external ValueStore and everything else
through a pluggable LiteralParser.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2023 Norbert Pillmayer <norbert@pillmayer.com>
*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to 'styling.values'.
func tracer() tracing.Trace {
	return tracing.Select("styling.values")
}
