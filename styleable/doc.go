/*
Package styleable binds style keys to writable slots on arbitrary target
types.

Instead of discovering fields at run time, every styleable target type
declares an explicit Registry of its slots: named accessor pairs built
from getter and setter closures. A registry for a derived type is composed
from its base type's registry once, at registration time, with Extend;
binding a key is then a single table lookup, never a hierarchy walk.
Slots not registered are unknown to styling, whatever fields the Go type
may have.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2023 Norbert Pillmayer <norbert@pillmayer.com>
*/
package styleable

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to 'styling.slots'.
func tracer() tracing.Trace {
	return tracing.Select("styling.slots")
}
