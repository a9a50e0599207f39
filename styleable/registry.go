package styleable

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/npillmayer/styling"
	"github.com/npillmayer/styling/style"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
)

// Slot is a styleable location on targets of type T: a pair of accessor
// closures plus the expected value kind. Slots are created with the
// typed constructors below and registered with Registry.Define.
type Slot[T any] struct {
	kind   string // expected kind, for error messages
	origin string // name of the registry which defined the slot
	final  bool
	get    func(*T) style.Value
	assign func(*T, style.Value) bool // false on kind mismatch
}

// Final marks a slot as read-only. Binding a final slot fails with an
// InvalidAssignmentError.
func (s Slot[T]) Final() Slot[T] {
	s.final = true
	return s
}

func slotOf[T, F any](kind string, get func(*T) F, set func(*T, F),
	wrap func(F) style.Value, unwrap func(style.Value) (F, bool)) Slot[T] {
	//
	return Slot[T]{
		kind: kind,
		get: func(t *T) style.Value {
			return wrap(get(t))
		},
		assign: func(t *T, v style.Value) bool {
			f, ok := unwrap(v)
			if !ok {
				return false
			}
			set(t, f)
			return true
		},
	}
}

// BoolSlot creates a slot for a boolean field.
func BoolSlot[T any](get func(*T) bool, set func(*T, bool)) Slot[T] {
	return slotOf("boolean", get, set, style.Bool, style.Value.AsBool)
}

// IntSlot creates a slot for an integral field.
func IntSlot[T any](get func(*T) int, set func(*T, int)) Slot[T] {
	return slotOf("integer", get, set, style.Int, style.Value.AsInt)
}

// FloatSlot creates a slot for a float field. Integral values promote.
func FloatSlot[T any](get func(*T) float64, set func(*T, float64)) Slot[T] {
	return slotOf("number", get, set, style.Float, style.Value.AsFloat)
}

// StringSlot creates a slot for a string field.
func StringSlot[T any](get func(*T) string, set func(*T, string)) Slot[T] {
	return slotOf("string", get, set, style.Str, style.Value.AsString)
}

// ColorSlot creates a slot for a color field.
func ColorSlot[T any](get func(*T) color.Color, set func(*T, color.Color)) Slot[T] {
	return slotOf("color", get, set, style.Color, style.Value.AsColor)
}

// DimenSlot creates a slot for a dimension field.
func DimenSlot[T any](get func(*T) dimen.DU, set func(*T, dimen.DU)) Slot[T] {
	return slotOf("dimension", get, set, style.Dimen, style.Value.AsDimen)
}

// PercentSlot creates a slot for a percentage field.
func PercentSlot[T any](get func(*T) percent.Percent, set func(*T, percent.Percent)) Slot[T] {
	return slotOf("percentage", get, set, style.Percentage, style.Value.AsPercentage)
}

// InsetsSlot creates a slot for an insets field.
func InsetsSlot[T any](get func(*T) style.Insets, set func(*T, style.Insets)) Slot[T] {
	return slotOf("insets", get, set, style.InsetsOf, style.Value.AsInsets)
}

// FontSlot creates a slot for a font field.
func FontSlot[T any](get func(*T) style.Font, set func(*T, style.Font)) Slot[T] {
	return slotOf("font", get, set, style.FontOf, style.Value.AsFont)
}

// OpaqueSlot creates a slot for a field of arbitrary type F, carried in
// opaque style values. kind names F in error messages.
func OpaqueSlot[T any, F any](kind string, get func(*T) F, set func(*T, F)) Slot[T] {
	return slotOf(kind, get, set,
		func(f F) style.Value {
			return style.Opaque(f)
		},
		func(v style.Value) (F, bool) {
			x, ok := v.AsOpaque()
			if !ok {
				var none F
				return none, false
			}
			f, ok := x.(F)
			return f, ok
		})
}

// Registry is the slot table for one styleable target type. It is built
// once, at registration time, and read-only afterwards.
type Registry[T any] struct {
	name  string
	slots map[string]Slot[T]
}

// NewRegistry creates an empty slot registry for target type T. The name
// is used for tracing and diagnostics only.
func NewRegistry[T any](name string) *Registry[T] {
	return &Registry[T]{
		name:  name,
		slots: make(map[string]Slot[T]),
	}
}

// Extend composes a registry for a derived target type C from the
// registry of its base type P. Every slot of the base registry is lifted
// through project, which locates the embedded base within a derived
// target. Slots defined on the result shadow inherited ones.
func Extend[C, P any](name string, base *Registry[P], project func(*C) *P) *Registry[C] {
	r := NewRegistry[C](name)
	for key, s := range base.slots {
		r.slots[key] = liftSlot(s, project)
	}
	tracer().Debugf("registry %s extends %s with %d slots", name, base.name, len(base.slots))
	return r
}

func liftSlot[C, P any](s Slot[P], project func(*C) *P) Slot[C] {
	return Slot[C]{
		kind:   s.kind,
		origin: s.origin,
		final:  s.final,
		get: func(c *C) style.Value {
			return s.get(project(c))
		},
		assign: func(c *C, v style.Value) bool {
			return s.assign(project(c), v)
		},
	}
}

// Define registers a slot under a key, overwriting an inherited slot of
// the same name. Define returns the registry for chaining.
func (r *Registry[T]) Define(key string, s Slot[T]) *Registry[T] {
	s.origin = r.name
	r.slots[key] = s
	return r
}

// Name returns the name of the registry.
func (r *Registry[T]) Name() string {
	return r.name
}

// Has is a predicate wether a slot is registered under a key.
func (r *Registry[T]) Has(key string) bool {
	_, ok := r.slots[key]
	return ok
}

// Keys returns all registered keys, sorted.
func (r *Registry[T]) Keys() []string {
	keys := make([]string, 0, len(r.slots))
	for k := range r.slots {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Bind resolves key to a slot of the target, writes the value and returns
// the value the slot held before.
//
// Keys without a registered slot fail with an UnknownStyleError. Binding
// a final slot, or a value whose kind does not fit the slot, fails with
// an InvalidAssignmentError; the target is left untouched in either case.
func (r *Registry[T]) Bind(target *T, key string, v style.Value) (style.Value, error) {
	s, ok := r.slots[key]
	if !ok {
		return style.Null(), &styling.UnknownStyleError{Key: key}
	}
	if s.final {
		return style.Null(), &styling.InvalidAssignmentError{
			Key:    key,
			Reason: fmt.Sprintf("slot %s.%s is final", r.name, key),
		}
	}
	old := s.get(target)
	if !s.assign(target, v) {
		return style.Null(), &styling.InvalidAssignmentError{
			Key:    key,
			Reason: fmt.Sprintf("%s value expected", s.kind),
		}
	}
	tracer().Debugf("%s.%s = %s (was %s)", r.name, key, v, old)
	return old, nil
}

// Applier adapts a registry and a target to the apply-function interface
// of styling.ParseAndApply. All calls mutate the given target.
func (r *Registry[T]) Applier(target *T) styling.ApplyFunc {
	return func(key string, v style.Value) (style.Value, error) {
		return r.Bind(target, key, v)
	}
}
