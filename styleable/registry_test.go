package styleable

import (
	"errors"
	"image/color"
	"reflect"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/styling"
	"github.com/npillmayer/styling/style"
	"github.com/npillmayer/tyse/core/dimen"
	tp "github.com/xlab/treeprint"
)

// --- Fixture: a small widget hierarchy -------------------------------------

type widget struct {
	background   color.Color
	foreground   color.Color
	minimumWidth dimen.DU
	visible      bool
	kind         string // styleable, but final
	internal     string // not styleable at all
}

type button struct {
	widget
	margin    style.Insets
	arc       int
	titleFont style.Font
}

func widgetSlots() *Registry[widget] {
	return NewRegistry[widget]("widget").
		Define("background", ColorSlot(
			func(w *widget) color.Color { return w.background },
			func(w *widget, c color.Color) { w.background = c })).
		Define("foreground", ColorSlot(
			func(w *widget) color.Color { return w.foreground },
			func(w *widget, c color.Color) { w.foreground = c })).
		Define("minimumWidth", DimenSlot(
			func(w *widget) dimen.DU { return w.minimumWidth },
			func(w *widget, d dimen.DU) { w.minimumWidth = d })).
		Define("visible", BoolSlot(
			func(w *widget) bool { return w.visible },
			func(w *widget, b bool) { w.visible = b })).
		Define("kind", StringSlot(
			func(w *widget) string { return w.kind },
			func(w *widget, s string) { w.kind = s }).Final())
}

func buttonSlots() *Registry[button] {
	return Extend[button]("button", widgetSlots(),
		func(b *button) *widget { return &b.widget }).
		Define("margin", InsetsSlot(
			func(b *button) style.Insets { return b.margin },
			func(b *button, ins style.Insets) { b.margin = ins })).
		Define("arc", IntSlot(
			func(b *button) int { return b.arc },
			func(b *button, n int) { b.arc = n })).
		Define("titleFont", FontSlot(
			func(b *button) style.Font { return b.titleFont },
			func(b *button, f style.Font) { b.titleFont = f }))
}

// ---------------------------------------------------------------------------

func TestRegistryBind(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styling.slots")
	defer teardown()
	//
	w := widget{background: color.NRGBA{0, 0, 0, 0xff}}
	reg := widgetSlots()
	old, err := reg.Bind(&w, "background", style.Color(color.NRGBA{0xff, 0, 0, 0xff}))
	if err != nil {
		t.Fatal(err)
	}
	if c, ok := old.AsColor(); !ok || !reflect.DeepEqual(c, color.NRGBA{0, 0, 0, 0xff}) {
		t.Errorf("expected the old background as previous value, have %s", old)
	}
	if !reflect.DeepEqual(w.background, color.NRGBA{0xff, 0, 0, 0xff}) {
		t.Errorf("expected the background to be set, is %v", w.background)
	}
}

func TestRegistryUnknownKey(t *testing.T) {
	w := widget{}
	reg := widgetSlots()
	_, err := reg.Bind(&w, "no-such-slot", style.Int(1))
	var unknown *styling.UnknownStyleError
	if !errors.As(err, &unknown) || unknown.Key != "no-such-slot" {
		t.Errorf("expected an unknown-style error for 'no-such-slot', got %v", err)
	}
	// a Go field without a registered slot is just as unknown
	if _, err = reg.Bind(&w, "internal", style.Str("x")); !errors.As(err, &unknown) {
		t.Errorf("expected an unregistered field to be unknown, got %v", err)
	}
}

func TestRegistryFinalSlot(t *testing.T) {
	w := widget{kind: "widget"}
	_, err := widgetSlots().Bind(&w, "kind", style.Str("other"))
	var invalid *styling.InvalidAssignmentError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected an invalid-assignment error for final slot, got %v", err)
	}
	if w.kind != "widget" {
		t.Errorf("expected the final slot to stay untouched, is %q", w.kind)
	}
}

func TestRegistryKindMismatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styling.slots")
	defer teardown()
	//
	b := button{arc: 4}
	_, err := buttonSlots().Bind(&b, "arc", style.Str("big"))
	var invalid *styling.InvalidAssignmentError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected an invalid-assignment error for a string arc, got %v", err)
	}
	if b.arc != 4 {
		t.Errorf("expected arc to stay untouched on mismatch, is %d", b.arc)
	}
}

func TestRegistryExtend(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styling.slots")
	defer teardown()
	//
	reg := buttonSlots()
	b := button{}
	// inherited slot reaches through to the embedded widget
	if _, err := reg.Bind(&b, "background", style.Color(color.NRGBA{0, 0xff, 0, 0xff})); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(b.widget.background, color.NRGBA{0, 0xff, 0, 0xff}) {
		t.Errorf("expected the embedded widget's background to be set, is %v", b.widget.background)
	}
	if !reg.Has("minimumWidth") || !reg.Has("arc") {
		t.Error("expected the button registry to compose inherited and own slots")
	}
	t.Logf("button slots =\n%s", printAncestry(reg))
}

// printAncestry renders the slots of a registry grouped by the registry
// which defined them.
func printAncestry[T any](reg *Registry[T]) string {
	tree := tp.New()
	branches := make(map[string]tp.Tree)
	for _, key := range reg.Keys() {
		origin := reg.slots[key].origin
		br, ok := branches[origin]
		if !ok {
			br = tree.AddBranch(origin)
			branches[origin] = br
		}
		br.AddNode(key)
	}
	return tree.String()
}

func TestRegistryApplier(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styling.slots")
	defer teardown()
	//
	b := button{arc: 4, widget: widget{visible: true}}
	reg := buttonSlots()
	c := style.Coercer{}
	styler := styling.NewStyler(c.Coerce)
	old, err := styler.ParseAndApply(nil, "background: #3574f0; arc: 8; margin: 2,14,2,14", reg.Applier(&b))
	if err != nil {
		t.Fatal(err)
	}
	if b.arc != 8 {
		t.Errorf("expected arc to be styled to 8, is %d", b.arc)
	}
	if b.margin != (style.Insets{Top: 2, Left: 14, Bottom: 2, Right: 14}) {
		t.Errorf("expected margin to be styled, is %v", b.margin)
	}
	// dropping the style restores the pre-apply state
	if _, err = styler.ParseAndApply(old, nil, reg.Applier(&b)); err != nil {
		t.Fatal(err)
	}
	if b.arc != 4 || b.margin != (style.Insets{}) || b.widget.background != nil {
		t.Errorf("expected the button to be fully reverted, is %+v", b)
	}
}

func TestRegistryApplierPartialFailure(t *testing.T) {
	b := button{}
	reg := buttonSlots()
	c := style.Coercer{}
	styler := styling.NewStyler(c.Coerce)
	_, err := styler.ParseAndApply(nil, "arc: 8; no-such-slot: 1; visible: false", reg.Applier(&b))
	var unknown *styling.UnknownStyleError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected an unknown-style error to surface, got %v", err)
	}
	if b.arc != 8 {
		t.Errorf("expected arc to remain applied after the failure, is %d", b.arc)
	}
	if b.visible {
		t.Error("expected keys after the failure to stay unapplied")
	}
}
