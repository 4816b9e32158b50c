package calculator

import (
	"errors"
	"testing"

	"github.com/kaniou/kaniou.be/internal/catalog"
	"github.com/kaniou/kaniou.be/internal/pricing"
)

func newSession(t *testing.T, productID string) *Calculator {
	t.Helper()
	cfg, matched := catalog.Lookup(productID)
	if !matched {
		t.Fatalf("expected product %q to exist", productID)
	}
	return New(cfg)
}

func TestCalculate_WithDefaults(t *testing.T) {
	c := newSession(t, "overgordijnen")

	// Defaults are 150x260: 40 * 1.5 = 60.
	price, err := c.Calculate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if price != 60 {
		t.Fatalf("price = %d, want 60", price)
	}

	stored, ok := c.Result()
	if !ok || stored != 60 {
		t.Fatalf("stored result = %d ok=%v, want 60 true", stored, ok)
	}
}

func TestCalculate_MissingDimensionsGate(t *testing.T) {
	c := newSession(t, "overgordijnen")

	if _, err := c.Calculate(); err != nil {
		t.Fatalf("seed calculation failed: %v", err)
	}
	before, _ := c.Result()

	c.SetDimension(Width, 0)
	_, err := c.Calculate()
	if !errors.Is(err, ErrMissingDimensions) {
		t.Fatalf("expected ErrMissingDimensions, got %v", err)
	}

	// Editing dropped the held result, but the stored value itself must be
	// unchanged by the failed call.
	stored, ok := c.Result()
	if ok {
		t.Fatalf("expected no held result after edit")
	}
	if stored != before {
		t.Fatalf("failed Calculate changed stored price: %d -> %d", before, stored)
	}

	c.SetDimension(Width, 200)
	c.SetDimension(Height, -5)
	if _, err := c.Calculate(); !errors.Is(err, ErrMissingDimensions) {
		t.Fatalf("expected ErrMissingDimensions for negative height, got %v", err)
	}
}

func TestToggleFeature_IsAnIdempotentToggle(t *testing.T) {
	c := newSession(t, "rolgordijnen")
	c.SetDimension(Width, 100)
	c.SetDimension(Height, 200)

	base, err := c.Calculate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c.ToggleFeature("cassette")
	withCassette, _ := c.Calculate()
	if withCassette != base+35 {
		t.Fatalf("with cassette = %d, want %d", withCassette, base+35)
	}

	c.ToggleFeature("cassette")
	again, _ := c.Calculate()
	if again != base {
		t.Fatalf("after toggle-off = %d, want %d", again, base)
	}
}

func TestEditsResetResultState(t *testing.T) {
	c := newSession(t, "rolgordijnen")

	if _, err := c.Calculate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := c.Result(); !ok {
		t.Fatalf("expected held result after Calculate")
	}

	c.SetDimension(Width, 120)
	if _, ok := c.Result(); ok {
		t.Fatalf("SetDimension should drop the held result")
	}

	if _, err := c.Calculate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c.ToggleFeature("montage")
	if _, ok := c.Result(); ok {
		t.Fatalf("ToggleFeature should drop the held result")
	}
}

func TestCalculate_RoundsHalfUp(t *testing.T) {
	cfg, _ := catalog.Lookup("rolgordijnen")
	c := New(cfg)

	// 85x85cm = 0.7225m² * 40 = 28.9 -> 29.
	c.SetDimension(Width, 85)
	c.SetDimension(Height, 85)
	price, err := c.Calculate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if price != 29 {
		t.Fatalf("price = %d, want 29", price)
	}
}

func TestCalculate_NotifiesCallbackWithSnapshot(t *testing.T) {
	c := newSession(t, "overgordijnen")

	var gotPrice int
	var gotInput pricing.Input
	calls := 0
	c.OnResult(func(price int, input pricing.Input) {
		calls++
		gotPrice = price
		gotInput = input
	})

	c.SetDimension(Width, 200)
	c.ToggleFeature("voering")
	c.ToggleFeature("dubbele_plooi")

	price, err := c.Calculate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if calls != 1 {
		t.Fatalf("callback called %d times, want 1", calls)
	}
	if gotPrice != price {
		t.Fatalf("callback price = %d, want %d", gotPrice, price)
	}
	if gotInput.Width != 200 || gotInput.Height != 260 {
		t.Fatalf("unexpected snapshot dimensions: %+v", gotInput)
	}
	if len(gotInput.Features) != 2 || gotInput.Features[0] != "dubbele_plooi" || gotInput.Features[1] != "voering" {
		t.Fatalf("unexpected snapshot features: %+v", gotInput.Features)
	}

	// A failed calculation must not notify.
	c.SetDimension(Height, 0)
	if _, err := c.Calculate(); err == nil {
		t.Fatalf("expected validation error")
	}
	if calls != 1 {
		t.Fatalf("callback called on failed Calculate")
	}
}

func TestNew_StartsFromProductDefaults(t *testing.T) {
	c := newSession(t, "rolgordijnen")
	input := c.Input()
	if input.Width != 100 || input.Height != 190 {
		t.Fatalf("unexpected defaults: %+v", input)
	}
	if len(input.Features) != 0 {
		t.Fatalf("expected empty initial selection, got %+v", input.Features)
	}
}
