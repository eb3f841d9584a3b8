package parentauth

import (
	"context"
	"errors"
	"testing"
)

type memSettings struct {
	vals map[string]string
}

func newMemSettings() *memSettings {
	return &memSettings{vals: make(map[string]string)}
}

func (m *memSettings) Get(_ context.Context, key string) (string, error) {
	return m.vals[key], nil
}

func (m *memSettings) Set(_ context.Context, key, value string) error {
	m.vals[key] = value
	return nil
}

func (m *memSettings) Delete(_ context.Context, key string) error {
	delete(m.vals, key)
	return nil
}

func TestSetAndVerifyPIN(t *testing.T) {
	g := NewGuard(newMemSettings())
	ctx := context.Background()

	set, _ := g.IsSet(ctx)
	if set {
		t.Fatal("PIN reported set before configuration")
	}
	if _, err := g.Verify(ctx, "1234"); !errors.Is(err, ErrNotSet) {
		t.Fatalf("verify without PIN: err = %v, want ErrNotSet", err)
	}

	if err := g.SetPIN(ctx, "1234"); err != nil {
		t.Fatalf("set PIN: %v", err)
	}
	set, _ = g.IsSet(ctx)
	if !set {
		t.Error("PIN not reported set")
	}

	ok, err := g.Verify(ctx, "1234")
	if err != nil || !ok {
		t.Errorf("correct PIN rejected: ok=%v err=%v", ok, err)
	}
	ok, err = g.Verify(ctx, "4321")
	if err != nil || ok {
		t.Errorf("wrong PIN accepted: ok=%v err=%v", ok, err)
	}
}

func TestPINValidation(t *testing.T) {
	g := NewGuard(newMemSettings())
	ctx := context.Background()

	for _, pin := range []string{"", "123", "12345", "12a4", "ぬぬぬぬ"} {
		if err := g.SetPIN(ctx, pin); err == nil {
			t.Errorf("accepted invalid PIN %q", pin)
		}
	}
}

func TestPINStoredHashed(t *testing.T) {
	settings := newMemSettings()
	g := NewGuard(settings)
	ctx := context.Background()

	g.SetPIN(ctx, "9876")
	if settings.vals["parent_pin_hash"] == "9876" {
		t.Error("PIN stored in plain text")
	}
}

func TestReset(t *testing.T) {
	g := NewGuard(newMemSettings())
	ctx := context.Background()

	g.SetPIN(ctx, "1111")
	if err := g.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if _, err := g.Verify(ctx, "1111"); !errors.Is(err, ErrNotSet) {
		t.Errorf("verify after reset: err = %v, want ErrNotSet", err)
	}
}
