package sprite

import (
	"errors"
	"testing"
)

func TestDefaultConfigGeometry(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if s := cfg.SeedSize(); s.W != 4 || s.H != 8 {
		t.Fatalf("SeedSize = %+v, want 4x8", s)
	}
	if s := cfg.GrownSize(); s.W != 5 || s.H != 10 {
		t.Fatalf("GrownSize = %+v, want 5x10", s)
	}
	if s := cfg.FinalSize(); s.W != 10 || s.H != 10 {
		t.Fatalf("FinalSize = %+v, want 10x10", s)
	}
}

func TestValidateRejectsNonPositive(t *testing.T) {
	for _, cfg := range []Config{{0, 8}, {4, 0}, {-1, -1}} {
		err := cfg.Validate()
		if !errors.Is(err, ErrInvalidSize) {
			t.Fatalf("Validate(%+v) = %v, want ErrInvalidSize", cfg, err)
		}
	}
}

func TestFromMap(t *testing.T) {
	if got := FromMap(nil); got != DefaultConfig() {
		t.Fatalf("FromMap(nil) = %+v, want defaults", got)
	}
	got := FromMap(map[string]string{"w": "6", "h": "bogus"})
	if got.SeedWidth != 6 || got.SeedHeight != 8 {
		t.Fatalf("FromMap = %+v, want 6x8", got)
	}
	got = FromMap(map[string]string{"w": "-3", "h": "12"})
	if got.SeedWidth != 4 || got.SeedHeight != 12 {
		t.Fatalf("FromMap = %+v, want 4x12", got)
	}
}

func TestParametersDescribeGeometry(t *testing.T) {
	snap := DefaultConfig().Parameters()
	values := map[string]string{}
	for _, g := range snap.Groups {
		for _, p := range g.Params {
			values[p.Key] = p.Value
		}
	}
	if values["w"] != "4" || values["h"] != "8" || values["final"] != "10x10" || values["passes"] != "2" {
		t.Fatalf("unexpected parameters: %v", values)
	}
	if len(snap.Lines()) == 0 {
		t.Fatal("expected printable lines")
	}
}
