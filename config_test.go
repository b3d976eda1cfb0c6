package gostack

import "testing"

func TestDefaultsettings(t *testing.T) {
	setts := Defaultsettings()
	if capacity := setts.Int64("capacity"); capacity <= 0 {
		t.Errorf("expected positive capacity, got %v", capacity)
	} else if capacity > Maxcapacity {
		t.Errorf("expected at most %v, got %v", Maxcapacity, capacity)
	}
	if prealloc := setts.Int64("prealloc"); prealloc != 0 {
		t.Errorf("expected %v, got %v", 0, prealloc)
	}
}

func TestGetsysmem(t *testing.T) {
	total, used, free := getsysmem()
	if total == 0 {
		t.Errorf("expected non-zero total memory")
	} else if used > total {
		t.Errorf("used %v exceeds total %v", used, total)
	} else if free > total {
		t.Errorf("free %v exceeds total %v", free, total)
	}
}
