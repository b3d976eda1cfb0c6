package gostack

import "testing"

import s "github.com/bnclabs/gosettings"

func TestStats(t *testing.T) {
	pool := New[int64]("stats", nil)
	h, err := pool.NewStack(), error(nil)
	for i := int64(0); i < 10; i++ {
		if h, err = pool.Push(i, h); err != nil {
			t.Fatalf("unexpected %v", err)
		}
	}
	for i := 0; i < 4; i++ {
		if h, err = pool.Pop(h); err != nil {
			t.Fatalf("unexpected %v", err)
		}
	}
	if h, err = pool.Push(100, h); err != nil {
		t.Fatalf("unexpected %v", err)
	}

	stats := pool.Stats()
	if x := stats["n_nodes"].(int64); x != 10 {
		t.Errorf("expected %v, got %v", 10, x)
	} else if x := stats["n_free"].(int64); x != 3 {
		t.Errorf("expected %v, got %v", 3, x)
	} else if x := stats["n_allocs"].(int64); x != 11 {
		t.Errorf("expected %v, got %v", 11, x)
	} else if x := stats["n_frees"].(int64); x != 4 {
		t.Errorf("expected %v, got %v", 4, x)
	} else if x := stats["n_reuses"].(int64); x != 1 {
		t.Errorf("expected %v, got %v", 1, x)
	}
	if err := pool.Validate(); err != nil {
		t.Errorf("unexpected %v", err)
	}
}

func TestInfo(t *testing.T) {
	pool := New[int64]("info", s.Settings{"prealloc": int64(64)})
	capacity, allocated, overhead := pool.Info()
	if capacity <= 0 {
		t.Errorf("expected positive capacity, got %v", capacity)
	} else if allocated != 0 {
		t.Errorf("expected %v, got %v", 0, allocated)
	} else if overhead <= 0 {
		t.Errorf("expected positive overhead, got %v", overhead)
	}
	h, _ := pool.Push(1, pool.NewStack())
	if _, allocated, _ = pool.Info(); allocated <= 0 {
		t.Errorf("expected positive allocated, got %v", allocated)
	}
	pool.FreeStack(h)
}

func TestUtilization(t *testing.T) {
	pool := New[int64]("until", s.Settings{"prealloc": int64(100)})
	if u := pool.Utilization(); u != 0 {
		t.Errorf("expected %v, got %v", 0, u)
	}
	h, err := pool.NewStack(), error(nil)
	for i := int64(0); i < 50; i++ {
		if h, err = pool.Push(i, h); err != nil {
			t.Fatalf("unexpected %v", err)
		}
	}
	if u := pool.Utilization(); u <= 0 || u > 1 {
		t.Errorf("unexpected utilization %v", u)
	}
	pool.Log()
}

func TestValidatecorruption(t *testing.T) {
	pool := New[int64]("corrupt", nil)
	h, err := pool.NewStack(), error(nil)
	for i := int64(0); i < 3; i++ {
		if h, err = pool.Push(i, h); err != nil {
			t.Fatalf("unexpected %v", err)
		}
	}
	if h, err = pool.Pop(h); err != nil {
		t.Fatalf("unexpected %v", err)
	}
	if err := pool.Validate(); err != nil {
		t.Fatalf("unexpected %v", err)
	}
	// cook the books.
	pool.n_frees += 10
	if err := pool.Validate(); err != ErrorCorruption {
		t.Errorf("expected %v, got %v", ErrorCorruption, err)
	}
}
