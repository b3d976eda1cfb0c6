package gostack

import "sync"
import "testing"

import s "github.com/bnclabs/gosettings"

// Pools are not thread safe, the discipline for concurrent callers is
// one pool per goroutine.
func TestPartitioned(t *testing.T) {
	var wg sync.WaitGroup

	nroutines, repeat := 8, 10000

	wg.Add(nroutines)
	for n := 0; n < nroutines; n++ {
		go func(n int) {
			defer wg.Done()

			setts := s.Settings{"prealloc": int64(repeat)}
			pool := New[int64]("partition", setts)
			h, err := pool.NewStack(), error(nil)
			for i := 0; i < repeat; i++ {
				if h, err = pool.Push(int64(n*repeat+i), h); err != nil {
					t.Errorf("unexpected %v", err)
					return
				}
			}
			sum := int64(0)
			pool.Each(h, func(v int64) bool {
				sum += v
				return true
			})
			ref := int64(0)
			for i := 0; i < repeat; i++ {
				ref += int64(n*repeat + i)
			}
			if sum != ref {
				t.Errorf("expected %v, got %v", ref, sum)
			}
			if err := pool.Validate(); err != nil {
				t.Errorf("unexpected %v", err)
			}
			pool.Release()
		}(n)
	}
	wg.Wait()
}
