package arena

import (
	"errors"
	"testing"
)

func TestPoolNewAndGet(t *testing.T) {
	a := New(0)
	p := NewPool[int](a)

	r1, err := p.New(10)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	r2, _ := p.New(20)

	if got := *p.Get(r1); got != 10 {
		t.Errorf("Get(r1) = %d, want 10", got)
	}
	if got := *p.Get(r2); got != 20 {
		t.Errorf("Get(r2) = %d, want 20", got)
	}
	if a.Used() != 2 {
		t.Errorf("Used() = %d, want 2", a.Used())
	}

	var zero Ref[int]
	if !zero.IsNil() || r1.IsNil() {
		t.Error("IsNil mismatch")
	}
}

func TestLimitExhaustion(t *testing.T) {
	a := New(2)
	p := NewPool[string](a)

	for i := 0; i < 2; i++ {
		if _, err := p.New("x"); err != nil {
			t.Fatalf("allocation %d: %v", i, err)
		}
	}
	if _, err := p.New("x"); !errors.Is(err, ErrExhausted) {
		t.Errorf("expected ErrExhausted, got %v", err)
	}
}

func TestVecGrowth(t *testing.T) {
	a := New(0)
	v := NewVec[int](a)

	// Capacities follow 0 -> 1 -> 3 -> 7.
	wantCaps := []int{1, 3, 3, 7, 7, 7, 7}
	for i, want := range wantCaps {
		if err := v.Push(i); err != nil {
			t.Fatalf("Push(%d): %v", i, err)
		}
		if v.Cap() != want {
			t.Errorf("after %d pushes, Cap() = %d, want %d", i+1, v.Cap(), want)
		}
	}

	for i, x := range v.Items() {
		if x != i {
			t.Errorf("Items()[%d] = %d, want %d", i, x, i)
		}
	}
	if a.Used() != 1+3+7 {
		t.Errorf("Used() = %d, want %d", a.Used(), 1+3+7)
	}
}

func TestVecGrowthExhaustion(t *testing.T) {
	a := New(3)
	v := NewVec[int](a)

	if err := v.Push(1); err != nil { // charges 1
		t.Fatal(err)
	}
	if err := v.Push(2); !errors.Is(err, ErrExhausted) { // needs 3 more
		t.Errorf("expected ErrExhausted, got %v", err)
	}
	if v.Len() != 1 {
		t.Errorf("failed push changed Len() to %d", v.Len())
	}
}

func TestRelease(t *testing.T) {
	a := New(0)
	p := NewPool[int](a)
	v := NewVec[int](a)
	r, _ := p.New(1)
	_ = v.Push(1)

	a.Release()
	a.Release()

	if !a.Released() || a.Used() != 0 {
		t.Error("expected released arena with zero usage")
	}
	if _, err := p.New(2); !errors.Is(err, ErrReleased) {
		t.Errorf("New after Release: got %v, want ErrReleased", err)
	}
	if err := v.Push(2); !errors.Is(err, ErrReleased) {
		t.Errorf("Push after Release: got %v, want ErrReleased", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("expected panic on Get after Release")
		}
	}()
	p.Get(r)
}
