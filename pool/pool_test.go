// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

package pool_test

import (
	"testing"

	"github.com/momentics/ringbuf/api"
	"github.com/momentics/ringbuf/pool"
)

func TestBufferRingContract(t *testing.T) {
	var r api.Ring[int] = pool.NewBufferRing[int](8)
	for i := 0; i < 8; i++ {
		if !r.Insert(i) {
			t.Fatalf("Insert failed at %d", i)
		}
	}
	if r.Insert(8) {
		t.Error("Insert into full ring must return false")
	}
	if r.Len() != 8 || r.Cap() != 8 {
		t.Errorf("Len/Cap: got %d/%d, want 8/8", r.Len(), r.Cap())
	}
	for i := 0; i < 8; i++ {
		v, ok := r.Remove()
		if !ok || v != i {
			t.Fatalf("Expected %d, got %d (ok=%v)", i, v, ok)
		}
	}
}

func TestFreeListReuse(t *testing.T) {
	built := 0
	f := pool.NewFreeList(8, func() []byte {
		built++
		return make([]byte, 128)
	})

	b1 := f.Get()
	if built != 1 {
		t.Fatalf("Expected one construction, got %d", built)
	}
	if !f.Put(b1) {
		t.Fatal("Put into empty free list failed")
	}
	b2 := f.Get()
	if built != 1 {
		t.Errorf("Get after Put constructed a new object; reuse failed")
	}
	if cap(b2) != 128 {
		t.Errorf("Recycled object capacity: expected 128, got %d", cap(b2))
	}
}

func TestFreeListDropsWhenFull(t *testing.T) {
	f := pool.NewFreeList(2, func() int { return 0 })
	if !f.Put(1) || !f.Put(2) {
		t.Fatal("Put below capacity failed")
	}
	if f.Put(3) {
		t.Error("Put at capacity must return false")
	}
	if f.Idle() != 2 {
		t.Errorf("Idle: expected 2, got %d", f.Idle())
	}
}

func TestFreeListPanicsWithoutConstructor(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for nil constructor")
		}
	}()
	pool.NewFreeList[int](4, nil)
}
