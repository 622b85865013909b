// Package benchmarks
// Author: momentics <momentics@gmail.com>
//
// Throughput benchmarks for the ring buffer variants, with allocating
// FIFO containers from the ecosystem as baselines.

package benchmarks

import (
	"runtime"
	"testing"

	"github.com/eapache/queue"
	"github.com/gammazero/deque"

	"github.com/momentics/ringbuf/pool"
	"github.com/momentics/ringbuf/ring"
	"github.com/momentics/ringbuf/spsc"
)

const benchCapacity = 1024

// BenchmarkBufferInsertRemove measures the unsynchronized hot path.
func BenchmarkBufferInsertRemove(b *testing.B) {
	r := ring.New[int, uint64](benchCapacity)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !r.Insert(i) {
			r.Remove()
			r.Insert(i)
		}
	}
}

// BenchmarkBufferBulkTransfer measures the clamped slice paths.
func BenchmarkBufferBulkTransfer(b *testing.B) {
	r := ring.New[int, uint64](benchCapacity)
	src := make([]int, 256)
	dst := make([]int, 256)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Write(src)
		r.Read(dst)
	}
}

// BenchmarkBufferUint8Index measures the narrow-index configuration used
// on constrained targets.
func BenchmarkBufferUint8Index(b *testing.B) {
	r := ring.New[byte, uint8](128)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !r.Insert(byte(i)) {
			r.Remove()
			r.Insert(byte(i))
		}
	}
}

// BenchmarkSPSCThroughput runs one producer against one consumer.
func BenchmarkSPSCThroughput(b *testing.B) {
	r := spsc.New[int](benchCapacity)
	done := make(chan struct{})
	go func() {
		for count := 0; count < b.N; {
			if _, ok := r.Remove(); ok {
				count++
			} else {
				runtime.Gosched()
			}
		}
		close(done)
	}()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for !r.Insert(i) {
			runtime.Gosched()
		}
	}
	<-done
}

// BenchmarkFreeListGetPut measures object recycling.
func BenchmarkFreeListGetPut(b *testing.B) {
	f := pool.NewFreeList(benchCapacity, func() []byte { return make([]byte, 4096) })
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf := f.Get()
		f.Put(buf)
	}
}

// BenchmarkEapacheQueue is the growable-ring baseline.
func BenchmarkEapacheQueue(b *testing.B) {
	q := queue.New()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Add(i)
		if q.Length() >= benchCapacity {
			q.Remove()
		}
	}
}

// BenchmarkGammazeroDeque is the generic-deque baseline.
func BenchmarkGammazeroDeque(b *testing.B) {
	var d deque.Deque[int]
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.PushBack(i)
		if d.Len() >= benchCapacity {
			d.PopFront()
		}
	}
}
