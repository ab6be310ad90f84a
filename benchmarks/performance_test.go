// Package benchmarks
// Author: momentics <momentics@gmail.com>
//
// Performance benchmarks for fixedvec components. Benchmarks pin the
// current thread when the platform supports it, for stable numbers.

package benchmarks

import (
	"runtime"
	"testing"

	"github.com/momentics/fixedvec/affinity"
	"github.com/momentics/fixedvec/vec"
)

// pin locks the benchmark goroutine to one core; best effort.
func pin(b *testing.B) {
	runtime.LockOSThread()
	b.Cleanup(runtime.UnlockOSThread)
	if err := affinity.SetAffinity(0); err != nil {
		b.Logf("affinity unavailable: %v", err)
	}
}

// BenchmarkPushPop measures the O(1) hot path.
func BenchmarkPushPop(b *testing.B) {
	pin(b)
	v := vec.New[int](1024)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := v.TryPush(i); err != nil {
			v.Clear()
		}
		v.Pop()
	}
}

// BenchmarkPushUnchecked measures the caller-verified append path.
func BenchmarkPushUnchecked(b *testing.B) {
	pin(b)
	v := vec.New[int](1024)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if v.Len() == v.Cap() {
			v.Clear()
		}
		v.PushUnchecked(i)
	}
}

// BenchmarkInsertFront measures the worst-case shift distance.
func BenchmarkInsertFront(b *testing.B) {
	pin(b)
	v := vec.New[int](512)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if v.Len() == v.Cap() {
			v.Clear()
		}
		v.Insert(0, i)
	}
}

// BenchmarkRemoveFront measures the symmetric shift on removal.
func BenchmarkRemoveFront(b *testing.B) {
	pin(b)
	v := vec.New[int](512)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if v.Len() == 0 {
			b.StopTimer()
			v.ExtendWith(v.Cap(), i)
			b.StartTimer()
		}
		v.Remove(0)
	}
}

// BenchmarkIntoIterDrain measures consuming iteration end to end.
func BenchmarkIntoIterDrain(b *testing.B) {
	pin(b)
	const size = 256

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		v, _ := vec.Repeat(size, i, size)
		b.StartTimer()
		it := v.IntoIter()
		for {
			if _, ok := it.Next(); !ok {
				break
			}
		}
	}
}

// BenchmarkExtendWith measures bulk duplication.
func BenchmarkExtendWith(b *testing.B) {
	pin(b)
	v := vec.New[int](4096)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v.ExtendWith(v.Cap(), i)
		v.Truncate(0)
	}
}
