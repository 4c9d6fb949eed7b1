package pool

import (
	"fmt"
	"testing"

	"github.com/hupe1980/cutpool/testutil"
)

func BenchmarkStandardPool_InsertRemove(b *testing.B) {
	capacities := []int{256, 4096}

	for _, capacity := range capacities {
		b.Run(fmt.Sprintf("capacity=%d", capacity), func(b *testing.B) {
			p, err := New[*testutil.Object](capacity)
			if err != nil {
				b.Fatal(err)
			}
			defer p.Close()

			obj := testutil.NewObject(0)

			b.ResetTimer()
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				h, err := p.Insert(obj)
				if err != nil {
					b.Fatal(err)
				}

				p.Remove(h)
			}
		})
	}
}

func BenchmarkHandle_Get(b *testing.B) {
	p, err := New[*testutil.Object](8)
	if err != nil {
		b.Fatal(err)
	}
	defer p.Close()

	h, err := p.Insert(testutil.NewObject(1))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, ok := h.Get(); !ok {
			b.Fatal("handle went stale")
		}
	}
}

func BenchmarkStandardPool_Sweep(b *testing.B) {
	const fill = 1024

	p, err := New[*testutil.Object](fill)
	if err != nil {
		b.Fatal(err)
	}
	defer p.Close()

	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		b.StopTimer()
		for j := 0; j < fill; j++ {
			if _, err := p.Insert(testutil.NewObject(j)); err != nil {
				b.Fatal(err)
			}
		}
		b.StartTimer()

		if removed := p.Sweep(); removed != fill {
			b.Fatalf("swept %d of %d", removed, fill)
		}
	}
}

func BenchmarkNonDuplPool_DuplicateInsert(b *testing.B) {
	p, err := NewNonDupl[*testutil.Cover](256)
	if err != nil {
		b.Fatal(err)
	}
	defer p.Close()

	if _, err := p.Insert(testutil.NewCover(1, 2, 3)); err != nil {
		b.Fatal(err)
	}

	dup := testutil.NewCover(1, 2, 3)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := p.Insert(dup); err != nil {
			b.Fatal(err)
		}
	}
}
