package scratch

import (
	"sync"
	"testing"

	"github.com/gogpu/packpix/pixel"
)

func TestPoolGetNew(t *testing.T) {
	p := NewPool(2)
	buf := p.Get(12)
	if len(buf) != 12 {
		t.Fatalf("len(Get(12)) = %d, want 12", len(buf))
	}
}

func TestPoolReuse(t *testing.T) {
	p := NewPool(2)

	buf := p.Get(5)
	buf[0] = pixel.New(1, 2, 3, 4)
	p.Put(buf)

	if p.Len(5) != 1 {
		t.Fatalf("Len(5) = %d after Put, want 1", p.Len(5))
	}

	again := p.Get(5)
	if &again[0] != &buf[0] {
		t.Error("Get should reuse the pooled buffer")
	}
	if p.Len(5) != 0 {
		t.Errorf("Len(5) = %d after Get, want 0", p.Len(5))
	}
}

func TestPoolBucketsByLength(t *testing.T) {
	p := NewPool(2)
	p.Put(make([]pixel.Word, 3))

	if got := p.Get(4); len(got) != 4 {
		t.Errorf("len(Get(4)) = %d, want 4", len(got))
	}
	if p.Len(3) != 1 {
		t.Error("a buffer of another length should stay pooled")
	}
}

func TestPoolMaxPerBucket(t *testing.T) {
	tests := []struct {
		name string
		max  int
		puts int
		want int
	}{
		{"limited", 2, 5, 2},
		{"unlimited", 0, 5, 5},
		{"negative is unlimited", -1, 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPool(tt.max)
			for range tt.puts {
				p.Put(make([]pixel.Word, 8))
			}
			if got := p.Len(8); got != tt.want {
				t.Errorf("Len(8) = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPoolPutNil(t *testing.T) {
	p := NewPool(2)
	p.Put(nil)
	if p.Len(0) != 0 {
		t.Error("nil buffers should be dropped")
	}
}

func TestPoolConcurrent(t *testing.T) {
	p := NewPool(4)
	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				p.Put(p.Get(64))
			}
		}()
	}
	wg.Wait()

	if p.Len(64) > 4 {
		t.Errorf("Len(64) = %d, exceeds bucket limit", p.Len(64))
	}
}
