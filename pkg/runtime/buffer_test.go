package runtime

import (
	"bytes"
	"testing"
)

func TestBufferAppendConcatenates(t *testing.T) {
	b := NewBuffer[byte](0)
	b.Append([]byte("Hello")...)
	b.Append([]byte(", world")...)
	if got := string(b.Items()); got != "Hello, world" {
		t.Fatalf("unexpected content %q", got)
	}
	if b.Len() != len("Hello, world") {
		t.Fatalf("unexpected length %d", b.Len())
	}
}

func TestBufferAppendAssociativity(t *testing.T) {
	d1 := []byte("abc")
	d2 := []byte("defghij")

	split := NewBuffer[byte](0)
	split.Append(d1...)
	split.Append(d2...)

	joined := NewBuffer[byte](0)
	joined.Append(append(append([]byte{}, d1...), d2...)...)

	if !bytes.Equal(split.Items(), joined.Items()) {
		t.Fatalf("split %q != joined %q", split.Items(), joined.Items())
	}
}

func TestBufferCapacityInvariant(t *testing.T) {
	b := NewBuffer[int](0)
	prevCap := b.Cap()
	for i := 0; i < 100; i++ {
		b.Append(i)
		if b.Len() > b.Cap() {
			t.Fatalf("length %d exceeds capacity %d", b.Len(), b.Cap())
		}
		if b.Cap() < prevCap {
			t.Fatalf("capacity shrank from %d to %d", prevCap, b.Cap())
		}
		prevCap = b.Cap()
	}
	for i := 0; i < 100; i++ {
		if b.At(i) != i {
			t.Fatalf("element %d is %d", i, b.At(i))
		}
	}
}

func TestBufferGrowthDoubles(t *testing.T) {
	b := NewBuffer[byte](1)
	b.Append('a')
	if b.Cap() != 1 {
		t.Fatalf("expected capacity 1, got %d", b.Cap())
	}
	b.Append('b')
	if b.Cap() != 2 {
		t.Fatalf("expected doubled capacity 2, got %d", b.Cap())
	}
	b.Append('c')
	if b.Cap() != 4 {
		t.Fatalf("expected doubled capacity 4, got %d", b.Cap())
	}
}

func TestBufferGrowthDoublesRepeatedly(t *testing.T) {
	b := NewBuffer[byte](2)
	b.Append(bytes.Repeat([]byte{'x'}, 33)...)
	// 2 -> 4 -> 8 -> 16 -> 32 -> 64 in one append.
	if b.Cap() != 64 {
		t.Fatalf("expected capacity 64 after repeated doubling, got %d", b.Cap())
	}
	if b.Len() != 33 {
		t.Fatalf("unexpected length %d", b.Len())
	}
}

func TestBufferGrowthLeavesOldStorageIntact(t *testing.T) {
	b := NewBuffer[byte](4)
	b.Append([]byte("abcd")...)
	before := b.Items()
	b.Append([]byte("efgh")...)
	// The pre-growth storage must still hold the original content: growth
	// commits the new storage before the old is released.
	if string(before) != "abcd" {
		t.Fatalf("old storage mutated to %q", before)
	}
	if got := string(b.Items()); got != "abcdefgh" {
		t.Fatalf("unexpected content %q", got)
	}
}

func TestBufferSetOverwrites(t *testing.T) {
	b := NewBuffer[string](0)
	b.Append("a", "b", "c")
	b.Set(1, "B")
	if b.At(1) != "B" || b.At(0) != "a" || b.At(2) != "c" {
		t.Fatalf("unexpected contents %v", b.Items())
	}
}
