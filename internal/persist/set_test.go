package persist

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/julianstephens/nila/internal/storage"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	t.Run("ints", func(t *testing.T) {
		sets := []Set[int]{
			NewSet[int](),
			NewSet(0),
			NewSet(11, 3, 7, 0),
		}
		for _, in := range sets {
			blob, err := Encode(in)
			if err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			out := Decode[int](blob)
			if !out.Equal(in) {
				t.Errorf("round trip of %v = %v", in.Sorted(), out.Sorted())
			}
		}
	})

	t.Run("strings", func(t *testing.T) {
		in := NewSet("2025-11-17", "2025-11-15", "2025-11-16")
		blob, err := Encode(in)
		if err != nil {
			t.Fatalf("Encode() error = %v", err)
		}
		if diff := cmp.Diff(in.Sorted(), Decode[string](blob).Sorted()); diff != "" {
			t.Errorf("round trip mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestEncodeIsDeterministic(t *testing.T) {
	blob, err := Encode(NewSet(5, 1, 3))
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if string(blob) != "[1,3,5]" {
		t.Errorf("Encode() = %s, want [1,3,5]", blob)
	}

	empty, _ := Encode(Set[string]{})
	if string(empty) != "[]" {
		t.Errorf("Encode(empty) = %s, want []", empty)
	}
}

func TestDecodeGarbage(t *testing.T) {
	tests := []struct {
		name string
		blob []byte
	}{
		{"nil", nil},
		{"empty", []byte{}},
		{"not json", []byte("favorites!")},
		{"object instead of array", []byte(`{"a":1}`)},
		{"wrong element type", []byte(`["one","two"]`)},
		{"truncated", []byte(`[1,2`)},
		{"null", []byte(`null`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Decode[int](tt.blob); got.Len() != 0 {
				t.Errorf("Decode(%q) = %v, want empty", tt.blob, got.Sorted())
			}
		})
	}
}

func TestDecodeDeduplicates(t *testing.T) {
	got := Decode[int]([]byte(`[2,2,2,1]`))
	if diff := cmp.Diff([]int{1, 2}, got.Sorted()); diff != "" {
		t.Errorf("Decode() mismatch (-want +got):\n%s", diff)
	}
}

func TestSetOperations(t *testing.T) {
	s := NewSet[int]()
	if !s.Add(4) {
		t.Error("Add(4) on empty set = false")
	}
	if s.Add(4) {
		t.Error("second Add(4) = true")
	}
	if !s.Contains(4) {
		t.Error("Contains(4) = false after Add")
	}
	if !s.Remove(4) || s.Remove(4) {
		t.Error("Remove(4) should succeed once")
	}

	filtered := NewSet(-1, 0, 5, 12).Filter(func(i int) bool { return i >= 0 && i < 12 })
	if diff := cmp.Diff([]int{0, 5}, filtered.Sorted()); diff != "" {
		t.Errorf("Filter() mismatch (-want +got):\n%s", diff)
	}
}

type memBackend struct {
	values map[string][]byte
	setErr error
	getErr error
}

func newMemBackend() *memBackend {
	return &memBackend{values: map[string][]byte{}}
}

func (b *memBackend) GetValue(key string) ([]byte, error) {
	if b.getErr != nil {
		return nil, b.getErr
	}
	v, ok := b.values[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return v, nil
}

func (b *memBackend) SetValue(key string, value []byte) error {
	if b.setErr != nil {
		return b.setErr
	}
	b.values[key] = value
	return nil
}

func TestSlot(t *testing.T) {
	backend := newMemBackend()
	slot := NewSlot[int](backend, "favoriteIndices")

	if got := slot.Load(); got.Len() != 0 {
		t.Fatalf("Load() on absent key = %v, want empty", got.Sorted())
	}

	slot.Save(NewSet(1, 2))
	if string(backend.values["favoriteIndices"]) != "[1,2]" {
		t.Errorf("stored blob = %s", backend.values["favoriteIndices"])
	}
	if got := slot.Load(); !got.Equal(NewSet(1, 2)) {
		t.Errorf("Load() = %v, want [1 2]", got.Sorted())
	}

	backend.values["favoriteIndices"] = []byte("corrupt")
	if got := slot.Load(); got.Len() != 0 {
		t.Errorf("Load() on corrupt blob = %v, want empty", got.Sorted())
	}
}

func TestSlotSwallowsErrors(t *testing.T) {
	backend := newMemBackend()
	backend.setErr = errors.New("disk full")
	slot := NewSlot[string](backend, "streakMarkedDates")

	// Must not panic or surface the error.
	slot.Save(NewSet("2025-11-17"))

	backend.getErr = errors.New("database is locked")
	if got := slot.Load(); got.Len() != 0 {
		t.Errorf("Load() with read error = %v, want empty", got.Sorted())
	}
}
