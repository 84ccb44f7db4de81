package frame

import (
	"bytes"
	"errors"
	"testing"
)

func TestNewFixed(t *testing.T) {
	storage := make([]byte, 100)

	tests := []struct {
		name    string
		width   int
		height  int
		stride  int
		wantErr error
	}{
		{"fills capacity exactly", 10, 10, 10, nil},
		{"one byte over capacity", 1, 101, 1, ErrCapacityExceeded},
		{"padded stride over capacity", 10, 10, 11, ErrCapacityExceeded},
		{"padded stride fits", 8, 10, 10, nil},
		{"zero dims", 0, 0, 0, nil},
		{"bad stride", 11, 5, 10, ErrInvalidStride},
		{"negative height", 10, -1, 10, ErrInvalidDimensions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			im, err := NewFixed[Mono8](storage, tt.width, tt.height, tt.stride)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewFixed() error = %v, want %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if im.Width() != tt.width || im.Height() != tt.height || im.Stride() != tt.stride {
				t.Errorf("layout = (%d, %d, %d), want (%d, %d, %d)",
					im.Width(), im.Height(), im.Stride(), tt.width, tt.height, tt.stride)
			}
			if im.Capacity() != 100 {
				t.Errorf("Capacity() = %d, want 100", im.Capacity())
			}
		})
	}
}

func TestFixedImageZeroesOnLayout(t *testing.T) {
	storage := []byte{9, 9, 9, 9, 9, 9, 9, 9}
	im, err := NewFixed[Mono8](storage, 2, 3, 2)
	if err != nil {
		t.Fatalf("NewFixed() error = %v", err)
	}
	if !bytes.Equal(im.Bytes(), make([]byte, 6)) {
		t.Errorf("Bytes() = %v, want all zero", im.Bytes())
	}
	// Bytes past the layout keep their old content.
	if storage[6] != 9 || storage[7] != 9 {
		t.Errorf("storage tail = %v, want untouched", storage[6:])
	}
}

func TestFixedImageReset(t *testing.T) {
	storage := make([]byte, 100)
	im, err := NewFixed[Mono8](storage, 10, 10, 10)
	if err != nil {
		t.Fatalf("NewFixed() error = %v", err)
	}
	im.RowBytesMut(0)[0] = 0xaa

	// An oversized layout is rejected and leaves the old one intact.
	if err := im.Reset(10, 10, 11); !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("Reset() error = %v, want %v", err, ErrCapacityExceeded)
	}
	if im.Width() != 10 || im.Height() != 10 || im.Stride() != 10 {
		t.Fatalf("failed Reset changed layout to (%d, %d, %d)", im.Width(), im.Height(), im.Stride())
	}
	if im.RowBytes(0)[0] != 0xaa {
		t.Error("failed Reset touched pixel data")
	}

	// A smaller layout reuses the same storage, zeroed.
	if err := im.Reset(4, 2, 5); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	if im.RowBytes(0)[0] != 0 {
		t.Error("Reset did not zero reused bytes")
	}
	if &im.Bytes()[0] != &storage[0] {
		t.Error("Reset reallocated storage")
	}
}

func TestFixedImageRows(t *testing.T) {
	storage := make([]byte, 10)
	im, err := NewFixed[Mono8](storage, 4, 2, 5)
	if err != nil {
		t.Fatalf("NewFixed() error = %v", err)
	}
	copy(im.RowBytesMut(0), []byte{1, 2, 3, 4})
	copy(im.RowBytesMut(1), []byte{5, 6, 7, 8})

	var rows [][]byte
	for row := range Rows[Mono8](&im) {
		rows = append(rows, row)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if !bytes.Equal(rows[0], []byte{1, 2, 3, 4}) || !bytes.Equal(rows[1], []byte{5, 6, 7, 8}) {
		t.Errorf("rows = %v, want [[1 2 3 4] [5 6 7 8]]", rows)
	}
}
