package frame

// FixedImage is an owned image over a fixed-capacity storage region. It
// never allocates: the caller supplies the storage once (typically a
// statically sized array) and every layout, including later Reset calls,
// must fit within it.
//
// NewFixed returns the image by value so that it can live on the caller's
// stack in allocation-free environments.
type FixedImage[F PixelFormat] struct {
	storage []byte
	width   int
	height  int
	stride  int
}

// NewFixed lays out an image of the given dimensions inside storage. The
// image occupies the first stride*height bytes, zeroed here. Construction
// fails with ErrCapacityExceeded when stride*height exceeds len(storage).
func NewFixed[F PixelFormat](storage []byte, width, height, stride int) (FixedImage[F], error) {
	fi := FixedImage[F]{storage: storage}
	if err := fi.Reset(width, height, stride); err != nil {
		return FixedImage[F]{}, err
	}
	return fi, nil
}

// Reset re-layouts the image inside its existing storage, zeroing the bytes
// the new layout occupies. The storage is reused; no allocation happens.
// Fails with ErrCapacityExceeded when stride*height exceeds the capacity,
// leaving the previous layout intact.
func (im *FixedImage[F]) Reset(width, height, stride int) error {
	if width < 0 || height < 0 {
		return ErrInvalidDimensions
	}
	if stride < PixFmtOf[F]().MinStride(width) {
		return ErrInvalidStride
	}
	if stride*height > len(im.storage) {
		return ErrCapacityExceeded
	}
	im.width = width
	im.height = height
	im.stride = stride
	clear(im.storage[:stride*height])
	return nil
}

// Capacity returns the size of the fixed storage in bytes.
func (im *FixedImage[F]) Capacity() int { return len(im.storage) }

// Width returns the number of pixel columns.
func (im *FixedImage[F]) Width() int { return im.width }

// Height returns the number of pixel rows.
func (im *FixedImage[F]) Height() int { return im.height }

// Stride returns the number of bytes per row, including padding.
func (im *FixedImage[F]) Stride() int { return im.stride }

// PixFmt returns the runtime descriptor of the image's pixel format.
func (im *FixedImage[F]) PixFmt() PixFmt { return PixFmtOf[F]() }

// Bytes returns the occupied portion of the storage without copying.
func (im *FixedImage[F]) Bytes() []byte {
	return im.storage[:im.stride*im.height]
}

// BytesMut returns the occupied portion of the storage for writing.
func (im *FixedImage[F]) BytesMut() []byte {
	return im.storage[:im.stride*im.height]
}

// RowBytes returns the pixel data of row y without padding, or nil when y
// is out of range.
func (im *FixedImage[F]) RowBytes(y int) []byte {
	return rowSlice(im.Bytes(), im.width, im.height, im.stride, PixFmtOf[F]().BytesPerPixel(), y)
}

// RowBytesMut returns the writable pixel data of row y without padding, or
// nil when y is out of range.
func (im *FixedImage[F]) RowBytesMut(y int) []byte {
	return im.RowBytes(y)
}

// Ref returns a read view of the image's occupied bytes without copying.
func (im *FixedImage[F]) Ref() *Ref[F] {
	return &Ref[F]{buf: im.Bytes(), width: im.width, height: im.height, stride: im.stride}
}
