package frame

// Image is an owned image whose backing buffer lives on the heap. The
// buffer is sized exactly to the layout at construction and released by the
// garbage collector when the image is dropped.
//
// Allocation failure surfaces as a runtime out-of-memory panic; there is no
// recoverable error path for it at this layer.
type Image[F PixelFormat] struct {
	buf    []byte
	width  int
	height int
	stride int
}

// New allocates a zero-filled image with the smallest buffer its layout
// needs. Padding after the final row is not allocated.
func New[F PixelFormat](width, height, stride int) (*Image[F], error) {
	f := PixFmtOf[F]()
	if width < 0 || height < 0 {
		return nil, ErrInvalidDimensions
	}
	if stride < f.MinStride(width) {
		return nil, ErrInvalidStride
	}
	return &Image[F]{
		buf:    make([]byte, MinBufferLen(f, width, height, stride)),
		width:  width,
		height: height,
		stride: stride,
	}, nil
}

// NewFromBytes adopts buf as the image's backing store without copying.
// The caller must not retain buf after a successful call; the image takes
// exclusive ownership of it.
func NewFromBytes[F PixelFormat](width, height, stride int, buf []byte) (*Image[F], error) {
	if err := ValidateLayout(PixFmtOf[F](), width, height, stride, len(buf)); err != nil {
		return nil, err
	}
	return &Image[F]{buf: buf, width: width, height: height, stride: stride}, nil
}

// CopyFrom deep-copies any image of the same format into a new owned
// image with identical dimensions and stride.
func CopyFrom[F PixelFormat](src ImageData[F]) *Image[F] {
	buf := make([]byte, len(src.Bytes()))
	copy(buf, src.Bytes())
	return &Image[F]{
		buf:    buf,
		width:  src.Width(),
		height: src.Height(),
		stride: src.Stride(),
	}
}

// Width returns the number of pixel columns.
func (im *Image[F]) Width() int { return im.width }

// Height returns the number of pixel rows.
func (im *Image[F]) Height() int { return im.height }

// Stride returns the number of bytes per row, including padding.
func (im *Image[F]) Stride() int { return im.stride }

// PixFmt returns the runtime descriptor of the image's pixel format.
func (im *Image[F]) PixFmt() PixFmt { return PixFmtOf[F]() }

// Bytes returns the backing buffer without copying.
func (im *Image[F]) Bytes() []byte { return im.buf }

// BytesMut returns the backing buffer for writing.
func (im *Image[F]) BytesMut() []byte { return im.buf }

// RowBytes returns the pixel data of row y without padding, or nil when y
// is out of range.
func (im *Image[F]) RowBytes(y int) []byte {
	return rowSlice(im.buf, im.width, im.height, im.stride, PixFmtOf[F]().BytesPerPixel(), y)
}

// RowBytesMut returns the writable pixel data of row y without padding, or
// nil when y is out of range.
func (im *Image[F]) RowBytesMut(y int) []byte {
	return im.RowBytes(y)
}

// Clone returns a deep copy of the image.
func (im *Image[F]) Clone() *Image[F] {
	buf := make([]byte, len(im.buf))
	copy(buf, im.buf)
	return &Image[F]{buf: buf, width: im.width, height: im.height, stride: im.stride}
}

// Ref returns a read view of the image's bytes without copying.
func (im *Image[F]) Ref() *Ref[F] {
	return &Ref[F]{buf: im.buf, width: im.width, height: im.height, stride: im.stride}
}

// IntoBytes moves the backing buffer out of the image without copying.
// The image is left empty (zero dimensions, no buffer) and remains valid.
func (im *Image[F]) IntoBytes() []byte {
	buf := im.buf
	im.buf = nil
	im.width = 0
	im.height = 0
	im.stride = 0
	return buf
}
