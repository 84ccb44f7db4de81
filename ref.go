package frame

// Ref is a zero-copy read view of image data backed by caller-owned bytes.
//
// The view holds a reference into the caller's buffer; Go's garbage
// collector keeps the backing array alive for as long as the view exists,
// so a Ref can never observe released memory. The caller remains
// responsible for the shared/exclusive discipline: a Ref must not be read
// while another party writes the same region.
type Ref[F PixelFormat] struct {
	buf    []byte
	width  int
	height int
	stride int
}

// NewRef wraps buf as a read view with the given layout. The layout is
// validated once here; all later row access relies on that check.
func NewRef[F PixelFormat](width, height, stride int, buf []byte) (*Ref[F], error) {
	if err := ValidateLayout(PixFmtOf[F](), width, height, stride, len(buf)); err != nil {
		return nil, err
	}
	return &Ref[F]{buf: buf, width: width, height: height, stride: stride}, nil
}

// Width returns the number of pixel columns.
func (r *Ref[F]) Width() int { return r.width }

// Height returns the number of pixel rows.
func (r *Ref[F]) Height() int { return r.height }

// Stride returns the number of bytes per row, including padding.
func (r *Ref[F]) Stride() int { return r.stride }

// PixFmt returns the runtime descriptor of the view's pixel format.
func (r *Ref[F]) PixFmt() PixFmt { return PixFmtOf[F]() }

// Bytes returns the viewed bytes without copying.
func (r *Ref[F]) Bytes() []byte { return r.buf }

// RowBytes returns the pixel data of row y without padding, or nil when y
// is out of range.
func (r *Ref[F]) RowBytes(y int) []byte {
	return rowSlice(r.buf, r.width, r.height, r.stride, PixFmtOf[F]().BytesPerPixel(), y)
}

// MutRef is a zero-copy writable view of image data backed by caller-owned
// bytes. The caller must hold exclusive access to the viewed region for the
// lifetime of the MutRef.
type MutRef[F PixelFormat] struct {
	buf    []byte
	width  int
	height int
	stride int
}

// NewMutRef wraps buf as a writable view with the given layout, validated
// once at construction.
func NewMutRef[F PixelFormat](width, height, stride int, buf []byte) (*MutRef[F], error) {
	if err := ValidateLayout(PixFmtOf[F](), width, height, stride, len(buf)); err != nil {
		return nil, err
	}
	return &MutRef[F]{buf: buf, width: width, height: height, stride: stride}, nil
}

// Width returns the number of pixel columns.
func (m *MutRef[F]) Width() int { return m.width }

// Height returns the number of pixel rows.
func (m *MutRef[F]) Height() int { return m.height }

// Stride returns the number of bytes per row, including padding.
func (m *MutRef[F]) Stride() int { return m.stride }

// PixFmt returns the runtime descriptor of the view's pixel format.
func (m *MutRef[F]) PixFmt() PixFmt { return PixFmtOf[F]() }

// Bytes returns the viewed bytes without copying.
func (m *MutRef[F]) Bytes() []byte { return m.buf }

// BytesMut returns the viewed bytes for writing.
func (m *MutRef[F]) BytesMut() []byte { return m.buf }

// RowBytes returns the pixel data of row y without padding, or nil when y
// is out of range.
func (m *MutRef[F]) RowBytes(y int) []byte {
	return rowSlice(m.buf, m.width, m.height, m.stride, PixFmtOf[F]().BytesPerPixel(), y)
}

// RowBytesMut returns the writable pixel data of row y without padding, or
// nil when y is out of range.
func (m *MutRef[F]) RowBytesMut(y int) []byte {
	return m.RowBytes(y)
}

// Ref downgrades the writable view to a read view over the same bytes.
func (m *MutRef[F]) Ref() *Ref[F] {
	return &Ref[F]{buf: m.buf, width: m.width, height: m.height, stride: m.stride}
}

// ROI returns a read view of the w×h rectangle whose top-left pixel is
// (x, y) in im. The view shares im's bytes and keeps im's stride, so rows
// of the region remain stride apart. Returns ErrOutOfBounds when the
// rectangle does not lie inside im.
func ROI[F PixelFormat](im ImageData[F], x, y, w, h int) (*Ref[F], error) {
	if x < 0 || y < 0 || w < 0 || h < 0 || x+w > im.Width() || y+h > im.Height() {
		return nil, ErrOutOfBounds
	}
	stride := im.Stride()
	if w == 0 || h == 0 {
		return &Ref[F]{width: w, height: h, stride: stride}, nil
	}
	bpp := PixFmtOf[F]().BytesPerPixel()
	off := y*stride + x*bpp
	end := (y+h-1)*stride + (x+w)*bpp
	return &Ref[F]{buf: im.Bytes()[off:end], width: w, height: h, stride: stride}, nil
}

// MutROI returns a writable view of the w×h rectangle whose top-left pixel
// is (x, y) in im. The view shares im's bytes; the caller must hold
// exclusive access to im for the view's lifetime.
func MutROI[F PixelFormat](im ImageMutData[F], x, y, w, h int) (*MutRef[F], error) {
	if x < 0 || y < 0 || w < 0 || h < 0 || x+w > im.Width() || y+h > im.Height() {
		return nil, ErrOutOfBounds
	}
	stride := im.Stride()
	if w == 0 || h == 0 {
		return &MutRef[F]{width: w, height: h, stride: stride}, nil
	}
	bpp := PixFmtOf[F]().BytesPerPixel()
	off := y*stride + x*bpp
	end := (y+h-1)*stride + (x+w)*bpp
	return &MutRef[F]{buf: im.BytesMut()[off:end], width: w, height: h, stride: stride}, nil
}
