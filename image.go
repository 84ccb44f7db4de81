package frame

// ImageData is the read capability shared by every image representation in
// this package. The pixel format is fixed at the type level by F.
//
// Bytes exposes the full underlying buffer, including stride padding;
// callers holding only an ImageData must not modify it. RowBytes trims the
// padding and returns exactly Width()*BytesPerPixel bytes for rows in
// [0, Height()); it returns nil for any other index. Returning nil for an
// out-of-range row is the uniform policy across all implementations — it is
// a programming error on the caller's side, distinguishable by comparing
// the index against Height() first.
type ImageData[F PixelFormat] interface {
	// Width returns the number of pixel columns. Note: this is not the stride.
	Width() int
	// Height returns the number of pixel rows.
	Height() int
	// Stride returns the number of bytes per row, including padding.
	Stride() int
	// PixFmt returns the runtime descriptor of the pixel format F.
	PixFmt() PixFmt
	// Bytes returns the underlying buffer without copying.
	Bytes() []byte
	// RowBytes returns the pixel data of row y without padding, or nil
	// when y is out of range.
	RowBytes(y int) []byte
}

// ImageMutData is the write capability. Holding it requires exclusive
// access to the image: no other live reader or writer of the same buffer
// region. The package documents this obligation but does not enforce it.
//
// Only buffer bytes are mutable. Format, dimensions and stride never change
// after construction.
type ImageMutData[F PixelFormat] interface {
	ImageData[F]

	// BytesMut returns the underlying buffer for writing.
	BytesMut() []byte
	// RowBytesMut returns the writable pixel data of row y without
	// padding, or nil when y is out of range.
	RowBytesMut(y int) []byte
}

// rowSlice returns the padding-trimmed row y of buf, or nil when y is out
// of range. Construction-time validation guarantees the slice bounds; the
// final row may end before its stride padding, which is never included.
func rowSlice(buf []byte, width, height, stride, bpp, y int) []byte {
	if y < 0 || y >= height {
		return nil
	}
	if width == 0 {
		return []byte{}
	}
	start := y * stride
	return buf[start : start+width*bpp]
}

// Compile-time checks that every representation satisfies its capability.
var (
	_ ImageData[Mono8]    = (*Ref[Mono8])(nil)
	_ ImageMutData[Mono8] = (*MutRef[Mono8])(nil)
	_ ImageMutData[Mono8] = (*Image[Mono8])(nil)
	_ ImageMutData[Mono8] = (*FixedImage[Mono8])(nil)
	_ ImageData[Mono8]    = (*CowImage[Mono8])(nil)
)
