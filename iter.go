package frame

import "iter"

// Rows returns an iterator over the pixel rows of im in index order.
//
// Each yielded slice holds exactly Width()*BytesPerPixel bytes; stride
// padding is never exposed. The sequence is finite and restartable:
// ranging over the result again walks the same rows from the start.
// Iteration cannot fail — all bounds were established when im was
// constructed, and no per-row validation is performed.
//
// Yielded slices alias im's buffer and are only valid while im is. An
// image with zero width or height yields an empty sequence.
func Rows[F PixelFormat](im ImageData[F]) iter.Seq[[]byte] {
	valid := PixFmtOf[F]().MinStride(im.Width())
	stride := im.Stride()
	height := im.Height()
	buf := im.Bytes()
	if limit := stride * height; len(buf) > limit {
		buf = buf[:limit]
	}
	return func(yield func([]byte) bool) {
		if valid == 0 {
			return
		}
		off := 0
		for y := 0; y < height && off+valid <= len(buf); y++ {
			if !yield(buf[off : off+valid : off+valid]) {
				return
			}
			off += stride
		}
	}
}

// RowsMut returns an iterator over the writable pixel rows of im in index
// order. The caller must hold exclusive access to im for the duration of
// the iteration. Yielded slices alias im's buffer; padding is never
// exposed, and writes through a yielded slice cannot touch it.
func RowsMut[F PixelFormat](im ImageMutData[F]) iter.Seq[[]byte] {
	valid := PixFmtOf[F]().MinStride(im.Width())
	stride := im.Stride()
	height := im.Height()
	buf := im.BytesMut()
	if limit := stride * height; len(buf) > limit {
		buf = buf[:limit]
	}
	return func(yield func([]byte) bool) {
		if valid == 0 {
			return
		}
		off := 0
		for y := 0; y < height && off+valid <= len(buf); y++ {
			if !yield(buf[off : off+valid : off+valid]) {
				return
			}
			off += stride
		}
	}
}

// Pixels returns an iterator over the pixels of im in row-major order.
// Each yielded slice holds the BytesPerPixel raw bytes of one pixel. No
// numeric decoding is applied; byte order of multi-byte samples is
// whatever the producer wrote.
func Pixels[F PixelFormat](im ImageData[F]) iter.Seq[[]byte] {
	bpp := PixFmtOf[F]().BytesPerPixel()
	rows := Rows[F](im)
	return func(yield func([]byte) bool) {
		for row := range rows {
			for x := 0; x+bpp <= len(row); x += bpp {
				if !yield(row[x : x+bpp : x+bpp]) {
					return
				}
			}
		}
	}
}

// RowPixels slices one row, as yielded by Rows, into its pixels. It
// yields len(row)/f.BytesPerPixel() chunks of f.BytesPerPixel() bytes.
func RowPixels(f PixFmt, row []byte) iter.Seq[[]byte] {
	bpp := f.BytesPerPixel()
	return func(yield func([]byte) bool) {
		if bpp <= 0 {
			return
		}
		for x := 0; x+bpp <= len(row); x += bpp {
			if !yield(row[x : x+bpp : x+bpp]) {
				return
			}
		}
	}
}
