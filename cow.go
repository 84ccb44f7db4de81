package frame

// CowImage is a copy-on-write image that either borrows its pixel data
// from an external buffer or owns it outright. Producers that sometimes
// hand out zero-copy views and sometimes freshly allocated frames can
// return a single type; consumers read it through ImageData and call
// Owned only when they need to keep the data.
type CowImage[F PixelFormat] struct {
	ref   *Ref[F]
	owned *Image[F]
}

// CowBorrowed wraps a borrowed view. The CowImage shares the view's bytes
// and is bound by the same sharing discipline.
func CowBorrowed[F PixelFormat](r *Ref[F]) *CowImage[F] {
	return &CowImage[F]{ref: r}
}

// CowOwned wraps an owned image. The CowImage takes over the image; the
// caller must not use im afterwards.
func CowOwned[F PixelFormat](im *Image[F]) *CowImage[F] {
	return &CowImage[F]{owned: im}
}

// IsOwned reports whether the image owns its pixel data.
func (c *CowImage[F]) IsOwned() bool { return c.owned != nil }

// Owned resolves the image to an owned one. Borrowed data is copied;
// owned data is moved out without copying, leaving the CowImage empty.
func (c *CowImage[F]) Owned() *Image[F] {
	if c.owned != nil {
		im := c.owned
		c.owned = nil
		c.ref = nil
		return im
	}
	if c.ref != nil {
		im := CopyFrom[F](c.ref)
		c.ref = nil
		return im
	}
	im, _ := New[F](0, 0, 0)
	return im
}

// data returns whichever representation is live, never nil.
func (c *CowImage[F]) data() ImageData[F] {
	if c.owned != nil {
		return c.owned
	}
	if c.ref != nil {
		return c.ref
	}
	return &Ref[F]{}
}

// Width returns the number of pixel columns.
func (c *CowImage[F]) Width() int { return c.data().Width() }

// Height returns the number of pixel rows.
func (c *CowImage[F]) Height() int { return c.data().Height() }

// Stride returns the number of bytes per row, including padding.
func (c *CowImage[F]) Stride() int { return c.data().Stride() }

// PixFmt returns the runtime descriptor of the image's pixel format.
func (c *CowImage[F]) PixFmt() PixFmt { return PixFmtOf[F]() }

// Bytes returns the underlying bytes without copying.
func (c *CowImage[F]) Bytes() []byte { return c.data().Bytes() }

// RowBytes returns the pixel data of row y without padding, or nil when y
// is out of range.
func (c *CowImage[F]) RowBytes(y int) []byte { return c.data().RowBytes(y) }
