package frame

import "sync"

// Pool is a thread-safe pool for reusing owned images of format F.
//
// Pool groups frames by their layout, allowing efficient reuse of
// identically-sized buffers. Camera pipelines that produce frames at a
// fixed rate can recycle them instead of pressuring the garbage collector.
//
// Thread safety: all methods are safe for concurrent use. The discipline
// for the frames themselves is unchanged: a frame handed out by Get is
// exclusively the caller's until Put.
type Pool[F PixelFormat] struct {
	mu      sync.Mutex
	buckets map[poolKey][]*Image[F]
	maxSize int // max frames per bucket
}

// poolKey identifies a bucket of identical frame layouts.
type poolKey struct {
	width  int
	height int
	stride int
}

// NewPool creates a frame pool with the given maximum frames per bucket.
// A maxPerBucket of 0 means unlimited (use with caution).
func NewPool[F PixelFormat](maxPerBucket int) *Pool[F] {
	return &Pool[F]{
		buckets: make(map[poolKey][]*Image[F]),
		maxSize: maxPerBucket,
	}
}

// Get retrieves a frame with the given layout from the pool or allocates a
// new one. A reused frame is zeroed before it is returned. Returns the
// same layout errors as New for an invalid request.
func (p *Pool[F]) Get(width, height, stride int) (*Image[F], error) {
	key := poolKey{width: width, height: height, stride: stride}

	p.mu.Lock()
	bucket := p.buckets[key]
	if n := len(bucket); n > 0 {
		im := bucket[n-1]
		p.buckets[key] = bucket[:n-1]
		p.mu.Unlock()

		clear(im.buf)
		return im, nil
	}
	p.mu.Unlock()

	Logger().Debug("frame: pool miss, allocating",
		"format", PixFmtOf[F]().String(),
		"width", width, "height", height, "stride", stride)
	return New[F](width, height, stride)
}

// Put returns a frame to the pool for reuse. Nil frames and frames whose
// bucket is at capacity are discarded. The caller must not use im after
// Put.
func (p *Pool[F]) Put(im *Image[F]) {
	if im == nil {
		return
	}

	key := poolKey{width: im.width, height: im.height, stride: im.stride}

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[key]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		// Bucket full, let the GC reclaim the frame.
		return
	}
	p.buckets[key] = append(bucket, im)
}
