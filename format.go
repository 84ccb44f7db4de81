package frame

// PixFmt identifies a pixel storage format at runtime.
type PixFmt uint8

const (
	// PixFmtMono8 is 8-bit monochrome (1 byte per pixel).
	PixFmtMono8 PixFmt = iota

	// PixFmtMono16 is 16-bit monochrome (2 bytes per pixel). Byte order of
	// the sample is defined by the producer, not by this package.
	PixFmtMono16

	// PixFmtRGB8 is 24-bit interleaved RGB (3 bytes per pixel, no alpha).
	PixFmtRGB8

	// PixFmtBGR8 is 24-bit interleaved BGR (3 bytes per pixel, no alpha).
	// Common in Windows capture APIs and some camera SDKs.
	PixFmtBGR8

	// PixFmtRGBA8 is 32-bit interleaved RGBA (4 bytes per pixel,
	// non-premultiplied alpha).
	PixFmtRGBA8

	// PixFmtBayerRG8 is an 8-bit Bayer mosaic plane with an RGGB filter
	// pattern. Full color requires demosaicing, which is outside this
	// package.
	PixFmtBayerRG8

	// PixFmtBayerGB8 is an 8-bit Bayer mosaic plane with a GBRG pattern.
	PixFmtBayerGB8

	// PixFmtBayerGR8 is an 8-bit Bayer mosaic plane with a GRBG pattern.
	PixFmtBayerGR8

	// PixFmtBayerBG8 is an 8-bit Bayer mosaic plane with a BGGR pattern.
	PixFmtBayerBG8

	// pixFmtCount is the number of formats (for internal use).
	pixFmtCount
)

// PixFmtInfo contains metadata about a pixel format.
type PixFmtInfo struct {
	// BytesPerPixel is the number of bytes one pixel occupies.
	BytesPerPixel int

	// Channels is the number of samples stored per pixel.
	Channels int

	// IsMono indicates a single-channel monochrome format.
	IsMono bool

	// IsBayer indicates a single-plane color filter mosaic format.
	IsBayer bool
}

// pixFmtInfoTable contains metadata for each format.
var pixFmtInfoTable = [pixFmtCount]PixFmtInfo{
	PixFmtMono8: {
		BytesPerPixel: 1,
		Channels:      1,
		IsMono:        true,
	},
	PixFmtMono16: {
		BytesPerPixel: 2,
		Channels:      1,
		IsMono:        true,
	},
	PixFmtRGB8: {
		BytesPerPixel: 3,
		Channels:      3,
	},
	PixFmtBGR8: {
		BytesPerPixel: 3,
		Channels:      3,
	},
	PixFmtRGBA8: {
		BytesPerPixel: 4,
		Channels:      4,
	},
	PixFmtBayerRG8: {
		BytesPerPixel: 1,
		Channels:      1,
		IsBayer:       true,
	},
	PixFmtBayerGB8: {
		BytesPerPixel: 1,
		Channels:      1,
		IsBayer:       true,
	},
	PixFmtBayerGR8: {
		BytesPerPixel: 1,
		Channels:      1,
		IsBayer:       true,
	},
	PixFmtBayerBG8: {
		BytesPerPixel: 1,
		Channels:      1,
		IsBayer:       true,
	},
}

// Info returns the PixFmtInfo for this format.
func (f PixFmt) Info() PixFmtInfo {
	if f >= pixFmtCount {
		return PixFmtInfo{}
	}
	return pixFmtInfoTable[f]
}

// BytesPerPixel returns the number of bytes one pixel occupies.
func (f PixFmt) BytesPerPixel() int {
	return f.Info().BytesPerPixel
}

// Channels returns the number of samples stored per pixel.
func (f PixFmt) Channels() int {
	return f.Info().Channels
}

// IsMono returns true for single-channel monochrome formats.
func (f PixFmt) IsMono() bool {
	return f.Info().IsMono
}

// IsBayer returns true for color filter mosaic formats.
func (f PixFmt) IsBayer() bool {
	return f.Info().IsBayer
}

// IsValid returns true if the format is a valid known format.
func (f PixFmt) IsValid() bool {
	return f < pixFmtCount
}

// MinStride returns the smallest legal stride for a row of the given width:
// the row's pixel data width in bytes, with no padding.
func (f PixFmt) MinStride(width int) int {
	return width * f.BytesPerPixel()
}

// String returns a string representation of the format.
func (f PixFmt) String() string {
	switch f {
	case PixFmtMono8:
		return "Mono8"
	case PixFmtMono16:
		return "Mono16"
	case PixFmtRGB8:
		return "RGB8"
	case PixFmtBGR8:
		return "BGR8"
	case PixFmtRGBA8:
		return "RGBA8"
	case PixFmtBayerRG8:
		return "BayerRG8"
	case PixFmtBayerGB8:
		return "BayerGB8"
	case PixFmtBayerGR8:
		return "BayerGR8"
	case PixFmtBayerBG8:
		return "BayerBG8"
	default:
		return "Unknown"
	}
}

// PixelFormat is the constraint satisfied by the compile-time format tags.
//
// Image types are parameterized by a PixelFormat, so values of different
// formats are distinct types: a *Image[RGB8] cannot be passed where an
// ImageData[Mono8] is expected. Code that needs only the byte width (such
// as the row iterators) obtains the runtime descriptor via PixFmtOf.
type PixelFormat interface {
	// PixFmt returns the runtime descriptor for this format tag.
	PixFmt() PixFmt
}

// Mono8 is the type tag for 8-bit monochrome data.
type Mono8 struct{}

// Mono16 is the type tag for 16-bit monochrome data.
type Mono16 struct{}

// RGB8 is the type tag for interleaved 8-bit RGB data.
type RGB8 struct{}

// BGR8 is the type tag for interleaved 8-bit BGR data.
type BGR8 struct{}

// RGBA8 is the type tag for interleaved 8-bit RGBA data.
type RGBA8 struct{}

// BayerRG8 is the type tag for an 8-bit RGGB Bayer mosaic plane.
type BayerRG8 struct{}

// BayerGB8 is the type tag for an 8-bit GBRG Bayer mosaic plane.
type BayerGB8 struct{}

// BayerGR8 is the type tag for an 8-bit GRBG Bayer mosaic plane.
type BayerGR8 struct{}

// BayerBG8 is the type tag for an 8-bit BGGR Bayer mosaic plane.
type BayerBG8 struct{}

// PixFmt implements PixelFormat.
func (Mono8) PixFmt() PixFmt { return PixFmtMono8 }

// PixFmt implements PixelFormat.
func (Mono16) PixFmt() PixFmt { return PixFmtMono16 }

// PixFmt implements PixelFormat.
func (RGB8) PixFmt() PixFmt { return PixFmtRGB8 }

// PixFmt implements PixelFormat.
func (BGR8) PixFmt() PixFmt { return PixFmtBGR8 }

// PixFmt implements PixelFormat.
func (RGBA8) PixFmt() PixFmt { return PixFmtRGBA8 }

// PixFmt implements PixelFormat.
func (BayerRG8) PixFmt() PixFmt { return PixFmtBayerRG8 }

// PixFmt implements PixelFormat.
func (BayerGB8) PixFmt() PixFmt { return PixFmtBayerGB8 }

// PixFmt implements PixelFormat.
func (BayerGR8) PixFmt() PixFmt { return PixFmtBayerGR8 }

// PixFmt implements PixelFormat.
func (BayerBG8) PixFmt() PixFmt { return PixFmtBayerBG8 }

// PixFmtOf returns the runtime descriptor for the format tag F.
func PixFmtOf[F PixelFormat]() PixFmt {
	var f F
	return f.PixFmt()
}
