package frame

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// ToImage copies im into the closest standard library image type:
//
//   - Mono8 and Bayer planes become *image.Gray (a Bayer plane is exported
//     as its raw mosaic, not demosaiced)
//   - Mono16 becomes *image.Gray16, bytes copied verbatim without
//     reinterpreting their order
//   - RGB8 and BGR8 become *image.NRGBA with opaque alpha
//   - RGBA8 becomes *image.NRGBA
//
// The result never aliases im's buffer.
func ToImage[F PixelFormat](im ImageData[F]) image.Image {
	w, h := im.Width(), im.Height()
	switch f := PixFmtOf[F](); f {
	case PixFmtMono8, PixFmtBayerRG8, PixFmtBayerGB8, PixFmtBayerGR8, PixFmtBayerBG8:
		dst := image.NewGray(image.Rect(0, 0, w, h))
		y := 0
		for row := range Rows[F](im) {
			copy(dst.Pix[y*dst.Stride:], row)
			y++
		}
		return dst
	case PixFmtMono16:
		dst := image.NewGray16(image.Rect(0, 0, w, h))
		y := 0
		for row := range Rows[F](im) {
			copy(dst.Pix[y*dst.Stride:], row)
			y++
		}
		return dst
	case PixFmtRGB8, PixFmtBGR8:
		dst := image.NewNRGBA(image.Rect(0, 0, w, h))
		ri := 0
		if f == PixFmtBGR8 {
			ri = 2
		}
		y := 0
		for row := range Rows[F](im) {
			out := dst.Pix[y*dst.Stride:]
			for x := 0; x < w; x++ {
				out[x*4+0] = row[x*3+ri]
				out[x*4+1] = row[x*3+1]
				out[x*4+2] = row[x*3+2-ri]
				out[x*4+3] = 0xff
			}
			y++
		}
		return dst
	case PixFmtRGBA8:
		dst := image.NewNRGBA(image.Rect(0, 0, w, h))
		y := 0
		for row := range Rows[F](im) {
			copy(dst.Pix[y*dst.Stride:], row)
			y++
		}
		return dst
	default:
		return image.NewGray(image.Rect(0, 0, 0, 0))
	}
}

// FromImage copies src into an owned RGBA8 image. Any image.Image source
// works; non-NRGBA representations are converted by x/image/draw.
func FromImage(src image.Image) *Image[RGBA8] {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.Copy(dst, image.Point{}, src, b, xdraw.Src, nil)
	im, err := NewFromBytes[RGBA8](w, h, dst.Stride, dst.Pix)
	if err != nil {
		// image.NewNRGBA always allocates 4*w bytes per row.
		panic("frame: FromImage produced an invalid layout: " + err.Error())
	}
	return im
}

// FromGray wraps the pixel storage of g as a Mono8 view without copying.
// Mutating g afterwards is visible through the view.
func FromGray(g *image.Gray) (*Ref[Mono8], error) {
	b := g.Bounds()
	buf := g.Pix[g.PixOffset(b.Min.X, b.Min.Y):]
	return NewRef[Mono8](b.Dx(), b.Dy(), g.Stride, buf)
}

// FromNRGBA wraps the pixel storage of img as an RGBA8 view without
// copying. Mutating img afterwards is visible through the view.
func FromNRGBA(img *image.NRGBA) (*Ref[RGBA8], error) {
	b := img.Bounds()
	buf := img.Pix[img.PixOffset(b.Min.X, b.Min.Y):]
	return NewRef[RGBA8](b.Dx(), b.Dy(), img.Stride, buf)
}
