// Package frame provides vendor-neutral types for raw frames produced by
// machine vision cameras.
//
// # Overview
//
// frame is a lowest common denominator for exchanging camera images between
// independently written drivers and consumers. It describes a frame as a
// pixel format, dimensions, a row stride, and a contiguous byte buffer, and
// guarantees that any value reachable through its interfaces satisfies the
// layout invariants checked once at construction.
//
// # Quick Start
//
//	import "github.com/visionkit/frame"
//
//	// Wrap bytes received from a camera driver without copying.
//	view, err := frame.NewRef[frame.Mono8](width, height, stride, raw)
//	if err != nil {
//	    return err
//	}
//
//	// Walk rows without touching stride padding.
//	for row := range frame.Rows[frame.Mono8](view) {
//	    process(row)
//	}
//
// # Architecture
//
// The library is organized into:
//   - Pixel formats: PixFmt runtime descriptors and compile-time tags
//     (Mono8, RGB8, BayerRG8, ...)
//   - Capabilities: ImageData and ImageMutData interfaces
//   - Views: Ref and MutRef over caller-owned bytes
//   - Owned images: Image (heap), FixedImage (no allocation), CowImage
//   - Iteration: Rows, RowsMut, Pixels via iter.Seq
//
// # Layout Model
//
// A row occupies stride bytes, of which the first width*BytesPerPixel are
// pixel data and the rest is padding. The buffer must hold
// stride*(height-1) + width*BytesPerPixel bytes; padding after the final
// row is not required to exist. Zero width or height is a valid empty
// image. Byte order of multi-byte samples is not interpreted by this
// package; formats describe byte layout only.
//
// # Concurrency
//
// The package performs no synchronization of pixel data. Any number of
// readers may share an image, or exactly one writer may hold it, never
// both. This is a caller obligation, not a runtime-checked invariant.
package frame

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
