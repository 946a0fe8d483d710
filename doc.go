// Package erosion implements the CPU-side analysis pipeline behind a
// per-pixel dissolve/reveal shader effect: it turns a decoded sequence of
// RGBA frames into two small textures plus metadata, without ever touching
// a GPU, a decoder, or a display surface.
//
// # Overview
//
// Feed frames in order, finish the stream, then ask for the two outputs:
//
//	pc := erosion.NewPipeline(w, h)
//	for _, frame := range frames {
//		if err := pc.PushFrame(frame); err != nil {
//			log.Fatal(err)
//		}
//	}
//	if err := pc.FinishPushingFrames(); err != nil {
//		log.Fatal(err)
//	}
//	if err := pc.ComputeGradient(); err != nil {
//		log.Fatal(err)
//	}
//	timing := pc.Image(erosion.TimingMap)
//	gradient := pc.Image(erosion.GradientVolume)
//	meta := pc.Metadata()
//
// # Outputs
//
// The timing map (§ erosion texture) is an RGBA8 image the same size as the
// source frames: R encodes when a pixel first reveals, G when it finally
// disappears, B an edge-hardness value (the slope of the shallower of a
// pixel's attack and release ramps, normalized across all pixels). The gradient volume is a
// second RGBA8 image, a 2D ramp or a 3D cube depending on [Options.GradientDepth],
// built by reverse-splatting each frame's source colors against the timing
// map, so a shader can sample color by reveal-order and lifetime instead of
// storing a full sprite sheet.
//
// # Architecture
//
// The package is organized into:
//   - Public API: [Pipeline], [Options], [RGBA], [RGBAImage]
//   - Stages (root package): frame stream, chroma alpha, envelope builder,
//     envelope encoder, gradient builder, hole-fill/normalize
//   - internal/sdf, internal/blur, internal/fourier: timing-map cleanup
//     passes (dequantize, smooth, frequency-clamp); [Pipeline] does not
//     invoke them
//   - internal/fields: shared flood-fill / chamfer / connected-component
//     primitives used by internal/sdf
//   - internal/parallel: deterministic row-tiled fan-out used by the
//     envelope builder and the envelope encoder
//   - internal/color: sRGB/linear conversion used while accumulating the
//     gradient volume
//
// # Coordinate System
//
// Frames and output images are row-major, top-left origin, 4 bytes per
// pixel. Time is measured in frame indices, not wall-clock seconds; a
// pipeline does not know or care about frame rate.
//
// # Concurrency
//
// A [Pipeline] is single-threaded cooperative: its public methods are not
// safe for concurrent use on the same instance, mirroring the frame-by-frame
// contract a caller must respect. Internally, per-pixel passes tile rows
// across goroutines (see internal/parallel) but always produce
// byte-identical output regardless of GOMAXPROCS.
package erosion
