// Package segment implements flood-fill region growing over a decoded
// pixel buffer.
//
// The package works on three in-memory structures: a PixelBuffer holding
// 3-channel color samples, a LabelGrid of region identifiers of the same
// shape, and a FrontierStack of coordinates awaiting expansion. The Engine
// drives two expansion policies:
//
//   - SegmentAll labels every pixel of the image, opening a new region at
//     each unlabeled pixel of a row-major scan and flood-filling with a
//     fixed color-distance threshold. Every pixel ends with a positive
//     label.
//
//   - SegmentFromSeeds grows regions only from a caller-supplied seed list,
//     widening the acceptance threshold with the running mean of the
//     region's own colors (never below the configured base), enforcing a
//     minimum region size by dissolving undersized regions, and stopping
//     once an iteration budget is spent or the image is fully labeled.
//     Pixels the seeds never reach stay unlabeled.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with origin at the top-left corner:
// X increases rightward (0 to width-1), Y increases downward (0 to
// height-1).
//
// # Thread Safety
//
// A PixelBuffer is never mutated by the engine and may be shared between
// calls. LabelGrid and FrontierStack are exclusively owned by one engine
// invocation; nothing in this package is safe for concurrent mutation.
//
// # Error Handling
//
// The engine entry points reject nil or zero-sized buffers with an error.
// Popping an empty FrontierStack is a contract violation and panics;
// callers must check IsEmpty first.
package segment
