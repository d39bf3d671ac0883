// Package imaging handles image acquisition and export for the segmenter.
//
// It is thin I/O glue around github.com/disintegration/imaging: decoding a
// file path into the pixel buffer the growth engine consumes, and writing
// preview images back to disk. The engine itself never touches the
// filesystem; any failure here is fatal to the whole run rather than
// handled downstream.
package imaging
