// Package trace implements the optional iteration exporter: an append-only
// HTML trace that records each finalized outer-iteration vector v_i as it is
// produced, for offline visualisation. It has no effect on solve semantics.
//
// The document shell is parsed once with html/template and written before
// the first vector. Per-vector rows
// are plain formatted numbers, not user-controlled content, so they are
// appended directly rather than re-escaped through the template engine on
// every call.
package trace
