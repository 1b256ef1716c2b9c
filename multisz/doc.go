// Package multisz converts between ordered string lists and the hex(7):
// interchange form of REG_MULTI_SZ registry values.
//
// A REG_MULTI_SZ blob is UTF-16LE text in which each entry is followed by
// one null code unit and the whole blob ends with two consecutive null code
// units. Registry edit scripts carry these blobs as comma-separated
// two-digit hex byte groups behind a hex(7): tag, wrapped at 75 columns
// with backslash continuations.
//
// Decode accepts both the compact single-line layout and the wrapped
// layout; Encode produces either. All operations are pure and safe for
// concurrent use.
package multisz
