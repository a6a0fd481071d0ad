// Package digits implements a packed array of base-r digits.
//
// An Array stores its digits inside []uint64 words, fitting as many
// digits per word as the radix allows (40 ternary digits per word, for
// example). Individual digits are read and written with pure integer
// arithmetic against a per-radix power table that is built once per
// process and shared by every Array of that radix.
//
// Digits beyond the logical length are always zero. ResizeWithZeros
// preserves that invariant on both shrink and grow, so a shrink
// followed by a grow never resurrects stale digits.
//
// Supported radixes are 2 through 256; digits are uint8 values in
// [0, radix).
package digits
