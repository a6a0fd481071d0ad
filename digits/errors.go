package digits

import "errors"

var (
	// ErrBadRadix is returned by New when radix is outside [MinRadix, MaxRadix].
	ErrBadRadix = errors.New("digits: radix out of range")

	// ErrBadLength is returned when a requested length is negative.
	ErrBadLength = errors.New("digits: negative length")

	// ErrIndexOutOfRange is returned by Get and Set when the index does not
	// satisfy 0 <= i < Len().
	ErrIndexOutOfRange = errors.New("digits: index out of range")

	// ErrBadDigit is returned by Set when the digit is not in [0, radix).
	ErrBadDigit = errors.New("digits: digit out of range for radix")
)
