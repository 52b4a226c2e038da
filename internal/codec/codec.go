// SPDX-License-Identifier: MIT

// Package codec defines the fixed set of hardware decode codecs the probers
// test for, and the flag set reported back to the caller.
package codec

// Codec identifies one video codec from the fixed probe list.
type Codec int

const (
	H264 Codec = iota
	VP8
	VP9
	AV1
)

// All returns the codecs in probe order.
func All() []Codec {
	return []Codec{H264, VP8, VP9, AV1}
}

func (c Codec) String() string {
	switch c {
	case H264:
		return "h264"
	case VP8:
		return "vp8"
	case VP9:
		return "vp9"
	case AV1:
		return "av1"
	default:
		return "unknown"
	}
}

// hwFlag is the wire bit assigned to each codec in the capability bitmask.
// The values are fixed protocol constants; the caller decodes them by bit.
func (c Codec) hwFlag() uint32 {
	switch c {
	case H264:
		return 1 << 4
	case VP8:
		return 1 << 5
	case VP9:
		return 1 << 6
	case AV1:
		return 1 << 7
	default:
		return 0
	}
}

// Set is a set of codecs. Membership is tracked per codec; the wire bitmask
// is only produced at the output boundary via Bitmask.
type Set uint8

// Add marks c as supported. Adding twice is a no-op.
func (s *Set) Add(c Codec) {
	*s |= 1 << uint(c)
}

// Has reports whether c is in the set.
func (s Set) Has(c Codec) bool {
	return s&(1<<uint(c)) != 0
}

// Empty reports whether no codec is in the set.
func (s Set) Empty() bool {
	return s == 0
}

// Bitmask converts the set to the wire capability bitmask.
func (s Set) Bitmask() uint32 {
	var mask uint32
	for _, c := range All() {
		if s.Has(c) {
			mask |= c.hwFlag()
		}
	}
	return mask
}
