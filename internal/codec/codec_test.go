// SPDX-License-Identifier: MIT

package codec

import "testing"

func TestWireBits(t *testing.T) {
	tests := []struct {
		codec Codec
		want  uint32
	}{
		{H264, 16},
		{VP8, 32},
		{VP9, 64},
		{AV1, 128},
	}

	for _, tt := range tests {
		t.Run(tt.codec.String(), func(t *testing.T) {
			var s Set
			s.Add(tt.codec)
			if got := s.Bitmask(); got != tt.want {
				t.Errorf("Bitmask() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSetMembership(t *testing.T) {
	var s Set
	if !s.Empty() {
		t.Fatal("new set should be empty")
	}

	s.Add(VP9)
	if !s.Has(VP9) {
		t.Error("Has(VP9) = false after Add(VP9)")
	}
	for _, c := range []Codec{H264, VP8, AV1} {
		if s.Has(c) {
			t.Errorf("Has(%s) = true, want false", c)
		}
	}
	if s.Empty() {
		t.Error("Empty() = true after Add")
	}
}

func TestBitmaskIsAdditiveAndOrderIndependent(t *testing.T) {
	var a, b Set
	a.Add(H264)
	a.Add(AV1)
	b.Add(AV1)
	b.Add(H264)
	b.Add(H264) // duplicate add must not change the mask

	if a.Bitmask() != b.Bitmask() {
		t.Errorf("order-dependent bitmask: %d vs %d", a.Bitmask(), b.Bitmask())
	}
	if got := a.Bitmask(); got != 16|128 {
		t.Errorf("Bitmask() = %d, want %d", got, 16|128)
	}
}

func TestAllCodecsBitmask(t *testing.T) {
	var s Set
	for _, c := range All() {
		s.Add(c)
	}
	if got := s.Bitmask(); got != 240 {
		t.Errorf("full Bitmask() = %d, want 240", got)
	}
}
