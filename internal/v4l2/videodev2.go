// SPDX-License-Identifier: MIT

//go:build linux

package v4l2

import "unsafe"

// ioctl request codes from linux/videodev2.h. The encoded struct sizes are
// identical on 32- and 64-bit architectures.
const (
	vidiocQuerycap uintptr = 0x80685600 // VIDIOC_QUERYCAP
	vidiocEnumFmt  uintptr = 0xc0405602 // VIDIOC_ENUM_FMT
)

// Compile-time layout assertions against the kernel ABI.
// Pattern: [0]struct{} = [actual - expected]struct{} fails if actual != expected.
var (
	_ [0]struct{} = [unsafe.Sizeof(v4l2Capability{}) - 104]struct{}{}
	_ [0]struct{} = [unsafe.Sizeof(v4l2Fmtdesc{}) - 64]struct{}{}
)

// v4l2Capability has size 104 bytes.
type v4l2Capability struct {
	driver       [16]byte  // offset 0
	card         [32]byte  // offset 16
	busInfo      [32]byte  // offset 48
	version      uint32    // offset 80
	capabilities uint32    // offset 84
	deviceCaps   uint32    // offset 88
	reserved     [3]uint32 // offset 92
}

// v4l2Fmtdesc has size 64 bytes.
type v4l2Fmtdesc struct {
	index       uint32    // offset 0
	typ         uint32    // offset 4
	flags       uint32    // offset 8
	description [32]byte  // offset 12
	pixelformat uint32    // offset 44
	mbusCode    uint32    // offset 48
	reserved    [3]uint32 // offset 52
}
