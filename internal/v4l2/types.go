// SPDX-License-Identifier: MIT

// Package v4l2 probes a V4L2 device node for hardware decode support. A
// usable decoder is a memory-to-memory (M2M) transform device: compressed
// bitstream buffers go in on the OUTPUT queue and decoded frames come out
// on the CAPTURE queue. Plain capture devices such as webcams are rejected.
package v4l2

// Buffer queue types from linux/videodev2.h.
const (
	BufTypeVideoCapture       uint32 = 1
	BufTypeVideoOutput        uint32 = 2
	BufTypeVideoCaptureMplane uint32 = 9
	BufTypeVideoOutputMplane  uint32 = 10
)

// Capability flag bits from linux/videodev2.h.
const (
	capStreaming      uint32 = 0x04000000 // V4L2_CAP_STREAMING
	capVideoM2M       uint32 = 0x00008000 // V4L2_CAP_VIDEO_M2M
	capVideoM2MMplane uint32 = 0x00004000 // V4L2_CAP_VIDEO_M2M_MPLANE
	capDeviceCaps     uint32 = 0x80000000 // V4L2_CAP_DEVICE_CAPS
)

// FourCC packs a four-character pixel-format code the way the kernel does.
func FourCC(a, b, c, d byte) uint32 {
	return uint32(a) | uint32(b)<<8 | uint32(c)<<16 | uint32(d)<<24
}

// Pixel formats the prober cares about.
var (
	PixFmtH264   = FourCC('H', '2', '6', '4') // compressed H.264 bitstream
	PixFmtNV12   = FourCC('N', 'V', '1', '2') // planar YUV 4:2:0, interleaved chroma
	PixFmtYVU420 = FourCC('Y', 'V', '1', '2') // planar YUV 4:2:0, three planes
)

// QueueLayout describes how a transform device exposes its buffer queues.
type QueueLayout int

const (
	LayoutNone        QueueLayout = iota // not a transform device
	LayoutSinglePlane                    // V4L2_CAP_VIDEO_M2M
	LayoutMultiPlane                     // V4L2_CAP_VIDEO_M2M_MPLANE
)

func (l QueueLayout) String() string {
	switch l {
	case LayoutSinglePlane:
		return "single-plane"
	case LayoutMultiPlane:
		return "multi-plane"
	default:
		return "none"
	}
}

// CaptureQueue returns the buffer type to enumerate decoded-frame formats on.
func (l QueueLayout) CaptureQueue() uint32 {
	if l == LayoutMultiPlane {
		return BufTypeVideoCaptureMplane
	}
	return BufTypeVideoCapture
}

// OutputQueue returns the buffer type to enumerate bitstream formats on.
func (l QueueLayout) OutputQueue() uint32 {
	if l == LayoutMultiPlane {
		return BufTypeVideoOutputMplane
	}
	return BufTypeVideoOutput
}

// Capability is the decoded VIDIOC_QUERYCAP result.
type Capability struct {
	Driver  string
	Card    string
	BusInfo string
	Version uint32

	// Capabilities covers the whole physical device, DeviceCaps the single
	// device node that was opened.
	Capabilities uint32
	DeviceCaps   uint32
}

// HasDeviceCaps reports whether the driver fills in per-node capabilities.
// Drivers too old to do so are not trusted.
func (c Capability) HasDeviceCaps() bool {
	return c.Capabilities&capDeviceCaps != 0
}

// Streaming reports whether the node supports streaming I/O.
func (c Capability) Streaming() bool {
	return c.DeviceCaps&capStreaming != 0
}

// Layout derives the transform-queue layout from the node capabilities.
// Multi-plane wins when a device advertises both.
func (c Capability) Layout() QueueLayout {
	if c.DeviceCaps&capVideoM2MMplane != 0 {
		return LayoutMultiPlane
	}
	if c.DeviceCaps&capVideoM2M != 0 {
		return LayoutSinglePlane
	}
	return LayoutNone
}

// Device is the slice of the V4L2 interface the probe sequence needs. The
// production implementation wraps an open file descriptor; tests substitute
// fakes.
type Device interface {
	// Capability issues VIDIOC_QUERYCAP.
	Capability() (Capability, error)
	// Formats enumerates the pixel formats on one buffer queue, in driver
	// order. Enumeration ends at the first ioctl error, which is how the
	// driver signals the end of its list.
	Formats(queue uint32) []uint32
}
