// SPDX-License-Identifier: MIT

package v4l2

import (
	"github.com/ManuGH/hwprobe/internal/codec"
	"github.com/ManuGH/hwprobe/internal/report"
	"github.com/rs/zerolog"
)

// codecForPixelFormat maps an OUTPUT-queue (bitstream) format to its codec.
// Only H.264 is mapped; VP8/VP9/AV1 bitstream formats are not accepted via
// V4L2 yet, so those codecs can never be marked supported by this prober.
func codecForPixelFormat(pixfmt uint32) (codec.Codec, bool) {
	if pixfmt == PixFmtH264 {
		return codec.H264, true
	}
	return 0, false
}

// acceptedCaptureFormat reports whether the prober can consume decoded
// frames in the given format.
func acceptedCaptureFormat(pixfmt uint32) bool {
	return pixfmt == PixFmtNV12 || pixfmt == PixFmtYVU420
}

// Probe runs the capability checks against an open device and writes either
// one result or one error record to rec. Every failure here is a recoverable
// "this device is not a usable decoder" answer; the process still exits
// successfully.
func Probe(path string, dev Device, rec *report.Recorder, logger zerolog.Logger) {
	caps, err := dev.Capability()
	if err != nil {
		rec.Errorf("v4l2 device %s failed to query capabilities: %v", path, err)
		return
	}
	logger.Debug().
		Str("driver", caps.Driver).
		Str("card", caps.Card).
		Str("bus_info", caps.BusInfo).
		Uint32("version", caps.Version).
		Msg("device identity")

	if !caps.HasDeviceCaps() {
		rec.Errorf("v4l2 device %s does not report per-device capabilities", path)
		return
	}
	if !caps.Streaming() {
		rec.Errorf("v4l2 device %s does not support streaming I/O", path)
		return
	}

	layout := caps.Layout()
	if layout == LayoutNone {
		// The dominant rejection path: plain capture devices (webcams).
		rec.Errorf("v4l2 device %s does not support memory-to-memory transforms", path)
		return
	}
	logger.Debug().Stringer("layout", layout).Msg("transform queue layout")

	captureOK := false
	for _, pixfmt := range dev.Formats(layout.CaptureQueue()) {
		if acceptedCaptureFormat(pixfmt) {
			captureOK = true
		}
	}
	if !captureOK {
		rec.Errorf("v4l2 device %s does not support NV12 or YV12 capture formats", path)
		return
	}

	var supported codec.Set
	for _, pixfmt := range dev.Formats(layout.OutputQueue()) {
		if c, ok := codecForPixelFormat(pixfmt); ok {
			supported.Add(c)
		}
	}

	// Reaching this point means the device is a usable decoder, whether or
	// not any bitstream format matched the codec table.
	rec.Result(report.Result{Supported: true, Codecs: supported})
}
