// SPDX-License-Identifier: MIT

// Package report implements the wire protocol a prober uses to hand its
// result back to the caller over the output pipe.
//
// A successful probe produces exactly one record:
//
//	SUPPORTED
//	TRUE|FALSE
//	HWCODECS
//	<decimal bitmask>
//
// A failed probe produces a single error record instead:
//
//	ERROR
//	<message>
//
// Records are buffered and must be flushed before the process exits.
package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/ManuGH/hwprobe/internal/codec"
	"github.com/rs/zerolog"
)

// Result is the structured outcome of one probe run.
type Result struct {
	// Supported reports whether the probe considers the hardware usable at
	// all. The two probers interpret this differently: mppprobe sets it only
	// when at least one codec passed, v4l2probe sets it whenever the device
	// survived every capability check.
	Supported bool
	// Codecs holds the confirmed decode codecs.
	Codecs codec.Set
}

// Recorder writes protocol records to the output pipe and mirrors them on
// the diagnostic channel.
type Recorder struct {
	out    *bufio.Writer
	logger zerolog.Logger
}

// New returns a Recorder writing to out.
func New(out io.Writer, logger zerolog.Logger) *Recorder {
	return &Recorder{
		out:    bufio.NewWriter(out),
		logger: logger,
	}
}

// Result writes the result record.
func (r *Recorder) Result(res Result) {
	verdict := "FALSE"
	if res.Supported {
		verdict = "TRUE"
	}
	mask := res.Codecs.Bitmask()
	r.logger.Debug().
		Str("supported", verdict).
		Uint32("hwcodecs", mask).
		Msg("recording result")
	fmt.Fprintf(r.out, "SUPPORTED\n%s\nHWCODECS\n%d\n", verdict, mask)
}

// Errorf writes an error record. It replaces the result record; a probe
// emits one or the other, never both.
func (r *Recorder) Errorf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	r.logger.Error().Msg(msg)
	fmt.Fprintf(r.out, "ERROR\n%s\n", msg)
}

// Flush drains the buffer to the pipe. Every exit path must flush so the
// caller reading the pipe sees a complete record before EOF.
func (r *Recorder) Flush() error {
	return r.out.Flush()
}
