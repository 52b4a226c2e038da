// SPDX-License-Identifier: MIT

package report

import (
	"bytes"
	"testing"

	"github.com/ManuGH/hwprobe/internal/codec"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestResultRecord(t *testing.T) {
	var supported codec.Set
	supported.Add(codec.H264)
	supported.Add(codec.VP9)

	var buf bytes.Buffer
	rec := New(&buf, zerolog.Nop())
	rec.Result(Result{Supported: true, Codecs: supported})
	require.NoError(t, rec.Flush())

	assert.Equal(t, "SUPPORTED\nTRUE\nHWCODECS\n80\n", buf.String())
}

func TestResultRecordNothingSupported(t *testing.T) {
	var buf bytes.Buffer
	rec := New(&buf, zerolog.Nop())
	rec.Result(Result{Supported: false})
	require.NoError(t, rec.Flush())

	assert.Equal(t, "SUPPORTED\nFALSE\nHWCODECS\n0\n", buf.String())
}

func TestErrorRecord(t *testing.T) {
	var buf bytes.Buffer
	rec := New(&buf, zerolog.Nop())
	rec.Errorf("cannot bind %s", "mpp_check_support_format")
	require.NoError(t, rec.Flush())

	assert.Equal(t, "ERROR\ncannot bind mpp_check_support_format\n", buf.String())
}

func TestRecordsAreBufferedUntilFlush(t *testing.T) {
	var buf bytes.Buffer
	rec := New(&buf, zerolog.Nop())
	rec.Result(Result{Supported: true})

	assert.Zero(t, buf.Len(), "record must not reach the pipe before Flush")
	require.NoError(t, rec.Flush())
	assert.NotZero(t, buf.Len())
}
