// SPDX-License-Identifier: MIT

// Package mpp probes the Rockchip MPP vendor library for hardware decode
// support. The library is loaded dynamically; per codec, a decoder context
// is created, the coding format is checked, and the context is initialised.
// Only a codec that passes all three steps is reported as supported.
package mpp

import (
	"github.com/ManuGH/hwprobe/internal/codec"
	"github.com/rs/zerolog"
)

// ctxTypeDecoder is MPP_CTX_DEC, the decoder context kind. Probing only
// covers decode.
const ctxTypeDecoder int32 = 0

// codingID maps a codec to its MppCodingType value from rk_mpi.h.
func codingID(c codec.Codec) int32 {
	switch c {
	case codec.H264:
		return 0x7 // MPP_VIDEO_CodingAVC
	case codec.VP8:
		return 0x9
	case codec.VP9:
		return 0xa
	case codec.AV1:
		return 0x01000008
	default:
		return -1
	}
}

// Context is one decoder context handed out by the library.
type Context interface {
	// Init initialises the context for decoding c.
	Init(c codec.Codec) error
	// Reset clears the context's internal state.
	Reset()
	// Destroy releases the context.
	Destroy()
}

// Library is the capability provider resolved from the loaded vendor
// library. Construction fails atomically if any required entry point is
// missing, so a Library always exposes the full set.
type Library interface {
	Create() (Context, error)
	CheckSupport(c codec.Codec) error
}

// Probe runs the per-codec create/check/init sequence against lib and
// returns the set of codecs that passed. A failure at any step skips that
// codec and moves on; only a successfully initialised context is reset and
// destroyed. Contexts rejected at check or init are left to the library.
func Probe(lib Library, logger zerolog.Logger) codec.Set {
	var supported codec.Set

	for _, c := range codec.All() {
		ctx, err := lib.Create()
		if err != nil {
			logger.Debug().Err(err).Stringer("codec", c).Msg("cannot create mpp context")
			continue
		}

		if err := lib.CheckSupport(c); err != nil {
			logger.Debug().Err(err).Stringer("codec", c).Msg("mpp does not support codec")
			continue
		}

		if err := ctx.Init(c); err != nil {
			logger.Debug().Err(err).Stringer("codec", c).Msg("mpp cannot init codec")
			continue
		}

		supported.Add(c)
		ctx.Reset()
		ctx.Destroy()
	}

	return supported
}
