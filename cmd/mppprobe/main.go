// SPDX-License-Identifier: MIT

//go:build linux

// Command mppprobe tests the Rockchip MPP library for hardware decode
// support. It is meant to be spawned as a short-lived child process: the
// caller drains stdout until EOF and interprets the exit status, so a crash
// inside the vendor driver cannot take down the host.
//
// Output protocol (stdout): a SUPPORTED/HWCODECS record on success, an
// ERROR record when the library cannot be loaded or bound. Diagnostics go
// to stderr when HWPROBE_DEBUG=1.
package main

import (
	"os"

	"github.com/ManuGH/hwprobe/internal/config"
	"github.com/ManuGH/hwprobe/internal/log"
	"github.com/ManuGH/hwprobe/internal/mpp"
	"github.com/ManuGH/hwprobe/internal/report"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.New("")
	log.Configure(cfg.Debug)
	logger := log.WithComponent("mppprobe")
	rec := report.New(os.Stdout, logger)

	logger.Debug().Msg("testing mpp")

	lib, err := mpp.Open()
	if err != nil {
		// Missing library or missing entry point: the only fatal outcomes.
		rec.Errorf("%v", err)
		_ = rec.Flush()
		return 1
	}
	defer lib.Close()
	logger.Debug().Msg("mpp library loaded")

	supported := mpp.Probe(lib, logger)

	// Zero supported codecs is still a successful probe.
	rec.Result(report.Result{Supported: !supported.Empty(), Codecs: supported})
	_ = rec.Flush()
	return 0
}
