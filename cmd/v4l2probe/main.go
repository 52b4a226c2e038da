// SPDX-License-Identifier: MIT

//go:build linux

// Command v4l2probe tests a V4L2 memory-to-memory device for hardware
// decode support. Like mppprobe it runs as a short-lived child process and
// reports over stdout; a bad device is an expected outcome, so every probe
// error is recorded via the protocol and the process still exits 0.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/ManuGH/hwprobe/internal/config"
	"github.com/ManuGH/hwprobe/internal/log"
	"github.com/ManuGH/hwprobe/internal/report"
	"github.com/ManuGH/hwprobe/internal/v4l2"
)

func main() {
	os.Exit(run())
}

func run() int {
	flags := pflag.NewFlagSet("v4l2probe", pflag.ContinueOnError)
	flags.Usage = printUsage
	device := flags.StringP("device", "d", "", "probe a V4L2 device node")
	help := flags.BoolP("help", "h", false, "show this message")

	if err := flags.Parse(os.Args[1:]); err != nil {
		// pflag has already printed the error and usage.
		return 0
	}
	if *help || *device == "" {
		printUsage()
		return 0
	}

	cfg := config.New(*device)
	log.Configure(cfg.Debug)
	logger := log.WithComponent("v4l2probe")
	rec := report.New(os.Stdout, logger)

	logger.Debug().Str("device", cfg.Device).Msg("probing v4l2 device")

	dev, err := v4l2.Open(cfg.Device)
	if err != nil {
		rec.Errorf("failed to open v4l2 device %s: %v", cfg.Device, err)
		_ = rec.Flush()
		return 0
	}
	defer dev.Close()

	v4l2.Probe(cfg.Device, dev, rec, logger)
	_ = rec.Flush()
	return 0
}

func printUsage() {
	fmt.Print(
		"V4L2-M2M decode capability probe\n" +
			"\n" +
			"usage: v4l2probe [options]\n" +
			"\n" +
			"Options:\n" +
			"\n" +
			"  -h --help                 show this message\n" +
			"  -d --device device        probe a V4L2 device node (e.g. /dev/video10)\n" +
			"\n")
}
