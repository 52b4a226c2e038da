// SPDX-License-Identifier: MIT

// Package config builds the immutable process configuration for a prober
// run. A Config is constructed once at startup from the environment and
// command-line arguments, then threaded through the probing functions; no
// package-level mutable state is involved.
package config

import "os"

// DebugEnv gates the diagnostic channel for both probers. Only the literal
// value "1" enables it.
const DebugEnv = "HWPROBE_DEBUG"

// Config carries the settings for one prober invocation.
type Config struct {
	// Debug enables the stderr diagnostic channel.
	Debug bool
	// Device is the V4L2 device node to probe. Unused by mppprobe.
	Device string
}

// New builds the configuration for one prober invocation from the
// environment and the already-parsed command-line arguments. Probers without
// a device argument pass "".
func New(device string) Config {
	return Config{
		Debug:  os.Getenv(DebugEnv) == "1",
		Device: device,
	}
}
