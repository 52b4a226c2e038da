// SPDX-License-Identifier: MIT

//go:build linux

package mpp

import (
	"strings"
	"testing"
)

// Open either succeeds (the vendor library is installed) or fails with one
// of the two fatal messages the caller keys its exit status on.
func TestOpenFailureNamesLibraryOrSymbol(t *testing.T) {
	lib, err := Open()
	if err == nil {
		lib.Close()
		return
	}

	msg := err.Error()
	if !strings.HasPrefix(msg, "cannot load mpp library") &&
		!strings.HasPrefix(msg, "cannot bind ") {
		t.Errorf("unexpected open failure message: %q", msg)
	}
}
