// SPDX-License-Identifier: MIT

//go:build linux && (amd64 || arm64)

package mpp

import "unsafe"

// Compile-time layout assertions against the vendor ABI.
// Pattern: [0]struct{} = [actual - expected]struct{} fails if actual != expected.
var (
	_ [0]struct{} = [unsafe.Sizeof(mppAPI{}) - 184]struct{}{}
	_ [0]struct{} = [unsafe.Offsetof(mppAPI{}.reset) - 104]struct{}{}
)
