// SPDX-License-Identifier: MIT

//go:build linux

package mpp

import (
	"fmt"
	"unsafe"

	"github.com/ManuGH/hwprobe/internal/codec"
	"github.com/ebitengine/purego"
)

// libraryName is the vendor decoder library probed for.
const libraryName = "librockchip_mpp.so"

// rtldDeepbind is glibc's RTLD_DEEPBIND. It makes the vendor library prefer
// its own symbols over anything already loaded into the process, which
// purego does not expose as a constant.
const rtldDeepbind = 0x00008

// DynamicLibrary is the purego-backed Library. It owns the dlopen handle
// for the duration of one probe and must be closed exactly once.
type DynamicLibrary struct {
	handle uintptr

	create  func(ctx *uintptr, api *uintptr) int32
	check   func(ctxType, coding int32) int32
	initCtx func(ctx uintptr, ctxType, coding int32) int32
	destroy func(ctx uintptr) int32
}

// Open loads the MPP library and resolves the four required entry points.
// Resolution is all-or-nothing: a single missing symbol closes the handle
// and fails the whole open.
func Open() (*DynamicLibrary, error) {
	handle, err := purego.Dlopen(libraryName, purego.RTLD_LAZY|rtldDeepbind)
	if err != nil {
		return nil, fmt.Errorf("cannot load mpp library: %w", err)
	}

	lib := &DynamicLibrary{handle: handle}
	bindings := []struct {
		symbol string
		fn     any
	}{
		{"mpp_create", &lib.create},
		{"mpp_check_support_format", &lib.check},
		{"mpp_init", &lib.initCtx},
		{"mpp_destroy", &lib.destroy},
	}
	for _, b := range bindings {
		addr, err := purego.Dlsym(handle, b.symbol)
		if err != nil {
			lib.Close()
			return nil, fmt.Errorf("cannot bind %s: %w", b.symbol, err)
		}
		purego.RegisterFunc(b.fn, addr)
	}

	return lib, nil
}

// Close unloads the library.
func (l *DynamicLibrary) Close() {
	_ = purego.Dlclose(l.handle)
}

// Create asks the library for a fresh decoder context. mpp_create also
// returns the per-context API vtable, which carries the reset entry.
func (l *DynamicLibrary) Create() (Context, error) {
	var ctx, api uintptr
	if ret := l.create(&ctx, &api); ret != 0 {
		return nil, fmt.Errorf("mpp_create returned %d", ret)
	}
	return &dynamicContext{lib: l, ctx: ctx, api: api}, nil
}

// CheckSupport asks the library whether it can decode c at all.
func (l *DynamicLibrary) CheckSupport(c codec.Codec) error {
	if ret := l.check(ctxTypeDecoder, codingID(c)); ret != 0 {
		return fmt.Errorf("mpp_check_support_format returned %d", ret)
	}
	return nil
}

// dynamicContext pairs an MppCtx handle with its API vtable.
type dynamicContext struct {
	lib *DynamicLibrary
	ctx uintptr
	api uintptr
}

func (c *dynamicContext) Init(cod codec.Codec) error {
	if ret := c.lib.initCtx(c.ctx, ctxTypeDecoder, codingID(cod)); ret != 0 {
		return fmt.Errorf("mpp_init returned %d", ret)
	}
	return nil
}

// Reset calls the reset function pointer out of the context's vtable.
func (c *dynamicContext) Reset() {
	api := (*mppAPI)(unsafe.Pointer(c.api))
	if api == nil || api.reset == 0 {
		return
	}
	purego.SyscallN(api.reset, c.ctx)
}

func (c *dynamicContext) Destroy() {
	_ = c.lib.destroy(c.ctx)
}
