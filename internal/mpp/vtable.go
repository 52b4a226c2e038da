// SPDX-License-Identifier: MIT

package mpp

// mppAPI mirrors MppApi from rk_mpi.h. mpp_create fills in one vtable per
// context; the prober only ever calls the reset slot, everything else is
// carried to keep the layout right.
type mppAPI struct {
	size    uint32
	version uint32

	decode          uintptr
	decodePutPacket uintptr
	decodeGetFrame  uintptr
	encode          uintptr
	encodePutFrame  uintptr
	encodeGetPacket uintptr
	isp             uintptr
	ispPutFrame     uintptr
	ispGetFrame     uintptr
	poll            uintptr
	dequeue         uintptr
	enqueue         uintptr
	reset           uintptr
	control         uintptr

	reserv [16]uint32
}
