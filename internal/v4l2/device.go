// SPDX-License-Identifier: MIT

//go:build linux

package v4l2

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// DeviceFile is the fd-backed Device. It owns the descriptor for the
// duration of one probe and must be closed exactly once.
type DeviceFile struct {
	fd int
}

// Open opens the device node read/write and non-blocking. The returned
// error carries the OS failure reason (permission, missing node, ...).
func Open(path string) (*DeviceFile, error) {
	fd, err := unix.Open(path, unix.O_RDWR|unix.O_NONBLOCK, 0)
	if err != nil {
		return nil, err
	}
	return &DeviceFile{fd: fd}, nil
}

// Close releases the file descriptor.
func (d *DeviceFile) Close() error {
	return unix.Close(d.fd)
}

// Capability issues VIDIOC_QUERYCAP and decodes the identity strings.
func (d *DeviceFile) Capability() (Capability, error) {
	var raw v4l2Capability
	if err := d.ioctl(vidiocQuerycap, unsafe.Pointer(&raw)); err != nil {
		return Capability{}, err
	}
	return Capability{
		Driver:       unix.ByteSliceToString(raw.driver[:]),
		Card:         unix.ByteSliceToString(raw.card[:]),
		BusInfo:      unix.ByteSliceToString(raw.busInfo[:]),
		Version:      raw.version,
		Capabilities: raw.capabilities,
		DeviceCaps:   raw.deviceCaps,
	}, nil
}

// Formats walks the driver's format list for one queue with VIDIOC_ENUM_FMT,
// index 0 upwards, until the driver errors out (EINVAL past the last entry).
func (d *DeviceFile) Formats(queue uint32) []uint32 {
	var formats []uint32
	for index := uint32(0); ; index++ {
		raw := v4l2Fmtdesc{index: index, typ: queue}
		if err := d.ioctl(vidiocEnumFmt, unsafe.Pointer(&raw)); err != nil {
			break
		}
		formats = append(formats, raw.pixelformat)
	}
	return formats
}

func (d *DeviceFile) ioctl(req uintptr, arg unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(d.fd), req, uintptr(arg))
	if errno != 0 {
		return errno
	}
	return nil
}
