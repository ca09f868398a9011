package audio

import (
	"fmt"
	"strings"
)

// VolumeNorm is the raw channel volume that corresponds to 100%.
const VolumeNorm = 0x10000

// Volume holds raw per-channel volumes as reported by the audio server.
// It is for display only.
type Volume struct {
	Channels []uint32
}

// Percent converts each channel to a rounded percentage of VolumeNorm.
func (v Volume) Percent() []int {
	out := make([]int, len(v.Channels))
	for i, c := range v.Channels {
		out[i] = int((uint64(c)*100 + VolumeNorm/2) / VolumeNorm)
	}
	return out
}

// String renders "55%" when all channels agree and "55% / 60%" otherwise.
func (v Volume) String() string {
	pct := v.Percent()
	if len(pct) == 0 {
		return "n/a"
	}
	same := true
	for _, p := range pct[1:] {
		if p != pct[0] {
			same = false
			break
		}
	}
	if same {
		return fmt.Sprintf("%d%%", pct[0])
	}
	parts := make([]string, len(pct))
	for i, p := range pct {
		parts[i] = fmt.Sprintf("%d%%", p)
	}
	return strings.Join(parts, " / ")
}

// Device is a playback sink that can be recorded through its monitor source.
type Device struct {
	Index uint32
	Name  string
	// Description is empty when the server reports none.
	Description   string
	MonitorSource string
	Volume        Volume
}

// Label returns the best human-readable name for the device.
func (d Device) Label() string {
	if d.Description != "" {
		return d.Description
	}
	if d.Name != "" {
		return d.Name
	}
	return fmt.Sprintf("sink #%d", d.Index)
}

// Clone returns a copy that shares no memory with d.
func (d Device) Clone() Device {
	c := d
	if d.Volume.Channels != nil {
		c.Volume.Channels = append([]uint32(nil), d.Volume.Channels...)
	}
	return c
}

// Server is the audio server's sink control surface.
type Server interface {
	// Devices lists sinks in server order.
	Devices() ([]Device, error)
	// DefaultDevice returns the server's current default sink.
	DefaultDevice() (Device, error)
}
