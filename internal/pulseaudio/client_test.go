package pulseaudio

import (
	"reflect"
	"testing"

	"github.com/jfreymuth/pulse/proto"

	"github.com/1broseidon/reminiscence/internal/audio"
)

func TestDeviceFromSink(t *testing.T) {
	sink := &proto.GetSinkInfoReply{
		SinkIndex:         4,
		SinkName:          "alsa_output.usb-headset.analog-stereo",
		Device:            "USB Headset Analog Stereo",
		MonitorSourceName: "alsa_output.usb-headset.analog-stereo.monitor",
		ChannelVolumes:    proto.ChannelVolumes{0x10000, 0x8000},
	}

	got := deviceFromSink(sink)
	want := audio.Device{
		Index:         4,
		Name:          "alsa_output.usb-headset.analog-stereo",
		Description:   "USB Headset Analog Stereo",
		MonitorSource: "alsa_output.usb-headset.analog-stereo.monitor",
		Volume:        audio.Volume{Channels: []uint32{0x10000, 0x8000}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("deviceFromSink() = %#v, want %#v", got, want)
	}
	if got.Volume.String() != "100% / 50%" {
		t.Fatalf("volume rendered as %q", got.Volume.String())
	}
}

func TestDeviceFromSink_NoDescription(t *testing.T) {
	got := deviceFromSink(&proto.GetSinkInfoReply{SinkIndex: 1, SinkName: "null"})
	if got.Description != "" || got.Label() != "null" {
		t.Fatalf("unexpected device %#v", got)
	}
	if got.Volume.Channels == nil || len(got.Volume.Channels) != 0 {
		t.Fatalf("expected empty non-nil channels, got %#v", got.Volume.Channels)
	}
}
