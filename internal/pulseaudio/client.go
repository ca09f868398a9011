// Package pulseaudio talks to a PulseAudio (or pipewire-pulse) server over its
// native protocol.
package pulseaudio

import (
	"errors"
	"fmt"

	"github.com/jfreymuth/pulse"
	"github.com/jfreymuth/pulse/proto"

	"github.com/1broseidon/reminiscence/internal/audio"
)

// ErrNoDefaultSink is returned when the server has no default sink configured.
var ErrNoDefaultSink = errors.New("server has no default sink")

// Client is a sink control handle.
type Client struct {
	c *pulse.Client
}

var _ audio.Server = (*Client)(nil)

// Dial connects to the server named by $PULSE_SERVER or the default socket.
func Dial(appName string) (*Client, error) {
	c, err := pulse.NewClient(pulse.ClientApplicationName(appName))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to audio server: %w", err)
	}
	return &Client{c: c}, nil
}

// Close releases the connection.
func (c *Client) Close() {
	c.c.Close()
}

// Devices lists all sinks in server order.
func (c *Client) Devices() ([]audio.Device, error) {
	var reply proto.GetSinkInfoListReply
	if err := c.c.RawRequest(&proto.GetSinkInfoList{}, &reply); err != nil {
		return nil, err
	}

	devices := make([]audio.Device, 0, len(reply))
	for _, sink := range reply {
		devices = append(devices, deviceFromSink(sink))
	}
	return devices, nil
}

// DefaultDevice asks the server for its current default sink.
func (c *Client) DefaultDevice() (audio.Device, error) {
	var info proto.GetServerInfoReply
	if err := c.c.RawRequest(&proto.GetServerInfo{}, &info); err != nil {
		return audio.Device{}, err
	}
	if info.DefaultSinkName == "" {
		return audio.Device{}, ErrNoDefaultSink
	}

	var sink proto.GetSinkInfoReply
	req := &proto.GetSinkInfo{SinkIndex: proto.Undefined, SinkName: info.DefaultSinkName}
	if err := c.c.RawRequest(req, &sink); err != nil {
		return audio.Device{}, fmt.Errorf("sink %q: %w", info.DefaultSinkName, err)
	}
	return deviceFromSink(&sink), nil
}

func deviceFromSink(s *proto.GetSinkInfoReply) audio.Device {
	channels := make([]uint32, 0, len(s.ChannelVolumes))
	for _, v := range s.ChannelVolumes {
		channels = append(channels, uint32(v))
	}
	return audio.Device{
		Index:         s.SinkIndex,
		Name:          s.SinkName,
		Description:   s.Device,
		MonitorSource: s.MonitorSourceName,
		Volume:        audio.Volume{Channels: channels},
	}
}
