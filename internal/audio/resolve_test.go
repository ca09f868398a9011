package audio

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/1broseidon/reminiscence/internal/prompt"
)

type fakeServer struct {
	devices     []Device
	def         Device
	listErr     error
	defErr      error
	defaultHits int
}

func (s *fakeServer) Devices() ([]Device, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.devices, nil
}

func (s *fakeServer) DefaultDevice() (Device, error) {
	s.defaultHits++
	if s.defErr != nil {
		return Device{}, s.defErr
	}
	return s.def, nil
}

func twoSinks() *fakeServer {
	speakers := Device{
		Index:         0,
		Name:          "alsa_output.pci-0000_00_1f.3.analog-stereo",
		Description:   "Built-in Audio Analog Stereo",
		MonitorSource: "alsa_output.pci-0000_00_1f.3.analog-stereo.monitor",
		Volume:        Volume{Channels: []uint32{VolumeNorm, VolumeNorm}},
	}
	headset := Device{
		Index:         3,
		Name:          "bluez_sink.00_11_22",
		Description:   "Headset",
		MonitorSource: "bluez_sink.00_11_22.monitor",
		Volume:        Volume{Channels: []uint32{VolumeNorm / 2, VolumeNorm / 2}},
	}
	return &fakeServer{devices: []Device{speakers, headset}, def: headset}
}

func resolveWith(t *testing.T, s *fakeServer, input string) (Device, string) {
	t.Helper()
	var out bytes.Buffer
	got, err := Resolve(s, prompt.NewMenu(strings.NewReader(input), &out, false), nil)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	return got, out.String()
}

func TestResolve_ValidIndex(t *testing.T) {
	s := twoSinks()
	got, out := resolveWith(t, s, "1\n")
	if !reflect.DeepEqual(got, s.devices[0]) {
		t.Fatalf("Resolve() = %#v, want %#v", got, s.devices[0])
	}
	if s.defaultHits != 0 {
		t.Fatalf("default device queried %d times, want 0", s.defaultHits)
	}
	if !strings.Contains(out, "[1] Built-in Audio Analog Stereo, Volume: 100%") {
		t.Fatalf("menu output missing entry:\n%s", out)
	}
	if !strings.Contains(out, "[2] Headset, Volume: 50%") {
		t.Fatalf("menu output missing entry:\n%s", out)
	}
}

func TestResolve_FallsBackToDefault(t *testing.T) {
	tests := []struct {
		name  string
		input string
		msg   string
	}{
		{name: "non-numeric", input: "abc\n", msg: "Invalid input, choosing default audio device"},
		{name: "empty", input: "\n", msg: "Invalid input"},
		{name: "eof", input: "", msg: "Invalid input"},
		{name: "out of range", input: "5\n", msg: "Invalid index, choosing default audio device"},
		{name: "zero", input: "0\n", msg: "Invalid index"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := twoSinks()
			got, out := resolveWith(t, s, tt.input)
			if !reflect.DeepEqual(got, s.def) {
				t.Fatalf("Resolve() = %#v, want default %#v", got, s.def)
			}
			if s.defaultHits != 1 {
				t.Fatalf("default device queried %d times, want 1", s.defaultHits)
			}
			if !strings.Contains(out, tt.msg) {
				t.Fatalf("expected %q in output:\n%s", tt.msg, out)
			}
		})
	}
}

func TestResolve_EmptyListUsesDefault(t *testing.T) {
	s := twoSinks()
	s.devices = nil
	got, _ := resolveWith(t, s, "1\n")
	if !reflect.DeepEqual(got, s.def) {
		t.Fatalf("Resolve() = %#v, want default", got)
	}
}

func TestResolve_Failures(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		s := twoSinks()
		s.listErr = errors.New("connection refused")
		_, err := Resolve(s, prompt.NewMenu(strings.NewReader("1\n"), &bytes.Buffer{}, false), nil)
		if err == nil || !errors.Is(err, s.listErr) {
			t.Fatalf("expected wrapped list error, got %v", err)
		}
	})
	t.Run("no default", func(t *testing.T) {
		s := twoSinks()
		s.defErr = errors.New("no such entity")
		_, err := Resolve(s, prompt.NewMenu(strings.NewReader("x\n"), &bytes.Buffer{}, false), nil)
		if err == nil || !errors.Is(err, s.defErr) {
			t.Fatalf("expected wrapped default error, got %v", err)
		}
	})
}

func TestResolve_ReturnsCopy(t *testing.T) {
	s := twoSinks()
	got, _ := resolveWith(t, s, "2\n")
	got.Volume.Channels[0] = 0
	if s.devices[1].Volume.Channels[0] != VolumeNorm/2 {
		t.Fatal("returned device shares volume storage with the listing")
	}

	again, _ := resolveWith(t, s, "2\n")
	if !reflect.DeepEqual(again, s.devices[1]) {
		t.Fatalf("second run = %#v, want %#v", again, s.devices[1])
	}
}

func TestVolumeString(t *testing.T) {
	tests := []struct {
		vol  Volume
		want string
	}{
		{vol: Volume{}, want: "n/a"},
		{vol: Volume{Channels: []uint32{VolumeNorm}}, want: "100%"},
		{vol: Volume{Channels: []uint32{36045, 36045}}, want: "55%"},
		{vol: Volume{Channels: []uint32{VolumeNorm, VolumeNorm / 4}}, want: "100% / 25%"},
	}
	for _, tt := range tests {
		if got := tt.vol.String(); got != tt.want {
			t.Errorf("Volume(%v).String() = %q, want %q", tt.vol.Channels, got, tt.want)
		}
	}
}

func TestDeviceLabel(t *testing.T) {
	if got := (Device{Index: 7}).Label(); got != "sink #7" {
		t.Fatalf("Label() = %q", got)
	}
	if got := (Device{Name: "null"}).Label(); got != "null" {
		t.Fatalf("Label() = %q", got)
	}
}
