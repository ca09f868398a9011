package config

import (
	"fmt"
	"strings"
	"time"
)

const (
	PickerMenu   = "menu"
	PickerSelect = "select"

	NamePolicySelf       = "self"
	NamePolicyDescendant = "descendant"
)

// Config holds the application configuration.
type Config struct {
	FFmpegPath      string `yaml:"ffmpeg_path"`
	OutputDir       string `yaml:"output_dir"`
	TimestampFormat string `yaml:"timestamp_format"` // Go time layout
	Container       string `yaml:"container"`
	Framerate       int    `yaml:"framerate"`
	Duration        int    `yaml:"duration"` // seconds, 0 = until interrupted
	HWAccel         bool   `yaml:"hwaccel"`
	VideoCodec      string `yaml:"video_codec,omitempty"`
	VideoCodecHW    string `yaml:"video_codec_hw"`
	AudioChannels   int    `yaml:"audio_channels"`

	Display    string `yaml:"display,omitempty"`
	XAuthority string `yaml:"xauthority,omitempty"`

	Picker            string `yaml:"picker"`
	NamePolicy        string `yaml:"name_policy"`
	NetWMNameFallback bool   `yaml:"net_wm_name_fallback"`

	LogLevel string `yaml:"log_level"`
}

func DefaultConfig() *Config {
	return &Config{
		FFmpegPath:        "ffmpeg",
		OutputDir:         "./Recordings",
		TimestampFormat:   "01-02-15_04_05", // %m-%d-%H_%M_%S
		Container:         "mp4",
		Framerate:         60,
		HWAccel:           false,
		VideoCodecHW:      "h264_nvenc",
		AudioChannels:     2,
		Picker:            PickerMenu,
		NamePolicy:        NamePolicySelf,
		NetWMNameFallback: true,
		LogLevel:          "info",
	}
}

// ValidationError reports an invalid config value, with the file position of
// the offending key when it came from a file.
type ValidationError struct {
	Path   string
	Source Source
	Err    error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Source.File != "" && e.Source.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s: %v", e.Source.File, e.Source.Line, e.Source.Column, e.Path, e.Err)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.FFmpegPath) == "" {
		return &ValidationError{Path: "ffmpeg_path", Err: fmt.Errorf("ffmpeg_path is required")}
	}
	if strings.TrimSpace(c.OutputDir) == "" {
		return &ValidationError{Path: "output_dir", Err: fmt.Errorf("output_dir is required")}
	}
	if strings.TrimSpace(c.TimestampFormat) == "" {
		return &ValidationError{Path: "timestamp_format", Err: fmt.Errorf("timestamp_format is required")}
	}
	// A layout without any time fields would make every recording collide.
	ref := time.Date(2001, 2, 3, 4, 5, 6, 0, time.UTC)
	if ref.Format(c.TimestampFormat) == c.TimestampFormat {
		return &ValidationError{Path: "timestamp_format", Err: fmt.Errorf("timestamp_format %q contains no time fields", c.TimestampFormat)}
	}
	if strings.ContainsAny(c.TimestampFormat, "/\\") {
		return &ValidationError{Path: "timestamp_format", Err: fmt.Errorf("timestamp_format must not contain path separators")}
	}
	if c.Container == "" || strings.ContainsAny(c.Container, "./\\ ") {
		return &ValidationError{Path: "container", Err: fmt.Errorf("container must be a bare extension such as mp4 or mkv")}
	}
	if c.Framerate <= 0 || c.Framerate > 240 {
		return &ValidationError{Path: "framerate", Err: fmt.Errorf("framerate must be between 1 and 240")}
	}
	if c.Duration < 0 {
		return &ValidationError{Path: "duration", Err: fmt.Errorf("duration must be >= 0")}
	}
	if c.HWAccel && strings.TrimSpace(c.VideoCodecHW) == "" {
		return &ValidationError{Path: "video_codec_hw", Err: fmt.Errorf("video_codec_hw is required when hwaccel is enabled")}
	}
	if c.AudioChannels < 1 || c.AudioChannels > 8 {
		return &ValidationError{Path: "audio_channels", Err: fmt.Errorf("audio_channels must be between 1 and 8")}
	}
	switch c.Picker {
	case PickerMenu, PickerSelect:
	default:
		return &ValidationError{Path: "picker", Err: fmt.Errorf("picker must be one of: menu, select")}
	}
	switch c.NamePolicy {
	case NamePolicySelf, NamePolicyDescendant:
	default:
		return &ValidationError{Path: "name_policy", Err: fmt.Errorf("name_policy must be one of: self, descendant")}
	}
	if c.LogLevel != "debug" && c.LogLevel != "info" && c.LogLevel != "warning" && c.LogLevel != "error" {
		return &ValidationError{Path: "log_level", Err: fmt.Errorf("log_level must be one of: debug, info, warning, error")}
	}
	return nil
}

// VideoCodecName returns the encoder to request, or "" for ffmpeg's default.
func (c *Config) VideoCodecName() string {
	if c.HWAccel {
		return c.VideoCodecHW
	}
	return c.VideoCodec
}

// RecordDuration returns the configured capture length; zero means unlimited.
func (c *Config) RecordDuration() time.Duration {
	return time.Duration(c.Duration) * time.Second
}
