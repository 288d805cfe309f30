package fields

import "testing"

func TestInteger(t *testing.T) {
	if got := Integer("05", nil); got != 5 {
		t.Errorf("Integer(05) = %v, want 5", got)
	}
	if got := Integer("abc", nil); got != nil {
		t.Errorf("Integer(abc) = %v, want nil", got)
	}
}

func TestYearRange(t *testing.T) {
	transform := YearRange(1900, 2029)

	tests := []struct {
		input    string
		expected any
	}{
		{"2020", 2020},
		{"1900", 1900},
		{"2029", 2029},
		{"1899", nil},
		{"2030", nil},
		{"20x0", nil},
	}

	for _, tt := range tests {
		if got := transform(tt.input, nil); got != tt.expected {
			t.Errorf("YearRange(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestResolution(t *testing.T) {
	tests := []struct {
		input    string
		expected any
	}{
		{"1080P", "1080p"},
		{"4K", "2160p"},
		{"UHD", "2160p"},
		{"720p", "720p"},
	}

	for _, tt := range tests {
		if got := Resolution(tt.input, nil); got != tt.expected {
			t.Errorf("Resolution(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestCodec(t *testing.T) {
	tests := []struct {
		input    string
		expected any
	}{
		{"x264", "x264"},
		{"H 264", "h264"},
		{"h.265", "h265"},
		{"HEVC", "hevc"},
	}

	for _, tt := range tests {
		if got := Codec(tt.input, nil); got != tt.expected {
			t.Errorf("Codec(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestSource(t *testing.T) {
	tests := []struct {
		input    string
		expected any
	}{
		{"Blu-Ray", "bluray"},
		{"BluRay", "bluray"},
		{"WEBDL", "web-dl"},
		{"WEB-DL", "web-dl"},
		{"TELESYNC", "ts"},
		{"HDTV", "hdtv"},
	}

	for _, tt := range tests {
		if got := Source(tt.input, nil); got != tt.expected {
			t.Errorf("Source(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestChannels(t *testing.T) {
	if got := Channels("5 1", nil); got != "5.1" {
		t.Errorf("Channels(5 1) = %v, want 5.1", got)
	}
	if got := Channels("7.1", nil); got != "7.1" {
		t.Errorf("Channels(7.1) = %v, want 7.1", got)
	}
}
