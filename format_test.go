package frame

import "testing"

func TestPixFmtInfo(t *testing.T) {
	tests := []struct {
		fmt      PixFmt
		bpp      int
		channels int
		mono     bool
		bayer    bool
		str      string
	}{
		{PixFmtMono8, 1, 1, true, false, "Mono8"},
		{PixFmtMono16, 2, 1, true, false, "Mono16"},
		{PixFmtRGB8, 3, 3, false, false, "RGB8"},
		{PixFmtBGR8, 3, 3, false, false, "BGR8"},
		{PixFmtRGBA8, 4, 4, false, false, "RGBA8"},
		{PixFmtBayerRG8, 1, 1, false, true, "BayerRG8"},
		{PixFmtBayerGB8, 1, 1, false, true, "BayerGB8"},
		{PixFmtBayerGR8, 1, 1, false, true, "BayerGR8"},
		{PixFmtBayerBG8, 1, 1, false, true, "BayerBG8"},
	}

	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			if !tt.fmt.IsValid() {
				t.Fatalf("IsValid() = false, want true")
			}
			if got := tt.fmt.BytesPerPixel(); got != tt.bpp {
				t.Errorf("BytesPerPixel() = %d, want %d", got, tt.bpp)
			}
			if got := tt.fmt.Channels(); got != tt.channels {
				t.Errorf("Channels() = %d, want %d", got, tt.channels)
			}
			if got := tt.fmt.IsMono(); got != tt.mono {
				t.Errorf("IsMono() = %v, want %v", got, tt.mono)
			}
			if got := tt.fmt.IsBayer(); got != tt.bayer {
				t.Errorf("IsBayer() = %v, want %v", got, tt.bayer)
			}
			if got := tt.fmt.String(); got != tt.str {
				t.Errorf("String() = %q, want %q", got, tt.str)
			}
		})
	}
}

func TestPixFmtInvalid(t *testing.T) {
	f := PixFmt(255)
	if f.IsValid() {
		t.Error("IsValid() = true for unknown format")
	}
	if f.BytesPerPixel() != 0 {
		t.Errorf("BytesPerPixel() = %d, want 0", f.BytesPerPixel())
	}
	if f.String() != "Unknown" {
		t.Errorf("String() = %q, want %q", f.String(), "Unknown")
	}
}

func TestPixFmtMinStride(t *testing.T) {
	tests := []struct {
		fmt   PixFmt
		width int
		want  int
	}{
		{PixFmtMono8, 640, 640},
		{PixFmtMono16, 640, 1280},
		{PixFmtRGB8, 640, 1920},
		{PixFmtRGBA8, 640, 2560},
		{PixFmtBayerRG8, 640, 640},
		{PixFmtMono8, 0, 0},
	}

	for _, tt := range tests {
		if got := tt.fmt.MinStride(tt.width); got != tt.want {
			t.Errorf("%v.MinStride(%d) = %d, want %d", tt.fmt, tt.width, got, tt.want)
		}
	}
}

func TestPixFmtOf(t *testing.T) {
	tests := []struct {
		name string
		got  PixFmt
		want PixFmt
	}{
		{"Mono8", PixFmtOf[Mono8](), PixFmtMono8},
		{"Mono16", PixFmtOf[Mono16](), PixFmtMono16},
		{"RGB8", PixFmtOf[RGB8](), PixFmtRGB8},
		{"BGR8", PixFmtOf[BGR8](), PixFmtBGR8},
		{"RGBA8", PixFmtOf[RGBA8](), PixFmtRGBA8},
		{"BayerRG8", PixFmtOf[BayerRG8](), PixFmtBayerRG8},
		{"BayerGB8", PixFmtOf[BayerGB8](), PixFmtBayerGB8},
		{"BayerGR8", PixFmtOf[BayerGR8](), PixFmtBayerGR8},
		{"BayerBG8", PixFmtOf[BayerBG8](), PixFmtBayerBG8},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("PixFmtOf[%s]() = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}
