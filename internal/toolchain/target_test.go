package toolchain

import "testing"

func TestTriple(t *testing.T) {
	tests := []struct {
		goos, goarch string
		want         string
	}{
		{"linux", "amd64", "x86_64-unknown-linux-gnu"},
		{"linux", "arm64", "aarch64-unknown-linux-gnu"},
		{"darwin", "amd64", "x86_64-apple-darwin"},
		{"darwin", "arm64", "arm64-apple-darwin"},
		{"windows", "amd64", "x86_64-pc-windows-msvc"},
		{"windows", "arm64", "aarch64-pc-windows-msvc"},
	}
	for _, tt := range tests {
		got, err := Triple(tt.goos, tt.goarch)
		if err != nil {
			t.Errorf("Triple(%s, %s): %v", tt.goos, tt.goarch, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Triple(%s, %s) = %s, want %s", tt.goos, tt.goarch, got, tt.want)
		}
	}
}

func TestTripleUnsupported(t *testing.T) {
	for _, p := range [][2]string{{"linux", "386"}, {"plan9", "amd64"}, {"freebsd", "arm64"}} {
		if _, err := Triple(p[0], p[1]); err == nil {
			t.Errorf("Triple(%s, %s) succeeded, want error", p[0], p[1])
		}
	}
}
