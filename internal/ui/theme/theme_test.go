package theme

import (
	"image/color"
	"testing"
)

func TestSeverityColor(t *testing.T) {
	tests := []struct {
		name string
		want color.Color
	}{
		{"green", Success},
		{"yellow", Warning},
		{"orange", Caution},
		{"red", Error},
		{"purple", TextDim},
		{"", TextDim},
	}
	for _, tt := range tests {
		if got := SeverityColor(tt.name); got != tt.want {
			t.Errorf("SeverityColor(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
