package reselect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPositionCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b Position
		want int
	}{
		{"equal", At(1, 2), At(1, 2), 0},
		{"row before", At(0, 1), At(0, 3), -1},
		{"row after", At(0, 3), At(0, 1), 1},
		{"section dominates row", At(0, 9), At(1, 0), -1},
		{"later section", At(2, 0), At(1, 7), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Compare(tt.b))
			assert.Equal(t, tt.want < 0, tt.a.Before(tt.b))
		})
	}
}

func TestPositionString(t *testing.T) {
	assert.Equal(t, "(1,4)", At(1, 4).String())
}

func TestScrollPositionString(t *testing.T) {
	assert.Equal(t, "bottom", ScrollBottom.String())
	assert.Equal(t, "none", ScrollNone.String())
	assert.Equal(t, "unknown", ScrollPosition(42).String())
}
