package boggle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTile(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"a", "A"},
		{"Z", "Z"},
		{"qu", "QU"},
		{"Qu", "QU"},
		{"st", "ST"},
		{"th", "TH"},
		{"é", "É"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTile(tt.in))
		})
	}
}
