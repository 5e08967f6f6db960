package fieldcrypt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMask(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		visible int
		want    string
	}{
		{"length equals visible", "1234", 4, "1234"},
		{"shorter than visible", "12", 4, "12"},
		{"empty", "", 4, ""},
		{"card number", "12345678", 4, "****5678"},
		{"default visible", "081234567890", 0, "********7890"},
		{"custom visible", "abcdef", 2, "****ef"},
		{"multibyte", "日本語テキスト", 2, "*****スト"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Mask(tt.in, tt.visible))
		})
	}
}
