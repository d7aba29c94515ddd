package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Hello World", "hello-world"},
		{"Hello, World!", "hello-world"},
		{"  Leading and trailing  ", "leading-and-trailing"},
		{"Multiple---Hyphens", "multiple-hyphens"},
		{"Already-a-slug", "already-a-slug"},
		{"Numbers 123 too", "numbers-123-too"},
		{"UPPER case", "upper-case"},
		{"", ""},
		{"!!!", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GenerateSlug(tt.input), "input %q", tt.input)
	}
}

func TestUnderscore(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Title", "title"},
		{"CategoryID", "category_i_d"},
		{"FeaturedImageURL", "featured_image_u_r_l"},
		{"name", "name"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Underscore(tt.input), "input %q", tt.input)
	}
}
