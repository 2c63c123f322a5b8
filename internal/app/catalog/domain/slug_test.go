package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Kampas Rem", "kampas-rem"},
		{"punctuation collapses", "Oli Mesin 10W-40 (1L)", "oli-mesin-10w-40-1l"},
		{"leading and trailing junk", "  Busi NGK!  ", "busi-ngk"},
		{"repeated separators", "A --- B", "a-b"},
		{"digits kept", "Filter Udara K2000", "filter-udara-k2000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}

func TestNumberedSlug(t *testing.T) {
	assert.Equal(t, "kampas-rem-2", NumberedSlug("kampas-rem", 2))
}
