package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculate(t *testing.T) {
	cases := []struct {
		name                       string
		page, size                 int
		wantPage, wantOff, wantLim int
	}{
		{"first page", 1, 10, 1, 0, 10},
		{"third page", 3, 10, 3, 20, 10},
		{"zero page", 0, 10, 1, 0, 10},
		{"negative size", 2, -1, 2, DefaultPageSize, DefaultPageSize},
		{"oversized", 1, 1000, 1, 0, DefaultPageSize},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, off, lim := Calculate(tc.page, tc.size)
			assert.Equal(t, tc.wantPage, p)
			assert.Equal(t, tc.wantOff, off)
			assert.Equal(t, tc.wantLim, lim)
		})
	}
}

func TestParseIntDefault(t *testing.T) {
	assert.Equal(t, 7, ParseIntDefault("", 7))
	assert.Equal(t, 7, ParseIntDefault("abc", 7))
	assert.Equal(t, 3, ParseIntDefault("3", 7))
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `50\% off\_x\\y`, EscapeLike(`50% off_x\y`))
}
