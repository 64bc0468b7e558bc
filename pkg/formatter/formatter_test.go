package formatter_test

import (
	"testing"

	"github.com/orgball2608/insta-virality-exporter/pkg/formatter"
	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-1234567, "-1,234,567"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatter.FormatNumber(tt.in))
	}
}

func TestFormatSigned(t *testing.T) {
	assert.Equal(t, "+120", formatter.FormatSigned(120))
	assert.Equal(t, "+0", formatter.FormatSigned(0))
	assert.Equal(t, "-10", formatter.FormatSigned(-10))
	assert.Equal(t, "+1,200", formatter.FormatSigned(1200))
}

func TestEscapeMarkdownV2(t *testing.T) {
	assert.Equal(t, `nat\.geo\_2`, formatter.EscapeMarkdownV2("nat.geo_2"))
	assert.Equal(t, "plain", formatter.EscapeMarkdownV2("plain"))
}
