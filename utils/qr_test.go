package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func TestGenerateQRCode(t *testing.T) {
	raw, err := GenerateQRCode("https://park.example/validate-ticket?code=TICKET-1-2-abcd1234", 256)
	require.NoError(t, err)
	require.Greater(t, len(raw), len(pngSignature))
	assert.Equal(t, pngSignature, raw[:len(pngSignature)])
}

func TestGenerateQRCodeDataURL(t *testing.T) {
	url, err := GenerateQRCodeDataURL("TICKET-1-2-abcd1234", 256)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "data:image/png;base64,"))
	assert.Greater(t, len(url), len("data:image/png;base64,"))
}

func TestGenerateQRCodeEmptyContent(t *testing.T) {
	_, err := GenerateQRCode("", 256)
	assert.Error(t, err)
}
