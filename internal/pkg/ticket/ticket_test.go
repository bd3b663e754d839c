package ticket

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckInURL(t *testing.T) {
	assert.Equal(t, "https://campus.example/activities/4/check-in?user=9", CheckInURL("https://campus.example/", 4, 9))
	assert.Equal(t, "http://localhost:5173/activities/1/check-in?user=2", CheckInURL("http://localhost:5173", 1, 2))
}

func TestPNG(t *testing.T) {
	data, err := PNG(CheckInURL("https://campus.example", 4, 9))
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Greater(t, img.Bounds().Dx(), 0)
	assert.Equal(t, img.Bounds().Dx(), img.Bounds().Dy())
}
