package imagepkg

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red  = color.NRGBA{R: 255, A: 255}
	blue = color.NRGBA{B: 255, A: 255}
)

func TestComposeUserImageOpaque(t *testing.T) {
	template := solid(400, 400, red)
	user := solid(10, 10, blue)

	out := ComposeUserImage(template, user)

	// Paste region covers (40,40)-(290,290).
	assert.Equal(t, blue, out.NRGBAAt(40, 40))
	assert.Equal(t, blue, out.NRGBAAt(165, 165))
	assert.Equal(t, blue, out.NRGBAAt(289, 289))

	// Everything outside is untouched template.
	assert.Equal(t, red, out.NRGBAAt(39, 39))
	assert.Equal(t, red, out.NRGBAAt(290, 290))
	assert.Equal(t, red, out.NRGBAAt(0, 0))
	assert.Equal(t, red, out.NRGBAAt(399, 399))
}

func TestComposeUserImageHardStretch(t *testing.T) {
	template := solid(400, 400, red)
	// Wide user image: the resize must not preserve aspect ratio.
	user := solid(100, 10, blue)

	out := ComposeUserImage(template, user)

	assert.Equal(t, blue, out.NRGBAAt(40+UserImageSize-1, 40+UserImageSize-1))
	assert.Equal(t, red, out.NRGBAAt(40+UserImageSize, 40+UserImageSize))
}

func TestComposeUserImageTransparentMask(t *testing.T) {
	template := solid(400, 400, red)
	user := solid(10, 10, color.NRGBA{B: 255, A: 0})

	out := ComposeUserImage(template, user)

	// Fully transparent foreground pixels leave the template untouched.
	assert.Equal(t, red, out.NRGBAAt(40, 40))
	assert.Equal(t, red, out.NRGBAAt(165, 165))
	assert.Equal(t, red, out.NRGBAAt(289, 289))
}

func TestComposeUserImageClipsAtEdges(t *testing.T) {
	// Template smaller than the paste region: the overflow clips silently.
	template := solid(100, 100, red)
	user := solid(10, 10, blue)

	out := ComposeUserImage(template, user)

	assert.Equal(t, 100, out.Bounds().Dx())
	assert.Equal(t, 100, out.Bounds().Dy())
	assert.Equal(t, blue, out.NRGBAAt(50, 50))
	assert.Equal(t, blue, out.NRGBAAt(99, 99))
	assert.Equal(t, red, out.NRGBAAt(39, 39))
}

func TestOverlayQR(t *testing.T) {
	template := solid(400, 400, red)

	out, err := OverlayQR(template, "https://example.com/share/123")
	require.NoError(t, err)

	// Badge sits at (160,160)-(360,360); its quiet zone is white.
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, out.NRGBAAt(163, 163))
	// Outside the badge the template is untouched.
	assert.Equal(t, red, out.NRGBAAt(100, 100))
	assert.Equal(t, red, out.NRGBAAt(380, 380))
}
