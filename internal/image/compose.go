package imagepkg

import (
	"image"

	"github.com/disintegration/imaging"
)

// Placement of the user image on the template, in pixels from the top-left.
const (
	UserImageSize    = 250
	UserImageOffsetX = 40
	UserImageOffsetY = 40
)

// ComposeUserImage stretches the user image to exactly 250x250 (aspect ratio
// is not preserved) and pastes it onto the template at (40,40), using the
// user image's alpha channel as the mask: fully transparent pixels leave the
// template untouched, opaque ones replace it. Any part of the paste region
// that falls outside the template is clipped silently.
func ComposeUserImage(template *image.NRGBA, user image.Image) *image.NRGBA {
	resized := imaging.Resize(user, UserImageSize, UserImageSize, imaging.Lanczos)
	return imaging.Overlay(template, resized, image.Pt(UserImageOffsetX, UserImageOffsetY), 1.0)
}
