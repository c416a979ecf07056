package compositor

import (
	"context"
	"image"
	"net/http"

	imagepkg "github.com/youruser/imagegen/internal/image"
	"github.com/youruser/imagegen/internal/job"
)

// Compositor executes compositing jobs as a strictly sequential pipeline:
// fetch the template, then paste the optional user image, then the optional
// QR badge, then save.
type Compositor struct {
	client *http.Client
}

func New(client *http.Client) *Compositor {
	if client == nil {
		client = imagepkg.DefaultClient
	}
	return &Compositor{client: client}
}

// Compose resolves the job's images and returns the composited result. The
// template is always fetched over HTTP; the user image may also be a local
// path.
func (c *Compositor) Compose(ctx context.Context, j *job.Job) (*image.NRGBA, error) {
	if err := j.Validate(); err != nil {
		return nil, err
	}

	canvas, err := imagepkg.Fetch(ctx, c.client, j.TemplateURL)
	if err != nil {
		return nil, err
	}

	if j.UserImagePath != "" {
		user, err := imagepkg.Resolve(ctx, c.client, j.UserImagePath)
		if err != nil {
			return nil, err
		}
		canvas = imagepkg.ComposeUserImage(canvas, user)
	}

	if j.QRText != "" {
		canvas, err = imagepkg.OverlayQR(canvas, j.QRText)
		if err != nil {
			return nil, err
		}
	}

	return canvas, nil
}

// Run composes the job and writes the result to outputPath. The output format
// is checked up front, and the file is only written once the whole composite
// succeeded, so a failed run leaves no output behind.
func (c *Compositor) Run(ctx context.Context, j *job.Job, outputPath string) error {
	if _, err := imagepkg.Format(outputPath); err != nil {
		return err
	}
	img, err := c.Compose(ctx, j)
	if err != nil {
		return err
	}
	return imagepkg.Save(img, outputPath)
}
