package api

import (
	"bytes"
	"errors"
	"image/png"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/youruser/imagegen/internal/compositor"
	imagepkg "github.com/youruser/imagegen/internal/image"
	"github.com/youruser/imagegen/internal/job"
)

// Handlers serves the compositing endpoints. The compose endpoint accepts the
// same job descriptor JSON as the CLI and returns the result as PNG instead
// of writing it to disk.
type Handlers struct {
	comp *compositor.Compositor
}

func NewHandlers(comp *compositor.Compositor) *Handlers {
	return &Handlers{comp: comp}
}

func (h *Handlers) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handlers) compose(c *gin.Context) {
	var j job.Job
	if err := c.BindJSON(&j); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := j.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	img, err := h.comp.Compose(c.Request.Context(), &j)
	if err != nil {
		status := http.StatusInternalServerError
		var fe *imagepkg.FetchError
		if errors.As(err, &fe) {
			status = http.StatusBadGateway
		}
		log.Error().Err(err).Str("template_url", j.TemplateURL).Msg("compose failed")
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	buf := new(bytes.Buffer)
	if err := png.Encode(buf, img); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

// qr returns a PNG of a QR code for the "text" query param.
func (h *Handlers) qr(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text query param is required"})
		return
	}
	size := imagepkg.QRBadgeSize
	if s := c.Query("size"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			size = v
		}
	}
	b, err := imagepkg.QRPNG(text, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}
