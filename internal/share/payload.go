// Package share builds share payloads for a phrase and hands them to the
// terminal's share boundary: the system clipboard and a PNG on disk.
package share

import (
	"github.com/julianstephens/nila/internal/logger"
	"github.com/julianstephens/nila/internal/models"
)

// Renderer turns a phrase into encoded image bytes.
type Renderer interface {
	Render(phrase string, density float64) ([]byte, error)
}

// Payload is an ordered list of share items. The text item is always first.
type Payload []models.ShareItem

// BuildPayload returns the phrase as text plus, when rendering succeeds, a
// card image. Render failures are logged and yield a text-only payload.
func BuildPayload(phrase string, density float64, renderer Renderer) Payload {
	payload := Payload{models.TextItem(phrase)}
	if renderer == nil {
		return payload
	}

	img, err := renderer.Render(phrase, density)
	if err != nil {
		logger.Debug("Share card render failed, sharing text only", "error", err)
		return payload
	}
	if len(img) == 0 {
		return payload
	}
	return append(payload, models.ImageItem(img))
}

// Text returns the text of the first text item.
func (p Payload) Text() string {
	for _, item := range p {
		if item.IsText() {
			return item.Text
		}
	}
	return ""
}

// Image returns the first image item's bytes, if any.
func (p Payload) Image() ([]byte, bool) {
	for _, item := range p {
		if item.IsImage() {
			return item.Image, true
		}
	}
	return nil, false
}
