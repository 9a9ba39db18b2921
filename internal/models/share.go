package models

import "github.com/julianstephens/nila/internal/constants"

// ShareItem is one element of a share payload: either text or a PNG image.
type ShareItem struct {
	Kind  constants.ShareKind
	Text  string
	Image []byte
}

// TextItem wraps a phrase for sharing.
func TextItem(text string) ShareItem {
	return ShareItem{Kind: constants.ShareKindText, Text: text}
}

// ImageItem wraps an encoded PNG for sharing.
func ImageItem(png []byte) ShareItem {
	return ShareItem{Kind: constants.ShareKindImage, Image: png}
}

// IsText reports whether the item carries text.
func (i ShareItem) IsText() bool { return i.Kind == constants.ShareKindText }

// IsImage reports whether the item carries an image.
func (i ShareItem) IsImage() bool { return i.Kind == constants.ShareKindImage }
