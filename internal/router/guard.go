package router

import (
	"github.com/jjankovic/site/internal/constants"
	"github.com/jjankovic/site/internal/document"
)

// notFoundDocumentTitle is shown for any unmatched path.
const notFoundDocumentTitle = "404 | Page not found"

// ScrollPosition is a page scroll offset in pixels.
type ScrollPosition struct {
	Left int `json:"left"`
	Top  int `json:"top"`
}

// Event describes one navigation. Saved is nil unless the target history
// entry had a recorded scroll offset.
type Event struct {
	To    Descriptor
	From  *Descriptor
	Saved *ScrollPosition
}

// Guard runs before a navigation is committed. It cannot cancel or redirect.
type Guard func(Event)

// FormatTitle derives the document title from a route's title metadata.
func FormatTitle(meta string) string {
	switch {
	case meta == NotFoundTitle:
		return notFoundDocumentTitle
	case meta != "":
		return meta + " | " + constants.SiteOwnerName
	default:
		return constants.SiteOwnerName
	}
}

// TitleGuard keeps the title of doc in sync with the navigation target.
func TitleGuard(doc document.Document) Guard {
	return func(e Event) {
		doc.SetTitle(FormatTitle(e.To.Title))
	}
}

// ScrollFor restores a saved offset, otherwise scrolls to the top.
func ScrollFor(e Event) ScrollPosition {
	if e.Saved != nil {
		return *e.Saved
	}
	return ScrollPosition{}
}
