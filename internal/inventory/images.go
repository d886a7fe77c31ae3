package inventory

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/yahna8/store-and-inventory-microservice/internal/domain"
)

var imageFallbacks = []struct {
	keyword string
	image   string
}{
	{"cat", domain.ImageCat},
	{"dog", domain.ImageDog},
}

// DefaultImageFor picks a stock image from keywords in the item name
func DefaultImageFor(name string) string {
	folded := cases.Fold().String(name)
	for _, fb := range imageFallbacks {
		if strings.Contains(folded, fb.keyword) {
			return fb.image
		}
	}
	return domain.ImageDefault
}

// WithImageFallback fills an empty image at read time. Stored rows are not changed.
func WithImageFallback(item domain.CatalogItem) domain.CatalogItem {
	if strings.TrimSpace(item.Image) == "" {
		item.Image = DefaultImageFor(item.Name)
	}
	return item
}
