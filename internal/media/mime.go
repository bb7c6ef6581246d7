package media

import (
	"fmt"
	"strings"

	"github.com/mlefevre-dev/vitrine-backend/pkg/enums"
)

var (
	imageMimes = []string{"image/jpeg", "image/png", "image/webp", "image/gif"}
	videoMimes = []string{"video/mp4", "video/webm"}
)

// allowedMimesByKind is the per-kind allow-list applied to the sniffed
// content type, never to the client-declared one.
var allowedMimesByKind = map[enums.MediaKind][]string{
	enums.MediaKindCarousel:  imageMimes,
	enums.MediaKindTeam:      imageMimes,
	enums.MediaKindShop:      imageMimes,
	enums.MediaKindProduct:   imageMimes,
	enums.MediaKindValue:     imageMimes,
	enums.MediaKindAbout:     imageMimes,
	enums.MediaKindPublicite: append(append([]string{}, imageMimes...), videoMimes...),
	enums.MediaKindOther:     append(append([]string{}, imageMimes...), videoMimes...),
}

func isAllowedMime(kind enums.MediaKind, mimeType string) bool {
	allowed, ok := allowedMimesByKind[kind]
	if !ok {
		return false
	}
	for _, candidate := range allowed {
		if strings.EqualFold(candidate, mimeType) {
			return true
		}
	}
	return false
}

func allowedMimeDescription(kind enums.MediaKind) string {
	allowed, ok := allowedMimesByKind[kind]
	if !ok || len(allowed) == 0 {
		return "the approved mime types"
	}
	return fmt.Sprintf("one of %s", strings.Join(allowed, ", "))
}
