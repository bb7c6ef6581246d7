package enums

// MediaKind routes an upload to its storage sub-path and MIME allow-list.
type MediaKind string

const (
	MediaKindCarousel  MediaKind = "carousel"
	MediaKindTeam      MediaKind = "team"
	MediaKindShop      MediaKind = "shop"
	MediaKindProduct   MediaKind = "product"
	MediaKindValue     MediaKind = "value"
	MediaKindAbout     MediaKind = "about"
	MediaKindPublicite MediaKind = "publicite"
	MediaKindOther     MediaKind = "other"
)

var validMediaKinds = map[MediaKind]struct{}{
	MediaKindCarousel:  {},
	MediaKindTeam:      {},
	MediaKindShop:      {},
	MediaKindProduct:   {},
	MediaKindValue:     {},
	MediaKindAbout:     {},
	MediaKindPublicite: {},
	MediaKindOther:     {},
}

func (k MediaKind) IsValid() bool {
	_, ok := validMediaKinds[k]
	return ok
}

func (k MediaKind) String() string { return string(k) }
