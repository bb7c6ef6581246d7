package enums

// MediaStatus tracks the upload-then-commit lifecycle of a stored asset.
// Uploads start pending, become attached once an entity persists their URL,
// and fall back to detached when that reference is removed or replaced.
type MediaStatus string

const (
	MediaStatusPending  MediaStatus = "pending"
	MediaStatusAttached MediaStatus = "attached"
	MediaStatusDetached MediaStatus = "detached"
)

func (s MediaStatus) IsValid() bool {
	switch s {
	case MediaStatusPending, MediaStatusAttached, MediaStatusDetached:
		return true
	}
	return false
}

func (s MediaStatus) String() string { return string(s) }
