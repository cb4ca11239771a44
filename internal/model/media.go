package model

import "time"

// MediaCategory is the kind of entity an uploaded file belongs to.
type MediaCategory string

const (
	MediaCategoryCourse                MediaCategory = "course"
	MediaCategoryModule                MediaCategory = "module"
	MediaCategoryLesson                MediaCategory = "lesson"
	MediaCategoryLessonMedia           MediaCategory = "lessonMedia"
	MediaCategoryLessonAssociatedMedia MediaCategory = "lessonAssociatedMedia"
)

// ValidMediaCategory reports whether c is a known media category.
func ValidMediaCategory(c MediaCategory) bool {
	switch c {
	case MediaCategoryCourse, MediaCategoryModule, MediaCategoryLesson,
		MediaCategoryLessonMedia, MediaCategoryLessonAssociatedMedia:
		return true
	}
	return false
}

// StorageBackend identifies where a media object's bytes live.
type StorageBackend string

const (
	StorageBackendLocal StorageBackend = "local"
	StorageBackendCloud StorageBackend = "cloud"
)

// Media represents an uploaded file attached to a catalog entity.
type Media struct {
	ID          string         `json:"id"`
	OrgID       string         `json:"orgId"`
	Category    MediaCategory  `json:"category"`
	EntityID    string         `json:"entityId"`
	Filename    string         `json:"filename"`
	StoragePath string         `json:"storagePath"`
	Backend     StorageBackend `json:"backend"`
	Size        int64          `json:"size"`
	ContentType string         `json:"contentType"`
	CreatedAt   time.Time      `json:"createdAt"`
}
