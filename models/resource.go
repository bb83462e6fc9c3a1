package models

const (
	ResourceCategoryNotes     = "notes"
	ResourceCategoryBooks     = "books"
	ResourceCategoryEquipment = "equipment"
)

// Resource is a resource-board entry: notes, books, or equipment.
type Resource struct {
	ID          string   `gorm:"primaryKey;type:uuid" json:"id"`
	Title       string   `gorm:"not null" json:"title"`
	Description string   `json:"description"`
	Category    string   `gorm:"index;not null" json:"category"`
	Author      string   `json:"author,omitempty"`
	Tags        []string `gorm:"serializer:json" json:"tags"`

	// Link points at the resource location: an external URL, or the
	// public URL of an uploaded attachment.
	Link    string `gorm:"default:'#'" json:"link"`
	FileURL string `json:"file_url,omitempty"`

	Timestamps
}
