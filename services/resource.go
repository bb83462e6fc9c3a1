package services

import (
	"mime/multipart"
	"path/filepath"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"skill-garden/models"
	"skill-garden/utils"
)

type ResourceService struct {
	DB *gorm.DB

	// Storage is nil when no object storage is configured; resources
	// then carry plain links only.
	Storage *utils.ObjectStorage
}

func NewResourceService(db *gorm.DB, storage *utils.ObjectStorage) *ResourceService {
	return &ResourceService{DB: db, Storage: storage}
}

type CreateResourceInput struct {
	Title       string
	Description string
	Category    string
	Author      string
	Tags        []string
	Link        string
}

// CreateResource stores resource metadata; an optional attachment is
// uploaded to object storage and its public URL recorded.
func (s *ResourceService) CreateResource(in CreateResourceInput, file *multipart.FileHeader) (*models.Resource, error) {
	r := &models.Resource{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Author:      in.Author,
		Tags:        in.Tags,
		Link:        in.Link,
	}
	if r.Link == "" {
		r.Link = "#"
	}

	if file != nil && s.Storage != nil {
		ext := filepath.Ext(file.Filename)
		key := "resources/" + uuid.NewString() + ext
		url, err := s.Storage.Upload(file, key)
		if err != nil {
			return nil, err
		}
		r.FileURL = url
		if in.Link == "" {
			r.Link = url
		}
	}

	if err := s.DB.Create(r).Error; err != nil {
		return nil, err
	}
	return r, nil
}

func (s *ResourceService) ListResources(category string) ([]models.Resource, error) {
	var resources []models.Resource
	q := s.DB.Order("created_at DESC")
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if err := q.Find(&resources).Error; err != nil {
		return nil, err
	}
	return resources, nil
}
