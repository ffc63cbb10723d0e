package slug

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/huelladelcaminante/huella-api/internal/models"
)

// GormCounter implements Counter against the artists and events tables.
type GormCounter struct {
	DB *gorm.DB
}

func (g GormCounter) CountBySlug(kind Kind, slugValue string, excludeID *uuid.UUID) (int64, error) {
	var model interface{}
	switch kind {
	case KindEvent:
		model = &models.Event{}
	default:
		model = &models.Artist{}
	}

	// Unscoped: soft-deleted rows still occupy their slug in the unique index.
	query := g.DB.Unscoped().Model(model).Where("slug = ?", slugValue)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}

	var count int64
	err := query.Count(&count).Error
	return count, err
}

// Assign slugifies name and resolves it to a slug that is free in the kind's
// namespace, checking against the database.
func Assign(db *gorm.DB, name string, kind Kind, excludeID *uuid.UUID) (string, error) {
	return Ensure(GormCounter{DB: db}, Make(name), kind, excludeID)
}
