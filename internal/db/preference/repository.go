package preference

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	GetPreference(ctx context.Context, name string) (string, bool, error)
	SavePreference(ctx context.Context, name, value string) error
}

type PreferenceSQLRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &PreferenceSQLRepository{db: db}
}

func (r *PreferenceSQLRepository) GetPreference(ctx context.Context, name string) (string, bool, error) {
	var pref Preference
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&pref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return pref.Value, true, nil
}

// SavePreference inserts the value or overwrites the existing one.
func (r *PreferenceSQLRepository) SavePreference(ctx context.Context, name, value string) error {
	pref := Preference{
		Name:      name,
		Value:     value,
		UpdatedAt: time.Now(),
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&pref).Error
}
