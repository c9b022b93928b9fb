package repository

import (
	"errors"

	"github.com/goldengen/backend/internal/model"
	"gorm.io/gorm"
)

type generationRecordRepository struct {
	db *gorm.DB
}

func NewGenerationRecordRepository(db *gorm.DB) GenerationRecordRepository {
	return &generationRecordRepository{db: db}
}

func (r *generationRecordRepository) Create(record *model.GenerationRecord) error {
	return r.db.Create(record).Error
}

func (r *generationRecordRepository) List() ([]model.GenerationRecord, error) {
	var records []model.GenerationRecord
	err := r.db.Order("created_at DESC").
		Omit("export").
		Find(&records).Error
	return records, err
}

func (r *generationRecordRepository) Get(id uint) (*model.GenerationRecord, error) {
	var record model.GenerationRecord
	err := r.db.First(&record, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (r *generationRecordRepository) Delete(id uint) error {
	return r.db.Delete(&model.GenerationRecord{}, id).Error
}
