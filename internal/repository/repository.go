package repository

import (
	"errors"

	"github.com/goldengen/backend/internal/model"
)

// ErrNotFound 记录不存在错误
var ErrNotFound = errors.New("record not found")

type GenerationRecordRepository interface {
	Create(record *model.GenerationRecord) error
	List() ([]model.GenerationRecord, error)
	Get(id uint) (*model.GenerationRecord, error)
	Delete(id uint) error
}
