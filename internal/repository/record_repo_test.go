package repository

import (
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/goldengen/backend/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db error: %v", err)
	}
	if err := db.AutoMigrate(&model.GenerationRecord{}); err != nil {
		t.Fatalf("migrate error: %v", err)
	}
	return db
}

func TestGenerationRecordRepositoryCRUD(t *testing.T) {
	repo := NewGenerationRecordRepository(newTestDB(t))

	record := &model.GenerationRecord{
		Mode:        model.ModeStyling,
		Summary:     "diagnosing symptoms",
		GoldenCount: 3,
		Filename:    "synthetic_data.json",
		Export:      `[{"input":"q1"}]`,
	}
	if err := repo.Create(record); err != nil {
		t.Fatalf("create error: %v", err)
	}
	if record.ID == 0 {
		t.Fatal("expected id assigned")
	}

	got, err := repo.Get(record.ID)
	if err != nil {
		t.Fatalf("get error: %v", err)
	}
	if got.Export != record.Export || got.Mode != model.ModeStyling {
		t.Fatalf("unexpected record: %+v", got)
	}

	if err := repo.Delete(record.ID); err != nil {
		t.Fatalf("delete error: %v", err)
	}
	if _, err := repo.Get(record.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestGenerationRecordRepositoryListOmitsExport(t *testing.T) {
	repo := NewGenerationRecordRepository(newTestDB(t))

	for _, mode := range []string{model.ModeStyling, model.ModeDocuments} {
		if err := repo.Create(&model.GenerationRecord{Mode: mode, Export: "[]"}); err != nil {
			t.Fatalf("create error: %v", err)
		}
	}

	records, err := repo.List()
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	for _, r := range records {
		// 列表查询不加载导出内容
		if r.Export != "" {
			t.Fatalf("list must omit export blob: %+v", r)
		}
	}
}

func TestGenerationRecordRepositoryGetMissing(t *testing.T) {
	repo := NewGenerationRecordRepository(newTestDB(t))
	if _, err := repo.Get(42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
