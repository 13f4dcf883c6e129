package kv

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Entry is the row shape of the key-value table.
type Entry struct {
	Key   string `gorm:"column:kv_key;primaryKey;size:255"`
	Value []byte `gorm:"column:kv_value;type:longblob"`
}

func (Entry) TableName() string { return "kv_entries" }

// MySQL is a Store backed by a single MySQL table through gorm.
type MySQL struct {
	db *gorm.DB
}

func NewMySQL(db *gorm.DB) (*MySQL, error) {
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, fmt.Errorf("migrate kv table: %w", err)
	}
	return &MySQL{db: db}, nil
}

func (s *MySQL) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var e Entry
	err := s.db.WithContext(ctx).Where("kv_key = ?", key).First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("kv get: %w", err)
	}
	return e.Value, true, nil
}

func (s *MySQL) Set(ctx context.Context, key string, value []byte) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "kv_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"kv_value"}),
	}).Create(&Entry{Key: key, Value: value}).Error
	if err != nil {
		return fmt.Errorf("kv set: %w", err)
	}
	return nil
}

func (s *MySQL) Delete(ctx context.Context, key string) error {
	if err := s.db.WithContext(ctx).Delete(&Entry{}, "kv_key = ?", key).Error; err != nil {
		return fmt.Errorf("kv delete: %w", err)
	}
	return nil
}

func (s *MySQL) ScanPrefix(ctx context.Context, prefix string) ([][]byte, error) {
	var rows []Entry
	err := s.db.WithContext(ctx).
		Where("kv_key LIKE ?", prefix+"%").
		Order("kv_key").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("kv scan %q: %w", prefix, err)
	}
	values := make([][]byte, 0, len(rows))
	for _, r := range rows {
		values = append(values, r.Value)
	}
	return values, nil
}
