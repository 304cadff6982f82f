package postgres

import (
	"context"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	"github.com/goccy/go-json"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type kvStore struct {
	db     *gorm.DB
	prefix string
}

// NewKVStore migrates the kv_entries table and returns a KeyValueStore over it.
// The connection itself is closed by the lifecycle hook registered in New.
func NewKVStore(ctx context.Context, db *gorm.DB, prefix string) (repository.KeyValueStore, error) {
	if err := db.WithContext(ctx).AutoMigrate(&model.KVEntryModel{}); err != nil {
		return nil, errors.Wrap(err, "failed to migrate kv_entries")
	}

	return &kvStore{db: db, prefix: prefix}, nil
}

func (s *kvStore) Load(ctx context.Context, key string, out any) error {
	var entry model.KVEntryModel
	err := s.db.WithContext(ctx).
		Where("key = ?", s.prefix+key).
		Take(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repository.ErrKeyNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "read key "+key)
	}

	if err := json.Unmarshal(entry.Value, out); err != nil {
		return errors.Wrapf(err, "failed to decode key %s", key)
	}

	return nil
}

func (s *kvStore) Save(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "failed to encode key %s", key)
	}

	entry := model.KVEntryModel{
		Key:   s.prefix + key,
		Value: data,
	}

	err = s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&entry).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "write key "+key)
	}

	return nil
}

func (s *kvStore) Delete(ctx context.Context, key string) error {
	err := s.db.WithContext(ctx).
		Where("key = ?", s.prefix+key).
		Delete(&model.KVEntryModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "delete key "+key)
	}

	return nil
}

func (s *kvStore) Close() error {
	return nil
}
