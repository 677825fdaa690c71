package database

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Entry is one row of the durable key-value storage. The application uses it
// the way the original demo used browser local storage: a handful of string
// keys, each holding an opaque value.
type Entry struct {
	Key   string `gorm:"primaryKey;size:255"`
	Value string
}

// TableName overrides the default table name
func (Entry) TableName() string {
	return "storage_entries"
}

// KeyValue is the durable key-value storage backing the whole application.
type KeyValue struct {
	db *gorm.DB
}

// NewKeyValue creates a KeyValue store over an initialized gorm connection.
func NewKeyValue(db *gorm.DB) *KeyValue {
	return &KeyValue{db: db}
}

// Get returns the value stored under key and whether the key exists.
func (kv *KeyValue) Get(key string) (string, bool, error) {
	var entry Entry
	err := kv.db.First(&entry, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return entry.Value, true, nil
}

// Set stores value under key, overwriting any previous value.
func (kv *KeyValue) Set(key, value string) error {
	entry := Entry{Key: key, Value: value}
	return kv.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&entry).Error
}

// Delete removes key from storage. Deleting a missing key is not an error.
func (kv *KeyValue) Delete(key string) error {
	return kv.db.Delete(&Entry{}, "key = ?", key).Error
}
