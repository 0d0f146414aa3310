package cache

import (
	"time"

	"gorm.io/gorm"
)

// Entry is the cache table row.
type Entry struct {
	Key       string `gorm:"primaryKey"`
	Value     []byte
	CreatedAt time.Time
	ExpiresAt time.Time `gorm:"index"`
}

// DB is a Store backed by a gorm-managed table, so cached upstream responses
// survive process restarts when pointed at a file-based sqlite database.
type DB struct {
	db *gorm.DB
}

// NewDB migrates the cache table and returns a database-backed store.
func NewDB(db *gorm.DB) (*DB, error) {
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, err
	}
	return &DB{db: db}, nil
}

// Get implements Store.
func (d *DB) Get(key string) ([]byte, bool) {
	var entry Entry
	err := d.db.Where("key = ? AND expires_at > ?", key, time.Now()).First(&entry).Error
	if err != nil {
		return nil, false
	}
	return entry.Value, true
}

// Set implements Store. Upserts on conflict.
func (d *DB) Set(key string, value []byte, ttl time.Duration) {
	entry := Entry{
		Key:       key,
		Value:     value,
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(ttl),
	}
	d.db.Save(&entry)
}

// Cleanup removes expired entries.
func (d *DB) Cleanup() error {
	return d.db.Where("expires_at < ?", time.Now()).Delete(&Entry{}).Error
}
