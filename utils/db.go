package utils

import (
	"sync"

	"gorm.io/gorm"
)

var (
	db *gorm.DB
	mu sync.RWMutex
)

// InitDB stores the database connection for packages that are not
// constructed with one, such as the kds backlog query on connect.
func InitDB(database *gorm.DB) {
	mu.Lock()
	defer mu.Unlock()
	db = database
}

// GetDB returns the database connection.
func GetDB() *gorm.DB {
	mu.RLock()
	defer mu.RUnlock()
	return db
}
