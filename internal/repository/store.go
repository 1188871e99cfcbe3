package repository

import (
	"gorm.io/gorm"
)

// GormStore is a GORM implementation of Store
type GormStore struct {
	db *gorm.DB
}

// NewStore creates a new Store
func NewStore(db *gorm.DB) Store {
	return &GormStore{db: db}
}

// Tasks returns a task repository sharing the store's connection or transaction
func (s *GormStore) Tasks() TaskRepository {
	return NewTaskRepository(s.db)
}

// Activity returns an activity repository sharing the store's connection or transaction
func (s *GormStore) Activity() ActivityRepository {
	return NewActivityRepository(s.db)
}

// Transaction runs fn inside a database transaction
func (s *GormStore) Transaction(fn func(tx Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}
