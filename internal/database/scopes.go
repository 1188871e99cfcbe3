package database

import (
	"gorm.io/gorm"
)

// NewestFirst orders rows by creation time, breaking ties by ID so rows
// written within the same clock tick still sort deterministically
func NewestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC").Order("id DESC")
}

// Limit caps a query at n rows
func Limit(n int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Limit(n)
	}
}
