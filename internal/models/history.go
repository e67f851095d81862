// Package models holds the application's mutable state: conversion history
// and user preferences. All types are safe for concurrent use.
package models

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"gometrics/internal/converter"
)

// DefaultHistoryLimit bounds the in-memory history when no explicit limit is
// configured.
const DefaultHistoryLimit = 100

// Record is a single completed conversion.
type Record struct {
	ID        string
	Timestamp time.Time
	Category  converter.Category
	FromUnit  converter.Unit
	ToUnit    converter.Unit
	Input     float64
	Output    float64
}

// HistoryRepository keeps a bounded, in-memory log of conversions. Once the
// bound is reached the oldest entries are dropped. History is never written
// to disk except through an explicit export.
type HistoryRepository struct {
	mu      sync.RWMutex
	records []Record
	limit   int
}

// NewHistoryRepository creates a repository bounded to limit entries.
func NewHistoryRepository(limit int) *HistoryRepository {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &HistoryRepository{limit: limit}
}

// Add stores a record, assigning its ID and timestamp, and returns the
// stored copy.
func (hr *HistoryRepository) Add(record Record) Record {
	hr.mu.Lock()
	defer hr.mu.Unlock()

	record.ID = uuid.NewString()
	record.Timestamp = time.Now()

	hr.records = append(hr.records, record)
	if len(hr.records) > hr.limit {
		hr.records = hr.records[len(hr.records)-hr.limit:]
	}
	return record
}

// List returns a snapshot of the history, newest first.
func (hr *HistoryRepository) List() []Record {
	hr.mu.RLock()
	defer hr.mu.RUnlock()

	out := make([]Record, len(hr.records))
	for i, record := range hr.records {
		out[len(hr.records)-1-i] = record
	}
	return out
}

// Len returns the number of stored records.
func (hr *HistoryRepository) Len() int {
	hr.mu.RLock()
	defer hr.mu.RUnlock()
	return len(hr.records)
}

// Clear removes all records.
func (hr *HistoryRepository) Clear() {
	hr.mu.Lock()
	defer hr.mu.Unlock()
	hr.records = nil
}
