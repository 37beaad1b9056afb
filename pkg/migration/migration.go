// Package migration runs versioned schema changes and records them in a
// tracking table, in batches that can be rolled back together.
//
//	func init() {
//	    migration.Register("20240101000000_create_products_table", &CreateProductsTable{})
//	}
//
//	products migrate            // run all pending
//	products migrate:rollback   // undo the last batch
package migration

import (
	"fmt"
	"io"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/kashvi-products/pkg/logger"
)

// Migration is one reversible schema change.
type Migration interface {
	Up(db *gorm.DB) error
	Down(db *gorm.DB) error
}

type record struct {
	ID    uint      `gorm:"primaryKey;autoIncrement"`
	Name  string    `gorm:"uniqueIndex;size:255;not null"`
	Batch int       `gorm:"not null"`
	RunAt time.Time `gorm:"autoCreateTime"`
}

func (record) TableName() string { return "schema_migrations" }

// ------------------- Registry -------------------

type entry struct {
	name string
	m    Migration
}

var registry []entry

// Register adds a migration. Names sort lexicographically into run order,
// so prefix them with a timestamp.
func Register(name string, m Migration) {
	registry = append(registry, entry{name: name, m: m})
}

func sorted(entries []entry) []entry {
	out := append([]entry(nil), entries...)
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}

// ------------------- Runner -------------------

// Runner applies the registered migrations to db and reports progress to out.
type Runner struct {
	db      *gorm.DB
	out     io.Writer
	entries []entry
}

// New returns a Runner over every registered migration.
func New(db *gorm.DB, out io.Writer) *Runner {
	return &Runner{db: db, out: out, entries: sorted(registry)}
}

func (r *Runner) ensureTable() error {
	if err := r.db.AutoMigrate(&record{}); err != nil {
		return fmt.Errorf("migration: ensure table: %w", err)
	}
	return nil
}

func (r *Runner) ran() (map[string]record, error) {
	var rows []record
	if err := r.db.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("migration: load history: %w", err)
	}
	out := make(map[string]record, len(rows))
	for _, row := range rows {
		out[row.Name] = row
	}
	return out, nil
}

func (r *Runner) lastBatch() (int, error) {
	var batch struct{ Max int }
	err := r.db.Model(&record{}).Select("COALESCE(MAX(batch), 0) AS max").Scan(&batch).Error
	return batch.Max, err
}

// Run applies every pending migration as one new batch.
func (r *Runner) Run() error {
	if err := r.ensureTable(); err != nil {
		return err
	}
	done, err := r.ran()
	if err != nil {
		return err
	}

	var pending []entry
	for _, e := range r.entries {
		if _, ok := done[e.name]; !ok {
			pending = append(pending, e)
		}
	}
	if len(pending) == 0 {
		fmt.Fprintln(r.out, "Nothing to migrate.")
		return nil
	}

	last, err := r.lastBatch()
	if err != nil {
		return fmt.Errorf("migration: read batch: %w", err)
	}
	batch := last + 1

	for _, e := range pending {
		fmt.Fprintf(r.out, "Migrating: %s\n", e.name)
		if err := e.m.Up(r.db); err != nil {
			return fmt.Errorf("migration: %s up: %w", e.name, err)
		}
		if err := r.db.Create(&record{Name: e.name, Batch: batch}).Error; err != nil {
			return fmt.Errorf("migration: record %s: %w", e.name, err)
		}
		fmt.Fprintf(r.out, "Migrated:  %s\n", e.name)
	}

	logger.Info("migration: done", "ran", len(pending), "batch", batch)
	return nil
}

// Rollback reverses the most recent batch, newest first.
func (r *Runner) Rollback() error {
	if err := r.ensureTable(); err != nil {
		return err
	}
	last, err := r.lastBatch()
	if err != nil {
		return fmt.Errorf("migration: read batch: %w", err)
	}
	if last == 0 {
		fmt.Fprintln(r.out, "Nothing to roll back.")
		return nil
	}

	var rows []record
	if err := r.db.Where("batch = ?", last).Order("id desc").Find(&rows).Error; err != nil {
		return fmt.Errorf("migration: load batch %d: %w", last, err)
	}

	byName := make(map[string]Migration, len(r.entries))
	for _, e := range r.entries {
		byName[e.name] = e.m
	}

	for _, row := range rows {
		m, ok := byName[row.Name]
		if !ok {
			return fmt.Errorf("migration: cannot roll back %s: not registered", row.Name)
		}
		fmt.Fprintf(r.out, "Rolling back: %s\n", row.Name)
		if err := m.Down(r.db); err != nil {
			return fmt.Errorf("migration: %s down: %w", row.Name, err)
		}
		if err := r.db.Delete(&row).Error; err != nil {
			return fmt.Errorf("migration: forget %s: %w", row.Name, err)
		}
		fmt.Fprintf(r.out, "Rolled back:  %s\n", row.Name)
	}

	logger.Info("migration: rolled back", "batch", last, "count", len(rows))
	return nil
}

// Status prints each registered migration and whether it ran.
func (r *Runner) Status() error {
	if err := r.ensureTable(); err != nil {
		return err
	}
	done, err := r.ran()
	if err != nil {
		return err
	}

	fmt.Fprintf(r.out, "%-50s  %-8s  %s\n", "Migration", "Status", "Batch")
	for _, e := range r.entries {
		if row, ok := done[e.name]; ok {
			fmt.Fprintf(r.out, "%-50s  %-8s  %d\n", e.name, "Ran", row.Batch)
		} else {
			fmt.Fprintf(r.out, "%-50s  %-8s  -\n", e.name, "Pending")
		}
	}
	return nil
}
