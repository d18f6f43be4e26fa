package database

import (
	"errors"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ndelacroix/meetings-api/internal/models"
)

// Database is the store facade handed to every handler. It owns the
// process-wide GORM handle; handlers borrow it per request.
type Database struct {
	db *gorm.DB
}

// StoreError wraps any underlying persistence fault so callers can map it
// uniformly without losing the cause.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string { return e.Op + ": " + e.Err.Error() }

func (e *StoreError) Unwrap() error { return e.Err }

func storeErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}

// Open initializes the facade over the given dialector and migrates the
// schema, including the guests and participants join tables.
func Open(dialector gorm.Dialector) (*Database, error) {
	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, storeErr("open database", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Meeting{}, &models.Room{}); err != nil {
		return nil, storeErr("migrate schema", err)
	}
	return &Database{db: db}, nil
}

// Connect opens a postgres-backed facade from a DSN.
func Connect(dsn string) (*Database, error) {
	return Open(postgres.Open(dsn))
}

// withTx runs fn inside a fresh transaction when atomic is true, otherwise
// against the current handle, assuming the caller already owns the unit of
// work. A fn error rolls the fresh transaction back entirely.
func (d *Database) withTx(atomic bool, fn func(tx *gorm.DB) error) error {
	if atomic {
		return d.db.Transaction(fn)
	}
	return fn(d.db)
}

// readByID returns nil without an error when no row matches: absence is a
// first-class result, not a fault.
func readByID[E any](d *Database, op string, id uint, preloads ...string) (*E, error) {
	q := d.db
	for _, p := range preloads {
		q = q.Preload(p)
	}
	var e E
	err := q.First(&e, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr(op, err)
	}
	return &e, nil
}

// readByIDSet returns only the entities that exist; callers compare the
// returned count against the requested one to detect missing ids.
func readByIDSet[E any](d *Database, op string, ids []uint, preloads ...string) ([]E, error) {
	out := []E{}
	if len(ids) == 0 {
		return out, nil
	}
	q := d.db
	for _, p := range preloads {
		q = q.Preload(p)
	}
	if err := q.Find(&out, "id IN ?", ids).Error; err != nil {
		return nil, storeErr(op, err)
	}
	return out, nil
}

func readAll[E any](d *Database, op string, preloads ...string) ([]E, error) {
	q := d.db
	for _, p := range preloads {
		q = q.Preload(p)
	}
	out := []E{}
	if err := q.Find(&out).Error; err != nil {
		return nil, storeErr(op, err)
	}
	return out, nil
}
