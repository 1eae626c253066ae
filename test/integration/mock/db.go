// Package mock provides in-memory test doubles for external dependencies.
package mock

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/migrator"
	"gorm.io/gorm/schema"
)

// testDialector maps Postgres-specific column types in the models to
// declarations the sqlite driver reads back as time.Time (it only parses
// DATE, DATETIME, TIME and TIMESTAMP declared types).
type testDialector struct {
	sqlite.Dialector
}

func (d testDialector) DataTypeOf(field *schema.Field) string {
	dataType := d.Dialector.DataTypeOf(field)
	if strings.EqualFold(dataType, "timestamptz") {
		return "datetime"
	}
	return dataType
}

// Migrator mirrors sqlite.Dialector.Migrator but wires the wrapper in as
// the dialector, so AutoMigrate picks up the overridden DataTypeOf.
func (d testDialector) Migrator(db *gorm.DB) gorm.Migrator {
	return sqlite.Migrator{Migrator: migrator.Migrator{Config: migrator.Config{
		DB:                          db,
		Dialector:                   d,
		CreateIndexAfterCreateTable: true,
	}}}
}

var dbOnce sync.Once
var db *Db

// Db wraps a shared in-memory SQLite connection used by the integration
// suite. A single connection is kept open for the whole test run so the
// shared-cache database survives between scenarios.
type Db struct {
	DbConn *gorm.DB
	models map[string]any
	schema string
}

// NewDb returns the singleton test database, creating it on first use.
// The models map associates table names with their GORM models and drives
// both migration and the per-scenario reset.
func NewDb(schema string, models map[string]any) *Db {
	dbOnce.Do(func() {
		db = open(schema, models)
	})
	return db
}

func open(schema string, models map[string]any) *Db {
	sqlDB, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}

	// Shared-cache SQLite requires a single writer.
	sqlDB.SetMaxOpenConns(1)

	conn, err := gorm.Open(testDialector{sqlite.Dialector{Conn: sqlDB}}, &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: false,
	})
	if err != nil {
		panic("failed to connect to test database: " + err.Error())
	}

	d := &Db{
		DbConn: conn,
		schema: schema,
		models: models,
	}

	if err := d.ClearDB(); err != nil {
		panic(fmt.Sprintf("failed to prepare test database: %s", err.Error()))
	}

	return d
}

// ClearDB recreates the schema and wipes every table. Concurrent scenario
// setup can race against the shared cache, so the whole sequence retries a
// few times before giving up.
func (d *Db) ClearDB() (err error) {
	for attempt := 0; attempt < 5; attempt++ {
		if err = d.DbConn.Exec("ATTACH ':memory:' AS " + d.schema).Error; err != nil {
			if !strings.Contains(err.Error(), "is already in use") {
				return err
			}
		} else {
			if err = d.migrate(); err != nil {
				continue
			}

			time.Sleep(200 * time.Millisecond)
			_ = d.DbConn.Exec("PRAGMA schema_version").Error

			if err = d.checkTables(); err != nil {
				continue
			}
		}

		if err = d.reset(); err != nil {
			continue
		}

		return nil
	}
	return fmt.Errorf("failed to clear test database after 5 attempts: %w", err)
}

func (d *Db) migrate() (err error) {
	tx := d.DbConn.Exec("BEGIN EXCLUSIVE")
	defer func() {
		if rec := recover(); rec != nil {
			tx.Rollback()
			err = fmt.Errorf("panic while migrating test database: %v", rec)
		} else if err != nil {
			if errTx := tx.Exec("ROLLBACK").Error; errTx != nil {
				panic(errTx)
			}
		} else {
			if errTx := tx.Exec("COMMIT").Error; errTx != nil {
				panic(errTx)
			}
		}
	}()

	modelList := make([]any, 0, len(d.models))
	for _, m := range d.models {
		modelList = append(modelList, m)

		stmt := &gorm.Statement{DB: tx}
		if err := stmt.Parse(m); err != nil {
			return err
		}

		if err := tx.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s", stmt.Schema.Table)).Error; err != nil {
			return err
		}
	}

	if err := tx.AutoMigrate(modelList...); err != nil {
		return err
	}

	for _, m := range modelList {
		if !tx.Migrator().HasTable(m) {
			return fmt.Errorf("table for model %T was not created", m)
		}
	}

	return nil
}

func (d *Db) reset() error {
	for _, m := range d.models {
		err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(m).Error
		if err != nil {
			return err
		}

		stmt := &gorm.Statement{DB: d.DbConn}
		if err := stmt.Parse(m); err != nil {
			return err
		}

		err = d.DbConn.Exec("DELETE FROM sqlite_sequence WHERE name = ?", stmt.Schema.Table).Error
		if err != nil && !strings.Contains(err.Error(), "no such table: sqlite_sequence") {
			return err
		}
	}

	return nil
}

func (d *Db) checkTables() error {
	for _, m := range d.models {
		if !d.DbConn.Migrator().HasTable(m) {
			return fmt.Errorf("table for model %T was not created", m)
		}
		if err := d.DbConn.Find(&m).Error; err != nil {
			return fmt.Errorf("failed to query table for model %T: %w", m, err)
		}
	}

	return nil
}

// GetModel returns the GORM model registered for a table name.
func (d *Db) GetModel(table string) (any, bool) {
	m, ok := d.models[table]
	return m, ok
}
