package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

var (
	ErrNotFound     = errors.New("record not found")
	ErrDuplicateKey = errors.New("duplicate key")
)

// postgres SQLSTATE for unique_violation
const uniqueViolationCode = "23505"

type txKey struct{}

type PostgresDB struct {
	db *gorm.DB
}

func NewPostgresDB(dsn string, logs *zap.SugaredLogger) (*PostgresDB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         NewZapGormLogger(logs, 200*time.Millisecond).LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return &PostgresDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	return New(db), nil
}

// New wraps an already opened gorm connection.
func New(db *gorm.DB) *PostgresDB {
	return &PostgresDB{
		db: db,
	}
}

func (f *PostgresDB) MigrateTable(tbl ...any) error {
	err := f.db.AutoMigrate(tbl...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

func (f *PostgresDB) Insert(ctx context.Context, record any) error {
	if err := f.conn(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("insert to table: %w", translate(err))
	}

	return nil
}

func (f *PostgresDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := f.conn(ctx).Where(query, value).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

// GetAllBy loads every row where column equals value, ordered by primary key.
// An empty result is not an error.
func (f *PostgresDB) GetAllBy(ctx context.Context, column string, value any, entity any) error {
	tx := f.conn(ctx).
		Where(fmt.Sprintf("%s = ?", column), value).
		Order(clause.OrderByColumn{Column: clause.Column{Table: clause.CurrentTable, Name: clause.PrimaryKey}}).
		Find(entity)
	if tx.Error != nil {
		return fmt.Errorf("getting records by %q: %w", column, tx.Error)
	}
	return nil
}

func (f *PostgresDB) UpdateBy(ctx context.Context, column string, value any, model any, fields map[string]any) error {
	tx := f.conn(ctx).
		Model(model).
		Where(fmt.Sprintf("%s = ?", column), value).
		Updates(fields)
	if tx.Error != nil {
		return fmt.Errorf("updating records by %q: %w", column, translate(tx.Error))
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteBy removes every row of model's table where column equals value and
// reports how many rows went away.
func (f *PostgresDB) DeleteBy(ctx context.Context, column string, value any, model any) (int64, error) {
	tx := f.conn(ctx).
		Where(fmt.Sprintf("%s = ?", column), value).
		Delete(model)
	if tx.Error != nil {
		return 0, fmt.Errorf("deleting records by %q: %w", column, tx.Error)
	}
	return tx.RowsAffected, nil
}

func (f *PostgresDB) DeleteOlderThan(ctx context.Context, column string, cutoff time.Time, model any) (int64, error) {
	tx := f.conn(ctx).
		Where(fmt.Sprintf("%s <= ?", column), cutoff).
		Delete(model)
	if tx.Error != nil {
		return 0, fmt.Errorf("deleting records older than %s by %q: %w", cutoff.Format(time.RFC3339), column, tx.Error)
	}
	return tx.RowsAffected, nil
}

// Transaction runs fn inside a database transaction. Every PostgresDB call made
// with the context handed to fn joins that transaction. The transaction commits
// when fn returns nil and rolls back otherwise.
func (f *PostgresDB) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return f.conn(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

func (f *PostgresDB) Close() error {
	sqlDB, err := f.db.DB()
	if err != nil {
		return fmt.Errorf("get sql db conn: %w", err)
	}
	return sqlDB.Close()
}

func (f *PostgresDB) conn(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return f.db.WithContext(ctx)
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %w", ErrDuplicateKey, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return fmt.Errorf("%w: %s", ErrDuplicateKey, pgErr.ConstraintName)
	}

	return err
}
