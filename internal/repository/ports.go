package repository

import (
	"context"
	"time"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateTable(tbl ...any) error
	Insert(ctx context.Context, record any) error
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	GetAllBy(ctx context.Context, column string, value any, entity any) error
	UpdateBy(ctx context.Context, column string, value any, model any, fields map[string]any) error
	DeleteBy(ctx context.Context, column string, value any, model any) (int64, error)
	DeleteOlderThan(ctx context.Context, column string, cutoff time.Time, model any) (int64, error)
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}
