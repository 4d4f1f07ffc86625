package repository

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"github.com/lzcampos/investment-calculator/internal/repository/queries"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Global error declarations.
var (
	ErrSecurityNotFound = errors.New("stock not found")
	ErrNoPriceData      = errors.New("no price data for stock")
)

//go:embed schema.sql
var schema string

type securitiesRepository interface {
	GetSecurity(ctx context.Context, id int64) (queries.Security, error)
	SearchSecurities(ctx context.Context, arg queries.SearchSecuritiesParams) ([]queries.Security, error)
	UpsertSecurity(ctx context.Context, arg queries.Security) (int64, error)
}
type pricesRepository interface {
	GetEarliestPriceTimestamp(ctx context.Context, securityID int64) (*int64, error)
	GetPricesFrom(ctx context.Context, arg queries.GetPricesFromParams) ([]queries.SecurityPrice, error)
}
type dividendsRepository interface {
	GetDividendsFrom(ctx context.Context, arg queries.GetDividendsFromParams) ([]queries.SecurityDividend, error)
}
type historyRepository interface {
	DeletePrices(ctx context.Context, securityID int64) error
	DeleteDividends(ctx context.Context, securityID int64) error
	InsertPrice(ctx context.Context, arg queries.SecurityPrice) error
	InsertDividend(ctx context.Context, arg queries.SecurityDividend) error
}

// txRunner runs fn in a transaction, committing when fn returns nil and rolling
// back otherwise.
type txRunner func(ctx context.Context, fn func(historyRepository) error) error

// Database struct that holds the database connection and queries.
type Database struct {
	securities securitiesRepository
	prices     pricesRepository
	dividends  dividendsRepository
	inTx       txRunner
	conn       *pgxpool.Pool
}

// NewDatabase creates a new Database instance and verifies connectivity.
func NewDatabase(ctx context.Context, dbURL string) (*Database, error) {
	config, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	// Register shopspring decimal
	config.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	conn, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, err
	}
	// Ensure the connection is established.
	if err := conn.Ping(ctx); err != nil {
		conn.Close()
		return nil, err
	}

	q := queries.New(conn)
	return &Database{
		securities: q,
		prices:     q,
		dividends:  q,
		inTx:       poolTx(conn, q),
		conn:       conn,
	}, nil
}

func poolTx(conn *pgxpool.Pool, q *queries.Queries) txRunner {
	return func(ctx context.Context, fn func(historyRepository) error) error {
		return pgx.BeginFunc(ctx, conn, func(tx pgx.Tx) error {
			return fn(q.WithTx(tx))
		})
	}
}

// Migrate creates the tables when they do not exist yet.
func (db *Database) Migrate(ctx context.Context) error {
	if _, err := db.conn.Exec(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

func (db *Database) Close() {
	db.conn.Close()
}
