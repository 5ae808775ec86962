package store

import (
	"context"
	"encoding/json"
	"errors"

	"stayhub/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres keeps each collection's documents as JSONB rows in a single
// `documents` table:
//
//	CREATE TABLE documents (
//	    collection text NOT NULL,
//	    id         uuid NOT NULL,
//	    doc        jsonb NOT NULL,
//	    PRIMARY KEY (collection, id)
//	);
type Postgres[T any] struct {
	pool       *pgxpool.Pool
	collection string
}

func NewPostgres[T any](pool *pgxpool.Pool, collection string) *Postgres[T] {
	return &Postgres[T]{
		pool:       pool,
		collection: collection,
	}
}

func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, func(), error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, nil, errs.Wrap(err, "failed to create connection pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, errs.Wrap(err, "failed to ping database")
	}
	return pool, pool.Close, nil
}

func (p *Postgres[T]) Create(ctx context.Context, id uuid.UUID, doc T) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return errs.Wrap(err, "failed to marshal document")
	}

	_, err = p.pool.Exec(ctx,
		`INSERT INTO documents (collection, id, doc) VALUES ($1, $2, $3)`,
		p.collection, id, body,
	)
	if err != nil {
		return errs.Wrap(err, "failed to insert document")
	}
	return nil
}

func (p *Postgres[T]) FindOne(ctx context.Context, id uuid.UUID) (T, error) {
	var zero T

	var body []byte
	err := p.pool.QueryRow(ctx,
		`SELECT doc FROM documents WHERE collection = $1 AND id = $2`,
		p.collection, id,
	).Scan(&body)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, ErrNotFound
		}
		return zero, errs.Wrap(err, "failed to query document")
	}

	var doc T
	if err := json.Unmarshal(body, &doc); err != nil {
		return zero, errs.Wrap(err, "failed to unmarshal document")
	}
	return doc, nil
}

func (p *Postgres[T]) FindOneAndUpdate(ctx context.Context, id uuid.UUID, apply func(T) T) (T, error) {
	var zero T

	tx, err := p.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return zero, errs.Wrap(err, "failed to begin transaction")
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var body []byte
	err = tx.QueryRow(ctx,
		`SELECT doc FROM documents WHERE collection = $1 AND id = $2 FOR UPDATE`,
		p.collection, id,
	).Scan(&body)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, ErrNotFound
		}
		return zero, errs.Wrap(err, "failed to query document")
	}

	var doc T
	if err := json.Unmarshal(body, &doc); err != nil {
		return zero, errs.Wrap(err, "failed to unmarshal document")
	}

	updated := apply(doc)
	newBody, err := json.Marshal(updated)
	if err != nil {
		return zero, errs.Wrap(err, "failed to marshal document")
	}

	_, err = tx.Exec(ctx,
		`UPDATE documents SET doc = $3 WHERE collection = $1 AND id = $2`,
		p.collection, id, newBody,
	)
	if err != nil {
		return zero, errs.Wrap(err, "failed to update document")
	}

	if err := tx.Commit(ctx); err != nil {
		return zero, errs.Wrap(err, "failed to commit transaction")
	}
	return updated, nil
}

func (p *Postgres[T]) FindOneAndDelete(ctx context.Context, id uuid.UUID) (T, error) {
	var zero T

	var body []byte
	err := p.pool.QueryRow(ctx,
		`DELETE FROM documents WHERE collection = $1 AND id = $2 RETURNING doc`,
		p.collection, id,
	).Scan(&body)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, ErrNotFound
		}
		return zero, errs.Wrap(err, "failed to delete document")
	}

	var doc T
	if err := json.Unmarshal(body, &doc); err != nil {
		return zero, errs.Wrap(err, "failed to unmarshal document")
	}
	return doc, nil
}

func (p *Postgres[T]) Find(ctx context.Context, match func(T) bool) ([]T, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT doc FROM documents WHERE collection = $1`,
		p.collection,
	)
	if err != nil {
		return nil, errs.Wrap(err, "failed to query documents")
	}
	defer rows.Close()

	var result []T
	for rows.Next() {
		var body []byte
		if err := rows.Scan(&body); err != nil {
			return nil, errs.Wrap(err, "failed to scan document")
		}
		var doc T
		if err := json.Unmarshal(body, &doc); err != nil {
			return nil, errs.Wrap(err, "failed to unmarshal document")
		}
		if match == nil || match(doc) {
			result = append(result, doc)
		}
	}
	return result, rows.Err()
}
