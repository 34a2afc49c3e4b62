package database

import (
	"database/sql"
	"embed"
	"fmt"
	"time"

	"github.com/caseboard/caseboard-backend/pkg/database/gensql"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// Transacter is the part of sql.Tx needed to finish a transaction
// started through WithTx.
type Transacter interface {
	Commit() error
	Rollback() error
}

type Repo struct {
	Querier *gensql.Queries

	db  *sql.DB
	log logrus.FieldLogger
}

// WithTx returns a function that starts a transaction and hands back the
// queries bound to it, narrowed to the interface the caller works with.
func WithTx[T any](r *Repo) func() (T, Transacter, error) {
	return func() (T, Transacter, error) {
		var queries T

		tx, err := r.db.Begin()
		if err != nil {
			return queries, nil, fmt.Errorf("starting transaction: %w", err)
		}

		queries, ok := any(r.Querier.WithTx(tx)).(T)
		if !ok {
			_ = tx.Rollback()

			return queries, nil, fmt.Errorf("queries do not implement %T", queries)
		}

		return queries, tx, nil
	}
}

func New(dbConnDSN string, maxIdleConn, maxOpenConn int, log logrus.FieldLogger) (*Repo, error) {
	db, err := sql.Open("postgres", dbConnDSN)
	if err != nil {
		return nil, fmt.Errorf("open sql connection: %w", err)
	}

	db.SetMaxIdleConns(maxIdleConn)
	db.SetMaxOpenConns(maxOpenConn)

	goose.SetLogger(log)
	goose.SetBaseFS(embedMigrations)

	err = goose.Up(db, "migrations")
	if err != nil {
		backoff := time.Second

		for i := 0; i < 5; i++ {
			log.WithError(err).Infof("retrying goose up in %v", backoff)
			time.Sleep(backoff)

			err = goose.Up(db, "migrations")
			if err == nil {
				break
			}

			backoff *= 2
		}

		if err != nil {
			return nil, fmt.Errorf("goose up: %w", err)
		}
	}

	return &Repo{
		Querier: gensql.New(db),
		db:      db,
		log:     log,
	}, nil
}

func (r *Repo) GetDB() *sql.DB {
	return r.db
}

func (r *Repo) Metrics() []prometheus.Collector {
	return []prometheus.Collector{
		collectors.NewDBStatsCollector(r.db, "caseboard"),
	}
}
