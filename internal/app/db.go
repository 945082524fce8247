package app

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.opentelemetry.io/otel/attribute"

	"github.com/lifeboat-community/leaderboard-api/internal/config"
	"github.com/lifeboat-community/leaderboard-api/internal/platform/logging"
)

func openDB(cfg config.Config, logger *logging.Logger) (*sqlx.DB, error) {
	dbURL := normalizeDBURL(cfg.DBURL, cfg.ServiceName)

	db, err := otelsqlx.Connect("postgres", dbURL,
		otelsql.WithAttributes(attribute.String("db.system", "postgresql")),
		otelsql.WithDBName(dbNameFromURL(dbURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	logger.Info("database connected", "db_name", dbNameFromURL(dbURL))

	return db, nil
}
