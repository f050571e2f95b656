package app

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/uptrace/opentelemetry-go-extra/otelsql"

	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/config"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/domain/market"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/infrastructure/repository/memory"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/infrastructure/repository/postgres"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/platform/logging"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/usecase"
)

func openStore(ctx context.Context, cfg config.Config, logger *logging.Logger) (market.Store, func() error, error) {
	switch cfg.StoreDriver {
	case config.StorePostgres:
		dsn := normalizeDBURL(cfg.DBURL, cfg.ServiceName)
		db, err := postgres.Open(ctx, dsn,
			otelsql.WithDBName(dbNameFromURL(dsn)),
			otelsql.WithQueryFormatter(formatDBQueryForTrace),
		)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: open postgres: %w", usecase.ErrDependencyUnavailable, err)
		}
		logger.Info("store opened", "driver", cfg.StoreDriver, "db_name", dbNameFromURL(dsn))
		return postgres.NewStore(db), db.Close, nil
	default:
		logger.Info("store opened", "driver", config.StoreMemory)
		return memory.NewStore(), func() error { return nil }, nil
	}
}

// normalizeDBURL tags URL-style DSNs with application_name so sessions are
// attributable in pg_stat_activity. Keyword-style DSNs are left alone.
func normalizeDBURL(raw, applicationName string) string {
	applicationName = strings.TrimSpace(applicationName)
	if applicationName == "" {
		return raw
	}

	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || parsed == nil || parsed.Scheme == "" {
		return raw
	}

	query := parsed.Query()
	if query.Get("application_name") == "" {
		query.Set("application_name", applicationName)
		parsed.RawQuery = query.Encode()
	}

	return parsed.String()
}

func dbNameFromURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	parsed, err := url.Parse(trimmed)
	if err == nil && parsed != nil && parsed.Scheme != "" {
		name := strings.TrimSpace(strings.TrimPrefix(parsed.Path, "/"))
		if name != "" {
			return name
		}
	}

	for _, token := range strings.Fields(trimmed) {
		if !strings.HasPrefix(token, "dbname=") {
			continue
		}
		name := strings.TrimSpace(strings.TrimPrefix(token, "dbname="))
		name = strings.Trim(name, `"'`)
		if name != "" {
			return name
		}
	}

	return ""
}

const maxTracedQueryLength = 512

// formatDBQueryForTrace flattens a statement onto one line for span
// attributes. Batched inserts keep their first tuple plus a row count.
func formatDBQueryForTrace(query string) string {
	lines := strings.Split(query, "\n")
	for i, line := range lines {
		if idx := strings.Index(line, "--"); idx >= 0 {
			lines[i] = line[:idx]
		}
	}
	normalized := strings.Join(strings.Fields(strings.Join(lines, " ")), " ")
	normalized = collapseValues(normalized)

	if len(normalized) <= maxTracedQueryLength {
		return normalized
	}
	return normalized[:maxTracedQueryLength] + "..."
}

func collapseValues(query string) string {
	const marker = " VALUES "
	start := strings.Index(query, marker)
	if start < 0 {
		return query
	}
	head, tuples := query[:start+len(marker)], query[start+len(marker):]

	rows := strings.Count(tuples, "), (") + 1
	if rows == 1 {
		return query
	}
	firstEnd := strings.Index(tuples, ")")
	lastStart := strings.LastIndex(tuples, "), (") + len("), ")
	lastEnd := strings.Index(tuples[lastStart:], ")")
	if firstEnd < 0 || lastEnd < 0 {
		return query
	}
	tail := tuples[lastStart+lastEnd+1:]
	return head + tuples[:firstEnd+1] + " /* " + strconv.Itoa(rows) + " rows */" + tail
}
