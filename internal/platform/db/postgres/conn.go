package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/ogurasousui/employee-tracker/internal/platform/config"
)

// Queryer は *pgx.Conn と互換性のあるクエリ実行インターフェースです。
// 書き込みはすべて RETURNING 付きの QueryRow で行うため Exec は持ちません。
// リポジトリはこのインターフェースのみに依存し、テストでは pgxmock を注入します。
type Queryer interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// BuildConnConfig は database 設定から pgx.ConnConfig を構築します。
func BuildConnConfig(cfg config.DatabaseConfig) (*pgx.ConnConfig, error) {
	connCfg, err := pgx.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("postgres: parse config: %w", err)
	}

	if cfg.ConnectTimeout > 0 {
		connCfg.ConnectTimeout = cfg.ConnectTimeout
	}

	return connCfg, nil
}

// Connect はプロセスの生存期間中に保持する単一の接続を確立し、疎通確認を行います。
func Connect(ctx context.Context, cfg config.DatabaseConfig) (*pgx.Conn, error) {
	connCfg, err := BuildConnConfig(cfg)
	if err != nil {
		return nil, err
	}

	conn, err := pgx.ConnectConfig(ctx, connCfg)
	if err != nil {
		return nil, fmt.Errorf("postgres: connect: %w", err)
	}

	if err := conn.Ping(ctx); err != nil {
		_ = conn.Close(ctx)
		return nil, fmt.Errorf("postgres: ping: %w", err)
	}

	return conn, nil
}
