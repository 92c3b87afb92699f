// Package dbmetrics оборачивает *sql.DB сбором метрик запросов
// и connection pool'а. Обёртка реализует DBExecutor, поэтому
// репозитории не знают, включены метрики или нет.
package dbmetrics

import (
	"context"
	"database/sql"
	"time"
)

// Collector интерфейс приёмника метрик БД.
// Реализуется pkg/metrics.Metrics.
type Collector interface {
	ObserveDBQuery(service, operation string, duration time.Duration)
	SetDBPoolStats(service string, stats sql.DBStats)
}

// DefaultPoolStatsInterval периодичность снятия статистики пула соединений
const DefaultPoolStatsInterval = 10 * time.Second

// DB обёртка над *sql.DB с метриками
type DB struct {
	db        *sql.DB
	collector Collector
	service   string
}

// Wrap оборачивает соединение с БД сбором метрик запросов
func Wrap(db *sql.DB, collector Collector, service string) *DB {
	return &DB{
		db:        db,
		collector: collector,
		service:   service,
	}
}

// WrapWithDefault оборачивает соединение и запускает периодический сбор
// статистики connection pool'а. Сбор останавливается закрытием stopCh.
func WrapWithDefault(db *sql.DB, collector Collector, service string, stopCh <-chan struct{}) *DB {
	wrapped := Wrap(db, collector, service)
	go wrapped.collectPoolStats(DefaultPoolStatsInterval, stopCh)
	return wrapped
}

// ExecContext выполняет запрос с измерением длительности
func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	d.collector.ObserveDBQuery(d.service, "exec", time.Since(start))
	return res, err
}

// QueryContext выполняет запрос с измерением длительности
func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.collector.ObserveDBQuery(d.service, "query", time.Since(start))
	return rows, err
}

// QueryRowContext выполняет запрос с измерением длительности
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.collector.ObserveDBQuery(d.service, "query_row", time.Since(start))
	return row
}

// BeginTx начинает транзакцию. Запросы внутри транзакции тоже проходят
// через измерение длительности.
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	tx, err := d.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &metricsTx{tx: tx, collector: d.collector, service: d.service}, nil
}

func (d *DB) collectPoolStats(interval time.Duration, stopCh <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			d.collector.SetDBPoolStats(d.service, d.db.Stats())
		case <-stopCh:
			return
		}
	}
}

// metricsTx транзакция с измерением длительности запросов
type metricsTx struct {
	tx        *sql.Tx
	collector Collector
	service   string
}

func (t *metricsTx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := t.tx.ExecContext(ctx, query, args...)
	t.collector.ObserveDBQuery(t.service, "tx_exec", time.Since(start))
	return res, err
}

func (t *metricsTx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := t.tx.QueryContext(ctx, query, args...)
	t.collector.ObserveDBQuery(t.service, "tx_query", time.Since(start))
	return rows, err
}

func (t *metricsTx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := t.tx.QueryRowContext(ctx, query, args...)
	t.collector.ObserveDBQuery(t.service, "tx_query_row", time.Since(start))
	return row
}

func (t *metricsTx) Commit() error {
	return t.tx.Commit()
}

func (t *metricsTx) Rollback() error {
	return t.tx.Rollback()
}
