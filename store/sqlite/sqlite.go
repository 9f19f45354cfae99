/*
Package sqlite provides the SQLite-backed implementation of store.Archive.

PURPOSE:
  Durable persistence of simulation runs. One parent row per run, child
  tables for per-category outcomes, per-fortnight outcomes, and
  per-product stock trajectories (stored as JSON arrays, one sample per
  simulated day).

KEY TABLES:
  simulation_runs: One row per stored run
  run_categories:  Annual spend vs cap per category, with status
  run_fortnights:  Spend per budget period, with overdraft alert
  run_stock:       Stock history per product (JSON)
  run_purchases:   Chronological purchase audit lines

ATOMICITY:
  Save and Delete wrap all their writes in one database transaction;
  a run is either fully stored or not stored at all.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging): multiple readers don't
  block, single writer at a time, better crash recovery.

USAGE:
  archive, err := sqlite.New("./data/simulations.db")
  if err != nil {
      log.Fatal(err)
  }
  defer archive.Close()

MIGRATION:
  Schema is auto-migrated on New(). For production, use a proper
  migration tool with versioned migrations.

SEE ALSO:
  - store/archive.go: Interface and record definitions
  - store/memory.go: In-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
	"github.com/warp/canteen-engine/catalog"
	"github.com/warp/canteen-engine/sim"
	"github.com/warp/canteen-engine/store"
)

// Archive implements store.Archive using SQLite.
type Archive struct {
	db *sql.DB
	mu sync.RWMutex
}

// New opens (or creates) the archive database at the given path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Archive, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	a := &Archive{db: db}
	if err := a.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return a, nil
}

// Close closes the database connection.
func (a *Archive) Close() error {
	return a.db.Close()
}

func (a *Archive) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS simulation_runs (
		id TEXT PRIMARY KEY,
		created_at TEXT NOT NULL,
		population INTEGER NOT NULL,
		total_spend TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS run_categories (
		run_id TEXT NOT NULL REFERENCES simulation_runs(id),
		category TEXT NOT NULL,
		spend TEXT NOT NULL,
		cap TEXT NOT NULL,
		status TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_run_categories_run
		ON run_categories(run_id);

	CREATE TABLE IF NOT EXISTS run_fortnights (
		run_id TEXT NOT NULL REFERENCES simulation_runs(id),
		fortnight INTEGER NOT NULL,
		spend TEXT NOT NULL,
		alert TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_run_fortnights_run
		ON run_fortnights(run_id);

	CREATE TABLE IF NOT EXISTS run_stock (
		run_id TEXT NOT NULL REFERENCES simulation_runs(id),
		product TEXT NOT NULL,
		category TEXT NOT NULL,
		priority TEXT NOT NULL,
		history_json TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_run_stock_run
		ON run_stock(run_id);

	CREATE TABLE IF NOT EXISTS run_purchases (
		run_id TEXT NOT NULL REFERENCES simulation_runs(id),
		seq INTEGER NOT NULL,
		line TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_run_purchases_run
		ON run_purchases(run_id, seq);

	CREATE INDEX IF NOT EXISTS idx_runs_population
		ON simulation_runs(population);
	`
	_, err := a.db.Exec(schema)
	return err
}

// =============================================================================
// SAVE
// =============================================================================

func (a *Archive) Save(ctx context.Context, result *sim.Result) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	run := store.NewRun(uuid.NewString(), time.Now().UTC(), result)

	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO simulation_runs (id, created_at, population, total_spend) VALUES (?, ?, ?, ?)`,
		run.ID, run.CreatedAt.Format(time.RFC3339), run.Population, run.TotalSpend.String())
	if err != nil {
		return "", fmt.Errorf("failed to insert run: %w", err)
	}

	for _, c := range run.Categories {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO run_categories (run_id, category, spend, cap, status) VALUES (?, ?, ?, ?, ?)`,
			run.ID, c.Category, c.Spend.String(), c.Cap.String(), c.Status)
		if err != nil {
			return "", fmt.Errorf("failed to insert category detail: %w", err)
		}
	}

	for _, f := range run.Fortnights {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO run_fortnights (run_id, fortnight, spend, alert) VALUES (?, ?, ?, ?)`,
			run.ID, f.Fortnight, f.Spend.String(), f.Alert)
		if err != nil {
			return "", fmt.Errorf("failed to insert fortnight detail: %w", err)
		}
	}

	for _, s := range run.Stocks {
		historyJSON, err := json.Marshal(s.History)
		if err != nil {
			return "", fmt.Errorf("failed to encode stock history: %w", err)
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO run_stock (run_id, product, category, priority, history_json) VALUES (?, ?, ?, ?, ?)`,
			run.ID, s.Product, s.Category, string(s.Priority), string(historyJSON))
		if err != nil {
			return "", fmt.Errorf("failed to insert stock detail: %w", err)
		}
	}

	for i, line := range run.PurchaseLog {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO run_purchases (run_id, seq, line) VALUES (?, ?, ?)`,
			run.ID, i, line)
		if err != nil {
			return "", fmt.Errorf("failed to insert purchase line: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return run.ID, nil
}

// =============================================================================
// QUERIES
// =============================================================================

func (a *Archive) List(ctx context.Context) ([]store.RunSummary, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	rows, err := a.db.QueryContext(ctx,
		`SELECT id, created_at, population, total_spend FROM simulation_runs ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.RunSummary
	for rows.Next() {
		summary, err := scanSummary(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, summary)
	}
	return out, rows.Err()
}

func (a *Archive) Get(ctx context.Context, id string) (*store.Run, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	row := a.db.QueryRowContext(ctx,
		`SELECT id, created_at, population, total_spend FROM simulation_runs WHERE id = ?`, id)

	var (
		createdAt, totalSpend string
		run                   store.Run
	)
	err := row.Scan(&run.ID, &createdAt, &run.Population, &totalSpend)
	if err == sql.ErrNoRows {
		return nil, store.ErrRunNotFound
	}
	if err != nil {
		return nil, err
	}
	if run.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("corrupt created_at for run %s: %w", id, err)
	}
	if run.TotalSpend, err = decimal.NewFromString(totalSpend); err != nil {
		return nil, fmt.Errorf("corrupt total_spend for run %s: %w", id, err)
	}

	if err := a.loadCategories(ctx, &run); err != nil {
		return nil, err
	}
	if err := a.loadFortnights(ctx, &run); err != nil {
		return nil, err
	}
	if err := a.loadStocks(ctx, &run); err != nil {
		return nil, err
	}
	if err := a.loadPurchases(ctx, &run); err != nil {
		return nil, err
	}
	return &run, nil
}

func (a *Archive) loadCategories(ctx context.Context, run *store.Run) error {
	rows, err := a.db.QueryContext(ctx,
		`SELECT category, spend, cap, status FROM run_categories WHERE run_id = ? ORDER BY category`, run.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			c          store.CategoryDetail
			spend, cap string
		)
		if err := rows.Scan(&c.Category, &spend, &cap, &c.Status); err != nil {
			return err
		}
		if c.Spend, err = decimal.NewFromString(spend); err != nil {
			return err
		}
		if c.Cap, err = decimal.NewFromString(cap); err != nil {
			return err
		}
		run.Categories = append(run.Categories, c)
	}
	return rows.Err()
}

func (a *Archive) loadFortnights(ctx context.Context, run *store.Run) error {
	rows, err := a.db.QueryContext(ctx,
		`SELECT fortnight, spend, alert FROM run_fortnights WHERE run_id = ? ORDER BY fortnight`, run.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			f     store.FortnightDetail
			spend string
		)
		if err := rows.Scan(&f.Fortnight, &spend, &f.Alert); err != nil {
			return err
		}
		if f.Spend, err = decimal.NewFromString(spend); err != nil {
			return err
		}
		run.Fortnights = append(run.Fortnights, f)
	}
	return rows.Err()
}

func (a *Archive) loadStocks(ctx context.Context, run *store.Run) error {
	rows, err := a.db.QueryContext(ctx,
		`SELECT product, category, priority, history_json FROM run_stock WHERE run_id = ? ORDER BY rowid`, run.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			s           store.StockDetail
			priority    string
			historyJSON string
		)
		if err := rows.Scan(&s.Product, &s.Category, &priority, &historyJSON); err != nil {
			return err
		}
		s.Priority = catalog.ParseTier(priority)
		if err := json.Unmarshal([]byte(historyJSON), &s.History); err != nil {
			return fmt.Errorf("corrupt stock history for %s: %w", s.Product, err)
		}
		run.Stocks = append(run.Stocks, s)
	}
	return rows.Err()
}

func (a *Archive) loadPurchases(ctx context.Context, run *store.Run) error {
	rows, err := a.db.QueryContext(ctx,
		`SELECT line FROM run_purchases WHERE run_id = ? ORDER BY seq`, run.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var line string
		if err := rows.Scan(&line); err != nil {
			return err
		}
		run.PurchaseLog = append(run.PurchaseLog, line)
	}
	return rows.Err()
}

// =============================================================================
// DELETE
// =============================================================================

func (a *Archive) Delete(ctx context.Context, id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Children first, then the parent row.
	for _, table := range []string{"run_categories", "run_fortnights", "run_stock", "run_purchases"} {
		if _, err := tx.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s WHERE run_id = ?`, table), id); err != nil {
			return err
		}
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM simulation_runs WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrRunNotFound
	}
	return tx.Commit()
}

// =============================================================================
// AGGREGATES
// =============================================================================

func (a *Archive) Summary(ctx context.Context) (store.Summary, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	rows, err := a.db.QueryContext(ctx, `SELECT total_spend FROM simulation_runs`)
	if err != nil {
		return store.Summary{}, err
	}
	defer rows.Close()

	// Totals are stored as decimal text; averaging happens here rather
	// than in SQL to keep exact arithmetic.
	total := decimal.Zero
	count := 0
	for rows.Next() {
		var spend string
		if err := rows.Scan(&spend); err != nil {
			return store.Summary{}, err
		}
		d, err := decimal.NewFromString(spend)
		if err != nil {
			return store.Summary{}, err
		}
		total = total.Add(d)
		count++
	}
	if err := rows.Err(); err != nil {
		return store.Summary{}, err
	}

	s := store.Summary{RunCount: count, AverageTotal: decimal.Zero}
	if count > 0 {
		s.AverageTotal = total.Div(decimal.NewFromInt(int64(count)))
	}
	return s, nil
}

func (a *Archive) PopulationCurve(ctx context.Context) ([]store.PopulationPoint, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	rows, err := a.db.QueryContext(ctx,
		`SELECT population, total_spend FROM simulation_runs ORDER BY population ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.PopulationPoint
	for rows.Next() {
		var (
			p     store.PopulationPoint
			spend string
		)
		if err := rows.Scan(&p.Population, &spend); err != nil {
			return nil, err
		}
		if p.TotalSpend, err = decimal.NewFromString(spend); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

type summaryScanner interface {
	Scan(dest ...any) error
}

func scanSummary(row summaryScanner) (store.RunSummary, error) {
	var (
		s                     store.RunSummary
		createdAt, totalSpend string
	)
	if err := row.Scan(&s.ID, &createdAt, &s.Population, &totalSpend); err != nil {
		return store.RunSummary{}, err
	}
	var err error
	if s.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return store.RunSummary{}, fmt.Errorf("corrupt created_at: %w", err)
	}
	if s.TotalSpend, err = decimal.NewFromString(totalSpend); err != nil {
		return store.RunSummary{}, fmt.Errorf("corrupt total_spend: %w", err)
	}
	return s, nil
}

// Compile-time check that Archive implements store.Archive.
var _ store.Archive = (*Archive)(nil)
