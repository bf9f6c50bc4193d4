package prices

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	// Register sqlite3 driver
	_ "github.com/mattn/go-sqlite3"
)

// Store is a local sqlite history cache so repeated analyses of the
// same symbols don't hammer the provider. Strictly a cache: rows are
// upserted on fetch and the provider stays the source of truth.
type Store struct {
	db *sql.DB
}

func OpenStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("could not open price store %s: %w", dsn, err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS daily_price(
		symbol TEXT NOT NULL,
		date TEXT NOT NULL,
		close TEXT NOT NULL,
		updated_at INTEGER NOT NULL,
		PRIMARY KEY(symbol, date)
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("could not init price store schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) SaveBars(bars []Bar) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	now := time.Now().UTC().Unix()
	for _, b := range bars {
		_, err := tx.Exec(
			`INSERT INTO daily_price(symbol, date, close, updated_at) VALUES(?,?,?,?)
			 ON CONFLICT(symbol, date) DO UPDATE SET close=excluded.close, updated_at=excluded.updated_at`,
			b.Symbol, b.Date.Format("2006-01-02"), b.Close.String(), now,
		)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("could not save bar %s %s: %w", b.Symbol, b.Date.Format("2006-01-02"), err)
		}
	}
	return tx.Commit()
}

func (s *Store) GetBars(symbol string, start, end time.Time) ([]Bar, error) {
	rows, err := s.db.Query(
		`SELECT date, close FROM daily_price WHERE symbol=? AND date>=? AND date<=? ORDER BY date ASC`,
		symbol, start.Format("2006-01-02"), end.Format("2006-01-02"),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Bar{}
	for rows.Next() {
		var dateStr, closeStr string
		if err := rows.Scan(&dateStr, &closeStr); err != nil {
			return nil, err
		}
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, fmt.Errorf("bad date %q in price store: %w", dateStr, err)
		}
		close, err := decimal.NewFromString(closeStr)
		if err != nil {
			return nil, fmt.Errorf("bad price %q in price store: %w", closeStr, err)
		}
		out = append(out, Bar{Symbol: symbol, Date: date, Close: close})
	}
	return out, rows.Err()
}
