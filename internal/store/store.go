// Package store persists loan definitions and their computed summaries in a
// local SQLite database so repeated runs can be compared without recomputing
// from the configuration alone.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/paydown/paydown/internal/config"
	"github.com/paydown/paydown/pkg/constants"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// ErrLoanNotFound indicates the requested loan id has no stored record.
var ErrLoanNotFound = errors.New("loan not found")

const schemaVersion = 1

const schemaV1 = `
CREATE TABLE IF NOT EXISTS schema_meta (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS loans (
	id                 TEXT PRIMARY KEY,
	name               TEXT NOT NULL,
	principal          REAL NOT NULL,
	annual_rate        REAL NOT NULL,
	term_months        INTEGER NOT NULL,
	start_date         TEXT NOT NULL,
	monthly_payment    REAL NOT NULL,
	total_payment      REAL NOT NULL,
	total_interest     REAL NOT NULL,
	interest_saved     REAL NOT NULL,
	periods_shortened  INTEGER NOT NULL,
	payoff_date        TEXT NOT NULL,
	remaining_balance  REAL NOT NULL,
	updated_at         TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS early_payments (
	id                TEXT NOT NULL,
	loan_id           TEXT NOT NULL REFERENCES loans(id) ON DELETE CASCADE,
	kind              TEXT NOT NULL,
	amount            REAL NOT NULL,
	start_period      INTEGER NOT NULL,
	frequency_months  INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS rate_adjustments (
	id                TEXT NOT NULL,
	loan_id           TEXT NOT NULL REFERENCES loans(id) ON DELETE CASCADE,
	effective_period  INTEGER NOT NULL,
	new_annual_rate   REAL NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_early_payments_loan ON early_payments(loan_id);
CREATE INDEX IF NOT EXISTS idx_rate_adjustments_loan ON rate_adjustments(loan_id);
`

// Summary holds the derived figures cached alongside a loan. They are
// recomputed by the schedule engine on every save, never read back as inputs.
type Summary struct {
	MonthlyPayment   float64
	TotalPayment     float64
	TotalInterest    float64
	InterestSaved    float64
	PeriodsShortened int
	PayoffDate       string
	RemainingBalance float64
}

// LoanRecord pairs a loan definition with its cached summary.
type LoanRecord struct {
	Spec      config.LoanSpec
	Summary   Summary
	UpdatedAt string
}

// Store wraps the SQLite database holding loan records.
type Store struct {
	db     *sql.DB
	logger *zap.Logger
}

// Open opens (or creates) the SQLite database at path and ensures the schema
// is at the current version. An outdated schema is dropped and recreated.
func Open(path string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	ver, err := currentSchemaVersion(db)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("check schema version: %w", err)
	}

	if ver < schemaVersion {
		if err := migrateSchema(db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migrate schema: %w", err)
		}
	}

	logger.Debug(fmt.Sprintf("opened store at %s (schema v%d)", path, schemaVersion),
		zap.String("op", "store.Open"),
	)

	return &Store{db: db, logger: logger}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// currentSchemaVersion returns the schema version from schema_meta,
// or 0 if the table doesn't exist yet.
func currentSchemaVersion(db *sql.DB) (int, error) {
	var count int
	err := db.QueryRow(`
		SELECT COUNT(*) FROM sqlite_master
		WHERE type='table' AND name='schema_meta'
	`).Scan(&count)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, nil
	}

	var ver int
	err = db.QueryRow("SELECT version FROM schema_meta LIMIT 1").Scan(&ver)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	return ver, err
}

// migrateSchema drops all existing tables and recreates the current schema.
// The stored summaries are caches recomputed on every save, so dropping them
// loses nothing the next run cannot rebuild.
func migrateSchema(db *sql.DB) error {
	drops := []string{
		"DROP TABLE IF EXISTS early_payments",
		"DROP TABLE IF EXISTS rate_adjustments",
		"DROP TABLE IF EXISTS loans",
		"DROP TABLE IF EXISTS schema_meta",
	}
	for _, stmt := range drops {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("drop table: %w", err)
		}
	}

	if _, err := db.Exec(schemaV1); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	if _, err := db.Exec("INSERT INTO schema_meta (version) VALUES (?)", schemaVersion); err != nil {
		return fmt.Errorf("insert schema version: %w", err)
	}

	return nil
}

// SaveLoan inserts or replaces a loan record along with its events.
func (s *Store) SaveLoan(record LoanRecord) error {
	if record.Spec.ID == "" {
		return fmt.Errorf("loan %q has no id", record.Spec.Name)
	}
	termMonths, err := record.Spec.Term.Months()
	if err != nil {
		return fmt.Errorf("loan %s: %w", record.Spec.ID, err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback is a no-op after commit

	updatedAt := time.Now().UTC().Format(time.RFC3339)
	_, err = tx.Exec(`
		INSERT OR REPLACE INTO loans (id, name, principal, annual_rate, term_months,
			start_date, monthly_payment, total_payment, total_interest,
			interest_saved, periods_shortened, payoff_date, remaining_balance,
			updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, record.Spec.ID, record.Spec.Name, record.Spec.Principal, record.Spec.InterestRate,
		termMonths, record.Spec.StartDate, record.Summary.MonthlyPayment,
		record.Summary.TotalPayment, record.Summary.TotalInterest,
		record.Summary.InterestSaved, record.Summary.PeriodsShortened,
		record.Summary.PayoffDate, record.Summary.RemainingBalance, updatedAt)
	if err != nil {
		return fmt.Errorf("insert loan: %w", err)
	}

	if _, err := tx.Exec("DELETE FROM early_payments WHERE loan_id = ?", record.Spec.ID); err != nil {
		return fmt.Errorf("clear early payments: %w", err)
	}
	for _, payment := range record.Spec.EarlyPayments {
		_, err = tx.Exec(`
			INSERT INTO early_payments (id, loan_id, kind, amount, start_period, frequency_months)
			VALUES (?, ?, ?, ?, ?, ?)
		`, payment.ID, record.Spec.ID, payment.Kind, payment.Amount,
			payment.StartPeriod, payment.FrequencyMonths)
		if err != nil {
			return fmt.Errorf("insert early payment: %w", err)
		}
	}

	if _, err := tx.Exec("DELETE FROM rate_adjustments WHERE loan_id = ?", record.Spec.ID); err != nil {
		return fmt.Errorf("clear rate adjustments: %w", err)
	}
	for _, adjustment := range record.Spec.RateAdjustments {
		_, err = tx.Exec(`
			INSERT INTO rate_adjustments (id, loan_id, effective_period, new_annual_rate)
			VALUES (?, ?, ?, ?)
		`, adjustment.ID, record.Spec.ID, adjustment.EffectivePeriod, adjustment.NewInterestRate)
		if err != nil {
			return fmt.Errorf("insert rate adjustment: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	s.logger.Debug(fmt.Sprintf("saved loan %s (%s)", record.Spec.ID, record.Spec.Name),
		zap.String("op", "store.SaveLoan"),
	)

	return nil
}

// GetLoan retrieves a single loan record by id.
func (s *Store) GetLoan(id string) (LoanRecord, error) {
	row := s.db.QueryRow(`
		SELECT id, name, principal, annual_rate, term_months, start_date,
			monthly_payment, total_payment, total_interest, interest_saved,
			periods_shortened, payoff_date, remaining_balance, updated_at
		FROM loans WHERE id = ?
	`, id)

	record, err := scanLoan(row)
	if err == sql.ErrNoRows {
		return LoanRecord{}, fmt.Errorf("loan %s: %w", id, ErrLoanNotFound)
	}
	if err != nil {
		return LoanRecord{}, fmt.Errorf("query loan: %w", err)
	}

	if err := s.loadEvents(&record); err != nil {
		return LoanRecord{}, err
	}
	return record, nil
}

// ListLoans retrieves all stored loan records ordered by name.
func (s *Store) ListLoans() ([]LoanRecord, error) {
	rows, err := s.db.Query(`
		SELECT id, name, principal, annual_rate, term_months, start_date,
			monthly_payment, total_payment, total_interest, interest_saved,
			periods_shortened, payoff_date, remaining_balance, updated_at
		FROM loans
		ORDER BY name ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query loans: %w", err)
	}
	defer rows.Close()

	var out []LoanRecord
	for rows.Next() {
		record, err := scanLoan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan loan: %w", err)
		}
		out = append(out, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate loans: %w", err)
	}
	rows.Close()

	for i := range out {
		if err := s.loadEvents(&out[i]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// DeleteLoan removes a loan and, via cascade, its events.
func (s *Store) DeleteLoan(id string) error {
	result, err := s.db.Exec("DELETE FROM loans WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete loan: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete loan: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("loan %s: %w", id, ErrLoanNotFound)
	}

	s.logger.Debug(fmt.Sprintf("deleted loan %s", id),
		zap.String("op", "store.DeleteLoan"),
	)

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLoan(row rowScanner) (LoanRecord, error) {
	var record LoanRecord
	var termMonths int
	err := row.Scan(&record.Spec.ID, &record.Spec.Name, &record.Spec.Principal,
		&record.Spec.InterestRate, &termMonths, &record.Spec.StartDate,
		&record.Summary.MonthlyPayment, &record.Summary.TotalPayment,
		&record.Summary.TotalInterest, &record.Summary.InterestSaved,
		&record.Summary.PeriodsShortened, &record.Summary.PayoffDate,
		&record.Summary.RemainingBalance, &record.UpdatedAt)
	if err != nil {
		return LoanRecord{}, err
	}
	record.Spec.Term = config.TermSpec{Value: termMonths, Unit: constants.TermUnitMonths}
	return record, nil
}

// loadEvents fills in the early payments and rate adjustments for a loan,
// preserving the order they were saved in.
func (s *Store) loadEvents(record *LoanRecord) error {
	rows, err := s.db.Query(`
		SELECT id, kind, amount, start_period, frequency_months
		FROM early_payments
		WHERE loan_id = ?
		ORDER BY rowid ASC
	`, record.Spec.ID)
	if err != nil {
		return fmt.Errorf("query early payments: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var payment config.EarlyPaymentSpec
		if err := rows.Scan(&payment.ID, &payment.Kind, &payment.Amount,
			&payment.StartPeriod, &payment.FrequencyMonths); err != nil {
			return fmt.Errorf("scan early payment: %w", err)
		}
		record.Spec.EarlyPayments = append(record.Spec.EarlyPayments, payment)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate early payments: %w", err)
	}
	rows.Close()

	adjRows, err := s.db.Query(`
		SELECT id, effective_period, new_annual_rate
		FROM rate_adjustments
		WHERE loan_id = ?
		ORDER BY rowid ASC
	`, record.Spec.ID)
	if err != nil {
		return fmt.Errorf("query rate adjustments: %w", err)
	}
	defer adjRows.Close()

	for adjRows.Next() {
		var adjustment config.RateAdjustmentSpec
		if err := adjRows.Scan(&adjustment.ID, &adjustment.EffectivePeriod,
			&adjustment.NewInterestRate); err != nil {
			return fmt.Errorf("scan rate adjustment: %w", err)
		}
		record.Spec.RateAdjustments = append(record.Spec.RateAdjustments, adjustment)
	}
	if err := adjRows.Err(); err != nil {
		return fmt.Errorf("iterate rate adjustments: %w", err)
	}

	return nil
}
