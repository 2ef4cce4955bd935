package database

import (
	"fmt"

	"gorm.io/gorm"
)

// Migrate applies the idempotent raw-SQL pass AutoMigrate can't express:
// - revenue column type NUMERIC(12,2)
// - the composite unique natural-key indexes backing the webhook upserts
// - listing sort indexes
// - the call outcome CHECK constraint
func Migrate() error {
	return DB.Transaction(func(tx *gorm.DB) error {
		alters := []string{
			`ALTER TABLE calls ALTER COLUMN revenue TYPE numeric(12,2)`,
		}
		for _, stmt := range alters {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("column type migration failed on: %s - %w", stmt, err)
			}
		}

		indexes := []string{
			`CREATE UNIQUE INDEX IF NOT EXISTS idx_calls_call_id ON calls (call_id)`,
			`CREATE UNIQUE INDEX IF NOT EXISTS idx_eocs_natural_key ON eocs (date_of_call, calendar, full_name, phone_number, email_address, call_outcome)`,
			`CREATE UNIQUE INDEX IF NOT EXISTS idx_booked_calls_natural_key ON booked_calls (email, calendar_start_time)`,
			`CREATE INDEX IF NOT EXISTS idx_calls_call_date ON calls (call_date DESC)`,
			`CREATE INDEX IF NOT EXISTS idx_calls_sales_rep ON calls (sales_rep)`,
			`CREATE INDEX IF NOT EXISTS idx_calls_outcome ON calls (outcome)`,
			`CREATE INDEX IF NOT EXISTS idx_eocs_created_at ON eocs (created_at DESC)`,
			`CREATE INDEX IF NOT EXISTS idx_booked_calls_start_time ON booked_calls (calendar_start_time DESC)`,
		}
		for _, stmt := range indexes {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("index migration failed on: %s - %w", stmt, err)
			}
		}

		checks := []string{
			`DO $$
			BEGIN
				IF NOT EXISTS (
					SELECT 1 FROM pg_constraint
					WHERE conrelid = 'calls'::regclass
					  AND conname  = 'chk_calls_outcome'
				) THEN
					ALTER TABLE calls
					ADD CONSTRAINT chk_calls_outcome
					CHECK (outcome IN ('completed', 'no_answer', 'voicemail', 'interested', 'not_interested', 'callback', 'qualified', 'not_qualified'));
				END IF;
			END $$;`,
			`DO $$
			BEGIN
				IF NOT EXISTS (
					SELECT 1 FROM pg_constraint
					WHERE conrelid = 'calls'::regclass
					  AND conname  = 'chk_calls_revenue_nonneg'
				) THEN
					ALTER TABLE calls
					ADD CONSTRAINT chk_calls_revenue_nonneg
					CHECK (revenue >= 0);
				END IF;
			END $$;`,
		}
		for _, stmt := range checks {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("check constraint migration failed: %w", err)
			}
		}

		return nil
	})
}
