package seed

import (
	"database/sql"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/kaniou/kaniou.be/internal/orders"
)

const demoOrderReference = "KAN-2024-0001"

// Config contains the values required by the startup seed.
type Config struct {
	AdminEmail    string
	AdminPassword string
}

// Stats contains seed operation counters.
type Stats struct {
	Inserts int
	Updates int
}

// Run executes the startup seed in an idempotent way: an admin user for the
// panel and one demo order so the tracking endpoint has something to show in
// a fresh dev database.
func Run(database *sql.DB, cfg Config) (Stats, error) {
	tx, err := database.Begin()
	if err != nil {
		return Stats{}, fmt.Errorf("begin seed transaction: %w", err)
	}

	stats := Stats{}

	if err := seedAdmin(tx, cfg.AdminEmail, cfg.AdminPassword, &stats); err != nil {
		_ = tx.Rollback()
		return Stats{}, err
	}
	if err := seedDemoOrder(tx, &stats); err != nil {
		_ = tx.Rollback()
		return Stats{}, err
	}

	if err := tx.Commit(); err != nil {
		return Stats{}, fmt.Errorf("commit seed transaction: %w", err)
	}

	return stats, nil
}

func seedAdmin(tx *sql.Tx, email, password string, stats *Stats) error {
	if email == "" || password == "" {
		return nil
	}

	var exists bool
	if err := tx.QueryRow(`SELECT EXISTS(SELECT 1 FROM users WHERE email = ? LIMIT 1)`, email).Scan(&exists); err != nil {
		return fmt.Errorf("check admin user existence: %w", err)
	}
	if exists {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	if _, err := tx.Exec(`INSERT INTO users (email, password_hash) VALUES (?, ?)`, email, string(hash)); err != nil {
		return fmt.Errorf("insert admin user: %w", err)
	}
	stats.Inserts++
	return nil
}

func seedDemoOrder(tx *sql.Tx, stats *Stats) error {
	var exists bool
	if err := tx.QueryRow(`SELECT EXISTS(SELECT 1 FROM orders WHERE reference = ? LIMIT 1)`, demoOrderReference).Scan(&exists); err != nil {
		return fmt.Errorf("check demo order existence: %w", err)
	}
	if exists {
		return nil
	}

	if _, err := tx.Exec(`
		INSERT INTO orders (reference, customer_name, product_id, status, notes)
		VALUES (?, ?, ?, ?, ?)
	`, demoOrderReference, "Showroom demo", "overgordijnen", string(orders.StatusReceived), "Demo-order voor de tracker"); err != nil {
		return fmt.Errorf("insert demo order: %w", err)
	}
	stats.Inserts++
	return nil
}
