package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		name TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'customer',
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createStoreTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE stores (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT,
		vendor_id TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createCategoryTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE categories (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		slug TEXT UNIQUE NOT NULL,
		created_at DATETIME
	);`)
}

func createProductTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE products (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT,
		price NUMERIC NOT NULL,
		stock INTEGER NOT NULL DEFAULT 0,
		images TEXT,
		category_id TEXT NOT NULL,
		store_id TEXT NOT NULL,
		average_rating REAL NOT NULL DEFAULT 0,
		review_count INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createOrderTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE orders (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		total_amount NUMERIC NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		payment_status TEXT NOT NULL DEFAULT 'unpaid',
		tracking_number TEXT,
		carrier TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE order_items (
		id TEXT PRIMARY KEY,
		order_id TEXT NOT NULL,
		product_id TEXT NOT NULL,
		store_id TEXT NOT NULL,
		quantity INTEGER NOT NULL,
		price NUMERIC NOT NULL
	);`)
	mustExec(t, db, `CREATE TABLE order_status_histories (
		id TEXT PRIMARY KEY,
		order_id TEXT NOT NULL,
		status TEXT NOT NULL,
		changed_by TEXT NOT NULL,
		notes TEXT,
		created_at DATETIME
	);`)
}

func createEarningTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE vendor_earnings (
		id TEXT PRIMARY KEY,
		order_id TEXT NOT NULL,
		store_id TEXT NOT NULL,
		order_amount NUMERIC NOT NULL,
		commission_rate NUMERIC NOT NULL,
		commission_amount NUMERIC NOT NULL,
		vendor_amount NUMERIC NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		payout_id TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE vendor_payouts (
		id TEXT PRIMARY KEY,
		store_id TEXT NOT NULL,
		amount NUMERIC NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		notes TEXT,
		processed_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE commissions (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		rate NUMERIC NOT NULL,
		is_default BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createReviewTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE reviews (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		product_id TEXT NOT NULL,
		rating INTEGER NOT NULL,
		comment TEXT,
		verified BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME,
		UNIQUE(user_id, product_id)
	);`)
}

func createMessageTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE messages (
		id TEXT PRIMARY KEY,
		sender_id TEXT NOT NULL,
		receiver_id TEXT NOT NULL,
		product_id TEXT,
		content TEXT NOT NULL,
		is_read BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME
	);`)
}

func createFlashSaleTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE flash_sales (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		starts_at DATETIME NOT NULL,
		ends_at DATETIME NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE flash_sale_products (
		id TEXT PRIMARY KEY,
		flash_sale_id TEXT NOT NULL,
		product_id TEXT NOT NULL,
		sale_price NUMERIC NOT NULL,
		quantity_limit INTEGER,
		sold_count INTEGER NOT NULL DEFAULT 0
	);`)
}
