package database

import (
	"database/sql"
	"fmt"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS menu (
    id BIGSERIAL PRIMARY KEY,
    category TEXT NOT NULL,
    drink_name TEXT NOT NULL,
    price_m INTEGER NOT NULL DEFAULT 0,
    price_l INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS options (
    id BIGSERIAL PRIMARY KEY,
    type TEXT NOT NULL,
    name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS orders (
    id BIGSERIAL PRIMARY KEY,
    drink_name TEXT NOT NULL,
    size TEXT NOT NULL,
    sugar TEXT NOT NULL DEFAULT '',
    ice TEXT NOT NULL DEFAULT '',
    toppings TEXT NOT NULL DEFAULT '[]',
    total_price INTEGER NOT NULL,
    created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_menu_category ON menu(category);
CREATE INDEX IF NOT EXISTS idx_menu_drink_name ON menu(drink_name);
CREATE INDEX IF NOT EXISTS idx_options_type ON options(type);
`

// seedSQL fills the option catalog on first start only; reruns are no-ops
// because the insert is guarded by the table being empty.
const seedSQL = `
INSERT INTO options (type, name)
SELECT v.type, v.name
FROM (VALUES
    ('ice', '正常冰'),
    ('ice', '少冰'),
    ('ice', '微冰'),
    ('ice', '去冰'),
    ('sugar', '全糖'),
    ('sugar', '半糖'),
    ('sugar', '微糖'),
    ('sugar', '無糖'),
    ('topping', '珍珠'),
    ('topping', '波霸'),
    ('topping', '椰果'),
    ('topping', '仙草')
) AS v(type, name)
WHERE NOT EXISTS (SELECT 1 FROM options);
`

// InitSchema creates the three tables if absent. It never drops or alters
// existing tables, so it is safe to run on every process start.
func InitSchema(db *sql.DB) error {
	_, err := db.Exec(schemaSQL)
	if err != nil {
		return fmt.Errorf("failed to init schema: %w", err)
	}
	return nil
}

func SeedOptions(db *sql.DB) error {
	_, err := db.Exec(seedSQL)
	if err != nil {
		return fmt.Errorf("failed to seed options: %w", err)
	}
	return nil
}
