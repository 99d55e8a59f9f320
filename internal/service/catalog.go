package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"teashop/internal/model"
)

var (
	ErrDrinkNotFound     = errors.New("no such drink")
	ErrUnknownOptionType = errors.New("unknown option type")
	ErrInvalidMenuItem   = errors.New("invalid menu item")
)

type CatalogService struct {
	db *sql.DB
}

func NewCatalogService(db *sql.DB) *CatalogService {
	return &CatalogService{db: db}
}

// ListMenu groups drinks by category. An empty filter returns the whole
// catalog; a category with no rows yields an empty mapping, not an error.
func (s *CatalogService) ListMenu(ctx context.Context, category string) (model.Menu, error) {
	query := `SELECT category, drink_name, price_m, price_l FROM menu ORDER BY category, id`
	args := []any{}
	if category != "" {
		query = `SELECT category, drink_name, price_m, price_l FROM menu WHERE category = $1 ORDER BY id`
		args = append(args, category)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query menu: %w", err)
	}
	defer rows.Close()

	menu := model.Menu{}
	for rows.Next() {
		var item model.MenuItem
		if err := rows.Scan(&item.Category, &item.DrinkName, &item.PriceM, &item.PriceL); err != nil {
			return nil, fmt.Errorf("scan menu row: %w", err)
		}
		if _, ok := menu[item.Category]; !ok {
			menu[item.Category] = map[string]model.SizePrices{}
		}
		menu[item.Category][item.DrinkName] = model.SizePrices{M: item.PriceM, L: item.PriceL}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}

	return menu, nil
}

// ListOptions returns the grouped option catalog. Without a filter all three
// groups are present (empty lists included); with a filter the mapping holds
// just the requested type. The asymmetric shape is a compatibility contract.
func (s *CatalogService) ListOptions(ctx context.Context, typ string) (map[string][]string, error) {
	if typ != "" && !model.ValidOptionType(typ) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOptionType, typ)
	}

	query := `SELECT type, name FROM options ORDER BY id`
	args := []any{}
	if typ != "" {
		query = `SELECT type, name FROM options WHERE type = $1 ORDER BY id`
		args = append(args, typ)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query options: %w", err)
	}
	defer rows.Close()

	res := map[string][]string{}
	if typ == "" {
		for _, t := range model.OptionTypes {
			res[t] = []string{}
		}
	} else {
		res[typ] = []string{}
	}

	for rows.Next() {
		var t, name string
		if err := rows.Scan(&t, &name); err != nil {
			return nil, fmt.Errorf("scan option row: %w", err)
		}
		res[t] = append(res[t], name)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}

	return res, nil
}

// GetDrink finds a menu row by exact drink name. Duplicate names are allowed
// in the table; the oldest row wins.
func (s *CatalogService) GetDrink(ctx context.Context, name string) (*model.MenuItem, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, category, drink_name, price_m, price_l FROM menu WHERE drink_name = $1 ORDER BY id LIMIT 1`,
		name,
	)

	var item model.MenuItem
	if err := row.Scan(&item.ID, &item.Category, &item.DrinkName, &item.PriceM, &item.PriceL); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDrinkNotFound
		}
		return nil, fmt.Errorf("get drink: %w", err)
	}

	return &item, nil
}

// AddMenuItem inserts a catalog row. drink_name is deliberately not unique:
// a duplicate shadows the older row in lookups without replacing it.
func (s *CatalogService) AddMenuItem(ctx context.Context, category, drinkName string, priceM, priceL int) (int64, error) {
	if category == "" {
		return 0, fmt.Errorf("%w: category is required", ErrInvalidMenuItem)
	}
	if drinkName == "" {
		return 0, fmt.Errorf("%w: drink_name is required", ErrInvalidMenuItem)
	}
	if priceM < 0 || priceL < 0 {
		return 0, fmt.Errorf("%w: prices must be >= 0", ErrInvalidMenuItem)
	}

	var id int64
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO menu (category, drink_name, price_m, price_l) VALUES ($1, $2, $3, $4) RETURNING id`,
		category, drinkName, priceM, priceL,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert menu item: %w", err)
	}

	return id, nil
}
