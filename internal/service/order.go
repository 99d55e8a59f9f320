package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"teashop/internal/model"
)

var (
	ErrInvalidSize    = errors.New("size must be M or L")
	ErrSizeNotOffered = errors.New("size not offered for this drink")
	ErrOrderRejected  = errors.New("order rejected by store")
)

// ToppingPrice is the flat per-topping surcharge; there is no per-topping
// price table.
const ToppingPrice = 10

const createdAtLayout = "2006-01-02 15:04:05"

type OrderService struct {
	db      *sql.DB
	catalog *CatalogService
}

func NewOrderService(db *sql.DB, catalog *CatalogService) *OrderService {
	return &OrderService{db: db, catalog: catalog}
}

// Submit prices an order against the catalog and persists it. The total is
// always recomputed server-side; nothing from the request is trusted for
// pricing. Identical submissions create distinct records.
func (s *OrderService) Submit(ctx context.Context, req *model.OrderRequest) (*model.OrderRecord, error) {
	drink, err := s.catalog.GetDrink(ctx, req.DrinkName)
	if err != nil {
		return nil, err
	}

	base, err := priceForSize(drink, req.Size)
	if err != nil {
		return nil, err
	}

	total := totalPrice(base, len(req.Add))
	createdAt := time.Now().Format(createdAtLayout)

	toppings, err := encodeToppings(req.Add)
	if err != nil {
		return nil, fmt.Errorf("encode toppings: %w", err)
	}

	var id int64
	err = s.db.QueryRowContext(ctx,
		`INSERT INTO orders (drink_name, size, sugar, ice, toppings, total_price, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		req.DrinkName, req.Size, req.Sugar, req.Ice, toppings, total, createdAt,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOrderRejected, err)
	}

	add := req.Add
	if add == nil {
		add = []string{}
	}

	return &model.OrderRecord{
		ID:         id,
		DrinkName:  req.DrinkName,
		Size:       req.Size,
		Sugar:      req.Sugar,
		Ice:        req.Ice,
		Add:        add,
		TotalPrice: total,
		CreatedAt:  createdAt,
	}, nil
}

// List returns the full order history, most recent first.
func (s *OrderService) List(ctx context.Context) ([]model.OrderRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, drink_name, size, sugar, ice, toppings, total_price, created_at
		FROM orders
		ORDER BY id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	orders := []model.OrderRecord{}
	for rows.Next() {
		var o model.OrderRecord
		var toppings string
		if err := rows.Scan(&o.ID, &o.DrinkName, &o.Size, &o.Sugar, &o.Ice, &toppings, &o.TotalPrice, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		if o.Add, err = decodeToppings(toppings); err != nil {
			return nil, fmt.Errorf("decode toppings for order %d: %w", o.ID, err)
		}
		orders = append(orders, o)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}

	return orders, nil
}

// priceForSize maps a strict two-value size to the drink's base price.
// A stored price of 0 means the size is not sold.
func priceForSize(drink *model.MenuItem, size string) (int, error) {
	var price int
	switch size {
	case model.SizeMedium:
		price = drink.PriceM
	case model.SizeLarge:
		price = drink.PriceL
	default:
		return 0, fmt.Errorf("%w: got %q", ErrInvalidSize, size)
	}

	if price == 0 {
		return 0, fmt.Errorf("%w: %s size %s", ErrSizeNotOffered, drink.DrinkName, size)
	}

	return price, nil
}

func totalPrice(base, toppingCount int) int {
	return base + ToppingPrice*toppingCount
}

// encodeToppings serializes the add list into the toppings column. A nil
// list encodes as an empty JSON array so history round-trips cleanly.
func encodeToppings(add []string) (string, error) {
	if add == nil {
		add = []string{}
	}
	b, err := json.Marshal(add)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeToppings(raw string) ([]string, error) {
	add := []string{}
	if err := json.Unmarshal([]byte(raw), &add); err != nil {
		return nil, err
	}
	if add == nil {
		add = []string{}
	}
	return add, nil
}
