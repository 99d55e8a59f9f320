package model

type MenuItem struct {
	ID        int64  `json:"id"`
	Category  string `json:"category"`
	DrinkName string `json:"drink_name"`
	PriceM    int    `json:"price_m"`
	PriceL    int    `json:"price_l"`
}

// SizePrices is the per-drink price pair in menu listings. A price of 0
// means the size is not offered.
type SizePrices struct {
	M int `json:"M"`
	L int `json:"L"`
}

// Menu maps category -> drink name -> prices.
type Menu map[string]map[string]SizePrices
