package model

const (
	SizeMedium = "M"
	SizeLarge  = "L"
)

// OrderRequest is the transient submission payload; it is never persisted
// as-is and its total is never trusted from the client.
type OrderRequest struct {
	DrinkName string   `json:"drink_name"`
	Size      string   `json:"size"`
	Sugar     string   `json:"sugar"`
	Ice       string   `json:"ice"`
	Add       []string `json:"add"`
}

// OrderRecord is a persisted order. It doubles as the receipt returned on
// submission: the request fields echoed back plus the assigned id, the
// server-computed total and the creation timestamp.
type OrderRecord struct {
	ID         int64    `json:"id"`
	DrinkName  string   `json:"drink_name"`
	Size       string   `json:"size"`
	Sugar      string   `json:"sugar"`
	Ice        string   `json:"ice"`
	Add        []string `json:"add"`
	TotalPrice int      `json:"total_price"`
	CreatedAt  string   `json:"created_at"`
}
