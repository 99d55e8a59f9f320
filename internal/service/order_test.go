package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teashop/internal/model"
)

func TestPriceForSize(t *testing.T) {
	earlGrey := &model.MenuItem{DrinkName: "伯爵紅茶", PriceM: 25, PriceL: 30}
	largeOnly := &model.MenuItem{DrinkName: "冬瓜檸檬", PriceM: 0, PriceL: 45}

	tests := []struct {
		name    string
		drink   *model.MenuItem
		size    string
		want    int
		wantErr error
	}{
		{name: "medium", drink: earlGrey, size: "M", want: 25},
		{name: "large", drink: earlGrey, size: "L", want: 30},
		{name: "lowercase rejected", drink: earlGrey, size: "m", wantErr: ErrInvalidSize},
		{name: "unknown size rejected", drink: earlGrey, size: "XL", wantErr: ErrInvalidSize},
		{name: "empty size rejected", drink: earlGrey, size: "", wantErr: ErrInvalidSize},
		{name: "zero price means not offered", drink: largeOnly, size: "M", wantErr: ErrSizeNotOffered},
		{name: "offered size of partial drink", drink: largeOnly, size: "L", want: 45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := priceForSize(tt.drink, tt.size)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTotalPrice(t *testing.T) {
	tests := []struct {
		name     string
		base     int
		toppings int
		want     int
	}{
		{name: "no toppings", base: 25, toppings: 0, want: 25},
		{name: "one topping", base: 25, toppings: 1, want: 35},
		{name: "large with two toppings", base: 30, toppings: 2, want: 50},
		{name: "many toppings", base: 60, toppings: 5, want: 110},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, totalPrice(tt.base, tt.toppings))
		})
	}
}

func TestToppingsRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		add  []string
	}{
		{name: "nil", add: nil},
		{name: "empty", add: []string{}},
		{name: "single", add: []string{"珍珠"}},
		{name: "two toppings", add: []string{"珍珠", "波霸"}},
		{name: "order preserved", add: []string{"仙草", "椰果", "珍珠"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := encodeToppings(tt.add)
			require.NoError(t, err)

			decoded, err := decodeToppings(encoded)
			require.NoError(t, err)

			want := tt.add
			if want == nil {
				want = []string{}
			}
			assert.Equal(t, want, decoded)
		})
	}
}

func TestEncodeToppingsNilIsEmptyArray(t *testing.T) {
	encoded, err := encodeToppings(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", encoded)
}

func TestDecodeToppingsRejectsGarbage(t *testing.T) {
	_, err := decodeToppings("not json")
	assert.Error(t, err)
}
