package model

const (
	OptionTypeIce     = "ice"
	OptionTypeSugar   = "sugar"
	OptionTypeTopping = "topping"
)

// OptionTypes is the closed set of option categories, in the order they
// appear in grouped listings.
var OptionTypes = []string{OptionTypeIce, OptionTypeSugar, OptionTypeTopping}

func ValidOptionType(typ string) bool {
	for _, t := range OptionTypes {
		if typ == t {
			return true
		}
	}
	return false
}
