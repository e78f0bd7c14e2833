package types

import "github.com/shopspring/decimal"

// The menu platform encodes prices as bare JSON numbers, not quoted strings.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}
