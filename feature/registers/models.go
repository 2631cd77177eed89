package registers

import "github.com/shopspring/decimal"

// Remain is the stock balance of a product in a subdivision.
type Remain struct {
	Subdivision     string          `gorm:"primaryKey;size:64" json:"subdivision"`
	ProductUid      string          `gorm:"primaryKey;size:64" json:"productUid"`
	SubdivisionName string          `gorm:"size:255" json:"subdivisionName"`
	Quantity        decimal.Decimal `gorm:"type:decimal(18,4)" json:"quantity"`
}

// Price is the price of a product under a price type.
type Price struct {
	PriceTypeRef string          `gorm:"primaryKey;size:64" json:"priceTypeRef"`
	ProductRef   string          `gorm:"primaryKey;size:64" json:"productRef"`
	PriceValue   decimal.Decimal `gorm:"type:decimal(18,4)" json:"priceValue"`
	Currency     string          `gorm:"size:16" json:"currency"`
}
