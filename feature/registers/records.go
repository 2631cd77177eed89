package registers

import "github.com/shopspring/decimal"

// RemainRecord is the ERP wire form of a Remain.
type RemainRecord struct {
	IsPhysicallyDeleted bool            `json:"isPhysicallyDeleted"`
	Subdivision         string          `json:"Subdivision" validate:"required"`
	SubdivisionName     string          `json:"SubdivisionName"`
	ProductUid          string          `json:"ProductUid" validate:"required"`
	Quantity            decimal.Decimal `json:"Quantity"`
}

func (r RemainRecord) KeyParts() (string, string) { return r.Subdivision, r.ProductUid }
func (r RemainRecord) PhysicallyDeleted() bool    { return r.IsPhysicallyDeleted }
func (r RemainRecord) Magnitude() decimal.Decimal { return r.Quantity }

func (r RemainRecord) ToModel() Remain {
	return Remain{
		Subdivision:     r.Subdivision,
		ProductUid:      r.ProductUid,
		SubdivisionName: r.SubdivisionName,
		Quantity:        r.Quantity,
	}
}

// PriceRecord is the ERP wire form of a Price. The value travels as "Price".
type PriceRecord struct {
	IsPhysicallyDeleted bool            `json:"isPhysicallyDeleted"`
	PriceTypeRef        string          `json:"PriceTypeRef" validate:"required"`
	ProductRef          string          `json:"ProductRef" validate:"required"`
	PriceValue          decimal.Decimal `json:"Price"`
	Currency            string          `json:"Currency"`
}

func (r PriceRecord) KeyParts() (string, string) { return r.PriceTypeRef, r.ProductRef }
func (r PriceRecord) PhysicallyDeleted() bool    { return r.IsPhysicallyDeleted }
func (r PriceRecord) Magnitude() decimal.Decimal { return r.PriceValue }

func (r PriceRecord) ToModel() Price {
	return Price{
		PriceTypeRef: r.PriceTypeRef,
		ProductRef:   r.ProductRef,
		PriceValue:   r.PriceValue,
		Currency:     r.Currency,
	}
}
