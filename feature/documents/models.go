package documents

import (
	"time"

	"github.com/shopspring/decimal"
)

// Specification is a price agreement with a counterparty.
type Specification struct {
	Ref             string              `gorm:"primaryKey;size:64" json:"ref"`
	Number          string              `gorm:"size:64" json:"number"`
	Date            time.Time           `gorm:"index" json:"date"`
	CounterpartyRef string              `gorm:"size:64;index" json:"counterpartyRef"`
	IsDeleted       bool                `json:"isDeleted"`
	IsApproved      bool                `json:"isApproved"`
	PriceType       string              `gorm:"size:64" json:"priceType"`
	Items           []SpecificationItem `gorm:"foreignKey:ParentRef;references:Ref;constraint:OnDelete:CASCADE" json:"items"`
}

type SpecificationItem struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	ParentRef  string          `gorm:"size:64;index" json:"parentRef"`
	LineNo     int             `json:"lineNo"`
	ProductRef string          `gorm:"size:64" json:"productRef"`
	Price      decimal.Decimal `gorm:"type:decimal(18,4)" json:"price"`
	Unit       string          `gorm:"size:64" json:"unit"`
	UnitName   string          `gorm:"size:128" json:"unitName"`
}

// Order is a purchase order to a counterparty.
type Order struct {
	Ref             string      `gorm:"primaryKey;size:64" json:"ref"`
	Number          string      `gorm:"size:64" json:"number"`
	Date            time.Time   `gorm:"index" json:"date"`
	CounterpartyUid string      `gorm:"size:64;index" json:"counterpartyUid"`
	IsDeleted       bool        `json:"isDeleted"`
	IsApproved      bool        `json:"isApproved"`
	Items           []OrderItem `gorm:"foreignKey:ParentRef;references:Ref;constraint:OnDelete:CASCADE" json:"items"`
}

type OrderItem struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	ParentRef  string          `gorm:"size:64;index" json:"parentRef"`
	LineNo     int             `json:"lineNo"`
	ProductRef string          `gorm:"size:64" json:"productRef"`
	Price      decimal.Decimal `gorm:"type:decimal(18,4)" json:"price"`
	Count      decimal.Decimal `gorm:"type:decimal(18,4)" json:"count"`
	CountFact  decimal.Decimal `gorm:"type:decimal(18,4)" json:"countFact"`
	Unit       string          `gorm:"size:64" json:"unit"`
	UnitName   string          `gorm:"size:128" json:"unitName"`
}

// ReturnAndComing is a goods movement between subdivisions: an incoming
// delivery or a return, told apart by DocType.
type ReturnAndComing struct {
	Ref          string                `gorm:"primaryKey;size:64" json:"ref"`
	Number       string                `gorm:"size:64" json:"number"`
	DocType      string                `gorm:"size:64" json:"docType"`
	Date         time.Time             `gorm:"index" json:"date"`
	SenderUid    string                `gorm:"size:64" json:"senderUid"`
	RecipientUid string                `gorm:"size:64" json:"recipientUid"`
	OrderUid     string                `gorm:"size:64" json:"orderUid"`
	IsDeleted    bool                  `json:"isDeleted"`
	IsApproved   bool                  `json:"isApproved"`
	Items        []ReturnAndComingItem `gorm:"foreignKey:ParentRef;references:Ref;constraint:OnDelete:CASCADE" json:"items"`
}

type ReturnAndComingItem struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	ParentRef     string          `gorm:"size:64;index" json:"parentRef"`
	LineNo        int             `json:"lineNo"`
	ProductRef    string          `gorm:"size:64" json:"productRef"`
	ProductName   string          `gorm:"size:255" json:"productName"`
	Price         decimal.Decimal `gorm:"type:decimal(18,4)" json:"price"`
	Count         decimal.Decimal `gorm:"type:decimal(18,4)" json:"count"`
	CountReceived decimal.Decimal `gorm:"type:decimal(18,4)" json:"countReceived"`
	CountAccepted decimal.Decimal `gorm:"type:decimal(18,4)" json:"countAccepted"`
	CountInOrder  decimal.Decimal `gorm:"type:decimal(18,4)" json:"countInOrder"`
	Unit          string          `gorm:"size:64" json:"unit"`
	UnitName      string          `gorm:"size:128" json:"unitName"`
}
