package documents

import (
	"sync-gateway/core/reconcile"

	"github.com/shopspring/decimal"
)

// SpecificationRecord is the ERP wire form of a Specification.
type SpecificationRecord struct {
	Ref                 string                    `json:"Ref" validate:"required"`
	IsPhysicallyDeleted bool                      `json:"isPhysicallyDeleted"`
	Number              string                    `json:"Number"`
	Date                reconcile.Timestamp       `json:"Date"`
	CounterpartyRef     string                    `json:"CounterpartyRef"`
	IsDeleted           bool                      `json:"IsDeleted"`
	IsApproved          bool                      `json:"IsApproved"`
	PriceType           string                    `json:"PriceType"`
	Items               []SpecificationItemRecord `json:"Items"`
}

type SpecificationItemRecord struct {
	ProductRef string          `json:"ProductRef"`
	Price      decimal.Decimal `json:"Price"`
	Unit       string          `json:"Unit"`
	UnitName   string          `json:"UnitName"`
}

func (r SpecificationRecord) RecordKey() string       { return r.Ref }
func (r SpecificationRecord) PhysicallyDeleted() bool { return r.IsPhysicallyDeleted }

func (r SpecificationRecord) ToModel() Specification {
	doc := Specification{
		Ref:             r.Ref,
		Number:          r.Number,
		Date:            r.Date.Time,
		CounterpartyRef: r.CounterpartyRef,
		IsDeleted:       r.IsDeleted,
		IsApproved:      r.IsApproved,
		PriceType:       r.PriceType,
		Items:           make([]SpecificationItem, 0, len(r.Items)),
	}
	// Items belong to the header they arrive in; a ParetRef on the wire is ignored.
	for i, item := range r.Items {
		doc.Items = append(doc.Items, SpecificationItem{
			ParentRef:  r.Ref,
			LineNo:     i + 1,
			ProductRef: item.ProductRef,
			Price:      item.Price,
			Unit:       item.Unit,
			UnitName:   item.UnitName,
		})
	}
	return doc
}

// OrderRecord is the ERP wire form of an Order.
type OrderRecord struct {
	Ref                 string              `json:"Ref" validate:"required"`
	IsPhysicallyDeleted bool                `json:"isPhysicallyDeleted"`
	Number              string              `json:"Number"`
	Date                reconcile.Timestamp `json:"Date"`
	CounterpartyUid     string              `json:"CounterpartyUid"`
	IsDeleted           bool                `json:"IsDeleted"`
	IsApproved          bool                `json:"IsApproved"`
	Items               []OrderItemRecord   `json:"Items"`
}

type OrderItemRecord struct {
	ProductRef string          `json:"ProductRef"`
	Price      decimal.Decimal `json:"Price"`
	Count      decimal.Decimal `json:"Count"`
	CountFact  decimal.Decimal `json:"CountFact"`
	Unit       string          `json:"Unit"`
	UnitName   string          `json:"UnitName"`
}

func (r OrderRecord) RecordKey() string       { return r.Ref }
func (r OrderRecord) PhysicallyDeleted() bool { return r.IsPhysicallyDeleted }

func (r OrderRecord) ToModel() Order {
	doc := Order{
		Ref:             r.Ref,
		Number:          r.Number,
		Date:            r.Date.Time,
		CounterpartyUid: r.CounterpartyUid,
		IsDeleted:       r.IsDeleted,
		IsApproved:      r.IsApproved,
		Items:           make([]OrderItem, 0, len(r.Items)),
	}
	for i, item := range r.Items {
		doc.Items = append(doc.Items, OrderItem{
			ParentRef:  r.Ref,
			LineNo:     i + 1,
			ProductRef: item.ProductRef,
			Price:      item.Price,
			Count:      item.Count,
			CountFact:  item.CountFact,
			Unit:       item.Unit,
			UnitName:   item.UnitName,
		})
	}
	return doc
}

// ReturnAndComingRecord is the ERP wire form of a ReturnAndComing.
type ReturnAndComingRecord struct {
	Ref                 string                      `json:"Ref" validate:"required"`
	IsPhysicallyDeleted bool                        `json:"isPhysicallyDeleted"`
	Number              string                      `json:"Number"`
	DocType             string                      `json:"DocType"`
	Date                reconcile.Timestamp         `json:"Date"`
	SenderUid           string                      `json:"SenderUid"`
	RecipientUid        string                      `json:"RecipientUid"`
	OrderUid            string                      `json:"OrderUid"`
	IsDeleted           bool                        `json:"IsDeleted"`
	IsApproved          bool                        `json:"IsApproved"`
	Items               []ReturnAndComingItemRecord `json:"Items"`
}

type ReturnAndComingItemRecord struct {
	ProductRef    string          `json:"ProductRef"`
	ProductName   string          `json:"ProductName"`
	Price         decimal.Decimal `json:"Price"`
	Count         decimal.Decimal `json:"Count"`
	CountReceived decimal.Decimal `json:"CountReceived"`
	CountAccepted decimal.Decimal `json:"CountAccepted"`
	CountInOrder  decimal.Decimal `json:"CountInOrder"`
	Unit          string          `json:"Unit"`
	UnitName      string          `json:"UnitName"`
}

func (r ReturnAndComingRecord) RecordKey() string       { return r.Ref }
func (r ReturnAndComingRecord) PhysicallyDeleted() bool { return r.IsPhysicallyDeleted }

func (r ReturnAndComingRecord) ToModel() ReturnAndComing {
	doc := ReturnAndComing{
		Ref:          r.Ref,
		Number:       r.Number,
		DocType:      r.DocType,
		Date:         r.Date.Time,
		SenderUid:    r.SenderUid,
		RecipientUid: r.RecipientUid,
		OrderUid:     r.OrderUid,
		IsDeleted:    r.IsDeleted,
		IsApproved:   r.IsApproved,
		Items:        make([]ReturnAndComingItem, 0, len(r.Items)),
	}
	for i, item := range r.Items {
		doc.Items = append(doc.Items, ReturnAndComingItem{
			ParentRef:     r.Ref,
			LineNo:        i + 1,
			ProductRef:    item.ProductRef,
			ProductName:   item.ProductName,
			Price:         item.Price,
			Count:         item.Count,
			CountReceived: item.CountReceived,
			CountAccepted: item.CountAccepted,
			CountInOrder:  item.CountInOrder,
			Unit:          item.Unit,
			UnitName:      item.UnitName,
		})
	}
	return doc
}
