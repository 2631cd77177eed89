package catalog

// ProductRecord is the ERP wire form of a Product.
type ProductRecord struct {
	Ref                 string `json:"Ref" validate:"required"`
	IsPhysicallyDeleted bool   `json:"isPhysicallyDeleted"`
	Code                string `json:"Code"`
	Name                string `json:"Name"`
	Articul             string `json:"Articul"`
	Barcode             string `json:"Barcode"`
	IsFolder            bool   `json:"IsFolder"`
	IsActual            bool   `json:"IsActual"`
	IsDeleted           bool   `json:"IsDeleted"`
	ParentRef           string `json:"ParentRef"`
}

func (r ProductRecord) RecordKey() string       { return r.Ref }
func (r ProductRecord) PhysicallyDeleted() bool { return r.IsPhysicallyDeleted }

func (r ProductRecord) ToModel() Product {
	return Product{
		Ref:       r.Ref,
		Code:      r.Code,
		Name:      r.Name,
		Articul:   r.Articul,
		Barcode:   r.Barcode,
		IsFolder:  r.IsFolder,
		IsActual:  r.IsActual,
		IsDeleted: r.IsDeleted,
		ParentRef: r.ParentRef,
	}
}

// CounterpartyRecord is the ERP wire form of a Counterparty.
type CounterpartyRecord struct {
	Ref                 string `json:"Ref" validate:"required"`
	IsPhysicallyDeleted bool   `json:"isPhysicallyDeleted"`
	Name                string `json:"Name"`
	Code                string `json:"Code"`
	TaxId               string `json:"TaxId"`
	IsDeleted           bool   `json:"IsDeleted"`
}

func (r CounterpartyRecord) RecordKey() string       { return r.Ref }
func (r CounterpartyRecord) PhysicallyDeleted() bool { return r.IsPhysicallyDeleted }

func (r CounterpartyRecord) ToModel() Counterparty {
	return Counterparty{
		Ref:       r.Ref,
		Name:      r.Name,
		Code:      r.Code,
		TaxId:     r.TaxId,
		IsDeleted: r.IsDeleted,
	}
}

// ShopRecord is the ERP wire form of a Shop.
type ShopRecord struct {
	Ref                 string `json:"Ref" validate:"required"`
	IsPhysicallyDeleted bool   `json:"isPhysicallyDeleted"`
	Name                string `json:"Name"`
	ShopNumber          string `json:"ShopNumber"`
	IsDeleted           bool   `json:"IsDeleted"`
	PriceType           string `json:"PriceType"`
	Subdivision         string `json:"Subdivision"`
	SubdivisionName     string `json:"SubdivisionName"`
}

func (r ShopRecord) RecordKey() string       { return r.Ref }
func (r ShopRecord) PhysicallyDeleted() bool { return r.IsPhysicallyDeleted }

func (r ShopRecord) ToModel() Shop {
	return Shop{
		Ref:             r.Ref,
		Name:            r.Name,
		ShopNumber:      r.ShopNumber,
		IsDeleted:       r.IsDeleted,
		PriceType:       r.PriceType,
		Subdivision:     r.Subdivision,
		SubdivisionName: r.SubdivisionName,
	}
}

// WorkerRecord is the ERP wire form of a Worker.
type WorkerRecord struct {
	Ref                 string `json:"Ref" validate:"required"`
	IsPhysicallyDeleted bool   `json:"isPhysicallyDeleted"`
	WorkerName          string `json:"WorkerName"`
	Subdivision         string `json:"Subdivision"`
	SubdivisionName     string `json:"SubdivisionName"`
	IsActual            bool   `json:"IsActual"`
	Position            string `json:"Position"`
	PositionName        string `json:"PositionName"`
}

func (r WorkerRecord) RecordKey() string       { return r.Ref }
func (r WorkerRecord) PhysicallyDeleted() bool { return r.IsPhysicallyDeleted }

func (r WorkerRecord) ToModel() Worker {
	return Worker{
		Ref:             r.Ref,
		WorkerName:      r.WorkerName,
		Subdivision:     r.Subdivision,
		SubdivisionName: r.SubdivisionName,
		IsActual:        r.IsActual,
		Position:        r.Position,
		PositionName:    r.PositionName,
	}
}
