package catalog

// Product is a nomenclature item. Folders group products in a tree through ParentRef.
type Product struct {
	Ref       string `gorm:"primaryKey;size:64" json:"ref"`
	Code      string `gorm:"size:64;index" json:"code"`
	Name      string `gorm:"size:255" json:"name"`
	Articul   string `gorm:"size:128" json:"articul"`
	Barcode   string `gorm:"size:128" json:"barcode"`
	IsFolder  bool   `json:"isFolder"`
	IsActual  bool   `json:"isActual"`
	IsDeleted bool   `json:"isDeleted"`
	ParentRef string `gorm:"size:64;index" json:"parentRef"`
}

// Counterparty is a supplier or customer.
type Counterparty struct {
	Ref       string `gorm:"primaryKey;size:64" json:"ref"`
	Name      string `gorm:"size:255" json:"name"`
	Code      string `gorm:"size:64" json:"code"`
	TaxId     string `gorm:"size:32" json:"taxId"`
	IsDeleted bool   `json:"isDeleted"`
}

// Shop is a retail point bound to a subdivision and a price type.
type Shop struct {
	Ref             string `gorm:"primaryKey;size:64" json:"ref"`
	Name            string `gorm:"size:255" json:"name"`
	ShopNumber      string `gorm:"size:32" json:"shopNumber"`
	IsDeleted       bool   `json:"isDeleted"`
	PriceType       string `gorm:"size:64" json:"priceType"`
	Subdivision     string `gorm:"size:64" json:"subdivision"`
	SubdivisionName string `gorm:"size:255" json:"subdivisionName"`
}

// Worker is an employee assigned to a subdivision.
type Worker struct {
	Ref             string `gorm:"primaryKey;size:64" json:"ref"`
	WorkerName      string `gorm:"size:255" json:"workerName"`
	Subdivision     string `gorm:"size:64" json:"subdivision"`
	SubdivisionName string `gorm:"size:255" json:"subdivisionName"`
	IsActual        bool   `json:"isActual"`
	Position        string `gorm:"size:64" json:"position"`
	PositionName    string `gorm:"size:255" json:"positionName"`
}
