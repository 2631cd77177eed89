package documents

import "sync-gateway/core/reconcile"

// Register adds the document strategies to reg.
func Register(reg *reconcile.Registry) {
	reg.Register(reconcile.NewDocumentStrategy[SpecificationRecord, Specification](reconcile.KindSpecification))
	reg.Register(reconcile.NewDocumentStrategy[OrderRecord, Order](reconcile.KindOrder))
	reg.Register(reconcile.NewDocumentStrategy[ReturnAndComingRecord, ReturnAndComing](reconcile.KindReturnAndComing))
}

// Models returns the header and item tables owned by this package.
func Models() []any {
	return []any{
		&Specification{}, &SpecificationItem{},
		&Order{}, &OrderItem{},
		&ReturnAndComing{}, &ReturnAndComingItem{},
	}
}
