package catalog

import "sync-gateway/core/reconcile"

// Register adds the reference strategies to reg.
func Register(reg *reconcile.Registry) {
	reg.Register(reconcile.NewReferenceStrategy[ProductRecord, Product](reconcile.KindProduct))
	reg.Register(reconcile.NewReferenceStrategy[CounterpartyRecord, Counterparty](reconcile.KindCounterparty))
	reg.Register(reconcile.NewReferenceStrategy[ShopRecord, Shop](reconcile.KindShop))
	reg.Register(reconcile.NewReferenceStrategy[WorkerRecord, Worker](reconcile.KindWorker))
}

// Models returns the tables owned by the catalog.
func Models() []any {
	return []any{&Product{}, &Counterparty{}, &Shop{}, &Worker{}}
}
