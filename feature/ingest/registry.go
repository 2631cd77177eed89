package ingest

import (
	"sync-gateway/core/reconcile"
	"sync-gateway/feature/catalog"
	"sync-gateway/feature/documents"
	"sync-gateway/feature/registers"
)

// DefaultRegistry returns a registry with every entity kind the gateway accepts.
func DefaultRegistry() *reconcile.Registry {
	reg := reconcile.NewRegistry()
	catalog.Register(reg)
	documents.Register(reg)
	registers.Register(reg)
	return reg
}

// Models returns every table the gateway writes, the audit trail included.
func Models() []any {
	var models []any
	models = append(models, catalog.Models()...)
	models = append(models, documents.Models()...)
	models = append(models, registers.Models()...)
	models = append(models, reconcile.Models()...)
	return models
}
