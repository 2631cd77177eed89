package registers

import "sync-gateway/core/reconcile"

// Register adds the register strategies to reg.
func Register(reg *reconcile.Registry) {
	reg.Register(reconcile.NewRegisterStrategy[RemainRecord, Remain](reconcile.KindRemain, reconcile.RegisterColumns{
		Keys:    [2]string{"subdivision", "product_uid"},
		Updates: []string{"subdivision_name", "quantity"},
	}))
	reg.Register(reconcile.NewRegisterStrategy[PriceRecord, Price](reconcile.KindPrice, reconcile.RegisterColumns{
		Keys:    [2]string{"price_type_ref", "product_ref"},
		Updates: []string{"price_value", "currency"},
	}))
}

// Models returns the register tables.
func Models() []any {
	return []any{&Remain{}, &Price{}}
}
