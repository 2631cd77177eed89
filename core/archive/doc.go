// Package archive stores raw inbound batches in object storage.
//
// Every accepted push is written under
//
//	<prefix>/<kind>/<yyyy>/<mm>/<dd>/<batch id>.json
//
// so an operator can inspect exactly what the ERP sent and replay a batch
// through the engine later. Archiving is best-effort for the push path: the
// caller logs a failure and carries on.
package archive
