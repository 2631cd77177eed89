// Package dashboard provides read-only views over the synced store.
//
// Routes live under /api/dashboard:
//
//   - stats: row counts per entity kind and audit trail size, cached for
//     cache.ttl_seconds and dropped whenever a batch is applied
//   - activity: records synced per day over the trailing 7 days, today
//     included, in dashboard.timezone; always 7 entries, oldest first
//   - logs, products, counterparties, shops, workers, orders,
//     specifications, returns, remains, prices: paginated listings
//
// Listings take page (1-based) and pageSize (default dashboard.page_size,
// capped at dashboard.max_page_size) and answer {"total": n, "items": [...]}.
// Documents are listed newest first with their items in line order, audit
// rows newest first, reference entities by Ref and registers by composite key.
//
// The dashboard never writes to the store.
package dashboard
