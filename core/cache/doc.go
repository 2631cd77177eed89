// Package cache provides the small key/value cache behind the dashboard
// statistics.
//
// Three backends are available: an in-process map (memory), Redis for
// deployments running several gateway instances, and a no-op store. Values
// are opaque bytes; callers handle encoding.
package cache
