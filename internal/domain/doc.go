// Package domain contains the core model of linkcheck: URL entries, probe
// results, batch progress and outcomes, and the events a batch emits.
//
// The domain is transport- and persistence-agnostic: it does not depend on
// net/http, spreadsheet writers, or the filesystem. Infra adapters map into
// and out of these types.
package domain
