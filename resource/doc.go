// Package resource defines the artifact-store abstraction described in
// SPEC_FULL.md §4.8 (C9): save_at/get/contains/remove/iterate_over/get_all/
// head/tail, implemented independently by the local-directory backend
// (resource/fsstore), the in-process document-store-shaped backend
// (resource/memstore), and the relational backend (resource/sqlstore). All
// three honor the same semantics, including ResourceNotFoundError on absent
// keys.
package resource
