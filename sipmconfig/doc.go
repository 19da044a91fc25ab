// Package sipmconfig defines the immutable, process-wide simulation
// configuration consumed by every pipeline stage.
//
// # What & Why
//
//	A Config bundles the physical SiPM parameters (SIZE, CELLSIZE, DCR, XT,
//	AP, pulse time constants, ...), the numerical/sampling parameters
//	(SIGLEN, SAMPLING, the integration window), and the per-run feature
//	switches (nodcr/noxt/noap/signal). It is built once via New, validated,
//	derived (SIGPTS, CELLSIDE, NCELL), and never mutated again — workers
//	only ever hold a read-only *Config.
//
// # Pattern
//
// Option is a func(*Config) applied left-to-right by New after seeding
// defaults; option constructors that receive a structurally meaningless
// value (e.g. WithCellSizeUM(0)) panic immediately, since that is a
// programmer error, not a runtime condition. Genuinely data-dependent
// problems — a derived SIGPTS ≤ 0, an integration window that overruns
// SIGLEN — are sentinel errors returned from New, because those can depend
// on values only known once every option has been applied.
package sipmconfig
