// Package avalanche generates the set of SiPM micro-cell firings for one
// event: dark counts, optical crosstalk, per-cell recovery height, and
// afterpulsing.
//
// # Pipeline
//
// Generate runs five stages in a fixed order, each stochastic stage reading
// its inputs from the previous one:
//
//  1. Dark-count injection: an exponential inter-arrival process appends
//     DCR events to the photon-arrival times (disabled by Config.NoDCR).
//  2. Cell assignment: every time (signal photon or DCR) is mapped to a
//     uniformly random micro-cell ID in [0, NCell].
//  3. Crosstalk expansion: each firing independently spawns a Poisson
//     number of same-time children in its eight neighbouring cells,
//     and those children can themselves spawn further children
//     (disabled by Config.NoXT).
//  4. Recovery height: cells hit more than once in the same event have
//     their later hits' amplitude reduced by an RC-recharge curve keyed
//     to the time since that cell's previous hit.
//  5. Afterpulse expansion: each firing independently spawns a Poisson
//     number of delayed children in the same cell, delayed by a
//     dual-exponential distribution and height-reduced by the same
//     RC-recharge curve (disabled by Config.NoAP).
//
// # Determinism
//
// Generate draws every random number from the single *rng.Stream handed to
// it, in the fixed stage order above; the same stream state therefore
// always produces the same Set.
package avalanche
