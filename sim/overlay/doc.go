// Package overlay holds the player-injected records layered over the
// ground-truth log: decisions with immediate/durational/delayed effects, and
// five-turn budget allocations. Everything here is pure projection algebra;
// the records are stored by sim/session and never mutate the log.
package overlay
