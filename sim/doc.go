// Package sim is the deterministic turn engine for a political-collapse
// simulation: a small nation under stress, modeled as continuous pressure
// formulas plus at most one discrete court event per turn.
//
// # Reading Guide
//
// Start with these three files to understand the kernel:
//   - state.go: the immutable State value type and its clamping rules
//   - events.go / catalog.go: the static event table and the
//     priority/weight/cooldown selection algorithm
//   - engine.go: Step, the single-turn transition function
//
// # Architecture
//
// The sim package produces the ground-truth log; the player-facing overlay
// lives in sub-packages:
//   - sim/overlay/: decision and budget records with their projection algebra
//   - sim/session/: the session store (log + cursor + overlay behind one
//     consistency boundary) and the serialized per-session facade
//
// # Determinism
//
// Every operation that needs randomness takes an explicit *rand.Rand. Step
// draws in a fixed order (breach check, weighted pick, choice), so identical
// seeds and identical call sequences produce byte-identical logs.
package sim
