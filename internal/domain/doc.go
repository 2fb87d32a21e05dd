// Package domain contains the kinematic core for fourbar.
//
// The core is two pure functions: Solve places the four joints of a planar
// four-bar linkage for a given crank angle, and Classify applies the Grashof
// criterion to a set of link lengths. Both are value-in/value-out, perform no
// I/O, and hold no shared state, so any number of callers may use them
// concurrently. The TUI, CLI, and renderers adapt these types into their own
// shapes; nothing here depends on presentation concerns.
package domain
