// SPDX-License-Identifier: MIT

// Package parse decodes the line-oriented valve description into a
// core.Network.
//
// One line per valve:
//
//	Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
//	Valve HH has flow rate=22; tunnel leads to valve GG
//
// Blank lines are ignored. Labels are collected in a first pass and tunnels
// resolved in a second, so a line may name valves declared further down.
// Every error carries the 1-based line number and the offending text.
//
// File and Open accept plain text as well as .gz, .zst and .lz4 files.
package parse
