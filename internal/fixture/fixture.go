// SPDX-License-Identifier: MIT

// Package fixture holds the canonical 10-valve network shared by tests,
// examples and benchmarks across the module.
package fixture

import "github.com/katalvlaran/valvenet/core"

// CanonicalInput is the well-known 10-valve network in its text form.
// Starting at AA with 30 minutes the best release is CanonicalPressure.
const CanonicalInput = `Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
Valve BB has flow rate=13; tunnels lead to valves CC, AA
Valve CC has flow rate=2; tunnels lead to valves DD, BB
Valve DD has flow rate=20; tunnels lead to valves CC, AA, EE
Valve EE has flow rate=3; tunnels lead to valves FF, DD
Valve FF has flow rate=0; tunnels lead to valves EE, GG
Valve GG has flow rate=0; tunnels lead to valves FF, HH
Valve HH has flow rate=22; tunnel leads to valve GG
Valve II has flow rate=0; tunnels lead to valves AA, JJ
Valve JJ has flow rate=21; tunnel leads to valve II
`

// CanonicalPressure is the optimum for CanonicalInput (start AA, 30 minutes).
const CanonicalPressure = 1651

// canonicalValves mirrors CanonicalInput in declaration order.
var canonicalValves = []struct {
	label string
	flow  int
}{
	{"AA", 0}, {"BB", 13}, {"CC", 2}, {"DD", 20}, {"EE", 3},
	{"FF", 0}, {"GG", 0}, {"HH", 22}, {"II", 0}, {"JJ", 21},
}

var canonicalTunnels = [][2]string{
	{"AA", "DD"}, {"AA", "II"}, {"AA", "BB"},
	{"BB", "CC"}, {"CC", "DD"}, {"DD", "EE"},
	{"EE", "FF"}, {"FF", "GG"}, {"GG", "HH"},
	{"II", "JJ"},
}

// Canonical builds the canonical network directly through the core API.
// It panics on error, which can only happen if the tables above are broken.
func Canonical() *core.Network {
	net := core.NewNetwork()
	for _, v := range canonicalValves {
		if _, err := net.AddValve(v.label, v.flow); err != nil {
			panic(err)
		}
	}
	for _, t := range canonicalTunnels {
		if err := net.ConnectLabels(t[0], t[1]); err != nil {
			panic(err)
		}
	}

	return net
}

// Pair builds the two-valve network A(0)-B(10).
func Pair() *core.Network {
	net := core.NewNetwork()
	a, _ := net.AddValve("A", 0)
	b, _ := net.AddValve("B", 10)
	if err := net.Connect(a, b); err != nil {
		panic(err)
	}

	return net
}
