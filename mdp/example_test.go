package mdp_test

import (
	"fmt"
	"log"

	"github.com/katalvlaran/bellman/mdp"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleNewTabular
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Build a two-state process by hand and inspect both transition views:
//	the dense one spans the whole enumeration, the sparse one carries
//	only the outcomes that were actually added.
//
// Use case:
//
//	Assembling small models for solver tests and prototypes.
func ExampleNewTabular() {
	m, err := mdp.NewTabular(
		[]mdp.State{"work", "rest"},
		[]mdp.Action{"push", "pause"},
		0.9,
	)
	if err != nil {
		log.Fatal(err)
	}
	_ = m.AddTransition("work", "push", "work", 0.8, 2)
	_ = m.AddTransition("work", "push", "rest", 0.2, 0)
	_ = m.AddTransition("work", "pause", "rest", 1, 1)
	_ = m.SetTerminal("rest")

	fmt.Println("dense:", m.Transition("work", "push"))
	fmt.Println("sparse:", m.Support("work", "pause"))
	fmt.Println("terminal:", m.IsTerminal("rest"))
	// Output:
	// dense: [{work 0.8} {rest 0.2}]
	// sparse: [{rest 1}]
	// terminal: true
}
