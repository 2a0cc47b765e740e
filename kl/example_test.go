package kl_test

import (
	"fmt"

	"github.com/katalvlaran/partlath/core"
	"github.com/katalvlaran/partlath/kl"
)

// ExampleBalanceSearch bisects a 4-cycle with an exact 2/2 balance.
func ExampleBalanceSearch() {
	g, _ := core.Build(4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})

	res, err := kl.BalanceSearch(g, 2, 0, false, kl.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("cut:", res.Cut)
	fmt.Println("groups:", g.Groups())
	// Output:
	// cut: 2
	// groups: [0 0 1 1]
}
