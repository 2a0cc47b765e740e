// SPDX-License-Identifier: MIT
// Package: partlath/builder
//
// impl_bridge.go — Bridge(u, v): join two already-assembled vertices.

package builder

import "fmt"

const methodBridge = "Bridge"

// Bridge returns a Constructor that adds the edge (u,v) between vertices
// created by earlier constructors. Both endpoints must already exist and differ.
func Bridge(u, v int) Constructor {
	return func(a *assembly, _ builderConfig) error {
		if u < 0 || v < 0 || u >= a.n || v >= a.n {
			return fmt.Errorf("%s: (%d,%d) with %d vertices assembled: %w", methodBridge, u, v, a.n, ErrConstructFailed)
		}
		if u == v {
			return fmt.Errorf("%s: self-loop on %d: %w", methodBridge, u, ErrConstructFailed)
		}
		a.addEdge(u, v)

		return nil
	}
}
