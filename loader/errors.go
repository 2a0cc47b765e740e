// SPDX-License-Identifier: MIT
// Package: partlath/loader

package loader

import (
	"fmt"

	"github.com/katalvlaran/partlath/core"
)

// ErrGraphIndex reports a graph index that does not select exactly one graph.
var ErrGraphIndex = fmt.Errorf("%w: graph index", core.ErrConfig)

// MaxMatrix is the largest accepted grid width on line 1.
const MaxMatrix = 1024

const headerLines = 4
