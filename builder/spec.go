// SPDX-License-Identifier: MIT
// Package: partlath/builder
//
// spec.go — FromSpec: textual topology descriptions used by the CLI.
//
// Grammar:
//   name ":" args
//   grid:RxC | cycle:N | path:N | star:N | wheel:N | complete:N
//   bipartite:A,B | random:N,P | barbell:N
//
// barbell:N expands to Complete(N), Complete(N), Bridge(N-1, N).

package builder

import (
	"fmt"
	"strconv"
	"strings"
)

// FromSpec parses spec and returns the constructor sequence for BuildGraph.
// Any malformed or unknown description yields ErrBadSpec.
func FromSpec(spec string) ([]Constructor, error) {
	name, args, ok := strings.Cut(strings.TrimSpace(spec), ":")
	if !ok || args == "" {
		return nil, fmt.Errorf("FromSpec: %q: missing arguments: %w", spec, ErrBadSpec)
	}

	switch strings.ToLower(name) {
	case "grid":
		r, c, err := parsePair(args, "x")
		if err != nil {
			return nil, fmt.Errorf("FromSpec: %q: %w", spec, err)
		}
		return []Constructor{Grid(r, c)}, nil
	case "bipartite":
		l, r, err := parsePair(args, ",")
		if err != nil {
			return nil, fmt.Errorf("FromSpec: %q: %w", spec, err)
		}
		return []Constructor{CompleteBipartite(l, r)}, nil
	case "random":
		ns, ps, found := strings.Cut(args, ",")
		if !found {
			return nil, fmt.Errorf("FromSpec: %q: want N,P: %w", spec, ErrBadSpec)
		}
		n, err := strconv.Atoi(strings.TrimSpace(ns))
		if err != nil {
			return nil, fmt.Errorf("FromSpec: %q: %v: %w", spec, err, ErrBadSpec)
		}
		p, err := strconv.ParseFloat(strings.TrimSpace(ps), 64)
		if err != nil {
			return nil, fmt.Errorf("FromSpec: %q: %v: %w", spec, err, ErrBadSpec)
		}
		return []Constructor{RandomSparse(n, p)}, nil
	}

	n, err := strconv.Atoi(strings.TrimSpace(args))
	if err != nil {
		return nil, fmt.Errorf("FromSpec: %q: %v: %w", spec, err, ErrBadSpec)
	}
	switch strings.ToLower(name) {
	case "cycle":
		return []Constructor{Cycle(n)}, nil
	case "path":
		return []Constructor{Path(n)}, nil
	case "star":
		return []Constructor{Star(n)}, nil
	case "wheel":
		return []Constructor{Wheel(n)}, nil
	case "complete":
		return []Constructor{Complete(n)}, nil
	case "barbell":
		return []Constructor{Complete(n), Complete(n), Bridge(n-1, n)}, nil
	}

	return nil, fmt.Errorf("FromSpec: unknown topology %q: %w", name, ErrBadSpec)
}

// parsePair splits "AsepB" into two integers.
func parsePair(args, sep string) (int, int, error) {
	as, bs, ok := strings.Cut(args, sep)
	if !ok {
		return 0, 0, fmt.Errorf("want A%sB: %w", sep, ErrBadSpec)
	}
	a, err := strconv.Atoi(strings.TrimSpace(as))
	if err != nil {
		return 0, 0, fmt.Errorf("%v: %w", err, ErrBadSpec)
	}
	b, err := strconv.Atoi(strings.TrimSpace(bs))
	if err != nil {
		return 0, 0, fmt.Errorf("%v: %w", err, ErrBadSpec)
	}

	return a, b, nil
}
