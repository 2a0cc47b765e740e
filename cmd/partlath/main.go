// SPDX-License-Identifier: MIT

// Command partlath partitions a graph into balanced groups and writes the
// labelled graph as a checksummed binary file or as ascii.
//
// Usage:
//
//	partlath -i graph.txt -o out.bin -r binary -m kl -p 2 -b 10
//	partlath -i graph.txt -o out.txt -r ascii -m m -p 4 -g 2 --summary
//	partlath verify out.bin
//	partlath generate grid:8x8 -o grid.txt
//
// Exit codes: 0 success, 11 configuration, 12 flag syntax, 13 input format,
// 14 I/O, 15 allocation, 20 infeasible partition, 30 checksum mismatch,
// 1 anything else.
package main

import "os"

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}
