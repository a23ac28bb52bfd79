// Command portfolio solves project-portfolio selection (0/1 knapsack)
// problems from built-in datasets or YAML/JSON catalog files.
//
// Usage:
//
//	portfolio solve --dataset basic --algorithm table
//	portfolio compare --catalog projects.yaml -o json
//	portfolio datasets
package main

import (
	"os"

	"github.com/jota0802/gs-dynamic/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
