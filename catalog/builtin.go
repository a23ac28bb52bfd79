package catalog

import (
	"fmt"
	"sort"

	"github.com/jota0802/gs-dynamic/knapsack"
)

// builtins are the reference portfolios. Builtin returns clones, so callers
// may modify what they get.
var builtins = map[string]knapsack.Catalog{
	"basic": {
		Name:     "basic",
		Capacity: 10,
		Items: []knapsack.Item{
			{Name: "Projeto A", Value: 12, Cost: 4},
			{Name: "Projeto B", Value: 10, Cost: 3},
			{Name: "Projeto C", Value: 7, Cost: 2},
			{Name: "Projeto D", Value: 4, Cost: 3},
		},
	},
	"greedy-trap": {
		Name:     "greedy-trap",
		Capacity: 50,
		Items: []knapsack.Item{
			{Name: "Projeto X", Value: 60, Cost: 10},
			{Name: "Projeto Y", Value: 100, Cost: 20},
			{Name: "Projeto Z", Value: 120, Cost: 30},
		},
	},
	"simple": {
		Name:     "simple",
		Capacity: 8,
		Items: []knapsack.Item{
			{Name: "P1", Value: 10, Cost: 5},
			{Name: "P2", Value: 6, Cost: 3},
			{Name: "P3", Value: 12, Cost: 4},
		},
	},
	"six": {
		Name:     "six",
		Capacity: 20,
		Items: []knapsack.Item{
			{Name: "Proj A", Value: 15, Cost: 5},
			{Name: "Proj B", Value: 20, Cost: 8},
			{Name: "Proj C", Value: 30, Cost: 12},
			{Name: "Proj D", Value: 10, Cost: 3},
			{Name: "Proj E", Value: 25, Cost: 10},
			{Name: "Proj F", Value: 8, Cost: 2},
		},
	},
	"equal-density": {
		Name:     "equal-density",
		Capacity: 20,
		Items: []knapsack.Item{
			{Name: "Website", Value: 50, Cost: 10},
			{Name: "App Mobile", Value: 40, Cost: 8},
			{Name: "Dashboard", Value: 30, Cost: 6},
			{Name: "API", Value: 20, Cost: 4},
		},
	},
	"ramp": rampCatalog(10, 30),
}

// rampCatalog builds P1..Pn with value i*10+5 and cost i*2+1.
func rampCatalog(n, capacity int) knapsack.Catalog {
	cat := knapsack.Catalog{
		Name:     "ramp",
		Capacity: capacity,
		Items:    make([]knapsack.Item, n),
	}
	for i := 1; i <= n; i++ {
		cat.Items[i-1] = knapsack.Item{
			Name:  fmt.Sprintf("P%d", i),
			Value: float64(i*10 + 5),
			Cost:  i*2 + 1,
		}
	}

	return cat
}

// Builtin returns a copy of the named reference dataset.
func Builtin(name string) (knapsack.Catalog, error) {
	cat, ok := builtins[name]
	if !ok {
		return knapsack.Catalog{}, fmt.Errorf("%w: %q", ErrUnknownDataset, name)
	}

	return cat.Clone(), nil
}

// BuiltinNames lists the reference datasets in lexical order.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
