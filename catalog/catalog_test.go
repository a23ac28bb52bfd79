package catalog_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jota0802/gs-dynamic/catalog"
	"github.com/jota0802/gs-dynamic/knapsack"
)

const basicYAML = `
name: q3
capacity: 10
items:
  - {name: A, value: 12, cost: 4}
  - {name: B, value: 10, cost: 3}
  - {name: C, value: 7, cost: 2}
  - {name: D, value: 4, cost: 3}
`

func TestLoad_YAML(t *testing.T) {
	cat, err := catalog.Load(strings.NewReader(basicYAML))
	require.NoError(t, err)

	want := knapsack.Catalog{
		Name:     "q3",
		Capacity: 10,
		Items: []knapsack.Item{
			{Name: "A", Value: 12, Cost: 4},
			{Name: "B", Value: 10, Cost: 3},
			{Name: "C", Value: 7, Cost: 2},
			{Name: "D", Value: 4, Cost: 3},
		},
	}
	if diff := cmp.Diff(want, cat); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_JSON(t *testing.T) {
	doc := `{"capacity": 50, "items": [{"name": "X", "value": 60, "cost": 10}, {"name": "Y", "value": 100.5, "cost": 20}]}`
	cat, err := catalog.Load(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, 50, cat.Capacity)
	require.Len(t, cat.Items, 2)
	assert.Equal(t, 100.5, cat.Items[1].Value)
}

func TestLoad_Rejects(t *testing.T) {
	cases := map[string]string{
		"unknown-field":  "capacity: 3\nitemz: []\n",
		"negative-cost":  "capacity: 3\nitems:\n  - {name: A, value: 1, cost: -1}\n",
		"negative-cap":   "capacity: -3\nitems: []\n",
		"duplicate-name": "capacity: 3\nitems:\n  - {name: A, value: 1, cost: 1}\n  - {name: A, value: 2, cost: 1}\n",
		"bad-type":       "capacity: ten\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := catalog.Load(strings.NewReader(doc))
			assert.Error(t, err)
		})
	}

	_, err := catalog.Load(strings.NewReader("capacity: 3\nitems:\n  - {name: A, value: 1, cost: -1}\n"))
	assert.ErrorIs(t, err, knapsack.ErrNegativeCost)

	_, err = catalog.Load(strings.NewReader(""))
	assert.ErrorIs(t, err, catalog.ErrEmptyDocument)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "portfolio.yml")
	require.NoError(t, os.WriteFile(path, []byte("capacity: 8\nitems:\n  - {name: P1, value: 10, cost: 5}\n"), 0o600))

	cat, err := catalog.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "portfolio", cat.Name, "name defaults to the file stem")
	assert.Equal(t, 8, cat.Capacity)

	_, err = catalog.LoadFile(filepath.Join(dir, "portfolio.toml"))
	assert.ErrorIs(t, err, catalog.ErrUnsupportedFormat)

	_, err = catalog.LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMarshal_RoundTrip(t *testing.T) {
	orig, err := catalog.Builtin("six")
	require.NoError(t, err)

	raw, err := catalog.Marshal(orig)
	require.NoError(t, err)
	back, err := catalog.Load(strings.NewReader(string(raw)))
	require.NoError(t, err)
	if diff := cmp.Diff(orig, back); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

// TestBuiltin_Optima pins the optimum of every reference dataset.
func TestBuiltin_Optima(t *testing.T) {
	want := map[string]float64{
		"basic":         29,
		"greedy-trap":   220,
		"simple":        18,
		"six":           58,
		"equal-density": 100,
		"ramp":          150,
	}
	assert.Equal(t, len(want), len(catalog.BuiltinNames()))

	for _, name := range catalog.BuiltinNames() {
		cat, err := catalog.Builtin(name)
		require.NoError(t, err)
		require.NoError(t, cat.Validate())

		sol, err := knapsack.SolveCatalog(cat, knapsack.DefaultOptions())
		require.NoError(t, err)
		assert.Equal(t, want[name], sol.Value, name)
	}

	_, err := catalog.Builtin("nope")
	assert.ErrorIs(t, err, catalog.ErrUnknownDataset)
}

// TestBuiltin_ReturnsCopies ensures callers cannot corrupt the registry.
func TestBuiltin_ReturnsCopies(t *testing.T) {
	a, err := catalog.Builtin("basic")
	require.NoError(t, err)
	a.Items[0].Value = -1

	b, err := catalog.Builtin("basic")
	require.NoError(t, err)
	assert.Equal(t, 12.0, b.Items[0].Value)
}
