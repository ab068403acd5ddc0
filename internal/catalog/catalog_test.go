package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinValidates(t *testing.T) {
	t.Parallel()

	lib := Builtin()
	require.NoError(t, lib.Validate())
	assert.NotEmpty(t, lib.Families())
	for _, family := range []string{"oriental", "woody", "citrus", "floral"} {
		assert.Truef(t, lib.Has(family), "builtin catalog should hold %q", family)
	}
}

func TestLibraryHasNormalizesNames(t *testing.T) {
	t.Parallel()

	lib := Builtin()
	assert.True(t, lib.Has("Oriental"))
	assert.True(t, lib.Has("  woody  "))
	assert.False(t, lib.Has("nonexistent"))
}

func TestPoolReturnsCopies(t *testing.T) {
	t.Parallel()

	lib := Builtin()
	pool := lib.Pool("oriental", LayerBase)
	require.NotEmpty(t, pool)

	original := pool[0].Name
	pool[0].Name = "Mutated"
	again := lib.Pool("oriental", LayerBase)
	assert.Equal(t, original, again[0].Name, "callers must not be able to mutate the catalog")
}

func TestPoolUnknownFamily(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Builtin().Pool("nonexistent", LayerTop))
}

func TestFindAndHomeLayer(t *testing.T) {
	t.Parallel()

	lib := Builtin()

	ing, ok := lib.Find("Oud Assam")
	require.True(t, ok)
	assert.Equal(t, RoleHero, ing.Role)

	family, layer, ok := lib.HomeLayer("Oud Assam")
	require.True(t, ok)
	assert.Equal(t, "oriental", family)
	assert.Equal(t, LayerBase, layer)

	_, ok = lib.Find("Unobtainium")
	assert.False(t, ok)
}

func TestHeartAndBase(t *testing.T) {
	t.Parallel()

	lib := Builtin()
	combined := lib.HeartAndBase("oriental")
	expected := len(lib.Pool("oriental", LayerHeart)) + len(lib.Pool("oriental", LayerBase))
	assert.Len(t, combined, expected)
}

func TestValidateRejectsBadRecords(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		lib  *Library
	}{
		{
			"unknown role",
			NewLibrary(map[string]map[Layer][]Ingredient{
				"test": {LayerTop: {{Name: "X", Percent: PercentRange{1, 2}, Persistence: 5, Dominance: 5, Role: "soloist"}}},
			}),
		},
		{
			"inverted band",
			NewLibrary(map[string]map[Layer][]Ingredient{
				"test": {LayerTop: {{Name: "X", Percent: PercentRange{3, 1}, Persistence: 5, Dominance: 5, Role: RoleLift}}},
			}),
		},
		{
			"persistence out of range",
			NewLibrary(map[string]map[Layer][]Ingredient{
				"test": {LayerTop: {{Name: "X", Percent: PercentRange{1, 2}, Persistence: 11, Dominance: 5, Role: RoleLift}}},
			}),
		},
		{
			"duplicate name in bucket",
			NewLibrary(map[string]map[Layer][]Ingredient{
				"test": {LayerTop: {
					{Name: "X", Percent: PercentRange{1, 2}, Persistence: 5, Dominance: 5, Role: RoleLift},
					{Name: "X", Percent: PercentRange{1, 2}, Persistence: 5, Dominance: 5, Role: RoleLift},
				}},
			}),
		},
		{
			"affinity to unknown family",
			NewLibrary(map[string]map[Layer][]Ingredient{
				"test": {LayerTop: {{Name: "X", Percent: PercentRange{1, 2}, Persistence: 5, Dominance: 5, BlendsWith: []string{"missing"}, Role: RoleLift}}},
			}),
		},
		{
			"unknown layer",
			NewLibrary(map[string]map[Layer][]Ingredient{
				"test": {Layer("middle"): {{Name: "X", Percent: PercentRange{1, 2}, Persistence: 5, Dominance: 5, Role: RoleLift}}},
			}),
		},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Error(t, tc.lib.Validate())
		})
	}
}

func TestPercentRange(t *testing.T) {
	t.Parallel()

	band := PercentRange{Low: 2, High: 4}
	assert.Equal(t, 3.0, band.Midpoint())
	assert.Equal(t, PercentRange{Low: 1, High: 2}, band.Scale(0.5))
	assert.Equal(t, "2.0–4.0%", band.String())
}

func TestHeavyFamily(t *testing.T) {
	t.Parallel()

	assert.True(t, HeavyFamily("oriental"))
	assert.True(t, HeavyFamily(" Woody "))
	assert.False(t, HeavyFamily("citrus"))
	assert.False(t, HeavyFamily("fresh"))
}

func TestDuplicateGroupsReturnsCopy(t *testing.T) {
	t.Parallel()

	groups := DuplicateGroups()
	require.NotEmpty(t, groups["vanilla"])
	groups["vanilla"][0] = "Mutated"
	assert.NotEqual(t, "Mutated", DuplicateGroups()["vanilla"][0])
}

func TestDiffuserPoolMembersExist(t *testing.T) {
	t.Parallel()

	lib := Builtin()
	for _, name := range DiffuserPool() {
		_, ok := lib.Find(name)
		assert.Truef(t, ok, "diffuser %q must exist in the builtin catalog", name)
	}
}
