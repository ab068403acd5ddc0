package batch

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aromaforge/internal/catalog"
	"aromaforge/internal/engine"
)

func sampleResult() engine.Result {
	return engine.Result{
		Formula: engine.Formula{
			"oriental": {
				Top:   []engine.Pick{{Name: "Elemi Gum", Percent: catalog.PercentRange{Low: 2.1, High: 3.9}, Supplier: "Robertet", Midpoint: 3.0}},
				Heart: []engine.Pick{{Name: "Labdanum Resinoid", Percent: catalog.PercentRange{Low: 3.9, High: 6.5}, Supplier: "Biolandes", Midpoint: 5.6}},
				Base:  []engine.Pick{{Name: "Oud Assam", Percent: catalog.PercentRange{Low: 3.1, High: 5.7}, Supplier: "Ensar Direct", Midpoint: 4.4}},
			},
			"woody": {
				Base: []engine.Pick{{Name: "Cedarwood Virginia", Percent: catalog.PercentRange{Low: 4.2, High: 6.5}, Supplier: "Texarome", Midpoint: 6.0}},
			},
		},
		IngredientCount: 4,
		Steeping:        engine.Steeping{Category: engine.CategorySlowEvolving, MinDays: 14, MaxDays: 42},
		Warnings:        []string{"Oakmoss Absolute lands above its advisory ceiling; review before compounding."},
		Notes:           []string{"Composed for evening wear; the base carries most of the weight."},
		Concentration:   engine.ConcentrationExtrait,
	}
}

func TestBuildMassAccounting(t *testing.T) {
	t.Parallel()

	runDate := time.Date(2026, time.March, 14, 10, 0, 0, 0, time.UTC)
	sheet, err := Build(sampleResult(), 50, runDate)
	require.NoError(t, err)

	// Extrait: 30% oil fraction at nominal densities.
	assert.InDelta(t, 50*0.30*0.95, sheet.OilGrams, 0.001)
	assert.InDelta(t, 50*0.70*0.789, sheet.AlcoholGrams, 0.001)

	weighed := 0.0
	for _, row := range sheet.Rows {
		weighed += row.Grams
	}
	assert.InDelta(t, sheet.OilGrams, weighed+sheet.DilutantGrams, 0.01,
		"material masses plus dilutant must account for the full oil phase")

	require.Len(t, sheet.Rows, 4)
	first := sheet.Rows[0]
	assert.Equal(t, "Elemi Gum", first.Name)
	assert.InDelta(t, sheet.OilGrams*3.0/100, first.Grams, 0.001)
}

func TestBuildRowOrdering(t *testing.T) {
	t.Parallel()

	sheet, err := Build(sampleResult(), 100, time.Now())
	require.NoError(t, err)

	var layers []catalog.Layer
	for i, row := range sheet.Rows {
		assert.Equal(t, i+1, row.Order)
		layers = append(layers, row.Layer)
	}
	assert.Equal(t, []catalog.Layer{
		catalog.LayerTop,
		catalog.LayerHeart,
		catalog.LayerBase,
		catalog.LayerBase,
	}, layers, "rows run top to base")
	assert.Equal(t, "Oud Assam", sheet.Rows[2].Name, "families sort alphabetically within a layer")
	assert.Equal(t, "Cedarwood Virginia", sheet.Rows[3].Name)
}

func TestBuildLotNumberFormat(t *testing.T) {
	t.Parallel()

	runDate := time.Date(2026, time.March, 14, 23, 30, 0, 0, time.FixedZone("CET", 3600))
	sheet, err := Build(sampleResult(), 30, runDate)
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^AF-20260314-[0-9A-F]{8}$`), sheet.LotNumber)
	assert.Equal(t, time.UTC, sheet.RunDate.Location())

	again, err := Build(sampleResult(), 30, runDate)
	require.NoError(t, err)
	assert.NotEqual(t, sheet.LotNumber, again.LotNumber, "each run gets its own lot")
}

func TestBuildConcentrationRatios(t *testing.T) {
	t.Parallel()

	cases := []struct {
		concentration string
		ratio         float64
	}{
		{engine.ConcentrationExtrait, 0.30},
		{engine.ConcentrationEauDeParfum, 0.20},
		{engine.ConcentrationEauDeToilette, 0.12},
		{engine.ConcentrationEauFraiche, 0.05},
		{"unknown", 0.20},
	}
	for _, tc := range cases {
		result := sampleResult()
		result.Concentration = tc.concentration
		sheet, err := Build(result, 100, time.Now())
		require.NoError(t, err)
		assert.InDeltaf(t, 100*tc.ratio*0.95, sheet.OilGrams, 0.001, "concentration %q", tc.concentration)
	}
}

func TestBuildRejectsBadInput(t *testing.T) {
	t.Parallel()

	_, err := Build(sampleResult(), 0, time.Now())
	assert.ErrorIs(t, err, ErrInvalidVolume)

	_, err = Build(sampleResult(), -5, time.Now())
	assert.ErrorIs(t, err, ErrInvalidVolume)

	_, err = Build(engine.Result{Formula: engine.Formula{}}, 50, time.Now())
	assert.ErrorIs(t, err, ErrEmptyFormula)
}

func TestBuildCarriesDiagnostics(t *testing.T) {
	t.Parallel()

	sheet, err := Build(sampleResult(), 50, time.Now())
	require.NoError(t, err)
	assert.Equal(t, sampleResult().Warnings, sheet.Warnings)
	assert.Equal(t, sampleResult().Notes, sheet.Notes)
	assert.Equal(t, engine.CategorySlowEvolving, sheet.Steeping.Category)
}

func TestBuildWeighsBalancedBands(t *testing.T) {
	t.Parallel()

	// A heavy oriental/woody/spicy blend forces the balancing passes to cut
	// several body bands; the weighed mass must follow the corrected band,
	// never the pre-correction midpoint.
	result := engine.New(nil).Generate(engine.Request{
		Dominant:      "oriental",
		Secondary:     "woody",
		Accent:        "spicy",
		Identifier:    "X-3",
		Concentration: engine.ConcentrationExtrait,
		Occasion:      "evening",
		Intensity:     engine.IntensityTrail,
	})

	sheet, err := Build(result, 100, time.Date(2026, time.March, 14, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	for _, row := range sheet.Rows {
		maxGrams := sheet.OilGrams * row.Percent.High / 100
		assert.LessOrEqualf(t, row.Grams, maxGrams+0.001,
			"%s weighs %.3f g against a band maximum of %.3f g", row.Name, row.Grams, maxGrams)
		assert.InDeltaf(t, sheet.OilGrams*row.Percent.Midpoint()/100, row.Grams, 0.001,
			"%s must be weighed from the centre of its printed band %s", row.Name, row.Percent)
	}
}
