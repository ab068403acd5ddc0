// Package batch converts a generated formula into a production-ready batch
// sheet: percentage bands become weighed masses for a target volume, using a
// concentration-to-oil ratio table and nominal densities.
package batch

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"aromaforge/internal/catalog"
	"aromaforge/internal/engine"
)

var (
	// ErrInvalidVolume is returned for a non-positive target volume.
	ErrInvalidVolume = errors.New("batch: target volume must be positive")
	// ErrEmptyFormula is returned when the result holds no materials.
	ErrEmptyFormula = errors.New("batch: formula has no ingredients")
)

const (
	oilDensity     = 0.95  // g/ml, nominal fragrance oil
	ethanolDensity = 0.789 // g/ml, perfumer's alcohol
)

// oilRatios maps a concentration tier to the volume fraction of fragrance
// oil in the finished product.
var oilRatios = map[string]float64{
	engine.ConcentrationExtrait:       0.30,
	engine.ConcentrationEauDeParfum:   0.20,
	engine.ConcentrationEauDeToilette: 0.12,
	engine.ConcentrationEauFraiche:    0.05,
}

// Row is one weighed line on the batch sheet.
type Row struct {
	Order    int
	Family   string
	Layer    catalog.Layer
	Name     string
	Supplier string
	Percent  catalog.PercentRange
	Grams    float64
}

// Sheet is the full production form for one compounding run.
type Sheet struct {
	LotNumber     string
	RunDate       time.Time
	TargetML      float64
	Concentration string
	OilGrams      float64
	AlcoholGrams  float64
	DilutantGrams float64
	Rows          []Row
	Steeping      engine.Steeping
	Warnings      []string
	Notes         []string
}

// Build produces a batch sheet for the given generation result and target
// volume in millilitres. The run timestamp is injected so callers control
// the clock.
func Build(result engine.Result, targetML float64, runDate time.Time) (Sheet, error) {
	if targetML <= 0 {
		return Sheet{}, ErrInvalidVolume
	}
	if result.Formula.Count() == 0 {
		return Sheet{}, ErrEmptyFormula
	}

	concentration := engine.CanonicalConcentration(result.Concentration)
	ratio := oilRatios[concentration]

	oilGrams := targetML * ratio * oilDensity
	alcoholGrams := targetML * (1 - ratio) * ethanolDensity

	var rows []Row
	result.Formula.Walk(func(family string, layer catalog.Layer, pick *engine.Pick) {
		rows = append(rows, Row{
			Family:   family,
			Layer:    layer,
			Name:     pick.Name,
			Supplier: pick.Supplier,
			Percent:  pick.Percent,
			Grams:    roundMG(oilGrams * pick.Midpoint / 100),
		})
	})

	sortRows(rows)
	weighed := 0.0
	for i := range rows {
		rows[i].Order = i + 1
		weighed += rows[i].Grams
	}

	dilutant := oilGrams - weighed
	if dilutant < 0 {
		dilutant = 0
	}

	return Sheet{
		LotNumber:     lotNumber(runDate),
		RunDate:       runDate.UTC(),
		TargetML:      targetML,
		Concentration: concentration,
		OilGrams:      roundMG(oilGrams),
		AlcoholGrams:  roundMG(alcoholGrams),
		DilutantGrams: roundMG(dilutant),
		Rows:          rows,
		Steeping:      result.Steeping,
		Warnings:      append([]string(nil), result.Warnings...),
		Notes:         append([]string(nil), result.Notes...),
	}, nil
}

// sortRows orders the sheet the way a compounder works: top to base, then by
// family and name within each layer.
func sortRows(rows []Row) {
	rank := map[catalog.Layer]int{catalog.LayerTop: 0, catalog.LayerHeart: 1, catalog.LayerBase: 2}
	sort.SliceStable(rows, func(i, j int) bool {
		if rank[rows[i].Layer] != rank[rows[j].Layer] {
			return rank[rows[i].Layer] < rank[rows[j].Layer]
		}
		if rows[i].Family != rows[j].Family {
			return rows[i].Family < rows[j].Family
		}
		return rows[i].Name < rows[j].Name
	})
}

func lotNumber(runDate time.Time) string {
	short := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("AF-%s-%s", runDate.UTC().Format("20060102"), strings.ToUpper(short))
}

func roundMG(grams float64) float64 {
	return math.Round(grams*1000) / 1000
}
