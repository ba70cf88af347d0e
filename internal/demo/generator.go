// Package demo gera o dataset sintético exibido pelo dashboard
package demo

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vfg2006/marketing-dashboard-api/internal/analytics/periodic"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/pkg/utils"
)

const (
	yearOverYearDays = 90
	curveSteps       = 15
	curveStepSpend   = 10000
	anomalyDays      = 2
)

// Generator produz datasets a partir de uma fonte aleatória injetada.
// A mesma semente sempre gera os mesmos valores.
type Generator struct {
	seed uint64
	rng  *rand.Rand
}

func NewGenerator(seed uint64) *Generator {
	return &Generator{
		seed: seed,
		rng:  NewRand(seed),
	}
}

// datasetNamespace é o namespace dos IDs de dataset (UUID v5)
var datasetNamespace = uuid.MustParse("6f1c2a4e-8b7d-4e3f-9a21-5c0d8e7b3f14")

// DatasetID deriva o ID do dataset da semente e da data de referência, então a
// mesma semente no mesmo dia sempre produz o mesmo ID.
func DatasetID(seed uint64, ref time.Time) string {
	name := fmt.Sprintf("%d/%s", seed, ref.UTC().Format(time.DateOnly))
	id := uuid.NewSHA1(datasetNamespace, []byte(name))
	return strings.ReplaceAll(id.String(), "-", "")[:12]
}

// NewRand cria a fonte determinística usada pelo gerador
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Generate cria um dataset completo. ref é a data de referência da série diária.
func (g *Generator) Generate(ref time.Time) (*domain.Dataset, error) {
	channels := g.channels()

	return &domain.Dataset{
		ID:           DatasetID(g.seed, ref),
		Seed:         g.seed,
		GeneratedAt:  ref,
		Channels:     channels,
		Campaigns:    g.campaigns(channels),
		YearOverYear: g.yearOverYear(ref),
		Curves:       g.curves(),
		Monthly:      g.monthly(),
		ABTests:      g.abTests(),
		Waterfall:    contributions(channels),
	}, nil
}

// jitter retorna um fator em [1-spread, 1+spread)
func (g *Generator) jitter(spread float64) float64 {
	return 1 - spread + 2*spread*g.rng.Float64()
}

func (g *Generator) channels() []domain.MetricRecord {
	records := make([]domain.MetricRecord, 0, len(channelProfiles))

	for _, p := range channelProfiles {
		record := domain.MetricRecord{
			Name: p.name,
			Kind: domain.MetricKindChannel,
		}

		if p.baseCost > 0 {
			record.Cost = utils.RoundWithTwoDecimalPlace(p.baseCost * g.jitter(0.2))
			record.Revenue = utils.RoundWithTwoDecimalPlace(record.Cost * p.roas * g.jitter(0.15))
			record.Impressions = int(record.Cost / p.cpm * 1000)
		} else {
			record.Revenue = utils.RoundWithTwoDecimalPlace(p.baseRevenue * g.jitter(0.1))
			record.Impressions = 400000 + g.rng.IntN(200000)
		}

		record.Clicks = int(float64(record.Impressions) * p.ctr * g.jitter(0.1))
		record.Conversions = int(float64(record.Clicks) * p.conversionRate * g.jitter(0.1))
		record.Derive()

		records = append(records, record)
	}

	return records
}

// campaigns divide cada canal pago entre os tipos de campanha
func (g *Generator) campaigns(channels []domain.MetricRecord) []domain.MetricRecord {
	records := make([]domain.MetricRecord, 0, len(channels)*len(campaignTypes))

	for _, ch := range channels {
		if ch.Cost == 0 {
			continue
		}

		weights := make([]float64, len(campaignTypes))
		var total float64
		for i := range weights {
			weights[i] = 0.5 + g.rng.Float64()
			total += weights[i]
		}

		for i, kind := range campaignTypes {
			share := weights[i] / total
			// retargeting converte melhor, prospecção pior
			efficiency := 1.0
			switch kind {
			case "Retargeting":
				efficiency = 1.4
			case "Prospecting":
				efficiency = 0.7
			}

			record := domain.MetricRecord{
				Name:        fmt.Sprintf("%s - %s", ch.Name, kind),
				Kind:        domain.MetricKindCampaign,
				Channel:     ch.Name,
				Cost:        utils.RoundWithTwoDecimalPlace(ch.Cost * share),
				Revenue:     utils.RoundWithTwoDecimalPlace(ch.Revenue * share * efficiency * g.jitter(0.1)),
				Impressions: int(float64(ch.Impressions) * share),
				Clicks:      int(float64(ch.Clicks) * share),
				Conversions: int(float64(ch.Conversions) * share * efficiency),
			}
			record.Derive()

			records = append(records, record)
		}
	}

	return records
}

// yearOverYear gera a receita diária dos últimos dias contra o mesmo dia do ano anterior,
// com alguns dias anômalos injetados
func (g *Generator) yearOverYear(ref time.Time) []domain.TimeSeriesPoint {
	points := make([]domain.TimeSeriesPoint, yearOverYearDays)
	start := ref.AddDate(0, 0, -yearOverYearDays)
	growth := 1.05 + 0.1*g.rng.Float64()

	for i := range points {
		day := start.AddDate(0, 0, i)
		weekly := 1 + 0.12*math.Sin(2*math.Pi*float64(day.Weekday())/7)
		previous := 8000 * weekly * g.jitter(0.08)

		points[i] = domain.TimeSeriesPoint{
			Date:         day.Format(time.DateOnly),
			PreviousYear: utils.RoundWithTwoDecimalPlace(previous),
			CurrentYear:  utils.RoundWithTwoDecimalPlace(previous * growth * g.jitter(0.05)),
		}
	}

	for i := 0; i < anomalyDays; i++ {
		idx := g.rng.IntN(len(points))
		factor := 0.3
		if g.rng.IntN(2) == 0 {
			factor = 2.4
		}
		points[idx].CurrentYear = utils.RoundWithTwoDecimalPlace(points[idx].CurrentYear * factor)
	}

	return points
}

// curves gera uma curva côncava que satura em curveCeiling para cada canal pago
func (g *Generator) curves() map[string][]domain.CurvePoint {
	curves := make(map[string][]domain.CurvePoint)

	for _, p := range channelProfiles {
		if p.curveCeiling == 0 {
			continue
		}

		ceiling := p.curveCeiling * g.jitter(0.1)
		points := make([]domain.CurvePoint, curveSteps)
		for i := range points {
			spend := float64((i + 1) * curveStepSpend)
			points[i] = domain.CurvePoint{
				Spend:   spend,
				Revenue: utils.RoundWithTwoDecimalPlace(ceiling * (1 - math.Exp(-spend/p.curveScale))),
			}
		}
		curves[p.name] = points
	}

	return curves
}

func (g *Generator) monthly() []domain.MonthlyRecord {
	records := make([]domain.MonthlyRecord, 0, 12*len(channelProfiles)*len(monthlyFactors))

	for m, label := range periodic.MonthLabels {
		for _, p := range channelProfiles {
			base := p.baseCost * p.roas
			if base == 0 {
				base = p.baseRevenue
			}

			for _, factor := range monthlyFactors {
				multiplier := 1.0
				switch factor {
				case "seasonal":
					multiplier = seasonality[m]
				case "promotion":
					multiplier = seasonality[m] * 1.2
				}

				revenue := base / 12 * multiplier * g.jitter(0.1)
				cost := p.baseCost / 12 * g.jitter(0.1)

				records = append(records, domain.MonthlyRecord{
					Month:   label,
					Channel: p.name,
					Factor:  factor,
					Values: map[string]float64{
						domain.MetricRevenue: utils.RoundWithTwoDecimalPlace(revenue),
						domain.MetricCost:    utils.RoundWithTwoDecimalPlace(cost),
						"conversions":        math.Round(revenue / 120),
					},
				})
			}
		}
	}

	return records
}

func (g *Generator) abTests() []domain.ABTest {
	tests := make([]domain.ABTest, 0, len(abTestDefinitions))

	for _, def := range abTestDefinitions {
		visitors := 5000 + g.rng.IntN(10000)
		rate := 0.02 + 0.04*g.rng.Float64()

		tests = append(tests, domain.ABTest{
			Name:    def.name,
			Channel: def.channel,
			Control: domain.Variant{
				Name:        "A",
				Visitors:    visitors,
				Conversions: int(float64(visitors) * rate),
			},
			Treatment: domain.Variant{
				Name:        "B",
				Visitors:    visitors,
				Conversions: int(float64(visitors) * rate * def.uplift * g.jitter(0.03)),
			},
		})
	}

	return tests
}

// contributions monta a cascata de receita por canal
func contributions(channels []domain.MetricRecord) []domain.Contribution {
	fills := make(map[string]string, len(channelProfiles))
	for _, p := range channelProfiles {
		fills[p.name] = p.fill
	}

	result := make([]domain.Contribution, 0, len(channels))
	for _, ch := range channels {
		result = append(result, domain.Contribution{
			Name:  ch.Name,
			Value: ch.Revenue,
			Fill:  fills[ch.Name],
		})
	}
	return result
}
