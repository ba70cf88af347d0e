// Package periodic agrega séries por período (mês, ano contra ano)
package periodic

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/vfg2006/marketing-dashboard-api/internal/analytics/stats"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
)

var ErrUnknownMonth = errors.New("periodic: unknown month label")

// MonthLabels é a ordem canônica de exibição
var MonthLabels = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

var monthNames = [12]string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

// monthIndex aceita abreviação, nome completo (qualquer caixa) e número com ou sem zero à esquerda
var monthIndex = buildMonthIndex()

func buildMonthIndex() map[string]int {
	index := make(map[string]int, 12*4)
	for i := 0; i < 12; i++ {
		index[strings.ToLower(MonthLabels[i])] = i + 1
		index[monthNames[i]] = i + 1
		index[fmt.Sprintf("%d", i+1)] = i + 1
		index[fmt.Sprintf("%02d", i+1)] = i + 1
	}
	// abreviações com quatro letras comuns em planilhas
	index["sept"] = 9
	return index
}

// MonthNumber converte o rótulo para 1..12
func MonthNumber(label string) (int, error) {
	n, ok := monthIndex[strings.ToLower(strings.TrimSpace(label))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownMonth, label)
	}
	return n, nil
}

type monthGroup struct {
	month  int
	count  int
	sums   map[string]float64
	counts map[string]int
}

// AggregateMonthly filtra os registros, agrupa por mês, calcula a média de cada campo
// numérico e ordena os grupos de Jan a Dec. Change é a variação percentual de
// filter.ChangeField em relação à linha anterior da saída.
func AggregateMonthly(records []domain.MonthlyRecord, filter domain.MonthlyFilter) ([]domain.MonthlyAggregate, error) {
	groups := make(map[int]*monthGroup)

	for _, r := range records {
		if !matches(r, filter) {
			continue
		}

		month, err := MonthNumber(r.Month)
		if err != nil {
			return nil, err
		}

		g, ok := groups[month]
		if !ok {
			g = &monthGroup{
				month:  month,
				sums:   make(map[string]float64),
				counts: make(map[string]int),
			}
			groups[month] = g
		}

		g.count++
		for field, value := range r.Values {
			g.sums[field] += value
			g.counts[field]++
		}
	}

	ordered := make([]*monthGroup, 0, len(groups))
	for _, g := range groups {
		ordered = append(ordered, g)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].month < ordered[j].month
	})

	result := make([]domain.MonthlyAggregate, 0, len(ordered))
	for i, g := range ordered {
		values := make(map[string]float64, len(g.sums))
		for field, sum := range g.sums {
			// counts[field] é sempre >= 1 para campos presentes em sums
			values[field], _ = stats.Ratio(sum, float64(g.counts[field]))
		}

		row := domain.MonthlyAggregate{
			Month:  MonthLabels[g.month-1],
			Count:  g.count,
			Values: values,
		}

		if i > 0 && filter.ChangeField != "" {
			row.Change = change(result[i-1].Values, values, filter.ChangeField)
		}

		result = append(result, row)
	}

	return result, nil
}

func matches(r domain.MonthlyRecord, filter domain.MonthlyFilter) bool {
	if filter.Channel != "" && !strings.EqualFold(r.Channel, filter.Channel) {
		return false
	}
	if filter.Factor != "" && !strings.EqualFold(r.Factor, filter.Factor) {
		return false
	}
	return true
}

func change(previous, current map[string]float64, field string) *float64 {
	prev, ok := previous[field]
	if !ok {
		return nil
	}
	cur, ok := current[field]
	if !ok {
		return nil
	}
	return stats.PercentChange(cur, prev)
}
