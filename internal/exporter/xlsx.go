// Package exporter gera a planilha XLSX com os painéis do dashboard
package exporter

import (
	"fmt"
	"io"
	"slices"

	"github.com/pkg/errors"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const (
	SheetChannels    = "Channels"
	SheetMonthly     = "Monthly"
	SheetWaterfall   = "Waterfall"
	SheetCorrelation = "Correlation"
)

var ErrEmptyReport = errors.New("empty report")

// FileName monta o nome do arquivo de download a partir do dataset
func FileName(report *domain.DashboardReport) string {
	return fmt.Sprintf("dashboard-%s-%s.xlsx", report.GeneratedAt.Format("20060102"), report.DatasetID)
}

// Build monta a planilha com uma aba por painel
func Build(report *domain.DashboardReport) (*excelize.File, error) {
	if report == nil {
		return nil, ErrEmptyReport
	}

	f := excelize.NewFile()

	// a planilha nova vem com Sheet1, renomeada para a primeira aba
	if err := f.SetSheetName("Sheet1", SheetChannels); err != nil {
		f.Close()
		return nil, errors.Wrap(err, "renaming default sheet")
	}

	writers := []struct {
		sheet string
		write func(f *excelize.File, sheet string) error
	}{
		{SheetChannels, func(f *excelize.File, sheet string) error { return writeChannels(f, sheet, report) }},
		{SheetMonthly, func(f *excelize.File, sheet string) error { return writeMonthly(f, sheet, report.Monthly) }},
		{SheetWaterfall, func(f *excelize.File, sheet string) error { return writeWaterfall(f, sheet, report.Waterfall) }},
		{SheetCorrelation, func(f *excelize.File, sheet string) error { return writeCorrelation(f, sheet, report) }},
	}

	for _, w := range writers {
		if w.sheet != SheetChannels {
			if _, err := f.NewSheet(w.sheet); err != nil {
				f.Close()
				return nil, errors.Wrapf(err, "creating sheet %s", w.sheet)
			}
		}
		if err := w.write(f, w.sheet); err != nil {
			f.Close()
			return nil, errors.Wrapf(err, "writing sheet %s", w.sheet)
		}
	}

	f.SetActiveSheet(0)
	return f, nil
}

// Write gera a planilha e a grava em out
func Write(out io.Writer, report *domain.DashboardReport) error {
	f, err := Build(report)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(out); err != nil {
		return errors.Wrap(err, "writing workbook")
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

// optional converte métricas indefinidas em células vazias
func optional(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

func writeChannels(f *excelize.File, sheet string, report *domain.DashboardReport) error {
	header := []any{"Name", "Kind", "Revenue", "Cost", "Conversions", "Clicks", "Impressions", "ROAS", "Conversion %", "CPA"}
	if err := writeRow(f, sheet, 1, header); err != nil {
		return err
	}

	row := 2
	for _, summary := range []*domain.ChannelSummary{report.Channels, report.Campaigns} {
		if summary == nil {
			continue
		}
		for _, r := range summary.Rows {
			values := []any{
				r.Name, string(r.Kind), r.Revenue, r.Cost, r.Conversions, r.Clicks, r.Impressions,
				optional(r.ROAS), optional(r.Conversion), optional(r.CPA),
			}
			if err := writeRow(f, sheet, row, values); err != nil {
				return err
			}
			row++
		}
	}

	return nil
}

func writeMonthly(f *excelize.File, sheet string, monthly []domain.MonthlyAggregate) error {
	fieldSet := map[string]struct{}{}
	for _, m := range monthly {
		for field := range m.Values {
			fieldSet[field] = struct{}{}
		}
	}
	fields := make([]string, 0, len(fieldSet))
	for field := range fieldSet {
		fields = append(fields, field)
	}
	slices.Sort(fields)

	header := []any{"Month", "Count"}
	for _, field := range fields {
		header = append(header, field)
	}
	header = append(header, "Change %")
	if err := writeRow(f, sheet, 1, header); err != nil {
		return err
	}

	for i, m := range monthly {
		values := []any{m.Month, m.Count}
		for _, field := range fields {
			v, ok := m.Values[field]
			if !ok {
				values = append(values, nil)
				continue
			}
			values = append(values, v)
		}
		values = append(values, optional(m.Change))

		if err := writeRow(f, sheet, i+2, values); err != nil {
			return err
		}
	}

	return nil
}

func writeWaterfall(f *excelize.File, sheet string, chart *domain.WaterfallChart) error {
	if err := writeRow(f, sheet, 1, []any{"Name", "Baseline", "Value", "Total"}); err != nil {
		return err
	}
	if chart == nil {
		return nil
	}

	for i, s := range chart.Segments {
		if err := writeRow(f, sheet, i+2, []any{s.Name, s.Baseline, s.Value, s.IsTotal}); err != nil {
			return err
		}
	}
	return nil
}

func writeCorrelation(f *excelize.File, sheet string, report *domain.DashboardReport) error {
	if report.Correlation == nil {
		return nil
	}

	header := []any{""}
	for _, metric := range report.Correlation.Metrics {
		header = append(header, metric)
	}
	if err := writeRow(f, sheet, 1, header); err != nil {
		return err
	}

	for i, metric := range report.Correlation.Metrics {
		values := []any{metric}
		for _, v := range report.Correlation.Values[i] {
			values = append(values, v)
		}
		if err := writeRow(f, sheet, i+2, values); err != nil {
			return err
		}
	}
	return nil
}
