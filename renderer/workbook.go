package renderer

import (
	"fmt"
	"io"

	"github.com/etnz/simulador"
	"github.com/xuri/excelize/v2"
)

const (
	// WorkbookMIME is the content type of the exported workbook.
	WorkbookMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	// WorkbookFilename is the name proposed for downloads.
	WorkbookFilename = "simulador_capital_exterior.xlsx"

	SummarySheet = "Resumo"
	YearlySheet  = "Ano_a_Ano"
)

// numFmtThousands is the built-in "#,##0.00" number format.
const numFmtThousands = 4

// Workbook writes an xlsx workbook with the summary and the year by year
// evolution.
type Workbook struct{}

func (Workbook) Render(w io.Writer, p *simulador.Projection) error {
	f, err := NewWorkbook(p)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("cannot write workbook: %w", err)
	}
	return nil
}

// NewWorkbook builds the workbook in memory.
func NewWorkbook(p *simulador.Projection) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		f.Close()
		return nil, err
	}
	if _, err := f.NewSheet(YearlySheet); err != nil {
		f.Close()
		return nil, err
	}
	style, err := f.NewStyle(&excelize.Style{NumFmt: numFmtThousands})
	if err != nil {
		f.Close()
		return nil, err
	}

	if err := writeSummarySheet(f, p, style); err != nil {
		f.Close()
		return nil, fmt.Errorf("sheet %s: %w", SummarySheet, err)
	}
	if err := writeYearlySheet(f, p, style); err != nil {
		f.Close()
		return nil, fmt.Errorf("sheet %s: %w", YearlySheet, err)
	}
	f.SetActiveSheet(0)
	return f, nil
}

func writeSummarySheet(f *excelize.File, p *simulador.Projection, style int) error {
	if err := setRow(f, SummarySheet, 1, SummaryHeader); err != nil {
		return err
	}
	rows := p.Summary()
	for i, r := range rows {
		values := []any{
			r.Name(),
			simulador.USD(r.FinalUSD).Float(),
			simulador.USD(r.TaxUSUSD).Float(),
			simulador.USD(r.TaxBRUSD).Float(),
			simulador.USD(r.NetUSD).Float(),
			simulador.BRL(r.NetBRL).Float(),
		}
		if err := setRow(f, SummarySheet, i+2, values); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(SummarySheet, "B2", fmt.Sprintf("F%d", len(rows)+1), style); err != nil {
		return err
	}
	if err := f.SetColWidth(SummarySheet, "A", "A", 26); err != nil {
		return err
	}
	return f.SetColWidth(SummarySheet, "B", "F", 20)
}

func writeYearlySheet(f *excelize.File, p *simulador.Projection, style int) error {
	if err := setRow(f, YearlySheet, 1, YearlyHeader()); err != nil {
		return err
	}
	rows := p.Yearly()
	for i, y := range rows {
		values := []any{y.Year}
		for _, s := range simulador.Scenarios {
			values = append(values, simulador.USD(y.USD[s]).Float())
		}
		for _, s := range simulador.Scenarios {
			values = append(values, simulador.BRL(y.BRL[s]).Float())
		}
		if err := setRow(f, YearlySheet, i+2, values); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(YearlySheet, "B2", fmt.Sprintf("G%d", len(rows)+1), style); err != nil {
		return err
	}
	return f.SetColWidth(YearlySheet, "B", "G", 16)
}

func setRow[T any](f *excelize.File, sheet string, row int, values []T) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}
