package export

import (
	"fmt"
	"path/filepath"

	"github.com/shapedthought/azure-vm-assessment/model"
	"github.com/xuri/excelize/v2"
)

// Excel sheet names are capped at 31 characters.
const maxSheetName = 31

// xlsxWriter collects one sheet per subscription into a single workbook,
// saved on Close.
type xlsxWriter struct {
	path   string
	book   *excelize.File
	sheets int
}

func NewXLSXWriter(dir string) *xlsxWriter {
	return &xlsxWriter{
		path: filepath.Join(dir, "footprint.xlsx"),
		book: excelize.NewFile(),
	}
}

func (w *xlsxWriter) WriteBatch(batch model.ReportBatch) error {
	sheet := sanitizeName(batch.Subscription.Name)
	if len(sheet) > maxSheetName {
		sheet = sheet[:maxSheetName]
	}

	if _, err := w.book.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}
	w.sheets++

	if err := w.writeRow(sheet, 1, header); err != nil {
		return err
	}
	for i, rec := range batch.Records {
		if err := w.writeRow(sheet, i+2, row(rec)); err != nil {
			return err
		}
	}
	return nil
}

func (w *xlsxWriter) writeRow(sheet string, rowNum int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("failed to compute cell name: %w", err)
	}

	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	if err := w.book.SetSheetRow(sheet, cell, &cells); err != nil {
		return fmt.Errorf("failed to write row %d on %s: %w", rowNum, sheet, err)
	}
	return nil
}

func (w *xlsxWriter) Close() error {
	if w.sheets > 0 {
		// Drop the workbook's default empty sheet.
		if err := w.book.DeleteSheet("Sheet1"); err != nil {
			return fmt.Errorf("failed to remove default sheet: %w", err)
		}
	}
	if err := w.book.SaveAs(w.path); err != nil {
		return fmt.Errorf("failed to save %s: %w", w.path, err)
	}
	return w.book.Close()
}
