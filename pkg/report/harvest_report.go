// Package report renders harvest records into an .xlsx workbook for
// offline record keeping.
package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"garden/entities"
)

var headers = []string{
	"Harvest date", "Crop", "Location", "Quantity", "Unit",
	"Days from planting", "Notes",
}

// HarvestWorkbook builds a single-sheet workbook, one row per harvest, in
// the order the rows are given.
func HarvestWorkbook(rows []entities.HarvestDetail) (*excelize.File, error) {
	f := excelize.NewFile()
	const sheet = "Harvests"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("%w: rename sheet: %v", entities.ErrStorage, err)
	}

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("%w: write header: %v", entities.ErrStorage, err)
		}
	}

	for i, r := range rows {
		values := []any{
			r.HarvestDate,
			r.CropName,
			r.LocationName,
			deref(r.Quantity),
			derefStr(r.Unit),
			deref(r.DaysFromPlanting),
			derefStr(r.Notes),
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("%w: write row %d: %v", entities.ErrStorage, i+1, err)
			}
		}
	}
	return f, nil
}

func deref[T any](p *T) any {
	if p == nil {
		return ""
	}
	return *p
}

func derefStr(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
