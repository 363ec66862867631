package infra

import (
	"fmt"

	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/dto"

	"github.com/xuri/excelize/v2"
)

// TablaExcel renders a titled table as an xlsx workbook and returns the raw
// bytes. One sheet, title in A1, headers bold on row 3.
func TablaExcel(tabla dto.Tabla) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const hoja = "Reporte"
	f.SetSheetName("Sheet1", hoja)

	if err := f.SetCellValue(hoja, "A1", tabla.Titulo); err != nil {
		return nil, fmt.Errorf("excel: %w", err)
	}
	tituloStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return nil, fmt.Errorf("excel: %w", err)
	}
	_ = f.SetCellStyle(hoja, "A1", "A1", tituloStyle)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"E6E6E6"}},
	})
	if err != nil {
		return nil, fmt.Errorf("excel: %w", err)
	}

	for i, col := range tabla.Columnas {
		celda, _ := excelize.CoordinatesToCellName(i+1, 3)
		if err := f.SetCellValue(hoja, celda, col); err != nil {
			return nil, fmt.Errorf("excel: %w", err)
		}
		_ = f.SetCellStyle(hoja, celda, celda, headerStyle)
	}

	for r, fila := range tabla.Filas {
		for c, valor := range fila {
			celda, _ := excelize.CoordinatesToCellName(c+1, r+4)
			if err := f.SetCellValue(hoja, celda, valor); err != nil {
				return nil, fmt.Errorf("excel: %w", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: %w", err)
	}
	return buf.Bytes(), nil
}
