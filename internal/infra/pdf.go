package infra

import (
	"bytes"
	"fmt"
	"time"

	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/dto"

	"github.com/go-pdf/fpdf"
)

// TablaPDF renders a titled table as an A4 PDF and returns the raw bytes.
func TablaPDF(negocio string, tabla dto.Tabla) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(12, 12, 12)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 24

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentW, 8, negocio, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(contentW, 6, tabla.Titulo, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 5, time.Now().Format("02/01/2006 15:04"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	if len(tabla.Columnas) == 0 {
		var buf bytes.Buffer
		if err := pdf.Output(&buf); err != nil {
			return nil, fmt.Errorf("pdf: %w", err)
		}
		return buf.Bytes(), nil
	}
	colW := contentW / float64(len(tabla.Columnas))

	// ── Column headers ───────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for _, col := range tabla.Columnas {
		pdf.CellFormat(colW, 7, col, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	// ── Rows ─────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 8)
	for _, fila := range tabla.Filas {
		for i := 0; i < len(tabla.Columnas); i++ {
			celda := ""
			if i < len(fila) {
				celda = fila[i]
			}
			pdf.CellFormat(colW, 6, celda, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: %w", err)
	}
	return buf.Bytes(), nil
}
