package service

import (
	"bytes"
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/apierror"
	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/config"
	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/dto"
	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/infra"
	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/repository"
)

// ReporteService builds tabular reports and renders them in the requested
// format. The table is assembled once; the format writers only care about a
// dto.Tabla.
type ReporteService interface {
	Generar(ctx context.Context, tema string, filter dto.ReporteFilter) (*dto.ReporteArchivo, error)
}

type reporteService struct {
	pedidoRepo   repository.PedidoRepository
	productoRepo repository.ProductoRepository
	insumoRepo   repository.InsumoRepository
	cfg          *config.Config
}

func NewReporteService(
	pedidoRepo repository.PedidoRepository,
	productoRepo repository.ProductoRepository,
	insumoRepo repository.InsumoRepository,
	cfg *config.Config,
) ReporteService {
	return &reporteService{
		pedidoRepo:   pedidoRepo,
		productoRepo: productoRepo,
		insumoRepo:   insumoRepo,
		cfg:          cfg,
	}
}

func (s *reporteService) Generar(ctx context.Context, tema string, filter dto.ReporteFilter) (*dto.ReporteArchivo, error) {
	var tabla dto.Tabla
	var err error
	switch tema {
	case "pedidos":
		tabla, err = s.tablaPedidos(ctx, filter)
	case "inventario":
		tabla, err = s.tablaInventario(ctx)
	default:
		return nil, apierror.NotFound("Reporte no encontrado")
	}
	if err != nil {
		return nil, mapError(err, "Error al generar el reporte")
	}

	nombre := fmt.Sprintf("reporte_%s_%s", tema, time.Now().Format("20060102"))
	switch filter.Formato {
	case "excel":
		contenido, err := infra.TablaExcel(tabla)
		if err != nil {
			return nil, mapError(err, "Error al generar el reporte")
		}
		return &dto.ReporteArchivo{
			Nombre:      nombre + ".xlsx",
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Contenido:   contenido,
		}, nil
	case "txt":
		return &dto.ReporteArchivo{
			Nombre:      nombre + ".txt",
			ContentType: "text/plain; charset=utf-8",
			Contenido:   tablaTexto(tabla),
		}, nil
	default:
		contenido, err := infra.TablaPDF(s.cfg.NombreNegocio, tabla)
		if err != nil {
			return nil, mapError(err, "Error al generar el reporte")
		}
		return &dto.ReporteArchivo{
			Nombre:      nombre + ".pdf",
			ContentType: "application/pdf",
			Contenido:   contenido,
		}, nil
	}
}

func (s *reporteService) tablaPedidos(ctx context.Context, filter dto.ReporteFilter) (dto.Tabla, error) {
	var desde, hasta *time.Time
	if filter.Desde != "" {
		d, err := time.Parse(fechaLayout, filter.Desde)
		if err != nil {
			return dto.Tabla{}, apierror.Validation("desde inválido, use YYYY-MM-DD")
		}
		desde = &d
	}
	if filter.Hasta != "" {
		h, err := time.Parse(fechaLayout, filter.Hasta)
		if err != nil {
			return dto.Tabla{}, apierror.Validation("hasta inválido, use YYYY-MM-DD")
		}
		hasta = &h
	}

	pedidos, err := s.pedidoRepo.ListEntreFechas(ctx, desde, hasta)
	if err != nil {
		return dto.Tabla{}, err
	}

	tabla := dto.Tabla{
		Titulo:   "Reporte de pedidos",
		Columnas: []string{"Fecha pedido", "Fecha entrega", "Cliente", "Tipo", "Estado", "Total"},
		Filas:    make([][]string, 0, len(pedidos)),
	}
	for i := range pedidos {
		p := &pedidos[i]
		cliente := p.CICliente
		if p.Cliente != nil {
			cliente = p.Cliente.Nombre
		}
		tabla.Filas = append(tabla.Filas, []string{
			p.FechaPedido.Format(fechaLayout),
			p.FechaEntrega.Format(fechaLayout),
			cliente,
			p.Tipo,
			p.Estado(),
			p.Total.StringFixed(2),
		})
	}
	return tabla, nil
}

func (s *reporteService) tablaInventario(ctx context.Context) (dto.Tabla, error) {
	productos, _, err := s.productoRepo.List(ctx, dto.ProductoFilter{Page: 1, Limit: 200})
	if err != nil {
		return dto.Tabla{}, err
	}
	insumos, err := s.insumoRepo.List(ctx, false)
	if err != nil {
		return dto.Tabla{}, err
	}

	tabla := dto.Tabla{
		Titulo:   "Reporte de inventario",
		Columnas: []string{"Tipo", "Nombre", "Stock", "Stock mínimo", "Unidad"},
		Filas:    make([][]string, 0, len(productos)+len(insumos)),
	}
	for i := range productos {
		p := &productos[i]
		tabla.Filas = append(tabla.Filas, []string{
			"Producto", p.Nombre, fmt.Sprint(p.Stock), fmt.Sprint(p.StockMinimo), "unidad",
		})
	}
	for i := range insumos {
		ins := &insumos[i]
		tabla.Filas = append(tabla.Filas, []string{
			"Insumo", ins.Nombre, fmt.Sprint(ins.Stock), fmt.Sprint(ins.StockMinimo), ins.UnidadMedida,
		})
	}
	return tabla, nil
}

// tablaTexto renders the table with aligned columns for the plain-text format.
func tablaTexto(tabla dto.Tabla) []byte {
	var buf bytes.Buffer
	buf.WriteString(tabla.Titulo + "\n\n")

	w := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)
	for i, col := range tabla.Columnas {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, col)
	}
	fmt.Fprintln(w)
	for _, fila := range tabla.Filas {
		for i, celda := range fila {
			if i > 0 {
				fmt.Fprint(w, "\t")
			}
			fmt.Fprint(w, celda)
		}
		fmt.Fprintln(w)
	}
	w.Flush()
	return buf.Bytes()
}
