package service_test

import (
	"context"
	"testing"

	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/apierror"
	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/dto"
	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/model"
	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type inventarioFixture struct {
	svc            service.InventarioService
	productoRepo   *stubProductoRepo
	insumoRepo     *stubInsumoRepo
	movimientoRepo *stubMovimientoRepo
	dispatcher     *stubAlertaDispatcher
}

func buildInventarioSvc() inventarioFixture {
	f := inventarioFixture{
		productoRepo:   newStubProductoRepo(),
		insumoRepo:     newStubInsumoRepo(),
		movimientoRepo: &stubMovimientoRepo{},
		dispatcher:     &stubAlertaDispatcher{},
	}
	f.svc = service.NewInventarioService(f.productoRepo, f.insumoRepo, f.movimientoRepo, f.dispatcher)
	return f
}

func TestCrearProducto_OK(t *testing.T) {
	f := buildInventarioSvc()

	resp, err := f.svc.CrearProducto(context.Background(), dto.CrearProductoRequest{
		Nombre:         "Pan de batalla",
		PrecioUnitario: decimal.NewFromFloat(1.50),
		StockMinimo:    10,
	})
	require.NoError(t, err)
	assert.True(t, resp.Activo)
	assert.Equal(t, 0, resp.Stock)
}

func TestAjustarStock_RegistraMovimiento(t *testing.T) {
	f := buildInventarioSvc()
	pan := seedProducto(f.productoRepo, "Pan de batalla", 1.50, 40, 10)

	resp, err := f.svc.AjustarStock(context.Background(), model.ItemProducto, pan.ID, dto.AjustarStockRequest{
		Delta:  -15,
		Motivo: "merma por quemado",
	})
	require.NoError(t, err)
	assert.Equal(t, 40, resp.StockAnterior)
	assert.Equal(t, 25, resp.StockNuevo)
	assert.Equal(t, "ajuste_manual", resp.Tipo)

	assert.Equal(t, 25, f.productoRepo.productos[pan.ID].Stock)
	require.Len(t, f.movimientoRepo.movimientos, 1)
	assert.Equal(t, -15, f.movimientoRepo.movimientos[0].Cantidad)
}

func TestAjustarStock_NuncaNegativo(t *testing.T) {
	f := buildInventarioSvc()
	harina := seedInsumo(f.insumoRepo, "Harina 000", 5, 20)

	_, err := f.svc.AjustarStock(context.Background(), model.ItemInsumo, harina.ID, dto.AjustarStockRequest{
		Delta:  -10,
		Motivo: "corrección de conteo",
	})
	require.Error(t, err)
	assert.True(t, apierror.IsValidation(err))
	assert.ErrorContains(t, err, "stock en negativo")

	assert.Equal(t, 5, f.insumoRepo.insumos[harina.ID].Stock)
	assert.Empty(t, f.movimientoRepo.movimientos)
}

func TestAjustarStock_DisparaAlertaBajoMinimo(t *testing.T) {
	f := buildInventarioSvc()
	pan := seedProducto(f.productoRepo, "Pan de batalla", 1.50, 30, 10)

	_, err := f.svc.AjustarStock(context.Background(), model.ItemProducto, pan.ID, dto.AjustarStockRequest{
		Delta:  -25,
		Motivo: "venta mayorista directa",
	})
	require.NoError(t, err)

	// 5 <= mínimo 10 → alerta encolada.
	require.Len(t, f.dispatcher.alertas, 1)
	alerta := f.dispatcher.alertas[0].(dto.AlertaStockResponse)
	assert.Equal(t, "Pan de batalla", alerta.Nombre)
	assert.Equal(t, 5, alerta.Stock)
}

func TestAjustarStock_SinAlertaSobreMinimo(t *testing.T) {
	f := buildInventarioSvc()
	pan := seedProducto(f.productoRepo, "Pan de batalla", 1.50, 30, 10)

	_, err := f.svc.AjustarStock(context.Background(), model.ItemProducto, pan.ID, dto.AjustarStockRequest{
		Delta:  -5,
		Motivo: "degustación en tienda",
	})
	require.NoError(t, err)
	assert.Empty(t, f.dispatcher.alertas)
}

func TestAjustarStock_ItemTipoInvalido(t *testing.T) {
	f := buildInventarioSvc()

	_, err := f.svc.AjustarStock(context.Background(), "otro", uuid.New(), dto.AjustarStockRequest{
		Delta:  1,
		Motivo: "no debería llegar",
	})
	assert.True(t, apierror.IsValidation(err))
}

func TestObtenerAlertas_CombinaProductosEInsumos(t *testing.T) {
	f := buildInventarioSvc()
	seedProducto(f.productoRepo, "Pan de batalla", 1.50, 2, 10)   // bajo mínimo
	seedProducto(f.productoRepo, "Torta de chocolate", 80, 50, 5) // ok
	seedInsumo(f.insumoRepo, "Harina 000", 10, 20)                // bajo mínimo

	alertas, err := f.svc.ObtenerAlertas(context.Background())
	require.NoError(t, err)
	assert.Len(t, alertas, 2)
}

func TestDesactivarProducto_SoftDelete(t *testing.T) {
	f := buildInventarioSvc()
	pan := seedProducto(f.productoRepo, "Pan de batalla", 1.50, 40, 10)

	require.NoError(t, f.svc.DesactivarProducto(context.Background(), pan.ID))
	assert.False(t, f.productoRepo.productos[pan.ID].Activo)

	require.NoError(t, f.svc.ReactivarProducto(context.Background(), pan.ID))
	assert.True(t, f.productoRepo.productos[pan.ID].Activo)
}

func TestObtenerProducto_NoEncontrado(t *testing.T) {
	f := buildInventarioSvc()
	_, err := f.svc.ObtenerProducto(context.Background(), uuid.New())
	assert.True(t, apierror.IsNotFound(err))
}
