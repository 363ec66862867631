package service_test

import (
	"context"
	"testing"

	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/apierror"
	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/dto"
	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/model"
	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type produccionFixture struct {
	svc            service.ProduccionService
	produccionRepo *stubProduccionRepo
	productoRepo   *stubProductoRepo
	insumoRepo     *stubInsumoRepo
	usuarioRepo    *stubUsuarioRepo
	movimientoRepo *stubMovimientoRepo
}

func buildProduccionSvc() produccionFixture {
	f := produccionFixture{
		produccionRepo: newStubProduccionRepo(),
		productoRepo:   newStubProductoRepo(),
		insumoRepo:     newStubInsumoRepo(),
		usuarioRepo:    newStubUsuarioRepo(),
		movimientoRepo: &stubMovimientoRepo{},
	}
	f.svc = service.NewProduccionService(
		f.produccionRepo, f.productoRepo, f.insumoRepo, f.usuarioRepo, f.movimientoRepo,
	)
	return f
}

func seedReceta(f produccionFixture, producto *model.Producto, rendimiento int, insumos map[uuid.UUID]int) *model.Receta {
	rec := &model.Receta{
		ID:          uuid.New(),
		ProductoID:  producto.ID,
		Nombre:      "Receta " + producto.Nombre,
		Rendimiento: rendimiento,
	}
	for insumoID, cantidad := range insumos {
		rec.Insumos = append(rec.Insumos, model.RecetaInsumo{
			RecetaID: rec.ID,
			InsumoID: insumoID,
			Cantidad: cantidad,
		})
	}
	f.produccionRepo.recetas[rec.ID] = rec
	return rec
}

// ─── Recetas ─────────────────────────────────────────────────────────────────

func TestCrearReceta_OK(t *testing.T) {
	f := buildProduccionSvc()
	pan := seedProducto(f.productoRepo, "Pan de batalla", 1.50, 0, 10)
	harina := seedInsumo(f.insumoRepo, "Harina 000", 100, 20)
	agua := seedInsumo(f.insumoRepo, "Agua", 1000, 50)

	resp, err := f.svc.CrearReceta(context.Background(), dto.CrearRecetaRequest{
		ProductoID:  pan.ID.String(),
		Nombre:      "Pan de batalla clásico",
		Rendimiento: 50,
		Insumos: []dto.RecetaInsumoRequest{
			{InsumoID: harina.ID.String(), Cantidad: 10},
			{InsumoID: agua.ID.String(), Cantidad: 5},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 50, resp.Rendimiento)
	assert.Len(t, resp.Insumos, 2)
}

func TestCrearReceta_ProductoYaTieneReceta(t *testing.T) {
	f := buildProduccionSvc()
	pan := seedProducto(f.productoRepo, "Pan de batalla", 1.50, 0, 10)
	harina := seedInsumo(f.insumoRepo, "Harina 000", 100, 20)
	seedReceta(f, pan, 50, map[uuid.UUID]int{harina.ID: 10})

	_, err := f.svc.CrearReceta(context.Background(), dto.CrearRecetaRequest{
		ProductoID:  pan.ID.String(),
		Nombre:      "Otra receta",
		Rendimiento: 30,
		Insumos:     []dto.RecetaInsumoRequest{{InsumoID: harina.ID.String(), Cantidad: 5}},
	})
	assert.True(t, apierror.IsValidation(err))
	assert.ErrorContains(t, err, "ya tiene una receta")
}

func TestCrearReceta_InsumoRepetido(t *testing.T) {
	f := buildProduccionSvc()
	pan := seedProducto(f.productoRepo, "Pan de batalla", 1.50, 0, 10)
	harina := seedInsumo(f.insumoRepo, "Harina 000", 100, 20)

	_, err := f.svc.CrearReceta(context.Background(), dto.CrearRecetaRequest{
		ProductoID:  pan.ID.String(),
		Nombre:      "Receta inválida",
		Rendimiento: 50,
		Insumos: []dto.RecetaInsumoRequest{
			{InsumoID: harina.ID.String(), Cantidad: 10},
			{InsumoID: harina.ID.String(), Cantidad: 2},
		},
	})
	assert.ErrorContains(t, err, "repite un insumo")
}

// ─── Producciones ────────────────────────────────────────────────────────────

func TestRegistrarProduccion_ConsumeYProduce(t *testing.T) {
	f := buildProduccionSvc()
	pan := seedProducto(f.productoRepo, "Pan de batalla", 1.50, 10, 10)
	harina := seedInsumo(f.insumoRepo, "Harina 000", 100, 20)
	panadero := seedUsuario(f.usuarioRepo, "panadero1", "panadero")
	ayudante := seedUsuario(f.usuarioRepo, "ayudante1", "panadero")
	receta := seedReceta(f, pan, 50, map[uuid.UUID]int{harina.ID: 10})

	resp, err := f.svc.Registrar(context.Background(), panadero.ID, dto.RegistrarProduccionRequest{
		RecetaID:      receta.ID.String(),
		Fecha:         "2024-03-01",
		Lotes:         3,
		Participantes: []string{ayudante.ID.String()},
	})
	require.NoError(t, err)
	assert.Equal(t, 150, resp.CantidadProducida) // 50 por lote × 3

	// Insumo consumido y producto incrementado.
	assert.Equal(t, 70, f.insumoRepo.insumos[harina.ID].Stock) // 100 - 10×3
	assert.Equal(t, 160, f.productoRepo.productos[pan.ID].Stock)

	// Un movimiento negativo por el insumo y uno positivo por el producto,
	// ambos referenciando la producción.
	require.Len(t, f.movimientoRepo.movimientos, 2)
	salida, entrada := f.movimientoRepo.movimientos[0], f.movimientoRepo.movimientos[1]
	assert.Equal(t, -30, salida.Cantidad)
	assert.Equal(t, model.ItemInsumo, salida.ItemTipo)
	assert.Equal(t, 150, entrada.Cantidad)
	assert.Equal(t, model.ItemProducto, entrada.ItemTipo)
	require.NotNil(t, salida.ReferenciaID)
	assert.Equal(t, resp.ID, salida.ReferenciaID.String())
}

func TestRegistrarProduccion_StockInsuficiente(t *testing.T) {
	f := buildProduccionSvc()
	pan := seedProducto(f.productoRepo, "Pan de batalla", 1.50, 0, 10)
	harina := seedInsumo(f.insumoRepo, "Harina 000", 25, 20)
	panadero := seedUsuario(f.usuarioRepo, "panadero1", "panadero")
	receta := seedReceta(f, pan, 50, map[uuid.UUID]int{harina.ID: 10})

	_, err := f.svc.Registrar(context.Background(), panadero.ID, dto.RegistrarProduccionRequest{
		RecetaID: receta.ID.String(),
		Fecha:    "2024-03-01",
		Lotes:    3, // necesita 30, hay 25
	})
	require.Error(t, err)
	assert.True(t, apierror.IsValidation(err))
	assert.ErrorContains(t, err, "Stock insuficiente del insumo Harina 000")

	// Nada se consumió ni se produjo.
	assert.Equal(t, 25, f.insumoRepo.insumos[harina.ID].Stock)
	assert.Equal(t, 0, f.productoRepo.productos[pan.ID].Stock)
	assert.Empty(t, f.movimientoRepo.movimientos)
}

func TestRegistrarProduccion_ResponsableInexistente(t *testing.T) {
	f := buildProduccionSvc()
	pan := seedProducto(f.productoRepo, "Pan de batalla", 1.50, 0, 10)
	harina := seedInsumo(f.insumoRepo, "Harina 000", 100, 20)
	receta := seedReceta(f, pan, 50, map[uuid.UUID]int{harina.ID: 10})

	_, err := f.svc.Registrar(context.Background(), uuid.New(), dto.RegistrarProduccionRequest{
		RecetaID: receta.ID.String(),
		Fecha:    "2024-03-01",
		Lotes:    1,
	})
	assert.ErrorContains(t, err, "El responsable no existe")
}

func TestRegistrarProduccion_RecetaInexistente(t *testing.T) {
	f := buildProduccionSvc()
	panadero := seedUsuario(f.usuarioRepo, "panadero1", "panadero")

	_, err := f.svc.Registrar(context.Background(), panadero.ID, dto.RegistrarProduccionRequest{
		RecetaID: uuid.New().String(),
		Fecha:    "2024-03-01",
		Lotes:    1,
	})
	assert.True(t, apierror.IsValidation(err))
	assert.ErrorContains(t, err, "La receta no existe")
}

func TestRegistrarProduccion_ResponsableNoSeDuplicaComoParticipante(t *testing.T) {
	f := buildProduccionSvc()
	pan := seedProducto(f.productoRepo, "Pan de batalla", 1.50, 0, 10)
	harina := seedInsumo(f.insumoRepo, "Harina 000", 100, 20)
	panadero := seedUsuario(f.usuarioRepo, "panadero1", "panadero")
	receta := seedReceta(f, pan, 50, map[uuid.UUID]int{harina.ID: 10})

	resp, err := f.svc.Registrar(context.Background(), panadero.ID, dto.RegistrarProduccionRequest{
		RecetaID:      receta.ID.String(),
		Fecha:         "2024-03-01",
		Lotes:         1,
		Participantes: []string{panadero.ID.String(), panadero.ID.String()},
	})
	require.NoError(t, err)

	produccion := f.produccionRepo.producciones[uuid.MustParse(resp.ID)]
	assert.Empty(t, produccion.Participantes)
}
