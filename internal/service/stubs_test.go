package service_test

import (
	"context"
	"time"

	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/dto"
	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/model"
	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// In-memory repository stubs. Every DB() returns nil so the services run
// their transaction callbacks directly against these maps.

// ── Cliente ──────────────────────────────────────────────────────────────────

type stubClienteRepo struct {
	clientes map[string]*model.Cliente
}

func newStubClienteRepo() *stubClienteRepo {
	return &stubClienteRepo{clientes: make(map[string]*model.Cliente)}
}

func (r *stubClienteRepo) Create(_ context.Context, c *model.Cliente) error {
	r.clientes[c.CI] = c
	return nil
}

func (r *stubClienteRepo) FindByCI(_ context.Context, ci string) (*model.Cliente, error) {
	c, ok := r.clientes[ci]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubClienteRepo) List(_ context.Context) ([]model.Cliente, error) {
	out := make([]model.Cliente, 0, len(r.clientes))
	for _, c := range r.clientes {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubClienteRepo) Update(_ context.Context, c *model.Cliente) error {
	r.clientes[c.CI] = c
	return nil
}

func (r *stubClienteRepo) Delete(_ context.Context, ci string) error {
	delete(r.clientes, ci)
	return nil
}

func (r *stubClienteRepo) ExistsTx(_ *gorm.DB, ci string) (bool, error) {
	_, ok := r.clientes[ci]
	return ok, nil
}

var _ repository.ClienteRepository = (*stubClienteRepo)(nil)

// ── Producto ─────────────────────────────────────────────────────────────────

type stubProductoRepo struct {
	productos map[uuid.UUID]*model.Producto
}

func newStubProductoRepo() *stubProductoRepo {
	return &stubProductoRepo{productos: make(map[uuid.UUID]*model.Producto)}
}

func (r *stubProductoRepo) Create(_ context.Context, p *model.Producto) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Producto, error) {
	p, ok := r.productos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProductoRepo) List(_ context.Context, filter dto.ProductoFilter) ([]model.Producto, int64, error) {
	out := make([]model.Producto, 0, len(r.productos))
	for _, p := range r.productos {
		if filter.Activo != "all" && !p.Activo {
			continue
		}
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *stubProductoRepo) Update(_ context.Context, p *model.Producto) error {
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	if p, ok := r.productos[id]; ok {
		p.Activo = false
	}
	return nil
}

func (r *stubProductoRepo) Reactivar(_ context.Context, id uuid.UUID) error {
	if p, ok := r.productos[id]; ok {
		p.Activo = true
	}
	return nil
}

func (r *stubProductoRepo) ListBajoStock(_ context.Context) ([]model.Producto, error) {
	var out []model.Producto
	for _, p := range r.productos {
		if p.Activo && p.Stock <= p.StockMinimo {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProductoRepo) FindByIDTx(_ *gorm.DB, id uuid.UUID) (*model.Producto, error) {
	return r.FindByID(context.Background(), id)
}

func (r *stubProductoRepo) ExistsTx(_ *gorm.DB, id uuid.UUID) (bool, error) {
	_, ok := r.productos[id]
	return ok, nil
}

func (r *stubProductoRepo) UpdateStockTx(_ *gorm.DB, id uuid.UUID, delta int) error {
	p, ok := r.productos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Stock += delta
	return nil
}

func (r *stubProductoRepo) DB() *gorm.DB { return nil }

var _ repository.ProductoRepository = (*stubProductoRepo)(nil)

// ── Insumo ───────────────────────────────────────────────────────────────────

type stubInsumoRepo struct {
	insumos map[uuid.UUID]*model.Insumo
}

func newStubInsumoRepo() *stubInsumoRepo {
	return &stubInsumoRepo{insumos: make(map[uuid.UUID]*model.Insumo)}
}

func (r *stubInsumoRepo) Create(_ context.Context, i *model.Insumo) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	r.insumos[i.ID] = i
	return nil
}

func (r *stubInsumoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Insumo, error) {
	i, ok := r.insumos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return i, nil
}

func (r *stubInsumoRepo) List(_ context.Context, incluirInactivos bool) ([]model.Insumo, error) {
	out := make([]model.Insumo, 0, len(r.insumos))
	for _, i := range r.insumos {
		if !incluirInactivos && !i.Activo {
			continue
		}
		out = append(out, *i)
	}
	return out, nil
}

func (r *stubInsumoRepo) Update(_ context.Context, i *model.Insumo) error {
	r.insumos[i.ID] = i
	return nil
}

func (r *stubInsumoRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	if i, ok := r.insumos[id]; ok {
		i.Activo = false
	}
	return nil
}

func (r *stubInsumoRepo) ListBajoStock(_ context.Context) ([]model.Insumo, error) {
	var out []model.Insumo
	for _, i := range r.insumos {
		if i.Activo && i.Stock <= i.StockMinimo {
			out = append(out, *i)
		}
	}
	return out, nil
}

func (r *stubInsumoRepo) FindByIDTx(_ *gorm.DB, id uuid.UUID) (*model.Insumo, error) {
	return r.FindByID(context.Background(), id)
}

func (r *stubInsumoRepo) ExistsTx(_ *gorm.DB, id uuid.UUID) (bool, error) {
	_, ok := r.insumos[id]
	return ok, nil
}

func (r *stubInsumoRepo) UpdateStockTx(_ *gorm.DB, id uuid.UUID, delta int) error {
	i, ok := r.insumos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	i.Stock += delta
	return nil
}

func (r *stubInsumoRepo) DB() *gorm.DB { return nil }

var _ repository.InsumoRepository = (*stubInsumoRepo)(nil)

// ── Usuario ──────────────────────────────────────────────────────────────────

type stubUsuarioRepo struct {
	usuarios map[uuid.UUID]*model.Usuario
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{usuarios: make(map[uuid.UUID]*model.Usuario)}
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.usuarios[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUsuarioRepo) FindByUsername(_ context.Context, username string) (*model.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Username == username && u.Activo {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUsuarioRepo) List(_ context.Context) ([]model.Usuario, error) {
	var out []model.Usuario
	for _, u := range r.usuarios {
		if u.Activo {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *stubUsuarioRepo) ListAll(_ context.Context) ([]model.Usuario, error) {
	out := make([]model.Usuario, 0, len(r.usuarios))
	for _, u := range r.usuarios {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUsuarioRepo) Update(_ context.Context, u *model.Usuario) error {
	r.usuarios[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	if u, ok := r.usuarios[id]; ok {
		u.Activo = false
	}
	return nil
}

func (r *stubUsuarioRepo) Reactivar(_ context.Context, id uuid.UUID) error {
	if u, ok := r.usuarios[id]; ok {
		u.Activo = true
	}
	return nil
}

func (r *stubUsuarioRepo) ListPermisosByRol(_ context.Context, _ string) ([]string, error) {
	return nil, nil
}

func (r *stubUsuarioRepo) ExistsTx(_ *gorm.DB, id uuid.UUID) (bool, error) {
	u, ok := r.usuarios[id]
	return ok && u.Activo, nil
}

var _ repository.UsuarioRepository = (*stubUsuarioRepo)(nil)

// ── Proveedor ────────────────────────────────────────────────────────────────

type stubProveedorRepo struct {
	proveedores map[string]*model.Proveedor
}

func newStubProveedorRepo() *stubProveedorRepo {
	return &stubProveedorRepo{proveedores: make(map[string]*model.Proveedor)}
}

func (r *stubProveedorRepo) Create(_ context.Context, p *model.Proveedor) error {
	r.proveedores[p.Codigo] = p
	return nil
}

func (r *stubProveedorRepo) FindByCodigo(_ context.Context, codigo string) (*model.Proveedor, error) {
	p, ok := r.proveedores[codigo]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProveedorRepo) List(_ context.Context) ([]model.Proveedor, error) {
	var out []model.Proveedor
	for _, p := range r.proveedores {
		if p.Activo {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProveedorRepo) Update(_ context.Context, p *model.Proveedor) error {
	r.proveedores[p.Codigo] = p
	return nil
}

func (r *stubProveedorRepo) SoftDelete(_ context.Context, codigo string) error {
	if p, ok := r.proveedores[codigo]; ok {
		p.Activo = false
	}
	return nil
}

func (r *stubProveedorRepo) ExistsTx(_ *gorm.DB, codigo string) (bool, error) {
	p, ok := r.proveedores[codigo]
	return ok && p.Activo, nil
}

var _ repository.ProveedorRepository = (*stubProveedorRepo)(nil)

// ── Pedido ───────────────────────────────────────────────────────────────────

type claveDetalle struct{ productoID, pedidoID uuid.UUID }

type stubPedidoRepo struct {
	pedidos  map[uuid.UUID]*model.Pedido
	detalles map[claveDetalle]*model.DetallePedido
}

func newStubPedidoRepo() *stubPedidoRepo {
	return &stubPedidoRepo{
		pedidos:  make(map[uuid.UUID]*model.Pedido),
		detalles: make(map[claveDetalle]*model.DetallePedido),
	}
}

func (r *stubPedidoRepo) CreateTx(_ *gorm.DB, p *model.Pedido) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.pedidos[p.ID] = p
	return nil
}

func (r *stubPedidoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Pedido, error) {
	p, ok := r.pedidos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	p.Detalles = p.Detalles[:0]
	for clave, d := range r.detalles {
		if clave.pedidoID == id {
			p.Detalles = append(p.Detalles, *d)
		}
	}
	return p, nil
}

func (r *stubPedidoRepo) List(_ context.Context) ([]model.Pedido, error) {
	out := make([]model.Pedido, 0, len(r.pedidos))
	for _, p := range r.pedidos {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubPedidoRepo) ListEntreFechas(_ context.Context, desde, hasta *time.Time) ([]model.Pedido, error) {
	var out []model.Pedido
	for _, p := range r.pedidos {
		if desde != nil && p.FechaPedido.Before(*desde) {
			continue
		}
		if hasta != nil && p.FechaPedido.After(*hasta) {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubPedidoRepo) SaveTx(_ *gorm.DB, p *model.Pedido) error {
	r.pedidos[p.ID] = p
	return nil
}

func (r *stubPedidoRepo) UpdateEntregado(_ context.Context, id uuid.UUID) error {
	p, ok := r.pedidos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Entregado = true
	return nil
}

func (r *stubPedidoRepo) DeleteTx(_ *gorm.DB, id uuid.UUID) error {
	for clave := range r.detalles {
		if clave.pedidoID == id {
			delete(r.detalles, clave)
		}
	}
	delete(r.pedidos, id)
	return nil
}

func (r *stubPedidoRepo) ExistsTx(_ *gorm.DB, id uuid.UUID) (bool, error) {
	_, ok := r.pedidos[id]
	return ok, nil
}

func (r *stubPedidoRepo) CreateDetalleTx(_ *gorm.DB, d *model.DetallePedido) error {
	r.detalles[claveDetalle{d.ProductoID, d.PedidoID}] = d
	return nil
}

func (r *stubPedidoRepo) FindDetalle(_ context.Context, productoID, pedidoID uuid.UUID) (*model.DetallePedido, error) {
	return r.FindDetalleTx(nil, productoID, pedidoID)
}

func (r *stubPedidoRepo) FindDetalleTx(_ *gorm.DB, productoID, pedidoID uuid.UUID) (*model.DetallePedido, error) {
	d, ok := r.detalles[claveDetalle{productoID, pedidoID}]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return d, nil
}

func (r *stubPedidoRepo) ListDetalles(_ context.Context) ([]model.DetallePedido, error) {
	out := make([]model.DetallePedido, 0, len(r.detalles))
	for _, d := range r.detalles {
		out = append(out, *d)
	}
	return out, nil
}

func (r *stubPedidoRepo) ListDetallesByPedido(_ context.Context, pedidoID uuid.UUID) ([]model.DetallePedido, error) {
	out := make([]model.DetallePedido, 0)
	for clave, d := range r.detalles {
		if clave.pedidoID == pedidoID {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (r *stubPedidoRepo) SaveDetalleTx(_ *gorm.DB, d *model.DetallePedido) error {
	r.detalles[claveDetalle{d.ProductoID, d.PedidoID}] = d
	return nil
}

func (r *stubPedidoRepo) DeleteDetalleTx(_ *gorm.DB, productoID, pedidoID uuid.UUID) error {
	delete(r.detalles, claveDetalle{productoID, pedidoID})
	return nil
}

func (r *stubPedidoRepo) SumDetallesTx(_ *gorm.DB, pedidoID uuid.UUID) (decimal.Decimal, error) {
	total := decimal.Zero
	for clave, d := range r.detalles {
		if clave.pedidoID == pedidoID {
			total = total.Add(d.Total)
		}
	}
	return total, nil
}

func (r *stubPedidoRepo) UpdateTotalTx(_ *gorm.DB, pedidoID uuid.UUID, total decimal.Decimal) error {
	p, ok := r.pedidos[pedidoID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Total = total
	return nil
}

func (r *stubPedidoRepo) DB() *gorm.DB { return nil }

var _ repository.PedidoRepository = (*stubPedidoRepo)(nil)

// ── Nota de compra ───────────────────────────────────────────────────────────

type claveCompra struct {
	notaID   uuid.UUID
	itemTipo string
	itemID   uuid.UUID
}

type stubNotaCompraRepo struct {
	notas    map[uuid.UUID]*model.NotaCompra
	detalles map[claveCompra]*model.DetalleCompra
}

func newStubNotaCompraRepo() *stubNotaCompraRepo {
	return &stubNotaCompraRepo{
		notas:    make(map[uuid.UUID]*model.NotaCompra),
		detalles: make(map[claveCompra]*model.DetalleCompra),
	}
}

func (r *stubNotaCompraRepo) CreateTx(_ *gorm.DB, n *model.NotaCompra) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	r.notas[n.ID] = n
	return nil
}

func (r *stubNotaCompraRepo) FindByID(_ context.Context, id uuid.UUID) (*model.NotaCompra, error) {
	n, ok := r.notas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	n.Detalles = n.Detalles[:0]
	for clave, d := range r.detalles {
		if clave.notaID == id {
			n.Detalles = append(n.Detalles, *d)
		}
	}
	return n, nil
}

func (r *stubNotaCompraRepo) List(_ context.Context) ([]model.NotaCompra, error) {
	out := make([]model.NotaCompra, 0, len(r.notas))
	for _, n := range r.notas {
		out = append(out, *n)
	}
	return out, nil
}

func (r *stubNotaCompraRepo) SaveTx(_ *gorm.DB, n *model.NotaCompra) error {
	r.notas[n.ID] = n
	return nil
}

func (r *stubNotaCompraRepo) DeleteTx(_ *gorm.DB, id uuid.UUID) error {
	for clave := range r.detalles {
		if clave.notaID == id {
			delete(r.detalles, clave)
		}
	}
	delete(r.notas, id)
	return nil
}

func (r *stubNotaCompraRepo) ExistsTx(_ *gorm.DB, id uuid.UUID) (bool, error) {
	_, ok := r.notas[id]
	return ok, nil
}

func (r *stubNotaCompraRepo) CreateDetalleTx(_ *gorm.DB, d *model.DetalleCompra) error {
	r.detalles[claveCompra{d.NotaCompraID, d.ItemTipo, d.ItemID}] = d
	return nil
}

func (r *stubNotaCompraRepo) FindDetalle(_ context.Context, notaID uuid.UUID, itemTipo string, itemID uuid.UUID) (*model.DetalleCompra, error) {
	d, ok := r.detalles[claveCompra{notaID, itemTipo, itemID}]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return d, nil
}

func (r *stubNotaCompraRepo) DetalleExistsTx(_ *gorm.DB, notaID uuid.UUID, itemTipo string, itemID uuid.UUID) (bool, error) {
	_, ok := r.detalles[claveCompra{notaID, itemTipo, itemID}]
	return ok, nil
}

func (r *stubNotaCompraRepo) ListDetallesByNota(_ context.Context, notaID uuid.UUID) ([]model.DetalleCompra, error) {
	out := make([]model.DetalleCompra, 0)
	for clave, d := range r.detalles {
		if clave.notaID == notaID {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (r *stubNotaCompraRepo) SaveDetalleTx(_ *gorm.DB, d *model.DetalleCompra) error {
	r.detalles[claveCompra{d.NotaCompraID, d.ItemTipo, d.ItemID}] = d
	return nil
}

func (r *stubNotaCompraRepo) DeleteDetalleTx(_ *gorm.DB, notaID uuid.UUID, itemTipo string, itemID uuid.UUID) error {
	delete(r.detalles, claveCompra{notaID, itemTipo, itemID})
	return nil
}

func (r *stubNotaCompraRepo) DB() *gorm.DB { return nil }

var _ repository.NotaCompraRepository = (*stubNotaCompraRepo)(nil)

// ── Producción ───────────────────────────────────────────────────────────────

type stubProduccionRepo struct {
	recetas      map[uuid.UUID]*model.Receta
	producciones map[uuid.UUID]*model.Produccion
}

func newStubProduccionRepo() *stubProduccionRepo {
	return &stubProduccionRepo{
		recetas:      make(map[uuid.UUID]*model.Receta),
		producciones: make(map[uuid.UUID]*model.Produccion),
	}
}

func (r *stubProduccionRepo) CreateReceta(_ context.Context, rec *model.Receta) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	r.recetas[rec.ID] = rec
	return nil
}

func (r *stubProduccionRepo) FindRecetaByID(_ context.Context, id uuid.UUID) (*model.Receta, error) {
	rec, ok := r.recetas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return rec, nil
}

func (r *stubProduccionRepo) FindRecetaByIDTx(_ *gorm.DB, id uuid.UUID) (*model.Receta, error) {
	return r.FindRecetaByID(context.Background(), id)
}

func (r *stubProduccionRepo) ExistsRecetaForProducto(_ context.Context, productoID uuid.UUID) (bool, error) {
	for _, rec := range r.recetas {
		if rec.ProductoID == productoID {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubProduccionRepo) ListRecetas(_ context.Context) ([]model.Receta, error) {
	out := make([]model.Receta, 0, len(r.recetas))
	for _, rec := range r.recetas {
		out = append(out, *rec)
	}
	return out, nil
}

func (r *stubProduccionRepo) DeleteReceta(_ context.Context, id uuid.UUID) error {
	delete(r.recetas, id)
	return nil
}

func (r *stubProduccionRepo) CreateProduccionTx(_ *gorm.DB, p *model.Produccion) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.producciones[p.ID] = p
	return nil
}

func (r *stubProduccionRepo) FindProduccionByID(_ context.Context, id uuid.UUID) (*model.Produccion, error) {
	p, ok := r.producciones[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProduccionRepo) ListProducciones(_ context.Context) ([]model.Produccion, error) {
	out := make([]model.Produccion, 0, len(r.producciones))
	for _, p := range r.producciones {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProduccionRepo) DB() *gorm.DB { return nil }

var _ repository.ProduccionRepository = (*stubProduccionRepo)(nil)

// ── Movimientos de stock ─────────────────────────────────────────────────────

type stubMovimientoRepo struct {
	movimientos []model.MovimientoStock
}

func (r *stubMovimientoRepo) CreateTx(_ *gorm.DB, m *model.MovimientoStock) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	r.movimientos = append(r.movimientos, *m)
	return nil
}

func (r *stubMovimientoRepo) ListByItem(_ context.Context, itemTipo string, itemID uuid.UUID, _ int) ([]model.MovimientoStock, error) {
	var out []model.MovimientoStock
	for _, m := range r.movimientos {
		if m.ItemTipo == itemTipo && m.ItemID == itemID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *stubMovimientoRepo) List(_ context.Context, _ int) ([]model.MovimientoStock, error) {
	return r.movimientos, nil
}

var _ repository.MovimientoStockRepository = (*stubMovimientoRepo)(nil)

// ── Dispatchers ──────────────────────────────────────────────────────────────

type stubAlertaDispatcher struct {
	alertas []interface{}
}

func (d *stubAlertaDispatcher) EnqueueAlertaStock(_ context.Context, payload interface{}) error {
	d.alertas = append(d.alertas, payload)
	return nil
}

// ── Seed helpers ─────────────────────────────────────────────────────────────

func seedCliente(repo *stubClienteRepo, ci, nombre string) *model.Cliente {
	c := &model.Cliente{CI: ci, Nombre: nombre, Sexo: "M"}
	repo.clientes[ci] = c
	return c
}

func seedProducto(repo *stubProductoRepo, nombre string, precio float64, stock, stockMinimo int) *model.Producto {
	p := &model.Producto{
		ID:             uuid.New(),
		Nombre:         nombre,
		PrecioUnitario: decimal.NewFromFloat(precio),
		Stock:          stock,
		StockMinimo:    stockMinimo,
		Activo:         true,
	}
	repo.productos[p.ID] = p
	return p
}

func seedInsumo(repo *stubInsumoRepo, nombre string, stock, stockMinimo int) *model.Insumo {
	i := &model.Insumo{
		ID:           uuid.New(),
		Nombre:       nombre,
		UnidadMedida: "kg",
		Stock:        stock,
		StockMinimo:  stockMinimo,
		Activo:       true,
	}
	repo.insumos[i.ID] = i
	return i
}

func seedUsuario(repo *stubUsuarioRepo, username, rol string) *model.Usuario {
	u := &model.Usuario{
		ID:       uuid.New(),
		Username: username,
		Nombre:   username,
		Rol:      rol,
		Activo:   true,
	}
	repo.usuarios[u.ID] = u
	return u
}

func seedProveedor(repo *stubProveedorRepo, codigo, razonSocial string) *model.Proveedor {
	p := &model.Proveedor{Codigo: codigo, RazonSocial: razonSocial, Activo: true}
	repo.proveedores[codigo] = p
	return p
}
