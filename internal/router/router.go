package router

import (
	"time"

	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/config"
	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/handler"
	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/infra"
	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/middleware"
	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/repository"
	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/service"
	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Permission names referenced by the routes. Seeded per role by cmd/seedadmin.
const (
	PermisoCrearPedido         = "CREAR_PEDIDO"
	PermisoVerPedido           = "VER_PEDIDO"
	PermisoEditarPedido        = "EDITAR_PEDIDO"
	PermisoEliminarPedido      = "ELIMINAR_PEDIDO"
	PermisoCrearCompra         = "CREAR_COMPRA"
	PermisoVerCompra           = "VER_COMPRA"
	PermisoEditarCompra        = "EDITAR_COMPRA"
	PermisoEliminarCompra      = "ELIMINAR_COMPRA"
	PermisoGestionClientes     = "GESTION_CLIENTES"
	PermisoVerInventario       = "VER_INVENTARIO"
	PermisoGestionInventario   = "GESTION_INVENTARIO"
	PermisoGestionProveedores  = "GESTION_PROVEEDORES"
	PermisoRegistrarProduccion = "REGISTRAR_PRODUCCION"
	PermisoVerProduccion       = "VER_PRODUCCION"
	PermisoGestionRecetas      = "GESTION_RECETAS"
	PermisoGestionUsuarios     = "GESTION_USUARIOS"
	PermisoVerBitacora         = "VER_BITACORA"
	PermisoGenerarReportes     = "GENERAR_REPORTES"
)

// New wires all dependencies and returns a configured Gin engine plus the
// worker pool with its processors registered. The caller starts the pool.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) (*gin.Engine, *worker.Pool) {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Infrastructure ───────────────────────────────────────────────────────
	mailer := infra.NewMailer(cfg)

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	insumoRepo := repository.NewInsumoRepository(db)
	proveedorRepo := repository.NewProveedorRepository(db)
	pedidoRepo := repository.NewPedidoRepository(db)
	notaCompraRepo := repository.NewNotaCompraRepository(db)
	produccionRepo := repository.NewProduccionRepository(db)
	movimientoRepo := repository.NewMovimientoStockRepository(db)
	bitacoraRepo := repository.NewBitacoraRepository(db)

	// ── Worker pool ──────────────────────────────────────────────────────────
	dispatcher := worker.NewDispatcher(rdb)
	pool := worker.NewPool(rdb)
	pool.Register(worker.QueueBitacora, worker.NewBitacoraWorker(bitacoraRepo))
	pool.Register(worker.QueueAlertas, worker.NewAlertaWorker(mailer, cfg.AlertasEmail, cfg.NombreNegocio))

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	bitacoraSvc := service.NewBitacoraService(bitacoraRepo, dispatcher)
	clienteSvc := service.NewClienteService(clienteRepo)
	inventarioSvc := service.NewInventarioService(productoRepo, insumoRepo, movimientoRepo, dispatcher)
	proveedorSvc := service.NewProveedorService(proveedorRepo)
	pedidoSvc := service.NewPedidoService(pedidoRepo, clienteRepo)
	detallePedidoSvc := service.NewDetallePedidoService(pedidoRepo, productoRepo)
	notaCompraSvc := service.NewNotaCompraService(notaCompraRepo, usuarioRepo, proveedorRepo)
	detalleCompraSvc := service.NewDetalleCompraService(notaCompraRepo, insumoRepo, productoRepo)
	produccionSvc := service.NewProduccionService(produccionRepo, productoRepo, insumoRepo, usuarioRepo, movimientoRepo)
	reporteSvc := service.NewReporteService(pedidoRepo, productoRepo, insumoRepo, cfg)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usuariosH := handler.NewUsuariosHandler(authSvc, bitacoraSvc)
	clientesH := handler.NewClientesHandler(clienteSvc, bitacoraSvc)
	productosH := handler.NewProductosHandler(inventarioSvc, bitacoraSvc)
	insumosH := handler.NewInsumosHandler(inventarioSvc, bitacoraSvc)
	proveedoresH := handler.NewProveedoresHandler(proveedorSvc, bitacoraSvc)
	pedidosH := handler.NewPedidosHandler(pedidoSvc, bitacoraSvc)
	detallePedidoH := handler.NewDetallePedidoHandler(detallePedidoSvc, bitacoraSvc)
	notasCompraH := handler.NewNotasCompraHandler(notaCompraSvc, bitacoraSvc)
	detalleCompraH := handler.NewDetalleCompraHandler(detalleCompraSvc, bitacoraSvc)
	produccionH := handler.NewProduccionHandler(produccionSvc, bitacoraSvc)
	reportesH := handler.NewReportesHandler(reporteSvc, bitacoraSvc)
	bitacoraH := handler.NewBitacoraHandler(bitacoraSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	auth := r.Group("/api/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes: bearer JWT plus a named permission per endpoint.
	permisos := middleware.NewPermisoChecker(usuarioRepo, rdb)
	api := r.Group("/api", middleware.JWTAuth(cfg.JWTSecret))
	{
		pedido := api.Group("/pedido")
		{
			pedido.POST("", permisos.RequirePermiso(PermisoCrearPedido), pedidosH.Crear)
			pedido.GET("", permisos.RequirePermiso(PermisoVerPedido), pedidosH.Listar)
			pedido.GET("/:id", permisos.RequirePermiso(PermisoVerPedido), pedidosH.Obtener)
			pedido.GET("/:id/estado", permisos.RequirePermiso(PermisoVerPedido), pedidosH.Estado)
			pedido.PUT("/:id", permisos.RequirePermiso(PermisoEditarPedido), pedidosH.Actualizar)
			pedido.PUT("/:id/confirmar-entrega", permisos.RequirePermiso(PermisoEditarPedido), pedidosH.ConfirmarEntrega)
			pedido.DELETE("/:id", permisos.RequirePermiso(PermisoEliminarPedido), pedidosH.Eliminar)
		}

		detallePedido := api.Group("/detalle_pedido")
		{
			detallePedido.POST("", permisos.RequirePermiso(PermisoCrearPedido), detallePedidoH.Agregar)
			detallePedido.GET("", permisos.RequirePermiso(PermisoVerPedido), detallePedidoH.Listar)
			detallePedido.GET("/pedido/:pedido_id", permisos.RequirePermiso(PermisoVerPedido), detallePedidoH.ListarPorPedido)
			detallePedido.GET("/:producto_id/:pedido_id", permisos.RequirePermiso(PermisoVerPedido), detallePedidoH.Obtener)
			detallePedido.PUT("/:producto_id/:pedido_id", permisos.RequirePermiso(PermisoEditarPedido), detallePedidoH.Actualizar)
			detallePedido.DELETE("/:producto_id/:pedido_id", permisos.RequirePermiso(PermisoEditarPedido), detallePedidoH.Eliminar)
		}

		notaCompra := api.Group("/nota_compra")
		{
			notaCompra.POST("", permisos.RequirePermiso(PermisoCrearCompra), notasCompraH.Crear)
			notaCompra.GET("", permisos.RequirePermiso(PermisoVerCompra), notasCompraH.Listar)
			notaCompra.GET("/:id", permisos.RequirePermiso(PermisoVerCompra), notasCompraH.Obtener)
			notaCompra.PUT("/:id", permisos.RequirePermiso(PermisoEditarCompra), notasCompraH.Actualizar)
			notaCompra.DELETE("/:id", permisos.RequirePermiso(PermisoEliminarCompra), notasCompraH.Eliminar)
		}

		detalleCompra := api.Group("/detalle_compra")
		{
			detalleCompra.POST("", permisos.RequirePermiso(PermisoCrearCompra), detalleCompraH.Agregar)
			detalleCompra.GET("/nota/:nota_id", permisos.RequirePermiso(PermisoVerCompra), detalleCompraH.ListarPorNota)
			detalleCompra.GET("/:nota_id/:item_tipo/:item_id", permisos.RequirePermiso(PermisoVerCompra), detalleCompraH.Obtener)
			detalleCompra.PUT("/:nota_id/:item_tipo/:item_id", permisos.RequirePermiso(PermisoEditarCompra), detalleCompraH.Actualizar)
			detalleCompra.DELETE("/:nota_id/:item_tipo/:item_id", permisos.RequirePermiso(PermisoEliminarCompra), detalleCompraH.Eliminar)
		}

		cliente := api.Group("/cliente", permisos.RequirePermiso(PermisoGestionClientes))
		{
			cliente.POST("", clientesH.Crear)
			cliente.GET("", clientesH.Listar)
			cliente.GET("/:ci", clientesH.Obtener)
			cliente.PUT("/:ci", clientesH.Actualizar)
			cliente.DELETE("/:ci", clientesH.Eliminar)
		}

		producto := api.Group("/producto")
		{
			producto.GET("", permisos.RequirePermiso(PermisoVerInventario), productosH.Listar)
			producto.GET("/:id", permisos.RequirePermiso(PermisoVerInventario), productosH.Obtener)
			producto.POST("", permisos.RequirePermiso(PermisoGestionInventario), productosH.Crear)
			producto.PUT("/:id", permisos.RequirePermiso(PermisoGestionInventario), productosH.Actualizar)
			producto.DELETE("/:id", permisos.RequirePermiso(PermisoGestionInventario), productosH.Eliminar)
			producto.PATCH("/:id/reactivar", permisos.RequirePermiso(PermisoGestionInventario), productosH.Reactivar)
		}

		insumo := api.Group("/insumo")
		{
			insumo.GET("", permisos.RequirePermiso(PermisoVerInventario), insumosH.Listar)
			insumo.GET("/:id", permisos.RequirePermiso(PermisoVerInventario), insumosH.Obtener)
			insumo.POST("", permisos.RequirePermiso(PermisoGestionInventario), insumosH.Crear)
			insumo.PUT("/:id", permisos.RequirePermiso(PermisoGestionInventario), insumosH.Actualizar)
			insumo.DELETE("/:id", permisos.RequirePermiso(PermisoGestionInventario), insumosH.Eliminar)
		}

		inventario := api.Group("/inventario")
		{
			inventario.POST("/:item_tipo/:id/ajuste", permisos.RequirePermiso(PermisoGestionInventario), productosH.AjustarStock)
			inventario.GET("/movimientos", permisos.RequirePermiso(PermisoVerInventario), productosH.ListarMovimientos)
			inventario.GET("/alertas", permisos.RequirePermiso(PermisoVerInventario), productosH.Alertas)
		}

		proveedor := api.Group("/proveedor", permisos.RequirePermiso(PermisoGestionProveedores))
		{
			proveedor.POST("", proveedoresH.Crear)
			proveedor.GET("", proveedoresH.Listar)
			proveedor.GET("/:codigo", proveedoresH.Obtener)
			proveedor.PUT("/:codigo", proveedoresH.Actualizar)
			proveedor.DELETE("/:codigo", proveedoresH.Eliminar)
		}

		receta := api.Group("/receta")
		{
			receta.POST("", permisos.RequirePermiso(PermisoGestionRecetas), produccionH.CrearReceta)
			receta.GET("", permisos.RequirePermiso(PermisoVerProduccion), produccionH.ListarRecetas)
			receta.GET("/:id", permisos.RequirePermiso(PermisoVerProduccion), produccionH.ObtenerReceta)
			receta.DELETE("/:id", permisos.RequirePermiso(PermisoGestionRecetas), produccionH.EliminarReceta)
		}

		produccion := api.Group("/produccion")
		{
			produccion.POST("", permisos.RequirePermiso(PermisoRegistrarProduccion), produccionH.Registrar)
			produccion.GET("", permisos.RequirePermiso(PermisoVerProduccion), produccionH.Listar)
			produccion.GET("/:id", permisos.RequirePermiso(PermisoVerProduccion), produccionH.Obtener)
		}

		usuario := api.Group("/usuario", permisos.RequirePermiso(PermisoGestionUsuarios))
		{
			usuario.POST("", usuariosH.Crear)
			usuario.GET("", usuariosH.Listar)
			usuario.PUT("/:id", usuariosH.Actualizar)
			usuario.DELETE("/:id", usuariosH.Eliminar)
			usuario.PATCH("/:id/reactivar", usuariosH.Reactivar)
		}

		api.GET("/bitacora", permisos.RequirePermiso(PermisoVerBitacora), bitacoraH.Listar)
		api.GET("/reporte/:tema", permisos.RequirePermiso(PermisoGenerarReportes), reportesH.Generar)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r, pool
}
