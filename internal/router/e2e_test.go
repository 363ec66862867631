//go:build integration

package router_test

// End-to-end smoke tests against real Postgres + Redis via testcontainers.
// Run with: go test -tags integration ./internal/router/... -v

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/config"
	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/infra"
	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/router"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func do(t *testing.T, srv *httptest.Server, method, path string, body *bytes.Buffer, token string) *http.Response {
	t.Helper()
	var reader *bytes.Buffer
	if body == nil {
		reader = bytes.NewBuffer(nil)
	} else {
		reader = body
	}
	req, err := http.NewRequest(method, srv.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

var permisosPorRol = map[string][]string{
	"administrador": {
		router.PermisoCrearPedido, router.PermisoVerPedido, router.PermisoEditarPedido, router.PermisoEliminarPedido,
		router.PermisoCrearCompra, router.PermisoVerCompra, router.PermisoEditarCompra, router.PermisoEliminarCompra,
		router.PermisoGestionClientes, router.PermisoVerInventario, router.PermisoGestionInventario,
		router.PermisoGestionProveedores, router.PermisoRegistrarProduccion, router.PermisoVerProduccion,
		router.PermisoGestionRecetas, router.PermisoGestionUsuarios, router.PermisoVerBitacora,
		router.PermisoGenerarReportes,
	},
	"vendedor": {
		router.PermisoCrearPedido, router.PermisoVerPedido, router.PermisoEditarPedido,
		router.PermisoGestionClientes, router.PermisoVerInventario,
	},
}

func seedRoles(t *testing.T, db *gorm.DB) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("admin1234"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, db.Exec(`
		INSERT INTO usuarios (username, nombre, password_hash, rol)
		VALUES ('admin', 'Administrador E2E', ?, 'administrador')
		ON CONFLICT (username) DO NOTHING
	`, string(hash)).Error)

	for rol, permisos := range permisosPorRol {
		for _, permiso := range permisos {
			require.NoError(t, db.Exec(`
				INSERT INTO rol_permisos (rol, permiso) VALUES (?, ?)
				ON CONFLICT (rol, permiso) DO NOTHING
			`, rol, permiso).Error)
		}
	}
}

type testEnv struct {
	server *httptest.Server
	token  string // admin JWT
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcPostgres.WithDatabase("panaderia_test"),
		tcPostgres.WithUsername("panaderia"),
		tcPostgres.WithPassword("panaderia"),
		tcPostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	pgURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	rdC, err := tcRedis.RunContainer(ctx,
		testcontainers.WithImage("redis:7-alpine"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdC.Terminate(ctx) })

	rdURL, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)

	cfg := &config.Config{
		Port:               8000,
		Env:                "test",
		WorkerPoolSize:     1,
		DatabaseURL:        pgURL,
		RedisURL:           rdURL,
		JWTSecret:          "test-secret-key",
		JWTExpirationHours: 8,
		JWTRefreshHours:    24,
		NombreNegocio:      "Panadería E2E",
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	require.NoError(t, err)

	rdb, err := infra.NewRedis(cfg.RedisURL)
	require.NoError(t, err)

	seedRoles(t, db)

	r, pool := router.New(cfg, db, rdb)
	poolCtx, cancel := context.WithCancel(ctx)
	t.Cleanup(cancel)
	pool.Start(poolCtx, cfg.WorkerPoolSize)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	loginResp := do(t, srv, "POST", "/api/auth/login",
		jsonBody(t, map[string]string{"username": "admin", "password": "admin1234"}), "")
	require.Equal(t, http.StatusOK, loginResp.StatusCode)
	var loginBody struct {
		AccessToken string `json:"access_token"`
	}
	decodeJSON(t, loginResp, &loginBody)
	require.NotEmpty(t, loginBody.AccessToken)

	return &testEnv{server: srv, token: loginBody.AccessToken}
}

// Ciclo completo: cliente → producto → pedido → detalle → estado → entrega.
func TestE2E_CicloPedido(t *testing.T) {
	env := setupTestEnv(t)

	clienteResp := do(t, env.server, "POST", "/api/cliente",
		jsonBody(t, map[string]any{"ci": "12345678", "nombre": "Juan Pérez", "sexo": "M"}),
		env.token)
	require.Equal(t, http.StatusCreated, clienteResp.StatusCode)
	clienteResp.Body.Close()

	prodResp := do(t, env.server, "POST", "/api/producto",
		jsonBody(t, map[string]any{
			"nombre":          "Pan integral",
			"precio_unitario": "15.50",
			"stock_minimo":    5,
		}), env.token)
	require.Equal(t, http.StatusCreated, prodResp.StatusCode)
	var prod struct {
		ID string `json:"id"`
	}
	decodeJSON(t, prodResp, &prod)

	pedidoResp := do(t, env.server, "POST", "/api/pedido",
		jsonBody(t, map[string]any{
			"fecha_pedido":  "2024-01-10",
			"fecha_entrega": "2024-01-15",
			"tipo":          "Normal",
			"pagado":        false,
			"ci_cliente":    "12345678",
		}), env.token)
	require.Equal(t, http.StatusCreated, pedidoResp.StatusCode)
	var creado struct {
		Pedido struct {
			ID    string          `json:"id"`
			Total decimal.Decimal `json:"total"`
		} `json:"pedido"`
	}
	decodeJSON(t, pedidoResp, &creado)
	assert.True(t, creado.Pedido.Total.IsZero())

	detalleResp := do(t, env.server, "POST", "/api/detalle_pedido",
		jsonBody(t, map[string]any{
			"producto_id":     prod.ID,
			"pedido_id":       creado.Pedido.ID,
			"cantidad":        2,
			"precio_unitario": "15.50",
		}), env.token)
	require.Equal(t, http.StatusCreated, detalleResp.StatusCode)
	detalleResp.Body.Close()

	getResp := do(t, env.server, "GET", "/api/pedido/"+creado.Pedido.ID, nil, env.token)
	require.Equal(t, http.StatusOK, getResp.StatusCode)
	var pedido struct {
		Total    decimal.Decimal `json:"total"`
		Detalles []struct {
			Cantidad int             `json:"cantidad"`
			Total    decimal.Decimal `json:"total"`
		} `json:"detalles"`
	}
	decodeJSON(t, getResp, &pedido)
	assert.True(t, pedido.Total.Equal(decimal.RequireFromString("31")), "total = %s", pedido.Total)
	require.Len(t, pedido.Detalles, 1)
	assert.Equal(t, 2, pedido.Detalles[0].Cantidad)

	estadoResp := do(t, env.server, "GET", "/api/pedido/"+creado.Pedido.ID+"/estado", nil, env.token)
	require.Equal(t, http.StatusOK, estadoResp.StatusCode)
	var estado struct {
		Estado string `json:"estado"`
	}
	decodeJSON(t, estadoResp, &estado)
	assert.Equal(t, "Pendiente", estado.Estado)

	entregaResp := do(t, env.server, "PUT", "/api/pedido/"+creado.Pedido.ID+"/confirmar-entrega", nil, env.token)
	require.Equal(t, http.StatusOK, entregaResp.StatusCode)
	entregaResp.Body.Close()

	estadoResp = do(t, env.server, "GET", "/api/pedido/"+creado.Pedido.ID+"/estado", nil, env.token)
	require.Equal(t, http.StatusOK, estadoResp.StatusCode)
	decodeJSON(t, estadoResp, &estado)
	assert.Equal(t, "Entregado", estado.Estado)
}

// Un vendedor no puede administrar inventario ni usuarios.
func TestE2E_PermisosPorRol(t *testing.T) {
	env := setupTestEnv(t)

	crearResp := do(t, env.server, "POST", "/api/usuario",
		jsonBody(t, map[string]any{
			"username": "vendedor1",
			"nombre":   "Vendedor E2E",
			"password": "vendedor123",
			"rol":      "vendedor",
		}), env.token)
	require.Equal(t, http.StatusCreated, crearResp.StatusCode)
	crearResp.Body.Close()

	loginResp := do(t, env.server, "POST", "/api/auth/login",
		jsonBody(t, map[string]string{"username": "vendedor1", "password": "vendedor123"}), "")
	require.Equal(t, http.StatusOK, loginResp.StatusCode)
	var login struct {
		AccessToken string `json:"access_token"`
	}
	decodeJSON(t, loginResp, &login)

	prodResp := do(t, env.server, "POST", "/api/producto",
		jsonBody(t, map[string]any{"nombre": "Pan dulce", "precio_unitario": "8.00"}),
		login.AccessToken)
	assert.Equal(t, http.StatusForbidden, prodResp.StatusCode)
	prodResp.Body.Close()

	usuarioResp := do(t, env.server, "POST", "/api/usuario",
		jsonBody(t, map[string]any{
			"username": "otro",
			"nombre":   "Otro",
			"password": "otro12345",
			"rol":      "vendedor",
		}), login.AccessToken)
	assert.Equal(t, http.StatusForbidden, usuarioResp.StatusCode)
	usuarioResp.Body.Close()

	listResp := do(t, env.server, "GET", "/api/pedido", nil, login.AccessToken)
	assert.Equal(t, http.StatusOK, listResp.StatusCode)
	listResp.Body.Close()
}
