package service_test

import (
	"context"
	"testing"

	"github.com/FernandoPZ/POS-AuraCreativa/internal/dto"
	"github.com/FernandoPZ/POS-AuraCreativa/internal/model"
	"github.com/FernandoPZ/POS-AuraCreativa/internal/service"
	"github.com/FernandoPZ/POS-AuraCreativa/internal/worker"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ventaFixture struct {
	svc       *service.VentaService
	articulos *stubArticuloRepo
	combos    *stubComboRepo
	ventas    *stubVentaRepo
	movs      *stubMovimientoRepo
	queue     *stubQueue
	punto     *model.PuntoEntrega
}

func newVentaFixture(articulos ...*model.Articulo) *ventaFixture {
	artRepo := newStubArticuloRepo(articulos...)
	comboRepo := newStubComboRepo()
	movs := &stubMovimientoRepo{}
	ventas := &stubVentaRepo{}
	queue := &stubQueue{}
	punto := &model.PuntoEntrega{ID: uuid.New(), NombrePunto: "Mostrador", Activo: true}

	inv := service.NewInventarioService(artRepo, comboRepo, movs)
	bitacora := service.NewBitacoraService(&stubBitacoraRepo{}, queue)
	svc := service.NewVentaService(ventas, newStubPuntoRepo(punto), inv, bitacora, queue, nil)

	return &ventaFixture{
		svc:       svc,
		articulos: artRepo,
		combos:    comboRepo,
		ventas:    ventas,
		movs:      movs,
		queue:     queue,
		punto:     punto,
	}
}

func itemArticulo(a *model.Articulo, cantidad int, precio string) dto.ItemVentaRequest {
	return dto.ItemVentaRequest{
		ID:       a.ID.String(),
		Cantidad: cantidad,
		Precio:   decimal.RequireFromString(precio),
		Tipo:     "ARTICULO",
	}
}

func TestRegistrarVenta(t *testing.T) {
	art := articuloDePrueba("Playera", 10, "40")
	f := newVentaFixture(art)

	resp, err := f.svc.Registrar(context.Background(), dto.RegistrarVentaRequest{
		IdPuntoEntrega: f.punto.ID.String(),
		Productos:      []dto.ItemVentaRequest{itemArticulo(art, 2, "50")},
	}, uuid.New())
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Folio)
	assert.Equal(t, 8, f.articulos.stockDe(art.ID))

	require.Len(t, f.ventas.ventas, 1)
	venta := f.ventas.ventas[0]
	assert.True(t, venta.Total.Equal(decimal.RequireFromString("100")))
	assert.Equal(t, "COMPLETADA", venta.Estado)
	assert.Equal(t, "Público General", venta.ClienteNombre)
	require.Len(t, venta.Detalles, 1)
	require.NotNil(t, venta.Detalles[0].ArticuloID)
	assert.Equal(t, art.ID, *venta.Detalles[0].ArticuloID)

	require.Len(t, f.movs.movimientos, 1)
	assert.Equal(t, "venta", f.movs.movimientos[0].Tipo)

	jobs := f.queue.enCola(worker.QueueBitacora)
	require.Len(t, jobs, 1)
	assert.Equal(t, "NUEVA_VENTA", jobs[0].Payload.(worker.BitacoraJob).Accion)
}

func TestRegistrarVentaSinProductos(t *testing.T) {
	f := newVentaFixture()

	_, err := f.svc.Registrar(context.Background(), dto.RegistrarVentaRequest{
		IdPuntoEntrega: f.punto.ID.String(),
	}, uuid.New())

	var ev *service.ErrValidacion
	require.ErrorAs(t, err, &ev)
	assert.Empty(t, f.ventas.ventas)
}

func TestRegistrarVentaSinPuntoEntrega(t *testing.T) {
	art := articuloDePrueba("Playera", 10, "40")
	f := newVentaFixture(art)

	_, err := f.svc.Registrar(context.Background(), dto.RegistrarVentaRequest{
		Productos: []dto.ItemVentaRequest{itemArticulo(art, 1, "50")},
	}, uuid.New())

	var ev *service.ErrValidacion
	require.ErrorAs(t, err, &ev)
	assert.Equal(t, 10, f.articulos.stockDe(art.ID), "sin punto de entrega no debe haber mutación")
	assert.Empty(t, f.ventas.ventas)
	assert.Empty(t, f.queue.jobs)
}

func TestRegistrarVentaPuntoInexistente(t *testing.T) {
	art := articuloDePrueba("Playera", 10, "40")
	f := newVentaFixture(art)

	_, err := f.svc.Registrar(context.Background(), dto.RegistrarVentaRequest{
		IdPuntoEntrega: uuid.New().String(),
		Productos:      []dto.ItemVentaRequest{itemArticulo(art, 1, "50")},
	}, uuid.New())

	var ev *service.ErrValidacion
	require.ErrorAs(t, err, &ev)
	assert.Equal(t, 10, f.articulos.stockDe(art.ID))
	assert.Empty(t, f.ventas.ventas)
}

func TestRegistrarVentaStockInsuficiente(t *testing.T) {
	art := articuloDePrueba("Termo", 1, "30")
	f := newVentaFixture(art)

	_, err := f.svc.Registrar(context.Background(), dto.RegistrarVentaRequest{
		IdPuntoEntrega: f.punto.ID.String(),
		Productos:      []dto.ItemVentaRequest{itemArticulo(art, 3, "80")},
	}, uuid.New())

	var es *service.ErrStockInsuficiente
	require.ErrorAs(t, err, &es)
	assert.Equal(t, "Termo", es.NomArticulo)
	assert.Equal(t, 1, f.articulos.stockDe(art.ID))
	assert.Empty(t, f.ventas.ventas)
	assert.Empty(t, f.queue.jobs, "una venta fallida no se audita ni notifica")
}

func TestRegistrarVentaMultilineaFallida(t *testing.T) {
	ok := articuloDePrueba("Playera", 10, "40")
	corto := articuloDePrueba("Termo", 1, "30")
	f := newVentaFixture(ok, corto)

	_, err := f.svc.Registrar(context.Background(), dto.RegistrarVentaRequest{
		IdPuntoEntrega: f.punto.ID.String(),
		Productos: []dto.ItemVentaRequest{
			itemArticulo(ok, 2, "50"),
			itemArticulo(corto, 5, "80"),
		},
	}, uuid.New())

	var es *service.ErrStockInsuficiente
	require.ErrorAs(t, err, &es)
	assert.Equal(t, "Termo", es.NomArticulo)
	assert.Empty(t, f.ventas.ventas, "la venta no debe registrarse si una línea falla")
	assert.Empty(t, f.queue.enCola(worker.QueueBitacora))
}

func TestRegistrarVentaConCombo(t *testing.T) {
	vela := articuloDePrueba("Vela", 10, "12")
	f := newVentaFixture(vela)

	combo := &model.Combo{ID: uuid.New(), Nombre: "Kit Regalo", Codigo: "CMB-1",
		Precio: decimal.RequireFromString("120"), Activo: true}
	f.combos.combos[combo.ID] = combo
	f.combos.recetas[combo.ID] = []model.DetalleCombo{
		{ComboID: combo.ID, ArticuloID: vela.ID, Cantidad: 3},
	}

	resp, err := f.svc.Registrar(context.Background(), dto.RegistrarVentaRequest{
		IdPuntoEntrega: f.punto.ID.String(),
		Productos: []dto.ItemVentaRequest{{
			ID:       combo.ID.String(),
			Cantidad: 2,
			Precio:   decimal.RequireFromString("120"),
			Tipo:     "COMBO",
		}},
	}, uuid.New())
	require.NoError(t, err)

	assert.Equal(t, 4, f.articulos.stockDe(vela.ID), "2 combos x 3 velas = 6 descontadas")

	require.Len(t, f.ventas.ventas, 1)
	detalle := f.ventas.ventas[0].Detalles[0]
	require.NotNil(t, detalle.ComboID)
	assert.Equal(t, combo.ID, *detalle.ComboID)
	assert.Nil(t, detalle.ArticuloID)
	assert.True(t, f.ventas.ventas[0].Total.Equal(decimal.RequireFromString("240")))
	assert.Equal(t, 1, resp.Folio)
}

func TestRegistrarVentaEncolaAlertaDeStockBajo(t *testing.T) {
	art := articuloDePrueba("Playera", 3, "40")
	art.CantidadMinima = 2
	f := newVentaFixture(art)

	_, err := f.svc.Registrar(context.Background(), dto.RegistrarVentaRequest{
		IdPuntoEntrega: f.punto.ID.String(),
		Productos:      []dto.ItemVentaRequest{itemArticulo(art, 2, "50")},
	}, uuid.New())
	require.NoError(t, err)

	emails := f.queue.enCola(worker.QueueEmail)
	require.Len(t, emails, 1)
	assert.Contains(t, emails[0].Payload.(worker.EmailJob).Cuerpo, "Playera")
}

func TestRegistrarVentaFoliosConsecutivos(t *testing.T) {
	art := articuloDePrueba("Playera", 10, "40")
	f := newVentaFixture(art)

	for esperado := 1; esperado <= 3; esperado++ {
		resp, err := f.svc.Registrar(context.Background(), dto.RegistrarVentaRequest{
			IdPuntoEntrega: f.punto.ID.String(),
			Productos:      []dto.ItemVentaRequest{itemArticulo(art, 1, "50")},
		}, uuid.New())
		require.NoError(t, err)
		assert.Equal(t, esperado, resp.Folio)
	}
}
