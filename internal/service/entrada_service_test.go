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

type entradaFixture struct {
	svc       *service.EntradaService
	articulos *stubArticuloRepo
	entradas  *stubEntradaRepo
	movs      *stubMovimientoRepo
	queue     *stubQueue
	proveedor *model.Proveedor
}

func newEntradaFixture(articulos ...*model.Articulo) *entradaFixture {
	artRepo := newStubArticuloRepo(articulos...)
	movs := &stubMovimientoRepo{}
	entradas := &stubEntradaRepo{}
	queue := &stubQueue{}
	proveedor := &model.Proveedor{ID: uuid.New(), NomProveedor: "Textiles MX", Activo: true}

	inv := service.NewInventarioService(artRepo, newStubComboRepo(), movs)
	bitacora := service.NewBitacoraService(&stubBitacoraRepo{}, queue)
	svc := service.NewEntradaService(entradas, newStubProveedorRepo(proveedor), inv, bitacora)

	return &entradaFixture{
		svc:       svc,
		articulos: artRepo,
		entradas:  entradas,
		movs:      movs,
		queue:     queue,
		proveedor: proveedor,
	}
}

func TestRegistrarEntrada(t *testing.T) {
	art := articuloDePrueba("Playera", 5, "10")
	f := newEntradaFixture(art)

	resp, err := f.svc.Registrar(context.Background(), dto.RegistrarEntradaRequest{
		IdProveedor: f.proveedor.ID.String(),
		Comentarios: "Resurtido semanal",
		Productos: []dto.ItemEntradaRequest{{
			IdArticulo: art.ID.String(),
			Cantidad:   5,
			Costo:      decimal.RequireFromString("20"),
		}},
	}, uuid.New())
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)

	// Promedio ponderado: (5*10 + 5*20) / 10 = 15
	assert.Equal(t, 10, f.articulos.stockDe(art.ID))
	assert.True(t, f.articulos.costoDe(art.ID).Equal(decimal.RequireFromString("15")),
		"costo promedio = %s", f.articulos.costoDe(art.ID))

	require.Len(t, f.entradas.entradas, 1)
	entrada := f.entradas.entradas[0]
	assert.True(t, entrada.Total.Equal(decimal.RequireFromString("100")))
	require.Len(t, entrada.Detalles, 1)
	assert.True(t, entrada.Detalles[0].Subtotal.Equal(decimal.RequireFromString("100")))

	require.Len(t, f.movs.movimientos, 1)
	assert.Equal(t, "entrada", f.movs.movimientos[0].Tipo)

	jobs := f.queue.enCola(worker.QueueBitacora)
	require.Len(t, jobs, 1)
	assert.Equal(t, "NUEVA_COMPRA", jobs[0].Payload.(worker.BitacoraJob).Accion)
}

func TestRegistrarEntradaVariasLineas(t *testing.T) {
	playera := articuloDePrueba("Playera", 0, "0")
	taza := articuloDePrueba("Taza", 10, "30")
	f := newEntradaFixture(playera, taza)

	_, err := f.svc.Registrar(context.Background(), dto.RegistrarEntradaRequest{
		IdProveedor: f.proveedor.ID.String(),
		Productos: []dto.ItemEntradaRequest{
			{IdArticulo: playera.ID.String(), Cantidad: 10, Costo: decimal.RequireFromString("25")},
			{IdArticulo: taza.ID.String(), Cantidad: 10, Costo: decimal.RequireFromString("50")},
		},
	}, uuid.New())
	require.NoError(t, err)

	assert.Equal(t, 10, f.articulos.stockDe(playera.ID))
	assert.True(t, f.articulos.costoDe(playera.ID).Equal(decimal.RequireFromString("25")))

	// (10*30 + 10*50) / 20 = 40
	assert.Equal(t, 20, f.articulos.stockDe(taza.ID))
	assert.True(t, f.articulos.costoDe(taza.ID).Equal(decimal.RequireFromString("40")))

	require.Len(t, f.entradas.entradas, 1)
	assert.True(t, f.entradas.entradas[0].Total.Equal(decimal.RequireFromString("750")))
}

func TestRegistrarEntradaSinProductos(t *testing.T) {
	f := newEntradaFixture()

	_, err := f.svc.Registrar(context.Background(), dto.RegistrarEntradaRequest{
		IdProveedor: f.proveedor.ID.String(),
	}, uuid.New())

	var ev *service.ErrValidacion
	require.ErrorAs(t, err, &ev)
	assert.Empty(t, f.entradas.entradas)
}

func TestRegistrarEntradaProveedorInexistente(t *testing.T) {
	art := articuloDePrueba("Playera", 5, "10")
	f := newEntradaFixture(art)

	_, err := f.svc.Registrar(context.Background(), dto.RegistrarEntradaRequest{
		IdProveedor: uuid.New().String(),
		Productos: []dto.ItemEntradaRequest{{
			IdArticulo: art.ID.String(),
			Cantidad:   5,
			Costo:      decimal.RequireFromString("20"),
		}},
	}, uuid.New())

	var ev *service.ErrValidacion
	require.ErrorAs(t, err, &ev)
	assert.Equal(t, 5, f.articulos.stockDe(art.ID))
	assert.Empty(t, f.entradas.entradas)
}

func TestRegistrarEntradaCantidadInvalida(t *testing.T) {
	art := articuloDePrueba("Playera", 5, "10")
	f := newEntradaFixture(art)

	_, err := f.svc.Registrar(context.Background(), dto.RegistrarEntradaRequest{
		IdProveedor: f.proveedor.ID.String(),
		Productos: []dto.ItemEntradaRequest{{
			IdArticulo: art.ID.String(),
			Cantidad:   0,
			Costo:      decimal.RequireFromString("20"),
		}},
	}, uuid.New())

	var ev *service.ErrValidacion
	require.ErrorAs(t, err, &ev)
	assert.Equal(t, 5, f.articulos.stockDe(art.ID))
	assert.Empty(t, f.entradas.entradas)
}
