package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/FernandoPZ/POS-AuraCreativa/internal/dto"
	"github.com/FernandoPZ/POS-AuraCreativa/internal/model"
	"github.com/FernandoPZ/POS-AuraCreativa/internal/service"
	"github.com/FernandoPZ/POS-AuraCreativa/internal/worker"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrarEncolaElTrabajo(t *testing.T) {
	queue := &stubQueue{}
	svc := service.NewBitacoraService(&stubBitacoraRepo{}, queue)

	usuarioID := uuid.New()
	svc.Registrar(context.Background(), usuarioID, "NUEVA_VENTA", "Venta folio 7")

	jobs := queue.enCola(worker.QueueBitacora)
	require.Len(t, jobs, 1)
	job := jobs[0].Payload.(worker.BitacoraJob)
	assert.Equal(t, usuarioID.String(), job.UsuarioID)
	assert.Equal(t, "NUEVA_VENTA", job.Accion)
	assert.Equal(t, "Venta folio 7", job.Detalle)
}

func TestRegistrarTragaErroresDeCola(t *testing.T) {
	queue := &stubQueue{err: errors.New("redis caído")}
	svc := service.NewBitacoraService(&stubBitacoraRepo{}, queue)

	// No debe entrar en pánico ni propagar el error.
	svc.Registrar(context.Background(), uuid.New(), "NUEVA_VENTA", "detalle")
}

func TestListarConFiltroYPaginacion(t *testing.T) {
	repo := &stubBitacoraRepo{}
	for i := 0; i < 3; i++ {
		repo.entradas = append(repo.entradas, model.Bitacora{
			ID:        uuid.New(),
			UsuarioID: uuid.New(),
			Accion:    "NUEVA_VENTA",
			CreatedAt: time.Now(),
		})
	}
	repo.entradas = append(repo.entradas, model.Bitacora{
		ID:        uuid.New(),
		UsuarioID: uuid.New(),
		Accion:    "LOGIN",
		CreatedAt: time.Now(),
	})

	svc := service.NewBitacoraService(repo, &stubQueue{})

	resp, err := svc.Listar(context.Background(), dto.BitacoraFilter{
		Accion: "NUEVA_VENTA",
		Page:   1,
		Limit:  2,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(3), resp.Total)
	assert.Len(t, resp.Data, 2)
	assert.Equal(t, "NUEVA_VENTA", resp.Data[0].Accion)
}

func TestListarNormalizaPaginacion(t *testing.T) {
	svc := service.NewBitacoraService(&stubBitacoraRepo{}, &stubQueue{})

	resp, err := svc.Listar(context.Background(), dto.BitacoraFilter{Page: 0, Limit: 0})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 50, resp.Limit)
}
