package service

import (
	"context"

	"github.com/FernandoPZ/POS-AuraCreativa/internal/dto"
	"github.com/FernandoPZ/POS-AuraCreativa/internal/repository"
	"github.com/FernandoPZ/POS-AuraCreativa/internal/worker"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// JobQueue pushes background jobs to Redis. Satisfied by *worker.Dispatcher;
// tests plug a recording fake.
type JobQueue interface {
	Enqueue(ctx context.Context, queue string, payload interface{}) error
}

// BitacoraService records audit entries. Registrar is fire-and-forget: the
// mutation it describes already committed, so a queue failure is logged and
// swallowed — it must never surface to the caller.
type BitacoraService struct {
	repo  repository.BitacoraRepository
	queue JobQueue
}

func NewBitacoraService(repo repository.BitacoraRepository, queue JobQueue) *BitacoraService {
	return &BitacoraService{repo: repo, queue: queue}
}

func (s *BitacoraService) Registrar(ctx context.Context, usuarioID uuid.UUID, accion, detalle string) {
	job := worker.BitacoraJob{
		UsuarioID: usuarioID.String(),
		Accion:    accion,
		Detalle:   detalle,
	}
	if err := s.queue.Enqueue(ctx, worker.QueueBitacora, job); err != nil {
		log.Warn().Err(err).
			Str("accion", accion).
			Msg("no se pudo encolar la entrada de bitácora")
	}
}

func (s *BitacoraService) Listar(ctx context.Context, filter dto.BitacoraFilter) (*dto.BitacoraListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 200 {
		filter.Limit = 50
	}

	entradas, total, err := s.repo.List(ctx, filter.Accion, filter.Page, filter.Limit)
	if err != nil {
		return nil, err
	}

	data := make([]dto.BitacoraEntry, 0, len(entradas))
	for _, b := range entradas {
		usuario := ""
		if b.Usuario != nil {
			usuario = b.Usuario.Nombre
		}
		data = append(data, dto.BitacoraEntry{
			ID:      b.ID.String(),
			Usuario: usuario,
			Accion:  b.Accion,
			Detalle: b.Detalle,
			Fecha:   b.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	return &dto.BitacoraListResponse{
		Data:  data,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}
