package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/FernandoPZ/POS-AuraCreativa/internal/model"
	"github.com/FernandoPZ/POS-AuraCreativa/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Mailer sends alert mail. Satisfied by *infra.Mailer.
type Mailer interface {
	Enviar(asunto, cuerpo string) error
}

// Pool consumes background jobs with BRPOP. Jobs are best-effort: a failed
// job is logged and dropped, never retried against an operation that already
// committed.
type Pool struct {
	rdb          *redis.Client
	bitacoraRepo repository.BitacoraRepository
	mailer       Mailer
	size         int
}

func NewPool(rdb *redis.Client, bitacoraRepo repository.BitacoraRepository, mailer Mailer, size int) *Pool {
	if size <= 0 {
		size = 5
	}
	return &Pool{rdb: rdb, bitacoraRepo: bitacoraRepo, mailer: mailer, size: size}
}

// Start launches the worker goroutines. They stop when ctx is cancelled.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.size; i++ {
		go p.run(ctx, i)
	}
	log.Info().Int("workers", p.size).Msg("pool de workers iniciado")
}

func (p *Pool) run(ctx context.Context, id int) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		res, err := p.rdb.BRPop(ctx, 5*time.Second, QueueBitacora, QueueEmail).Result()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Error().Err(err).Int("worker", id).Msg("error leyendo la cola de trabajos")
			time.Sleep(time.Second)
			continue
		}
		// res[0] = queue key, res[1] = payload
		p.procesar(ctx, res[0], []byte(res[1]))
	}
}

func (p *Pool) procesar(ctx context.Context, cola string, payload []byte) {
	switch cola {
	case QueueBitacora:
		p.procesarBitacora(ctx, payload)
	case QueueEmail:
		p.procesarEmail(payload)
	default:
		log.Warn().Str("cola", cola).Msg("cola desconocida")
	}
}

func (p *Pool) procesarBitacora(ctx context.Context, payload []byte) {
	var job BitacoraJob
	if err := json.Unmarshal(payload, &job); err != nil {
		log.Error().Err(err).Msg("payload de bitácora inválido")
		return
	}
	usuarioID, err := uuid.Parse(job.UsuarioID)
	if err != nil {
		log.Error().Str("usuario_id", job.UsuarioID).Msg("usuario inválido en trabajo de bitácora")
		return
	}
	entrada := &model.Bitacora{
		UsuarioID: usuarioID,
		Accion:    job.Accion,
		Detalle:   job.Detalle,
	}
	if err := p.bitacoraRepo.Create(ctx, entrada); err != nil {
		log.Error().Err(err).Str("accion", job.Accion).Msg("no se pudo persistir la entrada de bitácora")
	}
}

func (p *Pool) procesarEmail(payload []byte) {
	var job EmailJob
	if err := json.Unmarshal(payload, &job); err != nil {
		log.Error().Err(err).Msg("payload de email inválido")
		return
	}
	if p.mailer == nil {
		return
	}
	if err := p.mailer.Enviar(job.Asunto, job.Cuerpo); err != nil {
		log.Error().Err(err).Str("asunto", job.Asunto).Msg("no se pudo enviar el correo de alerta")
	}
}
