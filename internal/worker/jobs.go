package worker

// Redis list keys used as job queues.
const (
	QueueBitacora = "jobs:bitacora"
	QueueEmail    = "jobs:email"
)

// BitacoraJob is an audit entry pending persistence.
type BitacoraJob struct {
	UsuarioID string `json:"usuario_id"`
	Accion    string `json:"accion"`
	Detalle   string `json:"detalle"`
}

// EmailJob is an outbound alert mail. The recipient comes from configuration,
// not from the job.
type EmailJob struct {
	Asunto string `json:"asunto"`
	Cuerpo string `json:"cuerpo"`
}
