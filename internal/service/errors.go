package service

import "fmt"

// ErrValidacion marks a business-rule violation caused by the request itself.
// Handlers translate it to 400; anything else that isn't a not-found is a 500.
type ErrValidacion struct {
	Detalle string
}

func (e *ErrValidacion) Error() string { return e.Detalle }

func Validacion(format string, args ...interface{}) *ErrValidacion {
	return &ErrValidacion{Detalle: fmt.Sprintf(format, args...)}
}

// ErrStockInsuficiente aborts a sale when an article can't cover the
// requested quantity. Carries the article name so the cashier sees which
// line failed.
type ErrStockInsuficiente struct {
	NomArticulo string
}

func (e *ErrStockInsuficiente) Error() string {
	return fmt.Sprintf("stock insuficiente para el artículo '%s'", e.NomArticulo)
}
