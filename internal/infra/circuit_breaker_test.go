package infra_test

import (
	"errors"
	"testing"
	"time"

	"github.com/FernandoPZ/POS-AuraCreativa/internal/infra"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errRelay = errors.New("relay no disponible")

func TestCircuitBreakerAbreTrasFallosConsecutivos(t *testing.T) {
	cb := infra.NewCircuitBreaker(infra.CircuitBreakerConfig{
		FailureThreshold: 3,
		SuccessThreshold: 1,
		OpenTimeout:      time.Minute,
	})

	for i := 0; i < 3; i++ {
		err := cb.Execute(func() error { return errRelay })
		require.ErrorIs(t, err, errRelay)
	}

	assert.Equal(t, infra.CBOpen, cb.State())

	// Con el circuito abierto las llamadas fallan sin ejecutar fn.
	llamado := false
	err := cb.Execute(func() error { llamado = true; return nil })
	assert.ErrorIs(t, err, infra.ErrCircuitOpen)
	assert.False(t, llamado)
}

func TestCircuitBreakerSeRecuperaEnHalfOpen(t *testing.T) {
	cb := infra.NewCircuitBreaker(infra.CircuitBreakerConfig{
		FailureThreshold: 1,
		SuccessThreshold: 2,
		OpenTimeout:      10 * time.Millisecond,
	})

	require.Error(t, cb.Execute(func() error { return errRelay }))
	require.Equal(t, infra.CBOpen, cb.State())

	time.Sleep(20 * time.Millisecond)
	require.Equal(t, infra.CBHalfOpen, cb.State())

	require.NoError(t, cb.Execute(func() error { return nil }))
	require.Equal(t, infra.CBHalfOpen, cb.State(), "un éxito aún no cierra el circuito")

	require.NoError(t, cb.Execute(func() error { return nil }))
	assert.Equal(t, infra.CBClosed, cb.State())
}

func TestCircuitBreakerReabreSiFallaLaPrueba(t *testing.T) {
	cb := infra.NewCircuitBreaker(infra.CircuitBreakerConfig{
		FailureThreshold: 1,
		SuccessThreshold: 1,
		OpenTimeout:      10 * time.Millisecond,
	})

	require.Error(t, cb.Execute(func() error { return errRelay }))
	time.Sleep(20 * time.Millisecond)
	require.Equal(t, infra.CBHalfOpen, cb.State())

	require.Error(t, cb.Execute(func() error { return errRelay }))
	assert.Equal(t, infra.CBOpen, cb.State())
}

func TestCircuitBreakerExitoReiniciaElConteo(t *testing.T) {
	cb := infra.NewCircuitBreaker(infra.CircuitBreakerConfig{
		FailureThreshold: 2,
		SuccessThreshold: 1,
		OpenTimeout:      time.Minute,
	})

	require.Error(t, cb.Execute(func() error { return errRelay }))
	require.NoError(t, cb.Execute(func() error { return nil }))
	require.Error(t, cb.Execute(func() error { return errRelay }))

	assert.Equal(t, infra.CBClosed, cb.State(), "fallos no consecutivos no abren el circuito")
}
