package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition_ForwardPath(t *testing.T) {
	assert.True(t, StatusPendiente.CanTransition(StatusEnPreparacion))
	assert.True(t, StatusEnPreparacion.CanTransition(StatusListo))
	assert.True(t, StatusListo.CanTransition(StatusEntregado))
}

func TestCanTransition_NoSkippingSteps(t *testing.T) {
	assert.False(t, StatusPendiente.CanTransition(StatusListo))
	assert.False(t, StatusPendiente.CanTransition(StatusEntregado))
	assert.False(t, StatusEnPreparacion.CanTransition(StatusEntregado))
}

func TestCanTransition_NoGoingBackwards(t *testing.T) {
	assert.False(t, StatusEnPreparacion.CanTransition(StatusPendiente))
	assert.False(t, StatusListo.CanTransition(StatusEnPreparacion))
}

func TestCanTransition_CancelFromAnyNonTerminal(t *testing.T) {
	assert.True(t, StatusPendiente.CanTransition(StatusCancelado))
	assert.True(t, StatusEnPreparacion.CanTransition(StatusCancelado))
	assert.True(t, StatusListo.CanTransition(StatusCancelado))
}

func TestCanTransition_TerminalStatesAreFinal(t *testing.T) {
	terminals := []OrderStatus{StatusEntregado, StatusCancelado, StatusRechazado}
	all := []OrderStatus{StatusPendiente, StatusEnPreparacion, StatusListo, StatusEntregado, StatusCancelado, StatusRechazado}

	for _, from := range terminals {
		for _, to := range all {
			assert.False(t, from.CanTransition(to), "%s -> %s should be rejected", from, to)
		}
	}
}

func TestCanTransition_NothingEntersRechazado(t *testing.T) {
	for _, from := range []OrderStatus{StatusPendiente, StatusEnPreparacion, StatusListo} {
		assert.False(t, from.CanTransition(StatusRechazado), "%s -> rechazado should be rejected", from)
	}
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, StatusPendiente.IsTerminal())
	assert.False(t, StatusEnPreparacion.IsTerminal())
	assert.False(t, StatusListo.IsTerminal())
	assert.True(t, StatusEntregado.IsTerminal())
	assert.True(t, StatusCancelado.IsTerminal())
	assert.True(t, StatusRechazado.IsTerminal())
}

func TestNextStatuses(t *testing.T) {
	assert.Equal(t, []OrderStatus{StatusEnPreparacion, StatusCancelado}, StatusPendiente.NextStatuses())
	assert.Equal(t, []OrderStatus{StatusListo, StatusCancelado}, StatusEnPreparacion.NextStatuses())
	assert.Equal(t, []OrderStatus{StatusEntregado, StatusCancelado}, StatusListo.NextStatuses())
	assert.Nil(t, StatusEntregado.NextStatuses())
	assert.Nil(t, StatusCancelado.NextStatuses())
	assert.Nil(t, StatusRechazado.NextStatuses())
}

func TestParseOrderStatus(t *testing.T) {
	for _, s := range []string{"pendiente", "en_preparacion", "listo", "entregado", "cancelado", "rechazado"} {
		status, err := ParseOrderStatus(s)
		assert.NoError(t, err)
		assert.Equal(t, OrderStatus(s), status)
	}

	_, err := ParseOrderStatus("preparando")
	assert.Error(t, err)
	_, err = ParseOrderStatus("")
	assert.Error(t, err)
}
