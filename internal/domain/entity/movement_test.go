package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexandrooliveira87/ProjetoModulo2/internal/domain/entity"
)

func TestValidTransition_SoloAvanzaEnOrden(t *testing.T) {
	assert.True(t, entity.ValidTransition(entity.MovementPending, entity.MovementInProgress))
	assert.True(t, entity.ValidTransition(entity.MovementInProgress, entity.MovementFinished))

	// No se puede saltar un estado ni retroceder
	assert.False(t, entity.ValidTransition(entity.MovementPending, entity.MovementFinished))
	assert.False(t, entity.ValidTransition(entity.MovementInProgress, entity.MovementPending))
	assert.False(t, entity.ValidTransition(entity.MovementFinished, entity.MovementPending))
	assert.False(t, entity.ValidTransition(entity.MovementFinished, entity.MovementInProgress))
}

func TestValidTransition_FinishedEsTerminal(t *testing.T) {
	for _, to := range []string{entity.MovementPending, entity.MovementInProgress, entity.MovementFinished} {
		assert.False(t, entity.ValidTransition(entity.MovementFinished, to))
	}
}

func TestCanStartCanFinish(t *testing.T) {
	m := &entity.Movement{Status: entity.MovementPending}
	assert.True(t, m.CanStart())
	assert.False(t, m.CanFinish())

	m.Status = entity.MovementInProgress
	assert.False(t, m.CanStart())
	assert.True(t, m.CanFinish())

	m.Status = entity.MovementFinished
	assert.False(t, m.CanStart())
	assert.False(t, m.CanFinish())
}
