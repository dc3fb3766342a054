package recruitment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStageTransitions(t *testing.T) {
	assert.True(t, StageTriagem.CanAdvanceTo(StageEntrevista))
	assert.True(t, StageEntrevista.CanAdvanceTo(StageProposta))
	assert.True(t, StageProposta.CanAdvanceTo(StageContratado))

	// REPROVADO is reachable from every non-terminal stage.
	assert.True(t, StageTriagem.CanAdvanceTo(StageReprovado))
	assert.True(t, StageEntrevista.CanAdvanceTo(StageReprovado))
	assert.True(t, StageProposta.CanAdvanceTo(StageReprovado))

	// No skipping ahead, no going back.
	assert.False(t, StageTriagem.CanAdvanceTo(StageProposta))
	assert.False(t, StageTriagem.CanAdvanceTo(StageContratado))
	assert.False(t, StageEntrevista.CanAdvanceTo(StageTriagem))
	assert.False(t, StageProposta.CanAdvanceTo(StageEntrevista))
}

func TestTerminalStages(t *testing.T) {
	assert.True(t, StageContratado.Terminal())
	assert.True(t, StageReprovado.Terminal())
	assert.False(t, StageTriagem.Terminal())
	assert.False(t, StageEntrevista.Terminal())
	assert.False(t, StageProposta.Terminal())

	assert.False(t, StageContratado.CanAdvanceTo(StageReprovado))
	assert.False(t, StageReprovado.CanAdvanceTo(StageTriagem))
}
