package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStageInfo(t *testing.T) {
	t.Run("known stage returns its presentation triple", func(t *testing.T) {
		info := BusinessStageOfferSent.Info()
		assert.Equal(t, "Offer sent", info.Label)
		assert.Equal(t, "warning", info.Variant)
		assert.NotEmpty(t, info.Description)
	})

	t.Run("every listed stage has an entry", func(t *testing.T) {
		for _, stage := range AllStages() {
			info := stage.Info()
			assert.NotEmpty(t, info.Label, string(stage))
			assert.NotEmpty(t, info.Variant, string(stage))
			assert.NotEmpty(t, info.Description, string(stage))
		}
	})

	t.Run("unknown stage falls back to neutral rendering", func(t *testing.T) {
		info := BusinessStage("mystery").Info()
		assert.Equal(t, "mystery", info.Label)
		assert.Equal(t, "secondary", info.Variant)
		assert.Empty(t, info.Description)
	})
}

func TestAllStages(t *testing.T) {
	stages := AllStages()
	assert.Len(t, stages, 8)
	assert.Equal(t, BusinessStageLead, stages[0])
	assert.Equal(t, BusinessStageChurned, stages[len(stages)-1])

	for _, stage := range stages {
		assert.True(t, stage.IsValid(), string(stage))
	}
}

func TestBusinessStageIsValid(t *testing.T) {
	assert.True(t, BusinessStageQualified.IsValid())
	assert.False(t, BusinessStage("negotiating").IsValid())
	assert.False(t, BusinessStage("").IsValid())
}

func TestActivityTypeIsValid(t *testing.T) {
	assert.True(t, ActivityTypeCall.IsValid())
	assert.True(t, ActivityTypeMeeting.IsValid())
	assert.True(t, ActivityTypeTask.IsValid())
	assert.False(t, ActivityType("email").IsValid())
}
