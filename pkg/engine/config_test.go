package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestGamemodePresets(t *testing.T) {
	marathon := Marathon()
	assert.Equal(t, "Marathon", marathon.Name)
	require.NotNil(t, marathon.Limit)
	assert.Equal(t, StatLevel, marathon.Limit.Kind)

	sprint := Sprint(5)
	assert.Equal(t, uint32(5), sprint.StartLevel)
	require.NotNil(t, sprint.Limit)
	assert.Equal(t, StatLines, sprint.Limit.Kind)
	assert.Equal(t, uint32(40), sprint.Limit.Count)

	ultra := Ultra(1)
	require.NotNil(t, ultra.Limit)
	assert.Equal(t, StatTime, ultra.Limit.Kind)
	assert.Equal(t, 3*time.Minute, ultra.Limit.Time)

	master := Master()
	assert.Equal(t, uint32(Level20G), master.StartLevel)
	require.NotNil(t, master.Limit)
	assert.Equal(t, StatLines, master.Limit.Kind)

	endless := Endless()
	assert.Nil(t, endless.Limit)
}

func TestDefaultConfigIsInternallyConsistent(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, RotationOcular, cfg.RotationSystem)
	assert.Equal(t, SourceRecency, cfg.PieceSourceKind)
	assert.Equal(t, "Marathon", cfg.Gamemode.Name)
	assert.Greater(t, cfg.DelayedAutoShift, GameTime(0))
	assert.Greater(t, cfg.AutoRepeatRate, GameTime(0))
	assert.Greater(t, cfg.SoftDropFactor, 0.0)
}

func TestGameConfigYAMLRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BagMultiplicity = 3
	cfg.PreviewCount = 4

	out, err := yaml.Marshal(cfg)
	require.NoError(t, err)

	var roundTripped GameConfig
	require.NoError(t, yaml.Unmarshal(out, &roundTripped))

	assert.Equal(t, cfg.RotationSystem, roundTripped.RotationSystem)
	assert.Equal(t, cfg.PieceSourceKind, roundTripped.PieceSourceKind)
	assert.Equal(t, cfg.BagMultiplicity, roundTripped.BagMultiplicity)
	assert.Equal(t, cfg.PreviewCount, roundTripped.PreviewCount)
	assert.Equal(t, cfg.DelayedAutoShift, roundTripped.DelayedAutoShift)
	assert.Equal(t, cfg.SoftDropFactor, roundTripped.SoftDropFactor)
}

func TestDropDelayDecreasesWithLevel(t *testing.T) {
	if dropDelay(1) <= dropDelay(10) {
		t.Errorf("dropDelay should shrink as level increases: level1=%v level10=%v", dropDelay(1), dropDelay(10))
	}
	if dropDelay(19) > dropDelay(18) {
		t.Errorf("dropDelay(19) = %v should not exceed dropDelay(18) = %v", dropDelay(19), dropDelay(18))
	}
}

func TestLockDelayFloorsAtMinimum(t *testing.T) {
	assert.Equal(t, 500*time.Millisecond, lockDelay(1))
	assert.LessOrEqual(t, lockDelay(40), lockDelay(29))
}
