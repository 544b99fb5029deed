package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/latticepose/internal/config"
	"github.com/katalvlaran/latticepose/internal/model"
)

func TestLoadAppliesDefaults(t *testing.T) {
	require := require.New(t)

	cfg, err := config.Load()
	require.NoError(err)
	require.Equal(config.SolverDFS, cfg.InitialSolver)
	require.Equal(config.SolverAnnealing, cfg.AnnealingSolver)
	require.Equal(2*time.Second, cfg.TimeLimit)
}

func TestLoadParsesUsedBonusTypes(t *testing.T) {
	require := require.New(t)

	t.Setenv("USED_BONUS_TYPES", "GLOBALIST, WALLHACK")
	cfg, err := config.Load()
	require.NoError(err)
	require.Equal([]model.BonusType{model.Globalist, model.WallHack}, cfg.UsedBonusTypes)
}

func TestLoadRejectsUnknownBonusName(t *testing.T) {
	require := require.New(t)

	t.Setenv("USED_BONUS_TYPES", "NOPE")
	_, err := config.Load()
	require.ErrorIs(err, config.ErrUnknownBonusName)
}

func TestLoadHillClimbingTimeLimitOverridesGeneric(t *testing.T) {
	require := require.New(t)

	t.Setenv("TIME_LIMIT_SECONDS", "5")
	t.Setenv("HILL_CLIMBING_TIME_LIMIT_SECONDS", "0.5")
	cfg, err := config.Load()
	require.NoError(err)
	require.Equal(500*time.Millisecond, cfg.TimeLimit)
}

func TestLoadParsesInitialSolutionPose(t *testing.T) {
	require := require.New(t)

	t.Setenv("INITIAL_SOLUTION", `[[1,2],[3,4]]`)
	cfg, err := config.Load()
	require.NoError(err)
	require.Len(cfg.InitialSolution, 2)
	require.Equal(float64(1), cfg.InitialSolution[0].X)
}
