package config

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/katalvlaran/latticepose/internal/geom"
	"github.com/katalvlaran/latticepose/internal/model"
)

// InitialSolver names which stage produces the pipeline's initial pose.
type InitialSolver string

const (
	SolverDFS    InitialSolver = "dfs"
	SolverDFS2   InitialSolver = "dfs2"
	SolverShrink InitialSolver = "shrink"
)

// AnnealingSolver names which local-search driver the H stage runs.
type AnnealingSolver string

const (
	SolverAnnealing    AnnealingSolver = "annealing"
	SolverAnnealing3   AnnealingSolver = "annealing3"
	SolverHillClimbing AnnealingSolver = "hill_climbing"
)

// Config is the fully resolved configuration for one pipeline run,
// binding every key of spec.md §6's environment-variable table.
type Config struct {
	InitialSolver      InitialSolver
	InitialSolution    model.Pose
	UsedBonusTypes     []model.BonusType
	AnnealingSolver    AnnealingSolver
	TimeLimit          time.Duration
	FixSeed            bool
	DisableDFSCentroid bool
	SkipOrtho          bool
}

// Load reads the environment-variable configuration table into a Config,
// applying spec.md §6's defaults (TIME_LIMIT_SECONDS 2.0, DFS as the
// initial solver, annealing as the local-search driver).
func Load() (Config, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("initial_solver", string(SolverDFS))
	v.SetDefault("annealing_solver", string(SolverAnnealing))
	v.SetDefault("time_limit_seconds", 2.0)
	v.SetDefault("fix_seed", false)
	v.SetDefault("disable_dfs_centroid", false)
	v.SetDefault("skip_ortho", false)

	timeLimitSeconds := v.GetFloat64("time_limit_seconds")
	if v.IsSet("hill_climbing_time_limit_seconds") {
		timeLimitSeconds = v.GetFloat64("hill_climbing_time_limit_seconds")
	}

	cfg := Config{
		InitialSolver:      InitialSolver(v.GetString("initial_solver")),
		AnnealingSolver:    AnnealingSolver(v.GetString("annealing_solver")),
		TimeLimit:          time.Duration(timeLimitSeconds * float64(time.Second)),
		FixSeed:            v.GetBool("fix_seed"),
		DisableDFSCentroid: v.GetBool("disable_dfs_centroid"),
		SkipOrtho:          v.GetBool("skip_ortho"),
	}

	if raw := v.GetString("initial_solution"); raw != "" {
		pose, err := parsePoseJSON(raw)
		if err != nil {
			return Config{}, err
		}
		cfg.InitialSolution = pose
	}

	if raw := v.GetString("used_bonus_types"); raw != "" {
		for _, name := range strings.Split(raw, ",") {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			bt, ok := model.ParseBonusType(name)
			if !ok {
				return Config{}, fmt.Errorf("%w: %q", ErrUnknownBonusName, name)
			}
			cfg.UsedBonusTypes = append(cfg.UsedBonusTypes, bt)
		}
	}

	return cfg, nil
}

func parsePoseJSON(raw string) (model.Pose, error) {
	var points [][2]int64
	if err := json.Unmarshal([]byte(raw), &points); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInitialSolution, err)
	}
	pose := make(model.Pose, len(points))
	for i, p := range points {
		pose[i] = geom.Point{X: float64(p[0]), Y: float64(p[1])}
	}
	return pose, nil
}
