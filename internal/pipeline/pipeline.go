package pipeline

import (
	"context"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/latticepose/internal/anneal"
	"github.com/katalvlaran/latticepose/internal/config"
	"github.com/katalvlaran/latticepose/internal/construct"
	"github.com/katalvlaran/latticepose/internal/figuregraph"
	"github.com/katalvlaran/latticepose/internal/geom"
	"github.com/katalvlaran/latticepose/internal/model"
	"github.com/katalvlaran/latticepose/internal/placer"
	"github.com/katalvlaran/latticepose/internal/shrink"
	"github.com/katalvlaran/latticepose/internal/snap"
)

// Outcome is the pipeline's result: the final pose over all of the
// figure's original vertices (never including a BreakALeg virtual vertex)
// plus the bonus activation it was validated against.
type Outcome struct {
	Pose    model.Pose
	Bonuses model.ActiveBonuses
}

// Run executes spec.md §4.P's seven-step driver: resolve bonuses, obtain
// an initial pose (honoring INITIAL_SOLUTION, the configured D variant, or
// S as a fallback), bracket a local-search stage between two rigid-placer
// passes, run the snap adjuster, and perform a defensive final validity
// check.
func Run(ctx context.Context, hole model.Hole, figure model.Figure, epsilon int64, cfg config.Config, log zerolog.Logger) (Outcome, error) {
	bonuses := resolveBonuses(figure, cfg.UsedBonusTypes)
	g := figuregraph.BuildAdjacency(len(figure.Vertices), figure.Edges)
	rng := newRand(cfg)

	pose, err := initialPose(ctx, g, figure, hole, epsilon, cfg, log, rng)
	if err != nil {
		return Outcome{}, err
	}

	if !cfg.SkipOrtho {
		if placed := placer.Place(ctx, figure, hole, epsilon); placed.Found {
			pose = placed.Pose
			log.Debug().Float64("dislike", placed.Dislike).Msg("ortho: round 1 improved placement")
		}
	}

	pose = runLocalSearch(ctx, g, figure, hole, pose, epsilon, cfg, log, rng)

	if !cfg.SkipOrtho {
		if placed := placer.Place(ctx, figure, hole, epsilon); placed.Found && placed.Dislike < geom.Dislike(pose, hole) {
			pose = placed.Pose
			log.Debug().Float64("dislike", placed.Dislike).Msg("ortho: round 2 improved placement")
		}
	}

	pose = snap.Run(g, figure, hole, pose, epsilon, bonuses)

	finalPose := withVirtualVertex(bonuses, pose)
	ok, err := model.ValidPose(figure, hole, finalPose, epsilon, bonuses)
	if err != nil || !ok {
		log.Error().Err(err).Msg("final pose failed validation")
		return Outcome{}, ErrInvalidFinalPose
	}

	return Outcome{Pose: pose, Bonuses: bonuses}, nil
}

// newRand seeds the run's shared RNG per spec.md §5: a fixed seed when
// FIX_SEED is set (reproducible across runs), entropy otherwise.
func newRand(cfg config.Config) *rand.Rand {
	if cfg.FixSeed {
		return rand.New(rand.NewSource(1))
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

func initialPose(ctx context.Context, g *figuregraph.Graph, figure model.Figure, hole model.Hole, epsilon int64, cfg config.Config, log zerolog.Logger, rng *rand.Rand) (model.Pose, error) {
	if cfg.InitialSolution != nil {
		log.Debug().Msg("initial pose: using INITIAL_SOLUTION override")
		return cfg.InitialSolution, nil
	}

	constructOpts := []construct.Option{construct.WithRand(rng)}
	if cfg.DisableDFSCentroid {
		constructOpts = append(constructOpts, construct.WithCentroidSortDisabled())
	}

	switch cfg.InitialSolver {
	case config.SolverDFS2:
		result := construct.DFSEdges(ctx, figure, hole, epsilon, constructOpts...)
		if result.Found {
			log.Debug().Float64("dislike", result.Dislike).Msg("dfs2: initial pose found")
			return result.Pose, nil
		}
	case config.SolverShrink:
		result, err := shrink.Run(ctx, figure, hole, epsilon, shrink.WithRand(rng))
		if err == nil {
			log.Debug().Float64("dislike", result.Dislike).Msg("shrink: initial pose found")
			return result.Pose, nil
		}
	default:
		result := construct.DFSPoints(ctx, figure, hole, epsilon, constructOpts...)
		if result.Found {
			log.Debug().Float64("dislike", result.Dislike).Msg("dfs: initial pose found")
			return result.Pose, nil
		}
	}

	log.Debug().Msg("initial pose: falling back to shrink")
	result, err := shrink.Run(ctx, figure, hole, epsilon, shrink.WithRand(rng))
	if err != nil {
		return nil, ErrInitialPoseNotFound
	}
	if !result.PlacedByPlacer && geom.Dislike(result.Pose, hole) >= geom.Dislike(model.Pose(figure.Vertices), hole) {
		return nil, ErrInitialPoseNotFound
	}

	return result.Pose, nil
}

func runLocalSearch(ctx context.Context, g *figuregraph.Graph, figure model.Figure, hole model.Hole, pose model.Pose, epsilon int64, cfg config.Config, log zerolog.Logger, rng *rand.Rand) model.Pose {
	opts := []anneal.Option{anneal.WithBudget(cfg.TimeLimit), anneal.WithRand(rng)}

	if cfg.AnnealingSolver == config.SolverHillClimbing {
		result := anneal.HillClimb(ctx, g, figure, hole, pose, epsilon, opts...)
		log.Debug().Float64("dislike", result.Dislike).Msg("hill_climbing: local search complete")
		return result.Pose
	}

	result := anneal.Anneal(ctx, g, figure, hole, pose, epsilon, opts...)
	log.Debug().Float64("dislike", result.Dislike).Msg("anneal: local search complete")
	return result.Pose
}

// withVirtualVertex appends the midpoint of the BreakALeg split edge as
// the pose's trailing virtual vertex, matching the cardinality
// model.ValidPose requires when bonuses.BreakALeg is set. Every other
// stage operates on the figure's original vertex count only; this is the
// one place the virtual vertex is materialized.
func withVirtualVertex(bonuses model.ActiveBonuses, pose model.Pose) model.Pose {
	if !bonuses.BreakALeg {
		return pose
	}
	v, w := bonuses.BreakLegEdge.V, bonuses.BreakLegEdge.W
	mid := pose[v].Add(pose[w]).Scale(0.5).Round()
	return append(append(model.Pose(nil), pose...), mid)
}
