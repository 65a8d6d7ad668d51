package engine

import (
	"fmt"
	"math"
	"time"

	"github.com/lixenwraith/bubble-slicer/constants"
)

// Tuning holds the gameplay rules that may be overridden from config
type Tuning struct {
	InitialLives        int `toml:"initial_lives"`
	MaxLevel            int `toml:"max_level"`
	LevelScoreThreshold int `toml:"level_score_threshold"`

	SpawnInterval        time.Duration `toml:"spawn_interval"`
	SpawnIntervalSpeedup time.Duration `toml:"spawn_interval_speedup"`
	MinSpawnInterval     time.Duration `toml:"min_spawn_interval"`

	BubbleMinRadius   float64 `toml:"bubble_min_radius"`
	BubbleRadiusRange float64 `toml:"bubble_radius_range"`
	PoisonChance      float64 `toml:"poison_chance"`

	BaseSpeed     float64 `toml:"base_speed"`
	SpeedPerLevel float64 `toml:"speed_per_level"`
	SpeedJitter   float64 `toml:"speed_jitter"`

	SliceScore   int           `toml:"slice_score"`
	ComboTimeout time.Duration `toml:"combo_timeout"`

	SliceAnimationDuration time.Duration `toml:"slice_animation_duration"`
	SliceAnimationGrowth   float64       `toml:"slice_animation_growth"`
}

// DefaultTuning returns the stock rules
func DefaultTuning() Tuning {
	return Tuning{
		InitialLives:           constants.InitialLives,
		MaxLevel:               constants.MaxLevel,
		LevelScoreThreshold:    constants.LevelScoreThreshold,
		SpawnInterval:          constants.SpawnInterval,
		SpawnIntervalSpeedup:   constants.SpawnIntervalSpeedup,
		MinSpawnInterval:       constants.MinSpawnInterval,
		BubbleMinRadius:        constants.BubbleMinRadius,
		BubbleRadiusRange:      constants.BubbleRadiusRange,
		PoisonChance:           constants.PoisonChance,
		BaseSpeed:              constants.BaseSpeed,
		SpeedPerLevel:          constants.SpeedPerLevel,
		SpeedJitter:            constants.SpeedJitter,
		SliceScore:             constants.SliceScore,
		ComboTimeout:           constants.ComboTimeout,
		SliceAnimationDuration: constants.SliceAnimationDuration,
		SliceAnimationGrowth:   constants.SliceAnimationGrowth,
	}
}

// LevelBaseSpeed returns the spawn base speed for a level
func (t Tuning) LevelBaseSpeed(level int) float64 {
	return t.BaseSpeed + float64(level-1)*t.SpeedPerLevel
}

// SpawnDelay returns the spawn interval for a level, never below the floor
func (t Tuning) SpawnDelay(level int) time.Duration {
	delay := t.SpawnInterval - time.Duration(level-1)*t.SpawnIntervalSpeedup
	return max(delay, t.MinSpawnInterval)
}

// TargetLevel returns the level earned by a score, clamped to MaxLevel
func (t Tuning) TargetLevel(score int) int {
	return min(score/t.LevelScoreThreshold+1, t.MaxLevel)
}

// Validate rejects values that would break radius, speed, lives or level invariants
func (t Tuning) Validate() error {
	switch {
	case t.InitialLives < 1:
		return fmt.Errorf("%w: initial_lives must be >= 1, got %d", ErrInvalidTuning, t.InitialLives)
	case t.MaxLevel < 1:
		return fmt.Errorf("%w: max_level must be >= 1, got %d", ErrInvalidTuning, t.MaxLevel)
	case t.LevelScoreThreshold < 1:
		return fmt.Errorf("%w: level_score_threshold must be >= 1, got %d", ErrInvalidTuning, t.LevelScoreThreshold)
	case t.MinSpawnInterval <= 0 || t.SpawnInterval < t.MinSpawnInterval:
		return fmt.Errorf("%w: spawn intervals must satisfy 0 < min_spawn_interval <= spawn_interval", ErrInvalidTuning)
	case t.SpawnIntervalSpeedup < 0:
		return fmt.Errorf("%w: spawn_interval_speedup must be >= 0", ErrInvalidTuning)
	case !positive(t.BubbleMinRadius) || !finite(t.BubbleRadiusRange) || t.BubbleRadiusRange < 0:
		return fmt.Errorf("%w: bubble radius must be positive", ErrInvalidTuning)
	case !finite(t.PoisonChance) || t.PoisonChance < 0 || t.PoisonChance > 1:
		return fmt.Errorf("%w: poison_chance must be within [0,1], got %v", ErrInvalidTuning, t.PoisonChance)
	case !positive(t.BaseSpeed) || !finite(t.SpeedPerLevel) || t.SpeedPerLevel < 0 || !finite(t.SpeedJitter) || t.SpeedJitter < 0:
		return fmt.Errorf("%w: speeds must be positive and non-decreasing with level", ErrInvalidTuning)
	case t.SliceScore < 0:
		return fmt.Errorf("%w: slice_score must be >= 0", ErrInvalidTuning)
	case t.ComboTimeout < 0:
		return fmt.Errorf("%w: combo_timeout must be >= 0", ErrInvalidTuning)
	case t.SliceAnimationDuration <= 0:
		return fmt.Errorf("%w: slice_animation_duration must be > 0", ErrInvalidTuning)
	case !finite(t.SliceAnimationGrowth):
		return fmt.Errorf("%w: slice_animation_growth must be finite", ErrInvalidTuning)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func positive(v float64) bool {
	return finite(v) && v > 0
}
