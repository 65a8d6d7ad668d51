package systems

import (
	"log"
	"sync/atomic"

	"github.com/lixenwraith/bubble-slicer/engine"
	"github.com/lixenwraith/bubble-slicer/events"
	"github.com/lixenwraith/bubble-slicer/status"
)

// Metric names recorded by TelemetrySystem
const (
	MetricSessions       = "sessions"
	MetricSpawned        = "bubbles.spawned"
	MetricPoisonSpawned  = "bubbles.spawned.poison"
	MetricSliced         = "bubbles.sliced"
	MetricEscaped        = "bubbles.escaped"
	MetricLivesLost      = "lives.lost"
	MetricLevelUps       = "levels.gained"
	MetricBestCombo      = "combo.best"
	MetricMaxSpawnSpeed  = "speed.spawn.max"
	MetricPoisonGameOver = "gameover.poison"
)

// TelemetrySystem counts game events into a status registry
// Counters accumulate across restarts, the session count tells them apart
type TelemetrySystem struct {
	registry *status.Registry

	sessions      *atomic.Int64
	spawned       *atomic.Int64
	poisonSpawned *atomic.Int64
	sliced        *atomic.Int64
	escaped       *atomic.Int64
	livesLost     *atomic.Int64
	levelUps      *atomic.Int64
	poisonOver    *atomic.Int64
	bestCombo     *status.AtomicFloat
	maxSpeed      *status.AtomicFloat
}

// NewTelemetrySystem caches metric pointers from the registry
func NewTelemetrySystem(registry *status.Registry) *TelemetrySystem {
	return &TelemetrySystem{
		registry:      registry,
		sessions:      registry.Counter(MetricSessions),
		spawned:       registry.Counter(MetricSpawned),
		poisonSpawned: registry.Counter(MetricPoisonSpawned),
		sliced:        registry.Counter(MetricSliced),
		escaped:       registry.Counter(MetricEscaped),
		livesLost:     registry.Counter(MetricLivesLost),
		levelUps:      registry.Counter(MetricLevelUps),
		poisonOver:    registry.Counter(MetricPoisonGameOver),
		bestCombo:     registry.Gauge(MetricBestCombo),
		maxSpeed:      registry.Gauge(MetricMaxSpawnSpeed),
	}
}

// EventTypes returns the event types TelemetrySystem handles
func (s *TelemetrySystem) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventSessionStarted,
		events.EventBubbleSpawned,
		events.EventBubbleSliced,
		events.EventBubbleEscaped,
		events.EventLifeLost,
		events.EventLevelUp,
		events.EventGameOver,
	}
}

// HandleEvent updates counters
func (s *TelemetrySystem) HandleEvent(_ *engine.GameContext, event events.GameEvent) {
	switch event.Type {
	case events.EventSessionStarted:
		s.sessions.Add(1)
	case events.EventBubbleSpawned:
		s.spawned.Add(1)
		if p, ok := event.Payload.(*events.BubbleSpawnedPayload); ok {
			if p.Poison {
				s.poisonSpawned.Add(1)
			}
			s.maxSpeed.Max(p.Speed)
		}
	case events.EventBubbleSliced:
		s.sliced.Add(1)
		if p, ok := event.Payload.(*events.BubbleSlicedPayload); ok {
			s.bestCombo.Max(float64(p.Combo))
		}
	case events.EventBubbleEscaped:
		s.escaped.Add(1)
	case events.EventLifeLost:
		s.livesLost.Add(1)
	case events.EventLevelUp:
		s.levelUps.Add(1)
	case events.EventGameOver:
		if p, ok := event.Payload.(*events.GameOverPayload); ok && p.Reason == events.GameOverPoison {
			s.poisonOver.Add(1)
		}
		log.Printf("telemetry: %s", s.registry)
	}
}
