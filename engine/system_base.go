package engine

// System is a unit of per-tick game logic
// Systems run in ascending Priority order
type System interface {
	Priority() int
	Update()
}

// StatsListener receives the HUD snapshot whenever it changes
//
//go:generate go tool mockgen -destination=./mocks/stats_listener_mock.go -package=mocks . StatsListener
type StatsListener interface {
	OnStats(stats Stats)
}

// StatsListenerFunc adapts a function to StatsListener
type StatsListenerFunc func(stats Stats)

func (f StatsListenerFunc) OnStats(stats Stats) {
	f(stats)
}
