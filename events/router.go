package events

// Handler receives routed events of the types it declares
type Handler[T any] interface {
	// HandleEvent runs on the game loop during Commit
	HandleEvent(ctx T, event GameEvent)

	// EventTypes lists the types to subscribe to, read once at Register
	EventTypes() []EventType
}

// Router fans queued events out to handlers
// Dispatch is synchronous and follows registration order per type
// Events pushed by a handler are delivered before DispatchAll returns
type Router[T any] struct {
	queue    *EventQueue
	handlers map[EventType][]Handler[T]
}

// NewRouter creates a router draining the given queue
func NewRouter[T any](queue *EventQueue) *Router[T] {
	return &Router[T]{
		queue:    queue,
		handlers: make(map[EventType][]Handler[T]),
	}
}

// Register subscribes handler to each of its event types
func (r *Router[T]) Register(handler Handler[T]) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// DispatchAll consumes all pending events and routes to handlers
// Events are processed in FIFO order, returns the number of events consumed
func (r *Router[T]) DispatchAll(ctx T) int {
	total := 0
	for {
		events := r.queue.Consume()
		if len(events) == 0 {
			return total
		}
		total += len(events)
		for _, ev := range events {
			for _, h := range r.handlers[ev.Type] {
				h.HandleEvent(ctx, ev)
			}
		}
	}
}

// HandlerCount returns the number of handlers registered for the given type
func (r *Router[T]) HandlerCount(t EventType) int {
	return len(r.handlers[t])
}
