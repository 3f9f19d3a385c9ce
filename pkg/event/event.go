// pkg/event/event.go
package event

import (
	"sync"
)

// Type represents the type of event
type Type string

// Simulation event types
const (
	SimulationStarted Type = "simulation_started"
	SimulationStopped Type = "simulation_stopped"
	CommandApplied    Type = "command_applied"
	CollisionStarted  Type = "collision_started"
	CollisionEnded    Type = "collision_ended"
	FrameDropped      Type = "frame_dropped"
)

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() interface{}
	GetTick() uint64
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    interface{}
	Tick      uint64
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// GetTick returns the tick the event was raised on
func (e *BaseEvent) GetTick() uint64 {
	return e.Tick
}

// Handler is a function that handles events
type Handler func(Event)

// Subscription identifies one registered handler
type Subscription struct {
	ID     uint64
	Type   Type
	Cancel func()
}

type registration struct {
	id      uint64
	handler Handler
}

// Bus manages event subscriptions and dispatching. Handlers run
// synchronously on the publishing goroutine, in subscription order.
type Bus struct {
	handlers map[Type][]registration
	nextID   uint64
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]registration),
		nextID:   1,
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.handlers[eventType] = append(b.handlers[eventType], registration{id: id, handler: handler})

	sub := &Subscription{ID: id, Type: eventType}
	sub.Cancel = func() { b.Unsubscribe(sub) }
	return sub
}

// Unsubscribe removes the handler registered under sub. Removing a handler
// twice is a no-op.
func (b *Bus) Unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	regs := b.handlers[sub.Type]
	for i, r := range regs {
		if r.id == sub.ID {
			next := make([]registration, 0, len(regs)-1)
			next = append(next, regs[:i]...)
			b.handlers[sub.Type] = append(next, regs[i+1:]...)
			return
		}
	}
}

// Publish sends an event to all subscribed handlers
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	regs := b.handlers[event.GetType()]
	b.mu.RUnlock()

	// regs is never mutated in place, so handlers may unsubscribe while we iterate
	for _, r := range regs {
		r.handler(event)
	}
}

// HandlerCount returns the number of handlers for eventType
func (b *Bus) HandlerCount(eventType Type) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[eventType])
}

// Specific event implementations

// LifecycleEvent marks the start or end of a run
type LifecycleEvent struct {
	BaseEvent
	Reason string
}

// NewLifecycleEvent creates a new lifecycle event
func NewLifecycleEvent(eventType Type, source interface{}, tick uint64, reason string) *LifecycleEvent {
	return &LifecycleEvent{
		BaseEvent: BaseEvent{EventType: eventType, Source: source, Tick: tick},
		Reason:    reason,
	}
}

// CommandEvent reports a command applied to a ship
type CommandEvent struct {
	BaseEvent
	ShipID  uint64
	Command string
}

// NewCommandEvent creates a new command event
func NewCommandEvent(source interface{}, tick, shipID uint64, command string) *CommandEvent {
	return &CommandEvent{
		BaseEvent: BaseEvent{EventType: CommandApplied, Source: source, Tick: tick},
		ShipID:    shipID,
		Command:   command,
	}
}

// CollisionEvent contains information about entity collisions
type CollisionEvent struct {
	BaseEvent
	EntityA uint64
	EntityB uint64
}

// NewCollisionEvent creates a collision event. eventType is CollisionStarted
// or CollisionEnded.
func NewCollisionEvent(eventType Type, source interface{}, tick, entityA, entityB uint64) *CollisionEvent {
	return &CollisionEvent{
		BaseEvent: BaseEvent{EventType: eventType, Source: source, Tick: tick},
		EntityA:   entityA,
		EntityB:   entityB,
	}
}

// FrameEvent reports a frame that could not be drawn
type FrameEvent struct {
	BaseEvent
	Err error
}

// NewFrameDroppedEvent creates a new frame event
func NewFrameDroppedEvent(source interface{}, tick uint64, err error) *FrameEvent {
	return &FrameEvent{
		BaseEvent: BaseEvent{EventType: FrameDropped, Source: source, Tick: tick},
		Err:       err,
	}
}
