package rules

import (
	"sort"
	"sync"
	"time"
)

// EventType indicates the category of a rules event.
type EventType string

const (
	// Production events
	EventDieSelected          EventType = "DIE_SELECTED"
	EventDieDeselected        EventType = "DIE_DESELECTED"
	EventOperationChanged     EventType = "OPERATION_CHANGED"
	EventElementOccupied      EventType = "ELEMENT_OCCUPIED"
	EventDiceLocked           EventType = "DICE_LOCKED"
	EventSlideAvailable       EventType = "SLIDE_AVAILABLE"
	EventCubeSlid             EventType = "CUBE_SLID"
	EventProductionTurnPassed EventType = "PRODUCTION_TURN_PASSED"

	// Round/phase events
	EventPhaseChanged EventType = "PHASE_CHANGED"
	EventRoundStarted EventType = "ROUND_STARTED"
	EventGameOver     EventType = "GAME_OVER"

	// Selling events
	EventCardSold          EventType = "CARD_SOLD"
	EventOutsourceUsed     EventType = "OUTSOURCE_USED"
	EventMarketRefilled    EventType = "MARKET_REFILLED"
	EventSellingTurnPassed EventType = "SELLING_TURN_PASSED"

	// Reward events
	EventRewardOffered EventType = "REWARD_OFFERED"
	EventDieAcquired   EventType = "DIE_ACQUIRED"
	EventSkillAcquired EventType = "SKILL_ACQUIRED"
)

// NoPlayer marks a game-wide event.
const NoPlayer = -1

// Event is a single state change reported back to the caller.
type Event struct {
	Type        EventType
	Player      int    // acting player index, NoPlayer for game-wide events
	Amount      int    // element number, points, die index, round ...
	Values      []int  // dice indices, element pairs
	Data        string // card id, operation, die type, skill id
	Timestamp   time.Time
	Metadata    map[string]string
	Description string
}

// Listener defines a callback that reacts to incoming events.
type Listener func(Event)

// TypedListener defines a callback that reacts to a specific event type.
type TypedListener struct {
	Handle    int
	EventType EventType
	Callback  func(Event)
}

// EventBus provides a synchronous publish/subscribe implementation with type filtering.
type EventBus struct {
	mu             sync.RWMutex
	listeners      map[int]Listener
	typedListeners map[EventType][]TypedListener
	nextHandle     int
}

// NewEventBus constructs a fresh event bus instance.
func NewEventBus() *EventBus {
	return &EventBus{
		listeners:      make(map[int]Listener),
		typedListeners: make(map[EventType][]TypedListener),
	}
}

// Subscribe registers a listener for all events and returns a handle.
func (bus *EventBus) Subscribe(listener Listener) int {
	if listener == nil {
		return -1
	}
	bus.mu.Lock()
	defer bus.mu.Unlock()
	handle := bus.nextHandle
	bus.nextHandle++
	bus.listeners[handle] = listener
	return handle
}

// SubscribeTyped registers a listener for a specific event type.
func (bus *EventBus) SubscribeTyped(eventType EventType, callback func(Event)) int {
	if callback == nil {
		return -1
	}
	bus.mu.Lock()
	defer bus.mu.Unlock()
	handle := bus.nextHandle
	bus.nextHandle++
	bus.typedListeners[eventType] = append(bus.typedListeners[eventType], TypedListener{
		Handle:    handle,
		EventType: eventType,
		Callback:  callback,
	})
	return handle
}

// Unsubscribe removes the listener identified by the handle, typed or not.
func (bus *EventBus) Unsubscribe(handle int) {
	bus.mu.Lock()
	defer bus.mu.Unlock()
	delete(bus.listeners, handle)
	for eventType, listeners := range bus.typedListeners {
		for i := len(listeners) - 1; i >= 0; i-- {
			if listeners[i].Handle == handle {
				bus.typedListeners[eventType] = append(listeners[:i], listeners[i+1:]...)
				break
			}
		}
	}
}

// Publish delivers the event to all registered listeners synchronously.
// Catch-all listeners run in subscription order before typed ones.
func (bus *EventBus) Publish(event Event) {
	bus.mu.RLock()
	handles := make([]int, 0, len(bus.listeners))
	for h := range bus.listeners {
		handles = append(handles, h)
	}
	sort.Ints(handles)
	listeners := make([]Listener, 0, len(handles))
	for _, h := range handles {
		listeners = append(listeners, bus.listeners[h])
	}
	typed := append([]TypedListener(nil), bus.typedListeners[event.Type]...)
	bus.mu.RUnlock()

	for _, listener := range listeners {
		listener(event)
	}
	for _, listener := range typed {
		listener.Callback(event)
	}
}

// PublishBatch publishes events in order.
func (bus *EventBus) PublishBatch(events []Event) {
	for _, event := range events {
		bus.Publish(event)
	}
}

// NewEvent creates a new event with common fields populated.
func NewEvent(eventType EventType, player int) Event {
	return Event{
		Type:      eventType,
		Player:    player,
		Timestamp: time.Now(),
		Metadata:  make(map[string]string),
	}
}

// NewEventWithAmount creates a new event with an amount value.
func NewEventWithAmount(eventType EventType, player, amount int) Event {
	evt := NewEvent(eventType, player)
	evt.Amount = amount
	return evt
}

// NewEventWithData creates a new event carrying a string payload.
func NewEventWithData(eventType EventType, player int, data string) Event {
	evt := NewEvent(eventType, player)
	evt.Data = data
	return evt
}
