package game

// InputBus records the latest held/released state per key identifier and fans
// held keys out to subscribers once per tick. It is owned by a single Match
// and only touched from the goroutine driving that match.
type InputBus struct {
	held        map[string]bool
	order       []string
	subscribers []func(key string)
}

func NewInputBus() *InputBus {
	return &InputBus{held: make(map[string]bool)}
}

// SetKeyState records the latest state for key. Repeated events between ticks
// collapse to the last one.
func (b *InputBus) SetKeyState(key string, held bool) {
	if _, seen := b.held[key]; !seen {
		b.order = append(b.order, key)
	}
	b.held[key] = held
}

func (b *InputBus) IsHeld(key string) bool {
	return b.held[key]
}

// OnKeyEvent registers fn to be called with each held key on Dispatch.
func (b *InputBus) OnKeyEvent(fn func(key string)) {
	if fn == nil {
		return
	}
	b.subscribers = append(b.subscribers, fn)
}

// Dispatch calls every subscriber once per currently held key, in the order
// keys were first recorded.
func (b *InputBus) Dispatch() {
	for _, key := range b.order {
		if !b.held[key] {
			continue
		}
		for _, fn := range b.subscribers {
			fn(key)
		}
	}
}

// Reset releases every recorded key. Subscribers stay registered.
func (b *InputBus) Reset() {
	for key := range b.held {
		b.held[key] = false
	}
}

func (b *InputBus) Subscribers() int {
	return len(b.subscribers)
}
