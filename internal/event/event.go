// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event — структура события
type Event struct {
	Type EventType
	Data interface{} // Данные события, если нужны
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc позволяет подписать обычную функцию.
// Функции несравнимы, поэтому отписать ListenerFunc нельзя; для отписки
// используйте указатель на тип с методом OnEvent.
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) { f(event) }

// Dispatcher — диспетчер событий. Однопоточный: события доставляются
// синхронно в порядке подписки.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

// NewDispatcher — создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe — подписка на событие
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Unsubscribe — отписка от события. Возвращает false, если подписки не было.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) bool {
	listeners := d.listeners[eventType]
	for i, l := range listeners {
		if l == listener {
			// Новый срез: Dispatch может идти по старому прямо сейчас
			rest := make([]Listener, 0, len(listeners)-1)
			rest = append(rest, listeners[:i]...)
			rest = append(rest, listeners[i+1:]...)
			if len(rest) == 0 {
				delete(d.listeners, eventType)
			} else {
				d.listeners[eventType] = rest
			}
			return true
		}
	}
	return false
}

// Dispatch — отправка события всем подписчикам
func (d *Dispatcher) Dispatch(event Event) {
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
}

// ListenerCount — число подписчиков на тип события
func (d *Dispatcher) ListenerCount(eventType EventType) int {
	return len(d.listeners[eventType])
}
