// Package eventbus provides topic-based event fan-out between chart
// monitors and their observers, such as reporting or alerting handlers.
package eventbus

import (
	"context"
	"fmt"
	"sync"
)

// Topic groups subscribers so they only receive events published to that
// channel.  Monitors conventionally use one topic per chart name.
type Topic string

const defaultTopic Topic = "__default__"

// Bus dispatches events to all subscribers on one or more topics.
// Subscribers without a topic join a default channel that receives every
// event published anywhere on the bus.
type Bus struct {
	subscribers map[Topic][]chan Event
	done        []chan struct{}
	mutex       sync.RWMutex
}

// New returns an empty bus.  Topics are created implicitly on first
// subscribe.
func New() *Bus {
	return &Bus{
		subscribers: make(map[Topic][]chan Event),
	}
}

// Subscribe registers a subscriber on zero or more topics.  With no topic
// the subscriber joins the default channel and receives all events.
//
// The first returned channel delivers events and is closed when the bus is
// shut down.  Subscribers should treat a closed event channel as the
// shutdown signal, finish any in-flight work, then close the second (done)
// channel to report that they have exited.
func (e *Bus) Subscribe(topics ...Topic) (chan Event, chan struct{}) {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	c := make(chan Event, 1)
	done := make(chan struct{})
	e.done = append(e.done, done)

	if len(topics) == 0 {
		topics = []Topic{defaultTopic}
	}
	for _, topic := range topics {
		e.subscribers[topic] = append(e.subscribers[topic], c)
	}
	return c, done
}

// Unsubscribe removes the subscriber from every topic and closes its
// channels.
func (e *Bus) Unsubscribe(c chan Event, done chan struct{}) {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	for topic, chs := range e.subscribers {
		for i, ch := range chs {
			if ch == c {
				close(ch)
				e.subscribers[topic] = append(e.subscribers[topic][0:i], e.subscribers[topic][i+1:]...)
			}
		}
	}
	for i, d := range e.done {
		if d == done {
			close(d)
			e.done = append(e.done[0:i], e.done[i+1:]...)
		}
	}
}

// Dispatch sends the event to the given topics.  Events are additionally
// broadcast to default-channel subscribers.  Topics without subscribers
// drop the event silently, so monitors can emit on per-chart topics whether
// or not anything is listening.
func (e *Bus) Dispatch(event Event, topics ...Topic) {
	e.mutex.RLock()
	defer e.mutex.RUnlock()

	topics = append(topics, defaultTopic)
	for _, topic := range topics {
		channels, ok := e.subscribers[topic]
		if len(channels) == 0 || !ok {
			continue
		}

		// copy the channel list so delivery happens outside the lock
		chs := append([]chan Event{}, channels...)
		go func(event Event, chs []chan Event) {
			for _, ch := range chs {
				ch <- event
			}
		}(event, chs)
	}
}

// Shutdown closes every subscriber channel and blocks until all
// subscribers have closed their done channels or the context expires.
func (e *Bus) Shutdown(ctx context.Context) error {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	done := make(chan struct{})
	go shutdownNotify(done, append([]chan struct{}{}, e.done...))

	for _, chs := range e.subscribers {
		for _, ch := range chs {
			close(ch)
		}
	}

	select {
	case <-ctx.Done():
		return fmt.Errorf("eventbus: context timeout or cancelled before all subscribers exited")
	case <-done:
		return nil
	}
}

// shutdownNotify closes done once every subscriber's done channel has been
// closed on the subscriber end.
func shutdownNotify(done chan struct{}, all []chan struct{}) {
	var wg sync.WaitGroup
	for _, ch := range all {
		wg.Add(1)
		go func(c chan struct{}) {
			<-c
			wg.Done()
		}(ch)
	}
	wg.Wait()
	close(done)
}
