package metrics

import (
	"context"

	"github.com/glintclean/weekplan/internal/eventbus"
)

// StartCollector subscribes to the event bus and forwards census events to
// the sink. It stops when the context is canceled.
func StartCollector(ctx context.Context, bus eventbus.EventBus, sink Sink) {
	if bus == nil || sink == nil {
		return
	}
	sub := bus.Subscribe()
	go func() {
		defer bus.Unsubscribe(sub)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-sub:
				if !ok {
					return
				}
				switch e := ev.(type) {
				case SlotTableEvent:
					_ = sink.RecordSlotCapacity(e.Samples)
				case RunCompletedEvent:
					_ = sink.RecordRunSummary(e.Run)
				}
			}
		}
	}()
}
