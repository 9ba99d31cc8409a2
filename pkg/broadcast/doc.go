// Package broadcast fans values of a single type out to many subscribers.
//
// MemoryBroadcaster keeps the latest value per subscriber: a subscriber that
// has not yet read its previous value gets it replaced, so a slow reader always
// sees the most recent state and never blocks Broadcast.
//
//	b := broadcast.NewMemoryBroadcaster[State]()
//	defer b.Close()
//
//	sub := b.Subscribe(ctx) // cleaned up when ctx is cancelled
//	go func() {
//		for msg := range sub.Receive(ctx) {
//			render(msg.Data)
//		}
//	}()
//
//	_ = b.Broadcast(ctx, broadcast.Message[State]{Data: next})
package broadcast
