package state

import "sync"

// observable guards a state value and fans changes out to subscribers.
//
// dispatch calls are serialized, so subscribers see transitions in the
// order they were applied. A subscriber must not dispatch on the
// observable that is notifying it.
type observable[S any] struct {
	dispatchMu sync.Mutex

	mu     sync.RWMutex
	state  S
	subs   []subscription[S]
	nextID int

	clone func(S) S
}

type subscription[S any] struct {
	id int
	fn func(S)
}

func newObservable[S any](initial S, clone func(S) S) *observable[S] {
	return &observable[S]{state: initial, clone: clone}
}

func (o *observable[S]) get() S {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.clone(o.state)
}

// dispatch replaces the state with reduce(state), runs effect with the new
// state and finally notifies subscribers.
func (o *observable[S]) dispatch(reduce func(S) S, effect func(S)) S {
	o.dispatchMu.Lock()
	defer o.dispatchMu.Unlock()

	o.mu.Lock()
	o.state = reduce(o.state)
	next := o.clone(o.state)
	subs := make([]subscription[S], len(o.subs))
	copy(subs, o.subs)
	o.mu.Unlock()

	if effect != nil {
		effect(next)
	}
	for _, s := range subs {
		s.fn(o.clone(next))
	}
	return next
}

func (o *observable[S]) subscribe(fn func(S)) func() {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.nextID++
	id := o.nextID
	o.subs = append(o.subs, subscription[S]{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			o.mu.Lock()
			defer o.mu.Unlock()
			for i, s := range o.subs {
				if s.id == id {
					o.subs = append(o.subs[:i:i], o.subs[i+1:]...)
					return
				}
			}
		})
	}
}
