// Package resource implements the shared-capacity resource model: a
// counter with a waiting queue, coupling SeizeModule and ReleaseModule
// (spec.md §3, §4.13).
package resource

import (
	"container/heap"
	"fmt"

	"github.com/andrew-eldridge/simux/entity"
	"github.com/andrew-eldridge/simux/kernel"
	"github.com/andrew-eldridge/simux/simuxerr"
)

// availabilitySample is one (time, available) point on a resource's step
// function, appended on every seize and release.
type availabilitySample struct {
	Time      float64
	Available int
}

// waiter is one entry in a resource's queue: an entity blocked on demand
// units of capacity since EntryTime, whose owning SeizeModule will resume it
// via Handler once capacity frees up.
type waiter struct {
	Entity    entity.Token
	Demand    int
	EntryTime float64
	Handler   kernel.Handler
	index     int
}

// waiterQueue is a min-heap on (EntryTime, Demand, Entity.Ind), exactly the
// ordering spec.md §3 specifies for a resource's queue.
type waiterQueue []*waiter

func (q waiterQueue) Len() int { return len(q) }

func (q waiterQueue) Less(i, j int) bool {
	if q[i].EntryTime != q[j].EntryTime {
		return q[i].EntryTime < q[j].EntryTime
	}
	if q[i].Demand != q[j].Demand {
		return q[i].Demand < q[j].Demand
	}
	return q[i].Entity.Base().Ind < q[j].Entity.Base().Ind
}

func (q waiterQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *waiterQueue) Push(x any) {
	w := x.(*waiter)
	w.index = len(*q)
	*q = append(*q, w)
}

func (q *waiterQueue) Pop() any {
	old := *q
	n := len(old)
	w := old[n-1]
	old[n-1] = nil
	w.index = -1
	*q = old[:n-1]
	return w
}

// Resource is a shared, capacity-bounded counter with a FIFO-by-priority
// waiting queue. Seize/Release must balance per entity across the lifetime
// of its flow; the resource itself does not track per-entity holdings
// (spec.md §5).
type Resource struct {
	Name      string
	Capacity  int
	available int
	queue     waiterQueue
	log       []availabilitySample
}

// New constructs a Resource at full availability, with an initial
// availability-log sample at time 0.
func New(name string, capacity int) *Resource {
	q := make(waiterQueue, 0)
	heap.Init(&q)
	return &Resource{
		Name:      name,
		Capacity:  capacity,
		available: capacity,
		queue:     q,
		log:       []availabilitySample{{Time: 0, Available: capacity}},
	}
}

// Available returns the resource's current free capacity.
func (r *Resource) Available() int { return r.available }

// QueueLen returns the number of entities currently waiting.
func (r *Resource) QueueLen() int { return r.queue.Len() }

// QueueEntity enqueues an entity demanding capacity units, to be resumed via
// handler once the resource can satisfy it.
func (r *Resource) QueueEntity(e entity.Token, demand int, t float64, handler kernel.Handler) {
	heap.Push(&r.queue, &waiter{Entity: e, Demand: demand, EntryTime: t, Handler: handler})
}

// Seize decrements available by demand and logs the new availability.
// Precondition: demand <= r.available (SeizeModule.IngestEntity checks this
// before calling; Release checks it again when waking a queued seize).
func (r *Resource) Seize(demand int, t float64) error {
	if demand > r.available {
		return fmt.Errorf("%w: %s has %d available, cannot seize %d", simuxerr.ErrCapacityViolation, r.Name, r.available, demand)
	}
	r.available -= demand
	r.log = append(r.log, availabilitySample{Time: t, Available: r.available})
	return nil
}

// Release frees demand units of capacity at time t, then wakes at most the
// queue head if it can now be satisfied (spec.md §4.6, §9 open question 5:
// multiple wakeups require multiple Release calls, not one Release freeing
// enough for several). Returns the synthesized Seize event for the woken
// entity, or nil if nothing was woken.
func (r *Resource) Release(demand int, t float64) (*kernel.Event, error) {
	if demand > r.Capacity-r.available {
		return nil, fmt.Errorf("%w: %s cannot release %d, only %d seized", simuxerr.ErrCapacityViolation, r.Name, demand, r.Capacity-r.available)
	}
	r.available += demand
	r.log = append(r.log, availabilitySample{Time: t, Available: r.available})

	if r.queue.Len() == 0 {
		return nil, nil
	}
	head := r.queue[0]
	if head.Demand > r.available {
		return nil, nil
	}

	heap.Pop(&r.queue)
	if err := r.Seize(head.Demand, t); err != nil {
		return nil, err
	}

	waitTime := t - head.EntryTime
	ev := kernel.New(t, "Seize",
		fmt.Sprintf("%s %d entity seized %d %s resources", head.Entity.Base().Type, head.Entity.Base().Ind, head.Demand, r.Name),
		head.Handler, head.Entity)
	ev.WithAttr("wait_time", waitTime)
	return ev, nil
}

// CalcUtilization integrates the resource's availability log over
// [0, duration] and returns the fraction of capacity*duration spent seized.
//
// SPEC_FULL.md §9 resolves an ambiguity in the Python prototype: the
// prototype integrates `available` (free capacity) rather than
// `capacity - available` (busy capacity), so it actually reports
// 1 - utilization. This implementation integrates busy time directly.
func (r *Resource) CalcUtilization(duration float64) float64 {
	if duration <= 0 || r.Capacity <= 0 || len(r.log) == 0 {
		return 0
	}

	samples := r.log
	var busyTime float64
	for i := 0; i < len(samples); i++ {
		t1 := samples[i].Time
		var t2 float64
		if i+1 < len(samples) {
			t2 = samples[i+1].Time
		} else {
			t2 = duration
		}
		if t2 > duration {
			t2 = duration
		}
		if t2 <= t1 {
			continue
		}
		busy := r.Capacity - samples[i].Available
		busyTime += (t2 - t1) * float64(busy)
	}

	return busyTime / (float64(r.Capacity) * duration)
}
