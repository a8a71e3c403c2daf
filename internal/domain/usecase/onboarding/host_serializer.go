package onboarding

import (
	"context"
	"fmt"
	"sync"

	errs "github.com/amirhossein-jamali/settlement-engine/internal/domain/error"
	coreport "github.com/amirhossein-jamali/settlement-engine/internal/domain/port/core"
)

// ErrSerializerClosed is returned for operations submitted after Shutdown
var ErrSerializerClosed = fmt.Errorf("%w: host serializer is shut down", errs.ErrInternalServer)

// hostQueueSize bounds the operations waiting on one host
const hostQueueSize = 32

// HostSerializer runs operations for the same host one at a time, in arrival order.
// Operations for different hosts run concurrently. A host only holds a queue and a
// goroutine while it has operations pending.
type HostSerializer struct {
	logger coreport.Logger

	mu     sync.Mutex
	closed bool
	queues map[uint64]*hostQueue
	wg     sync.WaitGroup
}

// hostQueue holds the operations waiting on one host
type hostQueue struct {
	ops []*hostOperation
}

// hostOperation is a queued operation and the channel its result goes to
type hostOperation struct {
	ctx    context.Context
	run    func(ctx context.Context) error
	result chan error
}

// NewHostSerializer creates a serializer with no running workers
func NewHostSerializer(logger coreport.Logger) *HostSerializer {
	return &HostSerializer{
		logger: logger,
		queues: make(map[uint64]*hostQueue),
	}
}

// Do queues run behind any earlier operations for hostID and waits for its result
func (s *HostSerializer) Do(ctx context.Context, hostID uint64, run func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	op := &hostOperation{
		ctx:    ctx,
		run:    run,
		result: make(chan error, 1),
	}
	if err := s.enqueue(hostID, op); err != nil {
		return err
	}

	select {
	case err := <-op.result:
		return err
	case <-ctx.Done():
		s.logger.Warn("Context canceled while waiting for host operation", map[string]any{
			"host_id": hostID,
			"error":   ctx.Err().Error(),
		})
		return ctx.Err()
	}
}

// enqueue appends op to the queue of hostID and starts a drainer when the host was idle
func (s *HostSerializer) enqueue(hostID uint64, op *hostOperation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSerializerClosed
	}

	queue, ok := s.queues[hostID]
	if !ok {
		queue = &hostQueue{}
		s.queues[hostID] = queue
		s.wg.Add(1)
		go s.drain(hostID, queue)
	}
	if len(queue.ops) >= hostQueueSize {
		return fmt.Errorf("%w: too many operations waiting on host %d", errs.ErrResourceLocked, hostID)
	}
	queue.ops = append(queue.ops, op)
	return nil
}

// drain runs the queued operations of one host and exits once the queue is empty
func (s *HostSerializer) drain(hostID uint64, queue *hostQueue) {
	defer s.wg.Done()

	for {
		s.mu.Lock()
		if len(queue.ops) == 0 {
			delete(s.queues, hostID)
			s.mu.Unlock()
			return
		}
		op := queue.ops[0]
		queue.ops[0] = nil
		queue.ops = queue.ops[1:]
		s.mu.Unlock()

		if err := op.ctx.Err(); err != nil {
			op.result <- err
			continue
		}
		op.result <- op.run(op.ctx)
	}
}

// pendingHosts reports how many hosts currently hold a queue
func (s *HostSerializer) pendingHosts() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queues)
}

// Shutdown stops accepting operations and waits for the queued ones to finish
func (s *HostSerializer) Shutdown() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.mu.Unlock()

	if pending := s.pendingHosts(); pending > 0 {
		s.logger.Info("Waiting for queued host operations", map[string]any{
			"pending_hosts": pending,
		})
	}
	s.wg.Wait()
	s.logger.Info("Host serializer shut down", nil)
}
