package event

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/FuriaPaladins/Hoyoverse-Data/internal/logger"
)

var errShutdown = errors.New("publisher shut down before retry")

type retryItem struct {
	event   Event
	attempt int
	lastErr error
}

// ResilientPublisher wraps an Event Bus to add retry logic and dead letter queuing.
// Publish never fails the caller: the first attempt is synchronous and any
// failure is retried in the background with exponential backoff.
type ResilientPublisher struct {
	inner      Bus
	maxRetries int
	baseDelay  time.Duration
	deadLetter *DeadLetterWriter

	queue chan retryItem
	done  chan struct{}
	once  sync.Once
	wg    sync.WaitGroup
}

// NewResilientPublisher creates a new ResilientPublisher and starts its retry worker
func NewResilientPublisher(inner Bus, maxRetries int, baseDelay time.Duration, deadLetterPath string) (*ResilientPublisher, error) {
	dlw, err := NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		return nil, err
	}
	p := &ResilientPublisher{
		inner:      inner,
		maxRetries: maxRetries,
		baseDelay:  baseDelay,
		deadLetter: dlw,
		queue:      make(chan retryItem, RetryQueueBufferSize),
		done:       make(chan struct{}),
	}
	p.wg.Add(1)
	go p.worker()
	return p, nil
}

// Publish attempts to publish an event, queuing it for retry on failure.
func (p *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	err := p.inner.Publish(ctx, event)
	if err == nil {
		return nil
	}

	logger.FromContext(ctx).Warn(LogMsgEventPublishFailed,
		"event_type", event.Type,
		"error", err,
		"retries", p.maxRetries)

	item := retryItem{event: event, attempt: 1, lastErr: err}
	select {
	case <-p.done:
		p.writeDeadLetter(item.event, 1, err)
		return nil
	default:
	}
	select {
	case p.queue <- item:
	default:
		logger.FromContext(ctx).Warn(LogMsgRetryQueueFull, "event_type", event.Type)
		p.writeDeadLetter(item.event, 1, err)
	}
	return nil
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.inner.Subscribe(eventType, handler)
}

// Shutdown stops retrying. Pending events are written to the dead-letter file.
func (p *ResilientPublisher) Shutdown(ctx context.Context) error {
	p.once.Do(func() { close(p.done) })

	finished := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(finished)
	}()

	select {
	case <-finished:
		return p.deadLetter.Close()
	case <-ctx.Done():
		logger.FromContext(ctx).Warn(LogMsgShutdownTimeout)
		return ctx.Err()
	}
}

func (p *ResilientPublisher) worker() {
	defer p.wg.Done()
	for {
		select {
		case item := <-p.queue:
			p.retry(item)
		case <-p.done:
			p.drain()
			return
		}
	}
}

func (p *ResilientPublisher) retry(item retryItem) {
	log := logger.FromContext(context.Background())
	for item.attempt <= p.maxRetries {
		timer := time.NewTimer(CalculateRetryDelay(p.baseDelay, item.attempt))
		select {
		case <-timer.C:
		case <-p.done:
			timer.Stop()
			log.Warn(LogMsgEventDroppedShutdown, "event_type", item.event.Type)
			p.writeDeadLetter(item.event, item.attempt, errors.Join(item.lastErr, errShutdown))
			return
		}

		err := p.inner.Publish(context.Background(), item.event)
		if err == nil {
			log.Info(LogMsgEventRetrySucceeded, "event_type", item.event.Type, "attempt", item.attempt)
			return
		}
		log.Warn(LogMsgEventRetryFailed, "event_type", item.event.Type, "attempt", item.attempt, "error", err)
		item.lastErr = err
		item.attempt++
	}

	log.Warn(LogMsgEventRetryExhausted, "event_type", item.event.Type)
	p.writeDeadLetter(item.event, item.attempt, item.lastErr)
}

func (p *ResilientPublisher) drain() {
	for {
		select {
		case item := <-p.queue:
			p.writeDeadLetter(item.event, item.attempt, errors.Join(item.lastErr, errShutdown))
		default:
			return
		}
	}
}

func (p *ResilientPublisher) writeDeadLetter(event Event, attempts int, lastErr error) {
	if err := p.deadLetter.Write(event, attempts, lastErr); err != nil {
		logger.FromContext(context.Background()).Error(LogMsgDeadLetterWriteFailed, "event_type", event.Type, "error", err)
	}
}
