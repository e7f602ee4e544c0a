// Package scheduler runs the background loop that publishes due pins.
package scheduler

import (
	"context"
	"time"

	"github.com/pinforge/pinforge/internal/logger"
	"github.com/pinforge/pinforge/internal/pinterest"
)

// Publisher periodically publishes pending pins whose scheduled time
// has passed. It only does real work when a server-side access token
// is configured; without one every pass is a no-op.
type Publisher struct {
	service       *pinterest.Service
	token         string
	logger        logger.Logger
	interval      time.Duration
	stopCh        chan struct{}
	manualTrigger chan struct{}
}

// NewPublisher creates a new due-pin publisher
func NewPublisher(
	service *pinterest.Service,
	token string,
	log logger.Logger,
	interval time.Duration,
	manualTrigger chan struct{},
) *Publisher {
	return &Publisher{
		service:       service,
		token:         token,
		logger:        log,
		interval:      interval,
		stopCh:        make(chan struct{}),
		manualTrigger: manualTrigger,
	}
}

// Start begins the periodic publish process
func (p *Publisher) Start(ctx context.Context) error {
	// Run immediately on start
	if err := p.Publish(ctx); err != nil {
		p.logger.Warn("initial publish pass failed", logger.Error(err))
	}

	ticker := time.NewTicker(p.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := p.Publish(ctx); err != nil {
					p.logger.Error("publish pass failed", logger.Error(err))
				}
			case <-p.manualTrigger:
				p.logger.Info("manual publish triggered")
				if err := p.Publish(ctx); err != nil {
					p.logger.Error("publish pass failed", logger.Error(err))
				}
			case <-p.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the publisher
func (p *Publisher) Stop() {
	close(p.stopCh)
}

// Publish runs one pass over the pin queue.
func (p *Publisher) Publish(ctx context.Context) error {
	published, err := p.service.PublishDue(ctx, p.token)
	if err != nil {
		return err
	}
	if published > 0 {
		p.logger.Info("published due pins", logger.Int("count", published))
	} else {
		p.logger.Debug("no due pins to publish")
	}
	return nil
}
