// SPDX-License-Identifier: MIT
package sessions

import (
	"log"
	"time"
)

// Pruner periodically removes idle sessions from a store
type Pruner struct {
	Store    *Store
	Interval time.Duration
	MaxIdle  time.Duration
	ticker   *time.Ticker
	done     chan bool
	stopChan chan bool
}

// NewPruner creates a pruner with the default interval and idle limit
func NewPruner(store *Store) *Pruner {
	return &Pruner{
		Store:    store,
		Interval: 6 * time.Hour,
		MaxIdle:  30 * 24 * time.Hour,
		done:     make(chan bool, 1),
		stopChan: make(chan bool, 1),
	}
}

// Start begins pruning in a goroutine
// Returns a done channel that receives once the pruner stops
func (p *Pruner) Start() chan bool {
	go func() {
		p.ticker = time.NewTicker(p.Interval)
		defer p.ticker.Stop()

		p.run()

		for {
			select {
			case <-p.stopChan:
				p.done <- true
				return
			case <-p.ticker.C:
				p.run()
			}
		}
	}()

	return p.done
}

// Stop stops the pruner
func (p *Pruner) Stop() {
	select {
	case p.stopChan <- true:
	default:
	}
}

func (p *Pruner) run() {
	n, err := p.Store.Prune(p.MaxIdle)
	if err != nil {
		log.Printf("session prune failed: %v\n", err)
		return
	}
	if n > 0 {
		log.Printf("pruned %d idle sessions\n", n)
	}
}
