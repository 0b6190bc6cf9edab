package painter

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Animator advances a scene at a fixed frame rate in the background
type Animator struct {
	mu       sync.RWMutex
	scene    *Scene
	interval time.Duration
	logger   *zap.Logger
	stopChan chan struct{}
	wg       sync.WaitGroup
	started  bool
	frames   uint64
}

// NewAnimator creates a new animator for the scene at fps frames per second
func NewAnimator(scene *Scene, fps int, logger *zap.Logger) *Animator {
	if fps <= 0 {
		fps = 30
	}
	return &Animator{
		scene:    scene,
		interval: time.Second / time.Duration(fps),
		logger:   logger,
	}
}

// Start starts the animation loop
func (a *Animator) Start() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.started {
		return
	}
	a.started = true
	a.stopChan = make(chan struct{})

	a.wg.Add(1)
	go a.run(a.stopChan)
	a.logger.Info("Animator started", zap.Duration("interval", a.interval))
}

// Stop stops the animation loop and waits for it to exit
func (a *Animator) Stop() {
	a.mu.Lock()
	if !a.started {
		a.mu.Unlock()
		return
	}
	a.started = false
	close(a.stopChan)
	a.mu.Unlock()

	a.wg.Wait()
	a.logger.Info("Animator stopped", zap.Uint64("frames", a.Frames()))
}

// run executes the animation loop
func (a *Animator) run(stop <-chan struct{}) {
	defer a.wg.Done()

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.C:
			a.mu.Lock()
			a.scene.Tick(now)
			a.frames++
			a.mu.Unlock()
		case <-stop:
			return
		}
	}
}

// Snapshot projects the current state of the scene
func (a *Animator) Snapshot() Frame {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.scene.Frame()
}

// Frames returns how many ticks have been applied
func (a *Animator) Frames() uint64 {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.frames
}
