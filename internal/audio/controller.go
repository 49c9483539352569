// Package audio turns base64 PCM payloads from the speech generator
// into playable WAV clips and enforces that at most one clip is in
// flight at a time. Playback itself is delegated to an injected Player.
package audio

import (
	"context"
	"encoding/base64"
	"errors"
	"log"
	"sync"
)

// Player delivers one framed WAV clip to the audio output. Play returns
// when the clip finishes or the context is cancelled.
type Player interface {
	Play(ctx context.Context, wav []byte) error
}

// Controller is the playback state machine: Idle -> Playing -> Idle.
// There is no pause; "pause" is Stop. Decode and playback failures are
// swallowed so the visual state can never get stuck on a dead clip.
type Controller struct {
	player Player

	mu         sync.Mutex
	playing    bool
	cancel     context.CancelFunc
	generation uint64
}

// NewController creates a controller that plays through the given player
func NewController(player Player) *Controller {
	return &Controller{player: player}
}

// Play decodes a base64 PCM payload and plays it, stopping any clip
// already in flight first. It returns when playback ends naturally or
// is cancelled by Stop or a newer clip. Failures play nothing.
func (c *Controller) Play(base64Payload string) {
	pcm, err := base64.StdEncoding.DecodeString(base64Payload)
	if err != nil {
		log.Printf("Audio decode error, skipping playback: %v", err)
		return
	}
	if len(pcm) == 0 {
		return
	}
	clip := EncodeWAV(pcm, SampleRate, NumChannels)

	c.mu.Lock()
	if c.cancel != nil {
		// At most one clip in flight
		c.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.generation++
	gen := c.generation
	c.playing = true
	c.mu.Unlock()

	err = c.player.Play(ctx, clip)
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("Audio playback error: %v", err)
	}

	c.mu.Lock()
	if c.generation == gen {
		c.playing = false
		c.cancel = nil
	}
	c.mu.Unlock()
	cancel()
}

// Stop cancels any in-flight playback. Safe to call when idle.
func (c *Controller) Stop() {
	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.playing = false
	c.mu.Unlock()
}

// Playing reports whether a clip is currently in flight
func (c *Controller) Playing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.playing
}
