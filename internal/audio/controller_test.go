package audio

import (
	"context"
	"encoding/base64"
	"encoding/binary"
	"sync"
	"testing"
	"time"
)

// blockingPlayer plays until its context is cancelled or it is released
type blockingPlayer struct {
	mu      sync.Mutex
	active  int
	maxSeen int
	started chan struct{}
	release chan struct{}
}

func newBlockingPlayer() *blockingPlayer {
	return &blockingPlayer{
		started: make(chan struct{}, 8),
		release: make(chan struct{}),
	}
}

func (p *blockingPlayer) Play(ctx context.Context, wav []byte) error {
	p.mu.Lock()
	p.active++
	if p.active > p.maxSeen {
		p.maxSeen = p.active
	}
	p.mu.Unlock()
	p.started <- struct{}{}

	defer func() {
		p.mu.Lock()
		p.active--
		p.mu.Unlock()
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-p.release:
		return nil
	}
}

func pcmPayload(samples int) string {
	raw := make([]byte, samples*2)
	for i := 0; i < samples; i++ {
		binary.LittleEndian.PutUint16(raw[i*2:], uint16(i))
	}
	return base64.StdEncoding.EncodeToString(raw)
}

func TestPlayCompletesAndReturnsToIdle(t *testing.T) {
	player := newBlockingPlayer()
	controller := NewController(player)

	done := make(chan struct{})
	go func() {
		controller.Play(pcmPayload(64))
		close(done)
	}()

	<-player.started
	if !controller.Playing() {
		t.Error("controller should report playing while the clip is in flight")
	}

	close(player.release)
	<-done
	if controller.Playing() {
		t.Error("controller should be idle after natural completion")
	}
}

func TestSecondClipStopsTheFirst(t *testing.T) {
	player := newBlockingPlayer()
	controller := NewController(player)

	first := make(chan struct{})
	go func() {
		controller.Play(pcmPayload(64))
		close(first)
	}()
	<-player.started

	second := make(chan struct{})
	go func() {
		controller.Play(pcmPayload(64))
		close(second)
	}()
	<-player.started

	// The first clip must have been cancelled before the second started
	select {
	case <-first:
	case <-time.After(2 * time.Second):
		t.Fatal("first clip was not stopped when the second began")
	}

	player.mu.Lock()
	maxSeen := player.maxSeen
	player.mu.Unlock()
	if maxSeen > 1 {
		t.Errorf("two clips were audible at once (max concurrent = %d)", maxSeen)
	}

	if !controller.Playing() {
		t.Error("second clip should still be playing")
	}
	controller.Stop()
	<-second
}

func TestStopIsIdempotent(t *testing.T) {
	controller := NewController(newBlockingPlayer())

	// Safe when idle, repeatedly
	controller.Stop()
	controller.Stop()
	if controller.Playing() {
		t.Error("controller should be idle")
	}
}

func TestStopCancelsInFlightPlayback(t *testing.T) {
	player := newBlockingPlayer()
	controller := NewController(player)

	done := make(chan struct{})
	go func() {
		controller.Play(pcmPayload(64))
		close(done)
	}()
	<-player.started

	controller.Stop()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not cancel the in-flight clip")
	}
	if controller.Playing() {
		t.Error("controller should be idle after Stop")
	}
}

func TestBadPayloadPlaysNothing(t *testing.T) {
	player := newBlockingPlayer()
	controller := NewController(player)

	controller.Play("%%% not base64 %%%")
	if controller.Playing() {
		t.Error("decode failure must leave the controller idle")
	}
	select {
	case <-player.started:
		t.Error("nothing should have been handed to the player")
	default:
	}

	// Empty payloads are skipped too
	controller.Play("")
	if controller.Playing() {
		t.Error("empty payload must leave the controller idle")
	}
}

func TestEncodeWAVHeader(t *testing.T) {
	pcm := make([]byte, 480)
	wav := EncodeWAV(pcm, SampleRate, NumChannels)

	if string(wav[0:4]) != "RIFF" || string(wav[8:12]) != "WAVE" {
		t.Fatal("missing RIFF/WAVE markers")
	}
	if got := binary.LittleEndian.Uint32(wav[24:28]); got != SampleRate {
		t.Errorf("expected sample rate %d, got %d", SampleRate, got)
	}
	if got := binary.LittleEndian.Uint16(wav[22:24]); got != NumChannels {
		t.Errorf("expected %d channel(s), got %d", NumChannels, got)
	}
	if got := binary.LittleEndian.Uint32(wav[40:44]); got != uint32(len(pcm)) {
		t.Errorf("data chunk length %d, want %d", got, len(pcm))
	}
	if len(wav) != 44+len(pcm) {
		t.Errorf("total length %d, want %d", len(wav), 44+len(pcm))
	}
}
