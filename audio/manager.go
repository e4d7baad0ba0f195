package audio

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/mirador/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// Manager owns the speaker and plays game sound effects. It implements
// the collision system's hit listener. Safe to use uninitialized; all
// methods degrade to silence.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool

	lastWallHit time.Time

	// test seams
	now  func() time.Time
	play func(beep.Streamer)
}

func NewManager() *Manager {
	m := &Manager{
		mixer: &beep.Mixer{},
		now:   time.Now,
	}
	m.play = m.playOnSpeaker
	return m
}

// Initialize opens the speaker. Failure leaves the manager silent but
// usable, for headless environments.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		log.Printf("audio unavailable, continuing silent: %v", err)
		return err
	}

	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Cleanup silences and detaches all streams.
func (m *Manager) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Lock()
	m.mixer.Clear()
	speaker.Unlock()
	m.initialized = false
}

// SetMuted toggles all playback.
func (m *Manager) SetMuted(muted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.muted = muted
}

func (m *Manager) Muted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.muted
}

// WallHit plays a short low blip. Rapid wall scraping is throttled by a
// cooldown so sliding along a wall does not machine-gun the effect.
func (m *Manager) WallHit() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if now.Sub(m.lastWallHit) < parameter.WallHitCooldown {
		return
	}
	m.lastWallHit = now

	if m.muted {
		return
	}
	m.play(wallHitSound())
}

func wallHitSound() beep.Streamer {
	osc := NewOscillator(parameter.WallHitFrequency, parameter.WallHitDuration, WaveSine, sampleRate)
	return NewEnvelope(osc,
		parameter.WallHitDuration,
		parameter.WallHitAttack,
		parameter.WallHitRelease,
		sampleRate)
}

func (m *Manager) playOnSpeaker(s beep.Streamer) {
	if !m.initialized {
		return
	}
	speaker.Lock()
	m.mixer.Add(s)
	speaker.Unlock()
}
