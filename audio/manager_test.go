package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/mirador/parameter"
)

func newTestManager() (*Manager, *time.Time, *int) {
	clock := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	played := 0

	m := NewManager()
	m.now = func() time.Time { return clock }
	m.play = func(beep.Streamer) { played++ }

	return m, &clock, &played
}

func TestWallHitCooldown(t *testing.T) {
	m, clock, played := newTestManager()

	m.WallHit()
	if *played != 1 {
		t.Fatalf("first WallHit played %d sounds, want 1", *played)
	}

	// Within the cooldown window nothing plays
	*clock = clock.Add(parameter.WallHitCooldown / 2)
	m.WallHit()
	if *played != 1 {
		t.Errorf("WallHit during cooldown played, count = %d", *played)
	}

	*clock = clock.Add(parameter.WallHitCooldown)
	m.WallHit()
	if *played != 2 {
		t.Errorf("WallHit after cooldown did not play, count = %d", *played)
	}
}

func TestWallHitMuted(t *testing.T) {
	m, _, played := newTestManager()

	m.SetMuted(true)
	m.WallHit()
	if *played != 0 {
		t.Errorf("muted WallHit played %d sounds", *played)
	}
	if !m.Muted() {
		t.Error("Muted() = false after SetMuted(true)")
	}
}

func TestOscillatorFillsAndEnds(t *testing.T) {
	osc := NewOscillator(440, 10*time.Millisecond, WaveSine, sampleRate)
	total := sampleRate.N(10 * time.Millisecond)

	buf := make([][2]float64, 128)
	streamed := 0
	for {
		n, ok := osc.Stream(buf)
		streamed += n
		for i := 0; i < n; i++ {
			if buf[i][0] < -1 || buf[i][0] > 1 {
				t.Fatalf("sample out of range: %v", buf[i][0])
			}
		}
		if !ok {
			break
		}
	}

	if streamed != total {
		t.Errorf("oscillator streamed %d samples, want %d", streamed, total)
	}
}

func TestEnvelopeRampsToSilence(t *testing.T) {
	duration := 20 * time.Millisecond
	osc := NewOscillator(440, duration, WaveSquare, sampleRate)
	env := NewEnvelope(osc, duration, 2*time.Millisecond, 10*time.Millisecond, sampleRate)

	var all [][2]float64
	buf := make([][2]float64, 256)
	for {
		n, ok := env.Stream(buf)
		all = append(all, buf[:n]...)
		if !ok {
			break
		}
	}

	if len(all) == 0 {
		t.Fatal("envelope streamed nothing")
	}
	// First sample sits at the very start of the attack ramp
	if v := all[0][0]; v < -0.05 || v > 0.05 {
		t.Errorf("attack start not quiet: %v", v)
	}
	// Final sample sits at the end of the release ramp
	if v := all[len(all)-1][0]; v < -0.05 || v > 0.05 {
		t.Errorf("release end not quiet: %v", v)
	}
}
