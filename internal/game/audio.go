package game

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const sampleRate = 44100

var (
	audioOnce sync.Once
	audioCtx  *audio.Context
)

func getAudioContext(enabled bool) *audio.Context {
	if !enabled {
		return nil
	}
	audioOnce.Do(func() {
		audioCtx = audio.NewContext(sampleRate)
	})
	return audioCtx
}

// AudioManager plays the game's four cues. Like the textures, each cue is
// loaded from the assets directory when a WAV is present there and
// synthesized otherwise, so no sound assets are needed. A nil context
// (audio disabled) turns every Play into a no-op.
type AudioManager struct {
	ctx        *audio.Context
	step       []byte
	bump       []byte
	switchView []byte
	win        []byte
}

func NewAudioManager(enabled bool, assetsDir string) *AudioManager {
	return &AudioManager{
		ctx: getAudioContext(enabled),
		step: loadOrSynthSound(assetsDir, "step", func() []byte {
			return synthBeepWAV(sampleRate, 35, 660)
		}),
		bump: loadOrSynthSound(assetsDir, "bump", func() []byte {
			return synthBeepWAV(sampleRate, 90, 150)
		}),
		switchView: loadOrSynthSound(assetsDir, "switch", func() []byte {
			return synthBeepWAV(sampleRate, 50, 880)
		}),
		win: loadOrSynthSound(assetsDir, "win", func() []byte {
			return synthChordWAV(sampleRate, 160, 523.25, 659.25, 783.99)
		}),
	}
}

func loadOrSynthSound(dir, name string, synth func() []byte) []byte {
	if b, err := os.ReadFile(filepath.Join(dir, name+".wav")); err == nil {
		return b
	}
	return synth()
}

func (am *AudioManager) play(raw []byte) {
	if am == nil || am.ctx == nil || len(raw) == 0 {
		return
	}
	// Decode from bytes each time so overlapping plays are independent.
	stream, err := wav.Decode(am.ctx, bytes.NewReader(raw))
	if err != nil {
		return
	}
	p, err := audio.NewPlayer(am.ctx, stream)
	if err != nil {
		return
	}
	p.Play()
}

func (am *AudioManager) PlayStep()       { am.play(am.step) }
func (am *AudioManager) PlayBump()       { am.play(am.bump) }
func (am *AudioManager) PlaySwitchView() { am.play(am.switchView) }
func (am *AudioManager) PlayWin()        { am.play(am.win) }

// synthChordWAV concatenates one beep per frequency into a rising jingle.
func synthChordWAV(sampleRate, noteMs int, freqs ...float64) []byte {
	if len(freqs) == 0 {
		return nil
	}
	out := synthBeepWAV(sampleRate, noteMs*len(freqs), freqs[0])
	sampsPerNote := sampleRate * noteMs / 1000
	for i, f := range freqs {
		note := synthBeepWAV(sampleRate, noteMs, f)
		copy(out[44+i*sampsPerNote*2:], note[44:])
	}
	return out
}

// synthBeepWAV returns a minimal 16-bit PCM mono WAV of a sine beep.
func synthBeepWAV(sampleRate, durationMs int, freq float64) []byte {
	numSamples := sampleRate * durationMs / 1000
	byteRate := sampleRate * 2 // mono 16-bit
	dataSize := numSamples * 2
	totalSize := 44 + dataSize
	buf := make([]byte, totalSize)
	copy(buf[0:4], "RIFF")
	putLE32(buf[4:8], uint32(totalSize-8))
	copy(buf[8:12], "WAVE")
	copy(buf[12:16], "fmt ")
	putLE32(buf[16:20], 16) // PCM chunk size
	putLE16(buf[20:22], 1)  // PCM format
	putLE16(buf[22:24], 1)  // channels
	putLE32(buf[24:28], uint32(sampleRate))
	putLE32(buf[28:32], uint32(byteRate))
	putLE16(buf[32:34], 2) // block align
	putLE16(buf[34:36], 16)
	copy(buf[36:40], "data")
	putLE32(buf[40:44], uint32(dataSize))
	const amp = 0.25
	for i := 0; i < numSamples; i++ {
		t := float64(i) / float64(sampleRate)
		// Short linear fade-out avoids a click at the end.
		env := 1.0
		if tail := numSamples - i; tail < 256 {
			env = float64(tail) / 256
		}
		v := int16(math.Sin(2*math.Pi*freq*t) * 32767 * amp * env)
		off := 44 + i*2
		buf[off] = byte(v)
		buf[off+1] = byte(v >> 8)
	}
	return buf
}

func putLE16(b []byte, v uint16) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
}

func putLE32(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}
