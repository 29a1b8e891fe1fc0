package game

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// Playing with audio disabled must be a safe no-op.
func TestAudioManagerDisabled(t *testing.T) {
	am := NewAudioManager(false, "testdata-none")
	am.PlayStep()
	am.PlayBump()
	am.PlaySwitchView()
	am.PlayWin()
}

func TestAudioLoadsFromAssetsDir(t *testing.T) {
	dir := t.TempDir()
	custom := synthBeepWAV(sampleRate, 20, 440)
	if err := os.WriteFile(filepath.Join(dir, "step.wav"), custom, 0o644); err != nil {
		t.Fatal(err)
	}

	am := NewAudioManager(false, dir)
	if !bytes.Equal(am.step, custom) {
		t.Error("step cue should come from the assets directory when a WAV is present")
	}
	// The other cues have no asset file and fall back to synthesis.
	if len(am.bump) == 0 || bytes.Equal(am.bump, custom) {
		t.Error("bump cue should be synthesized when no asset exists")
	}
}

func TestSynthBeepWAVHeader(t *testing.T) {
	b := synthBeepWAV(sampleRate, 50, 440)
	if string(b[0:4]) != "RIFF" || string(b[8:12]) != "WAVE" || string(b[36:40]) != "data" {
		t.Fatal("synthesized buffer is not a WAV")
	}
	wantSamples := sampleRate * 50 / 1000
	if len(b) != 44+wantSamples*2 {
		t.Fatalf("WAV length = %d, want %d", len(b), 44+wantSamples*2)
	}
}

func TestSynthChordWAVLength(t *testing.T) {
	b := synthChordWAV(sampleRate, 100, 440, 550, 660)
	wantSamples := 3 * sampleRate * 100 / 1000
	if len(b) != 44+wantSamples*2 {
		t.Fatalf("chord length = %d, want %d", len(b), 44+wantSamples*2)
	}
}
