package game

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/gonewx/targets/pkg/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// cueExtensions are tried in order when looking up a cue file.
var cueExtensions = []string{".wav", ".ogg", ".mp3"}

// ResourceManager is responsible for centralized management of game resources.
// It loads audio cues (from disk or synthesized) and font faces, caching them
// so each resource is created only once.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. The internal caches use standard Go maps.
// For the single-threaded game loop, no synchronization is needed.
//
// Usage:
//
//	audioContext := audio.NewContext(48000)
//	rm := NewResourceManager(audioContext)
//	face, err := rm.LoadDefaultFont(25)
type ResourceManager struct {
	audioCache    map[string]*audio.Player    // Cache for loaded audio players: path or cue id -> Player
	audioContext  *audio.Context              // Global audio context for audio decoding
	fontSource    *text.GoTextFaceSource      // Parsed default font
	fontFaceCache map[string]*text.GoTextFace // Cache for Ebitengine v2 text faces
}

// NewResourceManager creates and initializes a new ResourceManager instance.
// The audioContext parameter is required for audio decoding and playback.
// It should be created once at game startup with a sample rate of 48000 Hz.
func NewResourceManager(audioContext *audio.Context) *ResourceManager {
	return &ResourceManager{
		audioCache:    make(map[string]*audio.Player),
		audioContext:  audioContext,
		fontFaceCache: make(map[string]*text.GoTextFace),
	}
}

// LoadCue creates the player for a configured cue.
// It looks for "<id>.wav", "<id>.ogg" or "<id>.mp3" in dir; when none exists
// (or dir is empty) the cue falls back to a synthesized waveform.
//
// Parameters:
//   - dir: The directory holding cue files, may be empty.
//   - cue: The cue configuration (id and loop flag).
//
// Returns:
//   - A pointer to the audio player (ready to play, but not started).
//   - An error if a cue file exists but cannot be decoded.
func (rm *ResourceManager) LoadCue(dir string, cue config.CueConfig) (*audio.Player, error) {
	if dir != "" {
		path, err := findCueFile(dir, cue.ID)
		if err == nil {
			return rm.loadAudioFile(path, cue.Loop)
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		log.Printf("[ResourceManager] Cue %s not found in %s, using synthesized sound", cue.ID, dir)
	}

	return rm.loadSynthesizedCue(cue)
}

// findCueFile returns the first existing cue file for id in dir.
func findCueFile(dir, id string) (string, error) {
	for _, ext := range cueExtensions {
		path := filepath.Join(dir, id+ext)
		info, err := os.Stat(path)
		if err == nil && !info.IsDir() {
			return path, nil
		}
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("failed to stat cue file %s: %w", path, err)
		}
	}
	return "", fmt.Errorf("cue %s: %w", id, fs.ErrNotExist)
}

// loadAudioFile decodes a WAV, OGG Vorbis or MP3 file and caches the player.
// Looping players wrap the stream in an infinite loop.
func (rm *ResourceManager) loadAudioFile(path string, loop bool) (*audio.Player, error) {
	if cachedPlayer, exists := rm.audioCache[path]; exists {
		return cachedPlayer, nil
	}

	// Read the entire file into memory so the stream can seek without keeping the file open
	audioData, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", path, err)
	}

	stream, err := rm.decode(path, bytes.NewReader(audioData))
	if err != nil {
		return nil, err
	}

	var src io.Reader = stream
	if loop {
		src = audio.NewInfiniteLoop(stream, stream.Length())
	}

	player, err := rm.audioContext.NewPlayer(src)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", path, err)
	}

	rm.audioCache[path] = player
	return player, nil
}

// decodedStream is the common shape of the Ebitengine decoders.
type decodedStream interface {
	io.ReadSeeker
	Length() int64
}

// decode picks the decoder by file extension and resamples to the context rate.
func (rm *ResourceManager) decode(path string, reader io.ReadSeeker) (decodedStream, error) {
	sampleRate := rm.audioContext.SampleRate()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		s, err := wav.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode WAV audio %s: %w", path, err)
		}
		return s, nil
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG audio %s: %w", path, err)
		}
		return s, nil
	case ".mp3":
		s, err := mp3.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 audio %s: %w", path, err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .wav, .ogg, .mp3)", ext)
	}
}

// loadSynthesizedCue renders the fallback waveform for cue and caches the player.
func (rm *ResourceManager) loadSynthesizedCue(cue config.CueConfig) (*audio.Player, error) {
	key := "synth:" + cue.ID
	if cachedPlayer, exists := rm.audioCache[key]; exists {
		return cachedPlayer, nil
	}

	pcm, err := SynthesizeCue(cue.ID, rm.audioContext.SampleRate())
	if err != nil {
		return nil, err
	}

	stream := bytes.NewReader(pcm)
	var src io.Reader = stream
	if cue.Loop {
		src = audio.NewInfiniteLoop(stream, int64(len(pcm)))
	}

	player, err := rm.audioContext.NewPlayer(src)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for cue %s: %w", cue.ID, err)
	}

	rm.audioCache[key] = player
	return player, nil
}

// LoadDefaultFont creates a text face of the given size from the embedded Go Regular font.
// The face is cached per size.
func (rm *ResourceManager) LoadDefaultFont(size float64) (*text.GoTextFace, error) {
	cacheKey := fmt.Sprintf("goregular:%.1f", size)
	if cachedFace, exists := rm.fontFaceCache[cacheKey]; exists {
		return cachedFace, nil
	}

	if rm.fontSource == nil {
		source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			return nil, fmt.Errorf("failed to create default font source: %w", err)
		}
		rm.fontSource = source
	}

	face := &text.GoTextFace{
		Source:    rm.fontSource,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[cacheKey] = face
	return face, nil
}
