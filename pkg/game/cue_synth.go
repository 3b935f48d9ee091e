package game

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// waveType 振荡器波形
type waveType int

const (
	waveSine waveType = iota
	waveSquare
	waveSaw
	waveNoise
)

// oscillator 生成固定频率的波形，持续 duration 个采样
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     waveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

func newOscillator(freq float64, duration time.Duration, wave waveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(1)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case waveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case waveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case waveSaw:
			val = 2.0 * (o.phase - 0.5)
		case waveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope 线性起音/释音包络
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; remaining < e.release {
			vol = math.Max(0, float64(remaining)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// withVolume 线性音量，0 时静音
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone 带包络的单音
func tone(freq float64, d time.Duration, wave waveType, rate beep.SampleRate) beep.Streamer {
	return newEnvelope(newOscillator(freq, d, wave, rate), d, 5*time.Millisecond, d/3, rate)
}

// cueStreamer 为每个音效ID构造合成音
func cueStreamer(id CueID, rate beep.SampleRate) (beep.Streamer, error) {
	switch id {
	case CueBreak:
		return beep.Mix(
			withVolume(newEnvelope(newOscillator(0, 250*time.Millisecond, waveNoise, rate), 250*time.Millisecond, time.Millisecond, 200*time.Millisecond, rate), 0.6),
			withVolume(tone(110, 200*time.Millisecond, waveSquare, rate), 0.3),
		), nil
	case CueMiss:
		return beep.Seq(
			withVolume(tone(330, 150*time.Millisecond, waveSaw, rate), 0.5),
			withVolume(tone(220, 250*time.Millisecond, waveSaw, rate), 0.5),
		), nil
	case CueSpawn:
		return beep.Seq(
			tone(523.25, 60*time.Millisecond, waveSine, rate),
			tone(659.25, 60*time.Millisecond, waveSine, rate),
			tone(783.99, 90*time.Millisecond, waveSine, rate),
		), nil
	case CueNoise:
		// 整数个周期，循环时无接缝
		return beep.Mix(
			withVolume(newOscillator(90, time.Second, waveSine, rate), 0.4),
			withVolume(newOscillator(0, time.Second, waveNoise, rate), 0.05),
		), nil
	case CueLaser:
		return beep.Mix(
			withVolume(tone(1200, 180*time.Millisecond, waveSquare, rate), 0.25),
			withVolume(tone(1800, 180*time.Millisecond, waveSine, rate), 0.4),
		), nil
	case CueBeep:
		return withVolume(tone(1000, 80*time.Millisecond, waveSine, rate), 0.6), nil
	case CueSoundtrack:
		notes := []float64{220, 261.63, 329.63, 261.63, 196, 246.94, 293.66, 246.94}
		streamers := make([]beep.Streamer, 0, len(notes)*2)
		for _, n := range notes {
			streamers = append(streamers,
				withVolume(tone(n, 250*time.Millisecond, waveSine, rate), 0.5),
				withVolume(tone(n/2, 250*time.Millisecond, waveSine, rate), 0.3),
			)
		}
		return beep.Seq(streamers...), nil
	default:
		return nil, fmt.Errorf("no synthesized sound for cue %q", id)
	}
}

// SynthesizeCue 生成音效的 PCM 数据（16 位小端、双声道）
//
// 参数：
//   - id: 音效ID
//   - sampleRate: 输出采样率（与 audio.Context 一致）
//
// 返回：
//   - []byte: 可直接交给 Ebitengine audio 播放的 PCM 数据
//   - error: 未知音效ID时返回错误
func SynthesizeCue(id string, sampleRate int) ([]byte, error) {
	streamer, err := cueStreamer(CueID(id), beep.SampleRate(sampleRate))
	if err != nil {
		return nil, err
	}
	return renderPCM(streamer)
}

// renderPCM 读完 streamer 并转换为 16 位 PCM
func renderPCM(s beep.Streamer) ([]byte, error) {
	const chunk = 512
	buf := make([][2]float64, chunk)
	out := make([]byte, 0, chunk*4)
	frame := make([]byte, 4)

	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			binary.LittleEndian.PutUint16(frame[0:], uint16(toInt16(buf[i][0])))
			binary.LittleEndian.PutUint16(frame[2:], uint16(toInt16(buf[i][1])))
			out = append(out, frame...)
		}
		if !ok || n == 0 {
			break
		}
	}

	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("failed to synthesize sound: %w", err)
	}
	return out, nil
}

// toInt16 将 [-1, 1] 的采样值量化为 int16
func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(v * math.MaxInt16)
}
