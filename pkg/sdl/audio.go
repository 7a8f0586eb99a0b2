package sdl

import (
	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"
)

// Beep tone parameters
const (
	sampleRate = 44100
	toneHz     = 240
	amplitude  = 63 // half of full scale

	// Samples queued at a time, about 46ms of audio.
	bufferSamples = 2048
)

// squareWave generates a tone as signed 8-bit mono samples.
type squareWave struct {
	phase float64
	inc   float64
}

func newSquareWave(freq, rate float64) *squareWave {
	return &squareWave{inc: freq / rate}
}

// fill writes len(buf) samples and advances the phase.
func (w *squareWave) fill(buf []byte) {
	amp := int8(amplitude)
	for i := range buf {
		v := amp
		if w.phase >= 0.5 {
			v = -amp
		}
		buf[i] = byte(v)
		w.phase += w.inc
		if w.phase >= 1 {
			w.phase--
		}
	}
}

// beeper plays the tone on a queued SDL audio device while active.
type beeper struct {
	dev    sdl.AudioDeviceID
	wave   *squareWave
	buf    []byte
	active bool
}

func openBeeper() (*beeper, error) {
	spec := &sdl.AudioSpec{
		Freq:     sampleRate,
		Format:   sdl.AUDIO_S8,
		Channels: 1,
		Samples:  bufferSamples,
	}
	dev, err := sdl.OpenAudioDevice("", false, spec, nil, 0)
	if err != nil {
		return nil, errors.Wrapf(err, "sdl.OpenAudioDevice failed")
	}
	return &beeper{
		dev:  dev,
		wave: newSquareWave(toneHz, sampleRate),
		buf:  make([]byte, bufferSamples),
	}, nil
}

// set starts or stops the tone. While active it keeps the queue topped up.
func (b *beeper) set(on bool) error {
	if !on {
		if b.active {
			sdl.PauseAudioDevice(b.dev, true)
			sdl.ClearQueuedAudio(b.dev)
			b.active = false
		}
		return nil
	}

	if sdl.GetQueuedAudioSize(b.dev) < uint32(len(b.buf)) {
		b.wave.fill(b.buf)
		if err := sdl.QueueAudio(b.dev, b.buf); err != nil {
			return errors.Wrapf(err, "sdl.QueueAudio failed")
		}
	}
	if !b.active {
		sdl.PauseAudioDevice(b.dev, false)
		b.active = true
	}
	return nil
}

func (b *beeper) close() {
	sdl.CloseAudioDevice(b.dev)
}
