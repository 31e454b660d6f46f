package audio

import (
	"math"
	"sync"

	"github.com/gordonklaus/portaudio"

	"github.com/san-kum/sonograph/internal/graph"
)

const (
	SampleRate = 44100
	BufferSize = 1024

	maxVoices = 12
)

// A minor pentatonic spread over two octaves; node ids hash into it so a
// node keeps its pitch across frames.
var scale = []float64{110.00, 130.81, 146.83, 164.81, 196.00, 220.00, 261.63, 293.66}

type voice struct {
	freq float64

	// targets set from the frame snapshot, smoothed per sample
	targetPan  float64
	targetGain float64
	pan        float64
	gain       float64

	phase float64
	alive bool
}

// Engine sonifies the layout: each node owns a triangle-wave voice,
// panned by its projected x position and attenuated by its distance to
// the origin. The simulation's alpha opens and closes a low-pass filter
// so the sound settles as the layout does.
type Engine struct {
	Stream *portaudio.Stream
	Active bool

	Volume float64

	mu     sync.Mutex
	voices map[string]*voice
	alpha  float64

	filterState [2]float64
	cutoff      float64
	time        float64
}

func NewEngine(volume float64) *Engine {
	if volume <= 0 {
		volume = 0.25
	}
	return &Engine{
		Volume: volume,
		voices: make(map[string]*voice),
		cutoff: 400,
	}
}

func (e *Engine) Start() error {
	if err := portaudio.Initialize(); err != nil {
		return err
	}
	// Output only; duplex streams are unreliable on Linux when the
	// default input and output devices differ.
	stream, err := portaudio.OpenDefaultStream(0, 2, SampleRate, BufferSize, e.process)
	if err != nil {
		portaudio.Terminate()
		return err
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return err
	}
	e.Stream = stream
	e.Active = true
	return nil
}

func (e *Engine) Stop() {
	if e.Stream != nil {
		e.Stream.Stop()
		e.Stream.Close()
	}
	portaudio.Terminate()
	e.Active = false
}

func hashID(id string) int {
	h := 0
	for _, r := range id {
		h = h*31 + int(r)
	}
	if h < 0 {
		h = -h
	}
	return h
}

// Frame snapshots node positions for the audio callback. Satisfies the
// live view's observer hook.
func (e *Engine) Frame(nodes []*graph.Node, selected string, alpha float64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.alpha = alpha
	for _, v := range e.voices {
		v.alive = false
	}

	count := 0
	for _, n := range nodes {
		if count >= maxVoices {
			break
		}
		count++

		v, ok := e.voices[n.ID]
		if !ok {
			f := scale[hashID(n.ID)%len(scale)]
			if n.Role == graph.RoleCentral {
				f = scale[0] / 2 // central node drones an octave down
			}
			v = &voice{freq: f}
			e.voices[n.ID] = v
		}
		v.alive = true

		v.targetPan = math.Max(-1, math.Min(1, n.X/20))
		dist := math.Sqrt(n.X*n.X + n.Y*n.Y + n.Z*n.Z)
		v.targetGain = 1.0 / (1.0 + dist/15.0)
		if n.ID == selected {
			v.targetGain = math.Min(1, v.targetGain*1.5)
		}
	}

	for id, v := range e.voices {
		if !v.alive {
			v.targetGain = 0
			if v.gain < 1e-4 {
				delete(e.voices, id)
			}
		}
	}
}

func triangle(phase float64) float64 {
	p := phase - math.Floor(phase)
	return 4.0*math.Abs(p-0.5) - 1.0
}

func lpf(sample, cutoff, dt, state float64) (float64, float64) {
	rc := 1.0 / (2.0 * math.Pi * cutoff)
	a := dt / (rc + dt)
	out := state + a*(sample-state)
	return out, out
}

func (e *Engine) process(out [][]float32) {
	e.mu.Lock()
	alpha := e.alpha
	voices := make([]*voice, 0, len(e.voices))
	for _, v := range e.voices {
		voices = append(voices, v)
	}
	e.mu.Unlock()

	// Restless layouts sound bright; frozen ones mellow out.
	targetCutoff := 350.0 + 1200.0*math.Min(alpha, 1)
	dt := 1.0 / float64(SampleRate)

	for i := 0; i < len(out[0]); i++ {
		e.cutoff += (targetCutoff - e.cutoff) * 0.0005

		sampleL, sampleR := 0.0, 0.0
		for _, v := range voices {
			v.pan += (v.targetPan - v.pan) * 0.001
			v.gain += (v.targetGain - v.gain) * 0.001

			osc := triangle(v.phase)
			v.phase += v.freq * dt

			lfo := 0.85 + 0.15*math.Sin(e.time*0.3+v.freq)
			g := v.gain * lfo / maxVoices
			sampleL += osc * g * (1 - v.pan) * 0.5
			sampleR += osc * g * (1 + v.pan) * 0.5
		}

		var outL, outR float64
		outL, e.filterState[0] = lpf(sampleL, e.cutoff, dt, e.filterState[0])
		outR, e.filterState[1] = lpf(sampleR, e.cutoff, dt, e.filterState[1])

		out[0][i] = float32(outL * e.Volume)
		out[1][i] = float32(outR * e.Volume)

		e.time += dt
	}
}
