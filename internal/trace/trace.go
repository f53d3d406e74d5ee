// internal/trace/trace.go
package trace

import (
	"errors"
	"fmt"
	"go-tower-defense-3d/internal/app"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// TargetState — состояние цели в кадре трассы
type TargetState struct {
	ID       uint64     `msgpack:"id"`
	Position [3]float64 `msgpack:"pos"`
	Health   int        `msgpack:"hp"`
}

// Frame — один тик симуляции в трассе
type Frame struct {
	Tick      uint64        `msgpack:"tick"`
	Time      float64       `msgpack:"time"`
	Hits      int           `msgpack:"hits"`
	Destroyed int           `msgpack:"destroyed"`
	Fired     int           `msgpack:"fired"`
	Expired   int           `msgpack:"expired"`
	Spawned   int           `msgpack:"spawned"`
	Bullets   int           `msgpack:"bullets"`
	Targets   []TargetState `msgpack:"targets"`
}

// Recorder пишет кадры в поток msgpack подряд, без заголовка.
// Трасса нужна для анализа прогона, восстановить из неё симуляцию нельзя.
type Recorder struct {
	enc    *msgpack.Encoder
	frames int
}

func NewRecorder(w io.Writer) *Recorder {
	return &Recorder{enc: msgpack.NewEncoder(w)}
}

// Record записывает снимок симуляции после тика.
func (r *Recorder) Record(sim *app.Simulation, stats app.TickStats) error {
	targets := sim.Targets()
	frame := Frame{
		Tick:      sim.Ticks(),
		Time:      sim.Time(),
		Hits:      stats.Hits,
		Destroyed: stats.Destroyed,
		Fired:     stats.Fired,
		Expired:   stats.Expired,
		Spawned:   stats.Spawned,
		Bullets:   len(sim.Bullets()),
		Targets:   make([]TargetState, 0, len(targets)),
	}
	for _, t := range targets {
		frame.Targets = append(frame.Targets, TargetState{
			ID:       uint64(t.ID),
			Position: [3]float64{t.Position.X, t.Position.Y, t.Position.Z},
			Health:   t.Health,
		})
	}
	if err := r.enc.Encode(&frame); err != nil {
		return fmt.Errorf("failed to encode frame %d: %w", frame.Tick, err)
	}
	r.frames++
	return nil
}

// Frames — сколько кадров записано
func (r *Recorder) Frames() int {
	return r.frames
}

// ReadFrames декодирует все кадры до конца потока.
func ReadFrames(rd io.Reader) ([]Frame, error) {
	dec := msgpack.NewDecoder(rd)
	var frames []Frame
	for {
		var f Frame
		if err := dec.Decode(&f); err != nil {
			if errors.Is(err, io.EOF) {
				return frames, nil
			}
			return frames, fmt.Errorf("failed to decode frame %d: %w", len(frames)+1, err)
		}
		frames = append(frames, f)
	}
}
