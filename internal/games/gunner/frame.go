package gunner

import (
	"errors"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/gunner/internal/core"
)

// FrameEntity is one entity's world-space outline.
type FrameEntity struct {
	Kind     Kind        `msgpack:"kind"`
	Vertices []core.Vec2 `msgpack:"vertices"`
}

// Frame is a read-only snapshot of the scene, suitable for replay files.
type Frame struct {
	Tick     int           `msgpack:"tick"`
	Score    int           `msgpack:"score"`
	Over     bool          `msgpack:"over"`
	Message  string        `msgpack:"message,omitempty"`
	Entities []FrameEntity `msgpack:"entities"`
}

// Frame captures the current scene. The ship comes first.
func (s *Scene) Frame() Frame {
	f := Frame{
		Tick:     s.ticks,
		Score:    s.score,
		Over:     s.over,
		Entities: make([]FrameEntity, 0, len(s.entities)+1),
	}
	if s.over {
		f.Message = s.GameOverText()
	}

	f.Entities = append(f.Entities, FrameEntity{Kind: KindShip, Vertices: s.ship.WorldVertices()})
	for i := range s.entities {
		e := &s.entities[i]
		f.Entities = append(f.Entities, FrameEntity{Kind: e.Kind, Vertices: e.WorldVertices()})
	}
	return f
}

// EncodeFrame serializes a frame with msgpack.
func EncodeFrame(f Frame) ([]byte, error) {
	b, err := msgpack.Marshal(&f)
	if err != nil {
		return nil, fmt.Errorf("encode frame %d: %w", f.Tick, err)
	}
	return b, nil
}

// DecodeFrame parses a frame produced by EncodeFrame.
func DecodeFrame(b []byte) (Frame, error) {
	var f Frame
	if err := msgpack.Unmarshal(b, &f); err != nil {
		return Frame{}, fmt.Errorf("decode frame: %w", err)
	}
	return f, nil
}

// FrameWriter streams frames back to back onto an io.Writer.
type FrameWriter struct {
	enc   *msgpack.Encoder
	count int
}

// NewFrameWriter creates a writer over w.
func NewFrameWriter(w io.Writer) *FrameWriter {
	return &FrameWriter{enc: msgpack.NewEncoder(w)}
}

// Write appends one frame to the stream.
func (w *FrameWriter) Write(f Frame) error {
	if err := w.enc.Encode(&f); err != nil {
		return fmt.Errorf("write frame %d: %w", f.Tick, err)
	}
	w.count++
	return nil
}

// Count returns how many frames have been written.
func (w *FrameWriter) Count() int {
	return w.count
}

// FrameReader reads frames written by FrameWriter.
type FrameReader struct {
	dec *msgpack.Decoder
}

// NewFrameReader creates a reader over r.
func NewFrameReader(r io.Reader) *FrameReader {
	return &FrameReader{dec: msgpack.NewDecoder(r)}
}

// Next returns the next frame, or io.EOF once the stream is exhausted.
func (r *FrameReader) Next() (Frame, error) {
	var f Frame
	if err := r.dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return Frame{}, io.EOF
		}
		return Frame{}, fmt.Errorf("read frame: %w", err)
	}
	return f, nil
}
