package gunner

import (
	"bytes"
	"errors"
	"io"
	"reflect"
	"testing"

	"github.com/vovakirdan/gunner/internal/core"
)

func TestSceneFrame(t *testing.T) {
	s := newTestScene(quietConfig())
	s.Spawn(square(KindAsteroid, 0.1, core.V(0.2, 0.4)))
	s.FireAt(0, 0)

	f := s.Frame()
	if len(f.Entities) != 3 {
		t.Fatalf("frame entities = %d, expected 3", len(f.Entities))
	}
	if f.Entities[0].Kind != KindShip || len(f.Entities[0].Vertices) != 3 {
		t.Errorf("first frame entity should be the ship triangle, got %+v", f.Entities[0])
	}
	if f.Entities[1].Kind != KindAsteroid || f.Entities[2].Kind != KindProjectile {
		t.Errorf("frame order = %v, %v", f.Entities[1].Kind, f.Entities[2].Kind)
	}
	if f.Over || f.Message != "" {
		t.Errorf("running scene frame has over=%v message=%q", f.Over, f.Message)
	}

	// Snapshots do not alias scene geometry
	f.Entities[1].Vertices[0] = core.V(9, 9)
	if s.Entities()[0].WorldVertices()[0] == core.V(9, 9) {
		t.Error("frame vertices alias the scene")
	}
}

func TestFrameGameOverMessage(t *testing.T) {
	s := newTestScene(quietConfig())
	s.Spawn(square(KindAsteroid, 0.1, core.V(0, -0.9)))
	s.Tick(frameDT)

	f := s.Frame()
	if !f.Over || f.Message != "GAME OVER - score: 0" {
		t.Errorf("frame over=%v message=%q", f.Over, f.Message)
	}
}

func TestEncodeDecodeFrame(t *testing.T) {
	s := newTestScene(quietConfig())
	s.Spawn(square(KindFragment, 0.05, core.V(-0.3, 0.1)))
	s.FireAt(0.5, 0)
	s.Tick(frameDT)
	want := s.Frame()

	b, err := EncodeFrame(want)
	if err != nil {
		t.Fatalf("EncodeFrame() failed: %v", err)
	}
	got, err := DecodeFrame(b)
	if err != nil {
		t.Fatalf("DecodeFrame() failed: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip mismatch:\n got: %+v\nwant: %+v", got, want)
	}

	if _, err := DecodeFrame([]byte{0xc1}); err == nil {
		t.Error("expected error decoding garbage")
	}
}

func TestFrameStream(t *testing.T) {
	s := newTestScene(quietConfig())
	var buf bytes.Buffer
	w := NewFrameWriter(&buf)

	var written []Frame
	for i := 0; i < 3; i++ {
		s.FireAt(0, 0)
		s.Tick(frameDT)
		f := s.Frame()
		if err := w.Write(f); err != nil {
			t.Fatalf("Write() failed: %v", err)
		}
		written = append(written, f)
	}
	if w.Count() != 3 {
		t.Errorf("Count() = %d, expected 3", w.Count())
	}

	r := NewFrameReader(&buf)
	for i, want := range written {
		got, err := r.Next()
		if err != nil {
			t.Fatalf("Next() frame %d failed: %v", i, err)
		}
		if got.Tick != want.Tick || len(got.Entities) != len(want.Entities) {
			t.Errorf("frame %d = tick %d with %d entities, expected tick %d with %d",
				i, got.Tick, len(got.Entities), want.Tick, len(want.Entities))
		}
	}
	if _, err := r.Next(); !errors.Is(err, io.EOF) {
		t.Errorf("Next() after last frame = %v, expected io.EOF", err)
	}
}
