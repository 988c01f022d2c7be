package diagnostics

import (
	"math"
	"testing"
	"time"
)

func TestFPSUnavailable(t *testing.T) {
	s := New(4)
	if _, ok := s.FPS(); ok {
		t.Fatal("empty store reported fps")
	}
	s.Record(10 * time.Millisecond)
	s.SetEnabled(false)
	if _, ok := s.FPS(); ok {
		t.Fatal("disabled store reported fps")
	}
	s.Record(10 * time.Millisecond)
	s.SetEnabled(true)
	if _, ok := s.FPS(); ok {
		t.Fatal("frames recorded while disabled were kept")
	}
}

func TestFPSAverage(t *testing.T) {
	s := New(4)
	s.Record(10 * time.Millisecond)
	s.Record(30 * time.Millisecond)
	fps, ok := s.FPS()
	if !ok {
		t.Fatal("no fps")
	}
	if math.Abs(float64(fps)-50) > 0.01 {
		t.Errorf("fps = %v, want 50", fps)
	}
}

func TestFPSWindowSlides(t *testing.T) {
	s := New(2)
	s.Record(100 * time.Millisecond)
	s.Record(20 * time.Millisecond)
	s.Record(20 * time.Millisecond)
	fps, _ := s.FPS()
	if math.Abs(float64(fps)-50) > 0.01 {
		t.Errorf("fps = %v, want 50 once the slow frame left the window", fps)
	}
}

func TestRecordIgnoresNonPositive(t *testing.T) {
	s := New(0)
	s.Record(0)
	s.Record(-time.Second)
	if _, ok := s.FPS(); ok {
		t.Fatal("non-positive frame times recorded")
	}
}
