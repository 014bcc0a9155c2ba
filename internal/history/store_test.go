package history

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"BtcTracker/internal/model"
)

func obs(i int) model.Observation {
	return model.Observation{
		Timestamp: fmt.Sprintf("2025-01-%02d 09:00:00", i),
		USD:       float64(90000 + i),
		KRW:       float64(130000000 + i),
	}
}

func TestAppend_LengthLaw(t *testing.T) {
	s := NewStore("", 10)
	h := History{}
	for i := 1; i <= 25; i++ {
		h = s.Append(h, obs(i))
		want := i
		if want > 10 {
			want = 10
		}
		if len(h) != want {
			t.Fatalf("after %d appends: expected length %d, got %d", i, want, len(h))
		}
	}
}

func TestAppend_KeepsMostRecentInOrder(t *testing.T) {
	s := NewStore("", 10)
	h := History{}
	for i := 1; i <= 15; i++ {
		h = s.Append(h, obs(i))
	}
	for i, o := range h {
		if want := obs(i + 6); o != want {
			t.Errorf("index %d: expected %+v, got %+v", i, want, o)
		}
	}
	if h[len(h)-1] != obs(15) {
		t.Errorf("expected newest observation last, got %+v", h[len(h)-1])
	}
}

func TestAppend_DoesNotMutateInput(t *testing.T) {
	s := NewStore("", 10)
	in := History{obs(1), obs(2)}
	snapshot := History{obs(1), obs(2)}

	out := s.Append(in, obs(3))
	if !reflect.DeepEqual(in, snapshot) {
		t.Errorf("input history mutated: %+v", in)
	}
	if len(out) != 3 {
		t.Errorf("expected length 3, got %d", len(out))
	}
}

func TestLoad_MissingFile(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "history.txt"), 10)
	if h := s.Load(); len(h) != 0 {
		t.Errorf("expected empty history for missing file, got %d entries", len(h))
	}
}

func TestLoad_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.txt")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	s := NewStore(path, 10)
	if h := s.Load(); len(h) != 0 {
		t.Errorf("expected empty history for corrupt file, got %d entries", len(h))
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "history.txt"), 10)
	saved := History{obs(1), obs(2), obs(3)}
	if err := s.Save(saved); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded := s.Load()
	if !reflect.DeepEqual(loaded, saved) {
		t.Errorf("round trip mismatch:\nsaved  %+v\nloaded %+v", saved, loaded)
	}

	// Repeated save/load must not mutate the records.
	if err := s.Save(loaded); err != nil {
		t.Fatalf("second save: %v", err)
	}
	if again := s.Load(); !reflect.DeepEqual(again, saved) {
		t.Errorf("second round trip mismatch: %+v", again)
	}
}

func TestSaveAppendLoad_Guarantee(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "history.txt"), 10)

	seed := History{}
	for i := 1; i <= 10; i++ {
		seed = s.Append(seed, obs(i))
	}
	if err := s.Save(seed); err != nil {
		t.Fatalf("seed save: %v", err)
	}

	h := s.Append(s.Load(), obs(11))
	if err := s.Save(h); err != nil {
		t.Fatalf("save: %v", err)
	}

	got := s.Load()
	if len(got) != 10 {
		t.Fatalf("expected 10 retained entries, got %d", len(got))
	}
	if got[0] != obs(2) {
		t.Errorf("expected oldest entry dropped, first is %+v", got[0])
	}
	if got[len(got)-1] != obs(11) {
		t.Errorf("expected new observation last, got %+v", got[len(got)-1])
	}
}

func TestSave_UnwritablePath(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "missing", "history.txt"), 10)
	if err := s.Save(History{obs(1)}); err == nil {
		t.Fatal("expected error writing to nonexistent directory")
	}
}

func TestSeriesAccessors(t *testing.T) {
	h := History{obs(1), obs(2)}
	if ts := h.Timestamps(); ts[0] != "2025-01-01 09:00:00" || ts[1] != "2025-01-02 09:00:00" {
		t.Errorf("unexpected timestamps: %v", ts)
	}
	if usd := h.USDValues(); usd[0] != 90001 || usd[1] != 90002 {
		t.Errorf("unexpected USD series: %v", usd)
	}
	if krw := h.KRWValues(); krw[0] != 130000001 || krw[1] != 130000002 {
		t.Errorf("unexpected KRW series: %v", krw)
	}
}
