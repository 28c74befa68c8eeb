package detector

import (
	"sync"
	"testing"
)

func TestResultStore_Empty(t *testing.T) {
	s := NewResultStore()

	if _, ok := s.Current(); ok {
		t.Error("fresh store should report no result")
	}
	if got := s.HandCount(); got != 0 {
		t.Errorf("HandCount() = %d, want 0", got)
	}
}

func TestResultStore_Publish(t *testing.T) {
	t.Run("first publish is adopted", func(t *testing.T) {
		s := NewResultStore()

		if !s.Publish(Result{TimestampMs: 100}) {
			t.Fatal("first publish should be adopted")
		}

		r, ok := s.Current()
		if !ok {
			t.Fatal("store should report a result after publish")
		}
		if r.TimestampMs != 100 {
			t.Errorf("TimestampMs = %d, want 100", r.TimestampMs)
		}
	})

	t.Run("newer timestamp replaces", func(t *testing.T) {
		s := NewResultStore()
		s.Publish(Result{TimestampMs: 100})

		if !s.Publish(Result{TimestampMs: 150, Hands: []Hand{OpenPalmHand()}}) {
			t.Fatal("newer result should be adopted")
		}

		r, _ := s.Current()
		if r.TimestampMs != 150 || len(r.Hands) != 1 {
			t.Errorf("got ts=%d hands=%d, want ts=150 hands=1", r.TimestampMs, len(r.Hands))
		}
	})

	t.Run("stale timestamp is discarded", func(t *testing.T) {
		s := NewResultStore()
		s.Publish(Result{TimestampMs: 200})

		if s.Publish(Result{TimestampMs: 100}) {
			t.Error("stale result should be discarded")
		}

		r, _ := s.Current()
		if r.TimestampMs != 200 {
			t.Errorf("TimestampMs = %d, want 200", r.TimestampMs)
		}
	})

	t.Run("equal timestamp is discarded", func(t *testing.T) {
		s := NewResultStore()
		s.Publish(Result{TimestampMs: 100})

		if s.Publish(Result{TimestampMs: 100, Hands: []Hand{OpenPalmHand()}}) {
			t.Error("duplicate timestamp should be discarded")
		}
		if got := s.HandCount(); got != 0 {
			t.Errorf("HandCount() = %d, want 0 (original result retained)", got)
		}
	})
}

// A submission at t=100 completes with one hand, then the earlier submission
// at t=90 completes late with two hands. The store must still show the t=100
// result.
func TestResultStore_OutOfOrderCompletion(t *testing.T) {
	s := NewResultStore()

	s.Publish(Result{TimestampMs: 100, Hands: []Hand{OpenPalmHand()}})
	s.Publish(Result{TimestampMs: 90, Hands: []Hand{OpenPalmHand(), OpenPalmHand()}})

	r, ok := s.Current()
	if !ok {
		t.Fatal("store should hold a result")
	}
	if r.TimestampMs != 100 {
		t.Errorf("TimestampMs = %d, want 100", r.TimestampMs)
	}
	if len(r.Hands) != 1 {
		t.Errorf("len(Hands) = %d, want 1", len(r.Hands))
	}
}

func TestResultStore_ConcurrentPublishAndRead(t *testing.T) {
	s := NewResultStore()

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for ts := int64(1); ts <= 1000; ts++ {
			s.Publish(Result{TimestampMs: ts, Hands: []Hand{OpenPalmHand()}})
		}
	}()

	go func() {
		defer wg.Done()
		var last int64
		for i := 0; i < 1000; i++ {
			r, ok := s.Current()
			if !ok {
				continue
			}
			if r.TimestampMs < last {
				t.Errorf("timestamp went backwards: %d after %d", r.TimestampMs, last)
				return
			}
			if len(r.Hands) != 1 {
				t.Errorf("torn read: %d hands", len(r.Hands))
				return
			}
			last = r.TimestampMs
		}
	}()

	wg.Wait()
}
