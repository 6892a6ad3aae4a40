package storage

import (
	"testing"
)

func TestBestKeeperRoundTrip(t *testing.T) {
	store := openTestStore(t)
	k := NewBestKeeper(store, "flappy", nil)

	best, err := k.LoadBest()
	if err != nil || best != 0 {
		t.Fatalf("LoadBest() on empty store = %d, %v", best, err)
	}

	for _, s := range []int{1, 2, 7} {
		if err := k.SaveBest(s); err != nil {
			t.Fatalf("SaveBest(%d) failed: %v", s, err)
		}
	}
	if err := k.SaveBest(3); err != nil {
		t.Fatalf("SaveBest(3) failed: %v", err)
	}

	best, err = k.LoadBest()
	if err != nil || best != 7 {
		t.Errorf("LoadBest() = %d, %v; want 7", best, err)
	}
}

func TestBestKeeperFallsBackToHistory(t *testing.T) {
	store := openTestStore(t)
	saveScore(store, "flappy", 14)

	best, err := NewBestKeeper(store, "flappy", nil).LoadBest()
	if err != nil || best != 14 {
		t.Errorf("LoadBest() = %d, %v; want 14 from run history", best, err)
	}
}

func TestBestKeeperClosedStore(t *testing.T) {
	store := openTestStore(t)
	k := NewBestKeeper(store, "flappy", nil)
	store.Close()

	if _, err := k.LoadBest(); err == nil {
		t.Error("expected an error from a closed store")
	}
	if err := k.SaveBest(5); err == nil {
		t.Error("expected an error from a closed store")
	}
}

func TestBestKeeperWithoutStore(t *testing.T) {
	k := NewBestKeeper(nil, "flappy", nil)

	if best, err := k.LoadBest(); err != nil || best != 0 {
		t.Errorf("LoadBest() = %d, %v", best, err)
	}
	if err := k.SaveBest(5); err != nil {
		t.Errorf("SaveBest() = %v", err)
	}
}
