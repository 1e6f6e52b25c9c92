package service

import (
	"sync"
	"testing"
)

func TestUserLocks_SerializesSameKey(t *testing.T) {
	var locks userLocks
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.lock("u1")
			defer unlock()
			counter++
		}()
	}
	wg.Wait()

	if counter != 100 {
		t.Errorf("Expected 100 serialized increments, got %d", counter)
	}
}

func TestUserLocks_ReleasesEntries(t *testing.T) {
	var locks userLocks
	unlock := locks.lock("u1")
	unlock()

	locks.mu.Lock()
	defer locks.mu.Unlock()
	if len(locks.locks) != 0 {
		t.Errorf("Expected lock table to be empty after release, got %d entries", len(locks.locks))
	}
}
