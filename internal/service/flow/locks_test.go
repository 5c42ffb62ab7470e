package flow

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSessionLocks_SerializesSameKey(t *testing.T) {
	locks := newSessionLocks()

	unlock := locks.lock("s1")
	acquired := make(chan struct{})
	go func() {
		u := locks.lock("s1")
		close(acquired)
		u()
	}()

	select {
	case <-acquired:
		t.Fatal("second lock acquired while first is held")
	case <-time.After(50 * time.Millisecond):
	}

	unlock()
	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("second lock was not acquired after unlock")
	}
}

func TestSessionLocks_IndependentKeys(t *testing.T) {
	locks := newSessionLocks()

	unlock := locks.lock("s1")
	defer unlock()

	done := make(chan struct{})
	go func() {
		locks.lock("s2")()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock on another session blocked")
	}
}

func TestSessionLocks_ReleasesEntries(t *testing.T) {
	locks := newSessionLocks()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			locks.lock("s1")()
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, locks.size())
}
