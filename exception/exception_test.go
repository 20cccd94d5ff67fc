package exception

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSafeGoRecovers(t *testing.T) {
	done := make(chan struct{})
	SafeGo("test", func() {
		defer close(done)
		panic("boom")
	})
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("goroutine did not finish")
	}
}

func TestRecoverWithoutPanic(t *testing.T) {
	ran := false
	func() {
		defer Recover("noop")
		ran = true
	}()
	assert.True(t, ran)
}
