package input

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlotInitialValue(t *testing.T) {
	s := NewSlot(KeyW)
	assert.Equal(t, KeyW, s.Load())
}

func TestSlotLastWriteWins(t *testing.T) {
	s := NewSlot(KeyNone)
	s.Store(KeyA)
	s.Store(KeyD)
	assert.Equal(t, KeyD, s.Load(), "only the last stored code is observable")
}

func TestSlotConcurrentAccess(t *testing.T) {
	s := NewSlot(KeyW)
	valid := map[Code]bool{KeyW: true, KeyA: true, KeyS: true, KeyD: true}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		codes := []Code{KeyA, KeyS, KeyD}
		for i := 0; i < 10000; i++ {
			s.Store(codes[i%len(codes)])
		}
	}()

	for i := 0; i < 10000; i++ {
		if c := s.Load(); !valid[c] {
			t.Fatalf("torn read: %v", c)
		}
	}
	wg.Wait()
}

func TestCodeFromRune(t *testing.T) {
	tests := []struct {
		r    rune
		want Code
		ok   bool
	}{
		{'w', KeyW, true},
		{'W', KeyW, true},
		{'q', KeyQ, true},
		{'1', KeyNone, false},
		{' ', KeyNone, false},
	}
	for _, tt := range tests {
		got, ok := CodeFromRune(tt.r)
		assert.Equal(t, tt.ok, ok, "rune %q", tt.r)
		assert.Equal(t, tt.want, got, "rune %q", tt.r)
	}
}

func TestCodeString(t *testing.T) {
	assert.Equal(t, "W", KeyW.String())
	assert.Equal(t, "up", KeyUp.String())
	assert.Equal(t, "esc", KeyEscape.String())
	assert.Equal(t, "?", Code(500).String())
}
