package ai

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnableDebugLogging(t *testing.T) {
	t.Cleanup(func() { EnableDebugLogging(false) })

	tests := []struct {
		name     string
		enabled  bool
		expected bool
	}{
		{"enable", true, true},
		{"disable", false, false},
		{"enable again", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			EnableDebugLogging(tt.enabled)
			assert.Equal(t, tt.expected, IsDebugEnabled())
		})
	}
}

func TestIsDebugEnabled_Concurrent(t *testing.T) {
	t.Cleanup(func() { EnableDebugLogging(false) })

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 500 {
				if i%10 == 0 {
					EnableDebugLogging(true)
				}
				_ = IsDebugEnabled()
			}
		}()
	}
	wg.Wait()
}
