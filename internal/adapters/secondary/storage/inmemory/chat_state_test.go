package inmemory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChatState_DefaultInactive(t *testing.T) {
	state := NewChatState()

	assert.False(t, state.IsActive(100))
}

func TestChatState_SetAndToggle(t *testing.T) {
	state := NewChatState()

	state.SetActive(100, true)
	assert.True(t, state.IsActive(100))
	assert.False(t, state.IsActive(200))

	state.SetActive(100, false)
	assert.False(t, state.IsActive(100))
}

func TestChatState_ConcurrentAccess(t *testing.T) {
	state := NewChatState()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		chatID := int64(i % 5)
		go func() {
			defer wg.Done()
			state.SetActive(chatID, true)
		}()
		go func() {
			defer wg.Done()
			state.IsActive(chatID)
		}()
	}
	wg.Wait()

	for chatID := int64(0); chatID < 5; chatID++ {
		assert.True(t, state.IsActive(chatID))
	}
}
