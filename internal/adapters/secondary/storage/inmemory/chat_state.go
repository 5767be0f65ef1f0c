package inmemory

import "sync"

// ChatState потокобезопасное in-memory хранилище флага активности бота по чатам.
// Живёт всё время жизни процесса, при рестарте состояние теряется.
// Update-ы могут обрабатываться параллельно, поэтому map защищён мьютексом.
type ChatState struct {
	mu     sync.RWMutex
	active map[int64]bool
}

func NewChatState() *ChatState {
	return &ChatState{
		active: make(map[int64]bool),
	}
}

// IsActive возвращает, активен ли бот в чате. Для неизвестного чата - false.
func (s *ChatState) IsActive(chatID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active[chatID]
}

// SetActive устанавливает флаг активности для чата
func (s *ChatState) SetActive(chatID int64, active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active[chatID] = active
}
