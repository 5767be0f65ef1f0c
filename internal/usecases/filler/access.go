package filler

import "strings"

// normalizeHandles приводит хэндлы к нижнему регистру и убирает ведущий @,
// пустые записи отбрасываются
func normalizeHandles(handles []string) []string {
	normalized := make([]string, 0, len(handles))
	for _, handle := range handles {
		handle = strings.ToLower(strings.TrimSpace(handle))
		handle = strings.TrimPrefix(handle, "@")
		if handle == "" {
			continue
		}
		normalized = append(normalized, handle)
	}
	return normalized
}

// isAllowed проверяет, есть ли username в списке разрешённых.
// Пустой список означает "разрешено всем".
func (s *Service) isAllowed(username string) bool {
	return matchesHandle(s.allowedHandles, username)
}

// isAdmin проверяет, есть ли username в списке администраторов.
// Пустой список означает "администраторы все".
func (s *Service) isAdmin(username string) bool {
	return matchesHandle(s.adminHandles, username)
}

func matchesHandle(handles []string, username string) bool {
	if len(handles) == 0 {
		return true
	}

	// Пользователь без username никогда не проходит непустой список
	username = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(username), "@"))
	if username == "" {
		return false
	}

	for _, handle := range handles {
		if handle == username {
			return true
		}
	}
	return false
}
