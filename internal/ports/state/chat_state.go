package state

// IChatState хранит флаг "бот активен" по чатам. Состояние живёт только в памяти
// процесса и теряется при рестарте - персистентность здесь не нужна.
type IChatState interface {
	IsActive(chatID int64) bool
	SetActive(chatID int64, active bool)
}
