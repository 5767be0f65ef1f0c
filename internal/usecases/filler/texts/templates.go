package texts

import (
	"fmt"
	"strings"

	"github.com/Flagro/FillerWordsDetector/internal/domain"
)

// Сколько строк разбивки показываем на каждое окно
const breakdownLimit = 5

const StartMessage = `*Filler words bot is now active!* 👀

I will watch this chat for filler words and keep score.

Commands:
/stats — your filler word statistics
/reset — reset your statistics in this chat
/group\_reset — reset statistics for the whole chat
/stop — stop watching this chat`

const StopMessage = "Okay, I'll stop watching this chat. Send /start to resume."

const NoStatsMessage = "You have a clean record — no filler words so far. Keep it up! ✨"

const BotNotActiveMessage = "I'm not watching this chat yet. An admin can send /start to activate me."

const UnauthorizedAdminMessage = "Sorry, only an admin can use this command."

const UnauthorizedUserMessage = "Sorry, you are not allowed to use this bot."

const StatsErrorMessage = "Couldn't fetch your statistics right now, please try again later."

const ResetSuccessMessage = "Your filler word statistics in this chat have been reset."

const ResetErrorMessage = "Couldn't reset your statistics, please try again later."

const GroupResetSuccessMessage = "Filler word statistics for the whole chat have been reset."

const GroupResetErrorMessage = "Couldn't reset the chat statistics, please try again later."

// FormatStats собирает ответ на /stats из трёх окон
func FormatStats(daily, monthly, allTime *domain.Stats) string {
	if daily.Total == 0 && monthly.Total == 0 && allTime.Total == 0 {
		return NoStatsMessage
	}

	var b strings.Builder
	b.WriteString("*Your filler word statistics* 📊\n")

	writeWindow(&b, "📅 Today", daily)
	writeWindow(&b, "🗓 Last 30 days", monthly)
	writeWindow(&b, "🏆 All time", allTime)

	return strings.TrimRight(b.String(), "\n")
}

func writeWindow(b *strings.Builder, title string, stats *domain.Stats) {
	fmt.Fprintf(b, "\n%s: *%d*\n", title, stats.Total)

	limit := len(stats.Breakdown)
	if limit > breakdownLimit {
		limit = breakdownLimit
	}
	for _, wc := range stats.Breakdown[:limit] {
		fmt.Fprintf(b, "  • %s: %d\n", wc.Word, wc.Count)
	}
}

// FormatDetected уведомление о пойманных словах-паразитах.
// words - уникальные слова в порядке первого появления в сообщении.
func FormatDetected(words []string, total int) string {
	plural := "s"
	if total == 1 {
		plural = ""
	}
	return fmt.Sprintf("Filler word%s detected: %s 🚨\nCheck your /stats",
		plural, strings.Join(words, ", "))
}
