package telegramController

import (
	"net/http"

	"log/slog"

	"github.com/Flagro/FillerWordsDetector/internal/domain"
	tgService "github.com/Flagro/FillerWordsDetector/internal/services/telegram"
	"github.com/gin-gonic/gin"
)

const secretTokenHeader = "X-Telegram-Bot-Api-Secret-Token"

type WebhookController struct {
	service *tgService.Service
	secret  string
	log     *slog.Logger
}

func New(service *tgService.Service, secret string, log *slog.Logger) *WebhookController {
	return &WebhookController{
		service: service,
		secret:  secret,
		log:     log,
	}
}

func (c *WebhookController) RegisterRoutes(r *gin.Engine) {
	r.POST("/webhook", c.handleWebhook)
}

// handleWebhook принимает обновления от Telegram
func (c *WebhookController) handleWebhook(ctx *gin.Context) {
	// Проверяем секретный токен (если настроен)
	if c.secret != "" {
		if ctx.GetHeader(secretTokenHeader) != c.secret {
			c.log.Warn("webhook request with invalid secret token",
				"client_ip", ctx.ClientIP(),
			)
			ctx.AbortWithStatus(http.StatusForbidden)
			return
		}
	}

	var update domain.Update
	if err := ctx.ShouldBindJSON(&update); err != nil {
		c.log.Error("failed to parse webhook update",
			"error", err,
		)
		// Отвечаем 200, иначе Telegram будет ретраить некорректное обновление
		ctx.Status(http.StatusOK)
		return
	}

	if err := c.service.HandleUpdate(ctx.Request.Context(), &update); err != nil {
		c.log.Error("failed to handle webhook update",
			"error", err,
			"update_id", update.UpdateID,
		)
	}

	ctx.Status(http.StatusOK)
}
