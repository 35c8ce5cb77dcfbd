package handlers

import (
	"net/http"
	"strings"

	"member-qa/qa"
	"member-qa/utils"
	"member-qa/web/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const answerLogPreviewLen = 100

// QAHandler serves the question-answering API. A nil engine means startup
// initialization failed; every data endpoint then reports 503.
type QAHandler struct {
	engine *qa.Engine
	logger *zap.Logger
}

type AskRequest struct {
	Question string `json:"question"`
}

func NewQAHandler(engine *qa.Engine, logger *zap.Logger) *QAHandler {
	return &QAHandler{
		engine: engine,
		logger: logger,
	}
}

// Home reports service metadata.
func (h *QAHandler) Home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "running",
		"service": "Question-Answering API",
		"version": "1.0.0",
		"endpoints": gin.H{
			"/ask":    "POST - Submit a question",
			"/health": "GET - Health check",
			"/stats":  "GET - System statistics",
		},
	})
}

// Health reports whether the engine initialized and how much data it holds.
func (h *QAHandler) Health(c *gin.Context) {
	if h.engine == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"reason": "QA engine not initialized",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":          "healthy",
		"messages_loaded": h.engine.MessageCount(),
		"users_loaded":    h.engine.UserCount(),
	})
}

// Stats returns a fresh snapshot of the corpus and generator configuration.
func (h *QAHandler) Stats(c *gin.Context) {
	if h.engine == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "QA engine not initialized"})
		return
	}

	c.JSON(http.StatusOK, h.engine.Stats())
}

// Ask validates the question and runs it through the QA pipeline.
func (h *QAHandler) Ask(c *gin.Context) {
	if h.engine == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "QA engine not initialized"})
		return
	}

	if !strings.HasPrefix(c.ContentType(), "application/json") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Content-Type must be application/json"})
		return
	}

	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Question is required and cannot be empty"})
		return
	}

	question, err := utils.ValidateQuestion(req.Question)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validationMessage(err)})
		return
	}

	logger := middleware.RequestLoggerFrom(c, h.logger)
	logger.Info("Processing question", zap.String("question", question))

	answer := h.engine.AnswerQuestion(c.Request.Context(), question)

	logger.Info("Generated answer", zap.String("answer_preview", preview(answer, answerLogPreviewLen)))
	c.JSON(http.StatusOK, gin.H{"answer": answer})
}

// validationMessage strips the sentinel suffix from a wrapped validation
// error, leaving the caller-facing message.
func validationMessage(err error) string {
	msg := err.Error()
	if i := strings.LastIndex(msg, ":"); i > 0 {
		return msg[:i]
	}
	return msg
}

func preview(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
