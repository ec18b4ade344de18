package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"docuchat/internal/app"
	"docuchat/internal/repository"
	"docuchat/internal/transport/http/response"
)

// Boundary short-circuit replies; the answer service is not invoked for
// these cases.
const (
	replyEmptyMessage = "Please enter a question about your document."
	replyNoUpload     = "No document uploaded yet. Please upload a PDF."
)

type ChatHandler struct {
	answerService *app.AnswerService
	store         *repository.DocumentStore
}

type AskRequest struct {
	Message string `json:"message"`
	UID     string `json:"uid"`
}

func NewChatHandler(answerService *app.AnswerService, store *repository.DocumentStore) *ChatHandler {
	return &ChatHandler{answerService: answerService, store: store}
}

// Ask answers a free-text question about a document. When the request names
// no UID, the most recently uploaded document is used. Advisory outcomes
// (empty question, nothing uploaded, no matching passages) are ordinary 200
// replies, never errors.
func (h *ChatHandler) Ask(c *gin.Context) {
	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		response.OK(c, gin.H{"reply": replyEmptyMessage})
		return
	}
	uid := req.UID
	if uid == "" {
		uid = h.store.Latest()
	}
	if uid == "" {
		response.OK(c, gin.H{"reply": replyNoUpload})
		return
	}

	response.OK(c, gin.H{"reply": h.answerService.Answer(uid, message)})
}
