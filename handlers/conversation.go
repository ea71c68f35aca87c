package handlers

import (
	"net/http"
	"time"

	conversationRepo "broheal/database/repository/conversation"
	"broheal/models"
	"broheal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ConversationHandler exposes the booking chat threads. Threads are opened by
// the payment flow when a booking confirms; parties can only read and post to
// their own threads.
type ConversationHandler struct {
	ConversationRepo conversationRepo.ConversationRepository
}

type sendMessageRequest struct {
	Body string `json:"body" binding:"required"`
}

// List returns the caller's conversations, most recently active first.
func (h *ConversationHandler) List(c *gin.Context) {
	convs, err := h.ConversationRepo.ListByParticipant(principal(c))
	if err != nil {
		getLogger(c).Error("failed to list conversations", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list conversations", "")
		return
	}
	c.JSON(http.StatusOK, convs)
}

// member loads the conversation for a booking and checks the caller belongs
// to it.
func (h *ConversationHandler) member(c *gin.Context, bookingID string) (*models.Conversation, bool) {
	conv, err := h.ConversationRepo.GetByBookingID(bookingID)
	if err != nil || conv == nil {
		utils.JSONError(c, http.StatusNotFound, "Conversation not found", "")
		return nil, false
	}
	caller := principal(c)
	for _, p := range conv.Participants {
		if p == caller {
			return conv, true
		}
	}
	utils.JSONError(c, http.StatusNotFound, "Conversation not found", "")
	return nil, false
}

// Messages returns the thread for a booking the caller is party to.
func (h *ConversationHandler) Messages(c *gin.Context) {
	conv, ok := h.member(c, c.Param("bookingId"))
	if !ok {
		return
	}

	msgs, err := h.ConversationRepo.ListMessages(conv.ID, 200)
	if err != nil {
		getLogger(c).Error("failed to list messages", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list messages", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"conversation": conv, "messages": msgs})
}

// Send appends a message to the thread for a booking the caller is party to.
func (h *ConversationHandler) Send(c *gin.Context) {
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	conv, ok := h.member(c, c.Param("bookingId"))
	if !ok {
		return
	}

	msg := &models.Message{
		ID:             uuid.New().String(),
		ConversationID: conv.ID,
		SenderID:       principal(c),
		Body:           req.Body,
		CreatedAt:      time.Now(),
	}
	if err := h.ConversationRepo.AppendMessage(msg); err != nil {
		getLogger(c).Error("failed to send message", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to send message", "")
		return
	}
	c.JSON(http.StatusCreated, msg)
}
