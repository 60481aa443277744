package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "careerchat-api/internal/domain/conversation"
	"careerchat-api/internal/interfaces/httpserver/handlers"
	conversationrequests "careerchat-api/internal/interfaces/httpserver/requests/conversation"
	conversationresponses "careerchat-api/internal/interfaces/httpserver/responses/conversation"
)

func registerConversationRoutes(router gin.IRouter, handler *handlers.ConversationHandler) {
	group := router.Group("/conversations")
	group.GET("", listConversations(handler))
	group.POST("", createConversation(handler))
	group.POST("/start", startConversation(handler))
	group.GET("/:id", getConversation(handler))
	group.DELETE("/:id", deleteConversation(handler))
	group.POST("/:id/messages", addMessage(handler))
}

// listConversations godoc
// @Summary      List conversations
// @Description  Returns all conversations with their messages, most recently updated first.
// @Tags         conversations
// @Produce      json
// @Success      200  {array}   conversationresponses.ConversationResponse
// @Failure      500  {object}  conversationresponses.ErrorResponse
// @Router       /v1/conversations [get]
func listConversations(handler *handlers.ConversationHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := handler.List(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// getConversation godoc
// @Summary      Get a conversation
// @Description  Returns one conversation with its messages in creation order.
// @Tags         conversations
// @Produce      json
// @Param        id   path      int  true  "Conversation ID"
// @Success      200  {object}  conversationresponses.ConversationResponse
// @Failure      400  {object}  conversationresponses.ErrorResponse
// @Failure      404  {object}  conversationresponses.ErrorResponse
// @Router       /v1/conversations/{id} [get]
func getConversation(handler *handlers.ConversationHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := conversationID(c)
		if !ok {
			return
		}
		result, err := handler.Get(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// createConversation godoc
// @Summary      Create a conversation
// @Description  Inserts a new empty conversation; a missing title gets a placeholder.
// @Tags         conversations
// @Accept       json
// @Produce      json
// @Param        request  body      conversationrequests.CreateConversationRequest  true  "Conversation title"
// @Success      201  {object}  conversationresponses.ConversationResponse
// @Failure      400  {object}  conversationresponses.ErrorResponse
// @Router       /v1/conversations [post]
func createConversation(handler *handlers.ConversationHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req conversationrequests.CreateConversationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, conversationresponses.ErrorResponse{Error: err.Error()})
			return
		}
		result, err := handler.Create(c.Request.Context(), req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, result)
	}
}

// deleteConversation godoc
// @Summary      Delete a conversation
// @Description  Removes the conversation and all its messages atomically.
// @Tags         conversations
// @Produce      json
// @Param        id   path      int  true  "Conversation ID"
// @Success      200  {object}  conversationresponses.DeleteConversationResponse
// @Failure      400  {object}  conversationresponses.ErrorResponse
// @Failure      404  {object}  conversationresponses.ErrorResponse
// @Router       /v1/conversations/{id} [delete]
func deleteConversation(handler *handlers.ConversationHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := conversationID(c)
		if !ok {
			return
		}
		result, err := handler.Delete(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// addMessage godoc
// @Summary      Send a message
// @Description  Appends the user message and the generated assistant reply in one operation.
// @Tags         conversations
// @Accept       json
// @Produce      json
// @Param        id       path      int                                      true  "Conversation ID"
// @Param        request  body      conversationrequests.AddMessageRequest  true  "Message content"
// @Success      201  {object}  conversationresponses.ExchangeResponse
// @Failure      400  {object}  conversationresponses.ErrorResponse
// @Failure      404  {object}  conversationresponses.ErrorResponse
// @Router       /v1/conversations/{id}/messages [post]
func addMessage(handler *handlers.ConversationHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := conversationID(c)
		if !ok {
			return
		}
		var req conversationrequests.AddMessageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, conversationresponses.ErrorResponse{Error: err.Error()})
			return
		}
		result, err := handler.AddMessage(c.Request.Context(), id, req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, result)
	}
}

// startConversation godoc
// @Summary      Start a conversation
// @Description  Creates a conversation titled from the first message and seeds the first exchange.
// @Tags         conversations
// @Accept       json
// @Produce      json
// @Param        request  body      conversationrequests.StartConversationRequest  true  "First message content"
// @Success      201  {object}  conversationresponses.StartConversationResponse
// @Failure      400  {object}  conversationresponses.ErrorResponse
// @Router       /v1/conversations/start [post]
func startConversation(handler *handlers.ConversationHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req conversationrequests.StartConversationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, conversationresponses.ErrorResponse{Error: err.Error()})
			return
		}
		result, err := handler.Start(c.Request.Context(), req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, result)
	}
}

func conversationID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, conversationresponses.ErrorResponse{Error: "conversation id must be an integer"})
		return 0, false
	}
	return uint(id), true
}

func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrEmptyTitle), errors.Is(err, domain.ErrEmptyContent):
		status = http.StatusBadRequest
	}
	c.JSON(status, conversationresponses.ErrorResponse{Error: err.Error()})
}
