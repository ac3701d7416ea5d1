package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"herzlink/internal/auth"
	apperrors "herzlink/internal/errors"
	"herzlink/internal/model"
	"herzlink/internal/service"
)

// ChatHandler handles inbox and conversation endpoints. All routes are
// session-authenticated; the current user comes from the request context.
type ChatHandler struct {
	chatService service.ChatService
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(chatService service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// SendMessageRequest represents a message send request.
type SendMessageRequest struct {
	Content string `json:"content" validate:"required"`
}

// ListConversations godoc
// @Summary List the current user's conversations, newest first
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /chats [get]
func (h *ChatHandler) ListConversations(c echo.Context) error {
	userID, ok := auth.CurrentUserID(c)
	if !ok {
		httpErr := apperrors.MapErrorToHTTP(apperrors.ErrInvalidSession)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	chats, err := h.chatService.ListConversations(c.Request().Context(), userID)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	if chats == nil {
		chats = []service.ConversationSummary{}
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"chats": chats})
}

// OpenConversation godoc
// @Summary Open the conversation with one partner
// @Description Returns messages oldest first. Opening marks unread inbound messages as read.
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Param partnerId path string true "Partner user ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /chats/{partnerId} [get]
func (h *ChatHandler) OpenConversation(c echo.Context) error {
	userID, ok := auth.CurrentUserID(c)
	if !ok {
		httpErr := apperrors.MapErrorToHTTP(apperrors.ErrInvalidSession)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	partnerID, err := uuid.Parse(c.Param("partnerId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid partner id")
	}

	messages, err := h.chatService.OpenConversation(c.Request().Context(), userID, partnerID)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	if messages == nil {
		messages = []model.Message{}
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"messages": messages})
}

// SendMessage godoc
// @Summary Send a message to a partner
// @Tags chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param partnerId path string true "Partner user ID"
// @Param request body SendMessageRequest true "Message content"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /chats/{partnerId} [post]
func (h *ChatHandler) SendMessage(c echo.Context) error {
	userID, ok := auth.CurrentUserID(c)
	if !ok {
		httpErr := apperrors.MapErrorToHTTP(apperrors.ErrInvalidSession)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	partnerID, err := uuid.Parse(c.Param("partnerId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid partner id")
	}

	var req SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	message, err := h.chatService.SendMessage(c.Request().Context(), userID, partnerID, req.Content)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{"message": message})
}
