package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/oldsell/oldsell-backend/internal/service"
)

type ChatHandler struct {
	svc     service.ChatService
	itemSvc service.ItemService
	authSvc service.AuthService
}

func NewChatHandler(svc service.ChatService, itemSvc service.ItemService, authSvc service.AuthService) *ChatHandler {
	return &ChatHandler{svc: svc, itemSvc: itemSvc, authSvc: authSvc}
}

type SendMessageRequest struct {
	ToUserID uint64 `json:"to_user_id"`
	Message  string `json:"message"`
}

type MessageResponse struct {
	FromUser  string `json:"from_user"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// Page renders the conversation with the item's seller.
func (h *ChatHandler) Page(c echo.Context) error {
	itemID, err := strconv.ParseUint(c.Param("item_id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	item, err := h.itemSvc.Get(c.Request().Context(), itemID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch item")
	}
	msgs, err := h.svc.Conversation(c.Request().Context(), currentUserID(c), item.SellerID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch messages")
	}
	return render(c, "chat.html", map[string]interface{}{
		"Item":     item,
		"SellerID": item.SellerID,
		"Messages": msgs,
	})
}

func (h *ChatHandler) SendMessage(c echo.Context) error {
	var req SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"status": "error", "message": "Invalid data"})
	}
	_, err := h.svc.Send(c.Request().Context(), currentUserID(c), req.ToUserID, req.Message)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			return c.JSON(http.StatusBadRequest, map[string]string{"status": "error", "message": "Invalid data"})
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to send message"))
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "success"})
}

func (h *ChatHandler) GetMessages(c echo.Context) error {
	toUserID, err := strconv.ParseUint(c.Param("to_user_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid user id"))
	}
	uid := currentUserID(c)
	msgs, err := h.svc.Conversation(c.Request().Context(), uid, toUserID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch messages"))
	}

	// Senders are only ever the two conversation parties.
	names := map[uint64]string{}
	for _, id := range []uint64{uid, toUserID} {
		if user, err := h.authSvc.GetUser(c.Request().Context(), id); err == nil {
			names[id] = user.Username
		}
	}

	resp := make([]MessageResponse, 0, len(msgs))
	for _, m := range msgs {
		resp = append(resp, MessageResponse{
			FromUser:  names[m.FromUserID],
			Message:   m.Body,
			Timestamp: m.CreatedAt.Format(time.DateTime),
		})
	}
	return c.JSON(http.StatusOK, resp)
}
