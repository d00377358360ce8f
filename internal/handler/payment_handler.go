package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/oldsell/oldsell-backend/internal/service"
	"github.com/oldsell/oldsell-backend/internal/session"
)

type PaymentHandler struct {
	svc         service.PaymentService
	itemSvc     service.ItemService
	merchantID  string
	merchantKey string
}

func NewPaymentHandler(svc service.PaymentService, itemSvc service.ItemService, merchantID, merchantKey string) *PaymentHandler {
	return &PaymentHandler{svc: svc, itemSvc: itemSvc, merchantID: merchantID, merchantKey: merchantKey}
}

type ChecksumResponse struct {
	Checksum string `json:"checksum"`
}

// BuyPage renders the payment page. No reservation or hold is taken; two
// buyers can view and attempt to pay for the same item concurrently.
func (h *PaymentHandler) BuyPage(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	item, err := h.itemSvc.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch item")
	}
	return render(c, "buy.html", map[string]interface{}{
		"Item":    item,
		"OrderID": h.svc.MintOrderID(item.ID),
	})
}

func (h *PaymentHandler) APIInfo(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"paytm_mid":     h.merchantID,
		"paytm_api_key": h.merchantKey,
	})
}

func (h *PaymentHandler) Checksum(c echo.Context) error {
	checksum, err := h.svc.Checksum(c.Param("order_id"), c.Param("txn_amount"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to compute checksum"))
	}
	return c.JSON(http.StatusOK, ChecksumResponse{Checksum: checksum})
}

// Callback handles the gateway's redirect POST. The checksum on the body is
// not verified before trusting STATUS; see DESIGN.md for the recorded gap.
func (h *PaymentHandler) Callback(c echo.Context) error {
	if c.FormValue("STATUS") != service.StatusSuccess {
		session.Flash(c, "Payment failed or cancelled.")
		return c.Redirect(http.StatusFound, "/")
	}
	_, err := h.svc.CompleteOrder(c.Request().Context(), c.FormValue("ORDERID"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "malformed order id"))
		case errors.Is(err, service.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound)
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to complete order")
	}
	session.Flash(c, "Payment successful! The item is now marked as sold.")
	return c.Redirect(http.StatusFound, "/")
}
