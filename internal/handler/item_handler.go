package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/oldsell/oldsell-backend/internal/service"
	"github.com/oldsell/oldsell-backend/internal/session"
	"github.com/oldsell/oldsell-backend/internal/upload"
)

type ItemHandler struct {
	svc     service.ItemService
	authSvc service.AuthService
	uploads *upload.Store
}

func NewItemHandler(svc service.ItemService, authSvc service.AuthService, uploads *upload.Store) *ItemHandler {
	return &ItemHandler{svc: svc, authSvc: authSvc, uploads: uploads}
}

func (h *ItemHandler) Home(c echo.Context) error {
	items, err := h.svc.ListOpen(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch items")
	}
	return render(c, "home.html", map[string]interface{}{"Items": items})
}

func (h *ItemHandler) SellPage(c echo.Context) error {
	return render(c, "sell.html", nil)
}

func (h *ItemHandler) Sell(c echo.Context) error {
	price, err := strconv.ParseFloat(c.FormValue("price"), 64)
	if err != nil || price < 0 {
		session.Flash(c, "Invalid price.")
		return c.Redirect(http.StatusFound, "/sell")
	}

	var imageFilename *string
	if file, err := c.FormFile("image"); err == nil && file != nil {
		src, err := file.Open()
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to read upload")
		}
		defer src.Close()
		name, err := h.uploads.Save(file.Filename, src)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to store upload")
		}
		if name != "" {
			imageFilename = &name
		}
	}

	_, err = h.svc.Create(c.Request().Context(),
		currentUserID(c),
		c.FormValue("title"),
		c.FormValue("description"),
		price,
		c.FormValue("currency"),
		c.FormValue("location"),
		imageFilename)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			session.Flash(c, "All fields are required.")
			return c.Redirect(http.StatusFound, "/sell")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list item")
	}

	session.Flash(c, "Item listed successfully!")
	return c.Redirect(http.StatusFound, "/")
}

func (h *ItemHandler) Detail(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	item, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch item")
	}
	seller, err := h.authSvc.GetUser(c.Request().Context(), item.SellerID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch seller")
	}
	return render(c, "item.html", map[string]interface{}{
		"Item":   item,
		"Seller": seller,
	})
}

func (h *ItemHandler) MyItems(c echo.Context) error {
	items, err := h.svc.ListBySeller(c.Request().Context(), currentUserID(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch items")
	}
	return render(c, "my_items.html", map[string]interface{}{"Items": items})
}
