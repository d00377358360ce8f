package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oldsell/oldsell-backend/internal/i18n"
	appmw "github.com/oldsell/oldsell-backend/internal/middleware"
	"github.com/oldsell/oldsell-backend/internal/session"
)

func currentUserID(c echo.Context) uint64 {
	uid, _ := c.Get(appmw.UserIDKey).(uint64)
	return uid
}

// render fills in the ambient page data (flash, locale, login state) before
// handing the map to the template.
func render(c echo.Context, name string, data map[string]interface{}) error {
	if data == nil {
		data = map[string]interface{}{}
	}
	data["LoggedIn"] = currentUserID(c) != 0
	data["Flash"] = session.TakeFlash(c)
	data["Lang"] = i18n.SelectLocale(c.Request().Header.Get("Accept-Language"))
	return c.Render(http.StatusOK, name, data)
}
