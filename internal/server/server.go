package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/oldsell/oldsell-backend/internal/config"
	"github.com/oldsell/oldsell-backend/internal/handler"
	appmw "github.com/oldsell/oldsell-backend/internal/middleware"
	"github.com/oldsell/oldsell-backend/internal/repository"
	"github.com/oldsell/oldsell-backend/internal/service"
	"github.com/oldsell/oldsell-backend/internal/session"
	"github.com/oldsell/oldsell-backend/internal/upload"
	"github.com/oldsell/oldsell-backend/internal/view"
	"gorm.io/gorm"
)

type Server struct {
	e *echo.Echo
}

func New(db *gorm.DB, cfg *config.Config) (*Server, error) {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())

	renderer, err := view.NewRenderer()
	if err != nil {
		return nil, err
	}
	e.Renderer = renderer

	sessions := session.NewManager(cfg.SecretKey)
	sessionMw := appmw.NewSessionMiddleware(sessions)
	e.Use(sessionMw.LoadUser)

	uploads := upload.NewStore(cfg.UploadDir)

	userRepo := repository.NewUserRepository(db)
	itemRepo := repository.NewItemRepository(db)
	chatRepo := repository.NewChatRepository(db)

	authSvc := service.NewAuthService(userRepo)
	itemSvc := service.NewItemService(itemRepo)
	chatSvc := service.NewChatService(chatRepo, userRepo)
	paymentSvc := service.NewPaymentService(itemRepo, cfg.PaytmMID, cfg.PaytmAPIKey)

	authHandler := handler.NewAuthHandler(authSvc, sessions)
	itemHandler := handler.NewItemHandler(itemSvc, authSvc, uploads)
	chatHandler := handler.NewChatHandler(chatSvc, itemSvc, authSvc)
	paymentHandler := handler.NewPaymentHandler(paymentSvc, itemSvc, cfg.PaytmMID, cfg.PaytmAPIKey)

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"ok": "true"})
	})

	e.GET("/", itemHandler.Home)
	e.GET("/login", authHandler.LoginPage)
	e.POST("/login", authHandler.Login)
	e.GET("/register", authHandler.RegisterPage)
	e.POST("/register", authHandler.Register)
	e.GET("/logout", authHandler.Logout, sessionMw.RequireLogin)

	e.GET("/sell", itemHandler.SellPage, sessionMw.RequireLogin)
	e.POST("/sell", itemHandler.Sell, sessionMw.RequireLogin)
	e.GET("/item/:id", itemHandler.Detail)
	e.GET("/my_items", itemHandler.MyItems, sessionMw.RequireLogin)

	e.GET("/buy/:id", paymentHandler.BuyPage, sessionMw.RequireLogin)
	e.GET("/get_api_info", paymentHandler.APIInfo)
	e.GET("/get_payment_checksum/:order_id/:txn_amount", paymentHandler.Checksum)
	e.POST("/paytm_redirect", paymentHandler.Callback)

	e.GET("/chat/:item_id", chatHandler.Page, sessionMw.RequireLogin)
	e.POST("/send_message", chatHandler.SendMessage, sessionMw.RequireLogin)
	e.GET("/get_messages/:to_user_id", chatHandler.GetMessages, sessionMw.RequireLogin)

	e.Static("/uploads", cfg.UploadDir)

	return &Server{e: e}, nil
}

func (s *Server) Start(addr string) error {
	return s.e.Start(addr)
}

// Echo exposes the underlying router for tests.
func (s *Server) Echo() *echo.Echo {
	return s.e
}
