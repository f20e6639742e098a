package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hotel-booking/internal/handler/api"
	reqdto "hotel-booking/internal/handler/dto/request"
	"hotel-booking/internal/handler/middleware"
	"hotel-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Health  *api.HealthHandler
	Rooms   *api.RoomHandler
	Booking *api.BookingHandler
	Mail    *api.MailHandler
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	healthHandler *api.HealthHandler,
	roomHandler *api.RoomHandler,
	bookingHandler *api.BookingHandler,
	mailHandler *api.MailHandler,
) {
	reqdto.RegisterValidations()
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, cfg, Handlers{
		Health:  healthHandler,
		Rooms:   roomHandler,
		Booking: bookingHandler,
		Mail:    mailHandler,
	})
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers) {
	storeTimeout := []gin.HandlerFunc{middleware.RequestTimeout(cfg.Server.RequestTimeout)}
	// A synchronous send may retry a slow SMTP handshake, so mail gets its own bound
	mailTimeout := []gin.HandlerFunc{middleware.RequestTimeout(cfg.Notify.SendTimeout)}

	engine.GET("/", h.Health.Root)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		health := apiGroup.Group("/health")
		addRoutes(health, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Health.Live},
			{Method: http.MethodGet, Path: "/ready", Handler: h.Health.Ready, Mw: storeTimeout},
		})

		rooms := apiGroup.Group("/rooms")
		addRoutes(rooms, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Rooms.List, Mw: storeTimeout},
			{Method: http.MethodPost, Path: "", Handler: h.Rooms.Create, Mw: storeTimeout},
		})

		bookings := apiGroup.Group("/bookings")
		addRoutes(bookings, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Booking.List, Mw: storeTimeout},
			{Method: http.MethodPost, Path: "", Handler: h.Booking.Create, Mw: storeTimeout},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Booking.Update, Mw: storeTimeout},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Booking.Cancel, Mw: storeTimeout},
		})

		mail := apiGroup.Group("/mail")
		addRoutes(mail, []route{
			{Method: http.MethodPost, Path: "/booking-confirm", Handler: h.Mail.BookingConfirm, Mw: mailTimeout},
			{Method: http.MethodPost, Path: "/booking-cancelled", Handler: h.Mail.BookingCancelled, Mw: mailTimeout},
		})
	}
}

// Per-route middleware runs through gin's own chain so that c.Next inside it reaches the handler.
func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		hs := make([]gin.HandlerFunc, 0, len(r.Mw)+1)
		hs = append(hs, r.Mw...)
		hs = append(hs, r.Handler)
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, hs...)
		case http.MethodPost:
			g.POST(r.Path, hs...)
		case http.MethodPut:
			g.PUT(r.Path, hs...)
		case http.MethodPatch:
			g.PATCH(r.Path, hs...)
		case http.MethodDelete:
			g.DELETE(r.Path, hs...)
		default:
			g.Any(r.Path, hs...)
		}
	}
}
