package routes

import (
	"encoding/json"
	"log"

	"carrier-booking-api-server/config"
	"carrier-booking-api-server/internal/api/handlers"
	"carrier-booking-api-server/internal/api/middleware"
	"carrier-booking-api-server/internal/booking"
	"carrier-booking-api-server/internal/carrier"
	"carrier-booking-api-server/internal/packaging"
	"carrier-booking-api-server/internal/s3"
	"carrier-booking-api-server/internal/socket"
	"carrier-booking-api-server/internal/store"
	"carrier-booking-api-server/internal/waybill"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRouter wires the stores, the carrier client and the hub into the
// HTTP surface.
func SetupRouter(
	cfg config.Config,
	orders store.OrderStore,
	labels store.LabelStore,
	waybills store.WaybillStore,
	users store.UserStore,
	messages store.MessageStore,
	carrierClient *carrier.Client,
	s3Uploader *s3.Uploader,
	wsHub *socket.Hub,
) *gin.Engine {
	router := gin.Default()
	router.Use(gin.Recovery())
	router.Use(cors.Default())

	extractor := packaging.NewExtractor(orders)
	builder := booking.NewBuilder(cfg.Carrier, cfg.Sender, extractor)

	reconciler := waybill.NewReconciler(waybills, labels, messages, carrierClient)
	reconciler.OnOutcome = func(event waybill.Event) {
		encoded, err := json.Marshal(event)
		if err != nil {
			log.Printf("could not encode booking event: %v", err)
			return
		}
		wsHub.Broadcast(encoded)
	}

	userHandler := &handlers.UserHandler{Users: users, Cfg: cfg}
	orderHandler := &handlers.OrderHandler{Orders: orders}
	bookingHandler := &handlers.BookingHandler{Orders: orders, Labels: labels, Builder: builder, Carrier: carrierClient, Cfg: cfg}
	waybillHandler := &handlers.WaybillHandler{
		Waybills:     waybills,
		Messages:     messages,
		Reconciler:   reconciler,
		Consignments: waybill.NewConsignments(labels),
		Cfg:          cfg,
	}
	labelHandler := &handlers.LabelHandler{Labels: labels, S3Uploader: s3Uploader}
	serviceHandler := &handlers.ServiceHandler{Cfg: cfg}
	webSocketHandler := &handlers.WebSocketHandler{Hub: wsHub}

	apiV1 := router.Group("/api/v1")
	{
		apiV1.GET("/ws", webSocketHandler.ServeWs)

		auth := apiV1.Group("/auth")
		{
			auth.POST("/login", userHandler.Login)
		}

		admin := apiV1.Group("/admin")
		admin.Use(middleware.Authenticate())
		admin.Use(middleware.Authorize("superadmin"))
		{
			admin.POST("/users", userHandler.CreateUser)
			admin.GET("/messages", waybillHandler.AdminMessages)
		}

		operatorRoutes := apiV1.Group("/")
		operatorRoutes.Use(middleware.Authenticate())
		operatorRoutes.Use(middleware.Authorize("operator", "superadmin"))
		{
			operatorRoutes.GET("/services", serviceHandler.ListServices)

			orders := operatorRoutes.Group("/orders")
			{
				orders.POST("/", orderHandler.CreateOrder)
				orders.GET("/:id", orderHandler.GetOrder)
				orders.POST("/:id/book", bookingHandler.BookOrder)
			}

			waybillRoutes := operatorRoutes.Group("/waybills")
			{
				waybillRoutes.POST("/", waybillHandler.CreateWaybill)
				waybillRoutes.GET("/:id", waybillHandler.GetWaybill)
				waybillRoutes.POST("/:id/book", waybillHandler.BookWaybill)
			}

			operatorRoutes.GET("/consignments/unbooked", waybillHandler.UnbookedConsignments)

			labelRoutes := operatorRoutes.Group("/labels")
			{
				labelRoutes.POST("/:id/pdf", labelHandler.UploadLabelPDF)
			}
		}
	}

	return router
}
