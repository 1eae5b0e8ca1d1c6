package startup

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Rezuan-Alam-Rean/building-management-server/casbinAuthorization"
	"github.com/Rezuan-Alam-Rean/building-management-server/domain"
	"github.com/Rezuan-Alam-Rean/building-management-server/handlers"
	application "github.com/Rezuan-Alam-Rean/building-management-server/service"
	"github.com/Rezuan-Alam-Rean/building-management-server/startup/config"
	store2 "github.com/Rezuan-Alam-Rean/building-management-server/store"
	"github.com/casbin/casbin"
	"github.com/google/uuid"
	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.12.0"
	"go.opentelemetry.io/otel/trace"
)

type Server struct {
	config *config.Config
}

func NewServer(config *config.Config) *Server {
	return &Server{
		config: config,
	}
}

var Logger = logrus.New()

type CustomFormatter struct{}

func (f *CustomFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	id, ok := entry.Data["id"].(string)
	if !ok {
		id = uuid.NewString()
	}

	msg := fmt.Sprintf("[%s] [%s] [%s] %s\n",
		entry.Time.Format("2006-01-02T15:04:05Z07:00"),
		entry.Level,
		id,
		entry.Message,
	)

	return []byte(msg), nil
}

func (server *Server) initLogger() {
	Logger.SetFormatter(&CustomFormatter{})

	if server.config.LogFile != "" {
		writer, err := rotatelogs.New(
			server.config.LogFile+".%Y%m%d",
			rotatelogs.WithRotationTime(24*time.Hour),
		)
		if err != nil {
			Logger.Fatalf("Failed to create rotatelogs writer: %v", err)
		}
		Logger.SetOutput(writer)
	}
}

func (server *Server) Start() {
	server.initLogger()

	httpClient := &http.Client{
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 10,
			MaxConnsPerHost:     10,
		},
	}

	mongoClient := server.initMongoClient(httpClient)
	defer func(mongoClient *mongo.Client, ctx context.Context) {
		err := mongoClient.Disconnect(ctx)
		if err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}(mongoClient, context.Background())

	if err := store2.Ping(mongoClient); err != nil {
		log.Fatal(err)
	}
	Logger.Info("Connected to MongoDB")

	tracer, shutdownTracer := server.initTracer()
	defer shutdownTracer()

	userStore := server.initUserStore(mongoClient, tracer)
	roomStore := server.initRoomStore(mongoClient, tracer)
	bookingStore := server.initBookingStore(mongoClient, tracer)
	announcementStore := server.initAnnouncementStore(mongoClient, tracer)

	authService := application.NewAuthService(server.config.AccessTokenSecret, tracer)
	userService := application.NewUserService(userStore, tracer, Logger)
	roomService := application.NewRoomService(roomStore, tracer)
	bookingService := application.NewBookingService(bookingStore, tracer, Logger)
	announcementService := application.NewAnnouncementService(announcementStore, tracer, Logger)

	authHandler := handlers.NewAuthHandler(authService, server.config.Environment, server.config.AuthEnforce, tracer)
	userHandler := handlers.NewUserHandler(userService, tracer)
	roomHandler := handlers.NewRoomHandler(roomService, tracer)
	bookingHandler := handlers.NewBookingHandler(bookingService, tracer)
	announcementHandler := handlers.NewAnnouncementHandler(announcementService, tracer)

	var paymentHandler *handlers.PaymentHandler
	if server.config.PaymentSecretKey != "" {
		paymentService := application.NewPaymentService(server.config.PaymentSecretKey, server.config.PaymentAPIURL, tracer, Logger)
		paymentHandler = handlers.NewPaymentHandler(paymentService, tracer)
	}

	server.start(authHandler, userHandler, roomHandler, bookingHandler, announcementHandler, paymentHandler)
}

func (server *Server) initMongoClient(httpClient *http.Client) *mongo.Client {
	client, err := store2.GetClient(server.config.DBURI, httpClient)
	if err != nil {
		log.Fatal(err)
	}
	return client
}

func (server *Server) initUserStore(client *mongo.Client, tracer trace.Tracer) domain.UserStore {
	return store2.NewUserMongoDBStore(client, tracer)
}

func (server *Server) initRoomStore(client *mongo.Client, tracer trace.Tracer) domain.RoomStore {
	return store2.NewRoomMongoDBStore(client, tracer)
}

func (server *Server) initBookingStore(client *mongo.Client, tracer trace.Tracer) domain.BookingStore {
	return store2.NewBookingMongoDBStore(client, tracer)
}

func (server *Server) initAnnouncementStore(client *mongo.Client, tracer trace.Tracer) domain.AnnouncementStore {
	return store2.NewAnnouncementMongoDBStore(client, tracer)
}

func (server *Server) initTracer() (trace.Tracer, func()) {
	if server.config.JaegerAddress == "" {
		return trace.NewNoopTracerProvider().Tracer("building-management"), func() {}
	}

	exp, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(server.config.JaegerAddress)))
	if err != nil {
		log.Fatalf("Failed to Initialize Exporter: %v", err)
	}

	tp := newTraceProvider(exp)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Tracer("building-management"), func() { _ = tp.Shutdown(context.Background()) }
}

func newTraceProvider(exp sdktrace.SpanExporter) *sdktrace.TracerProvider {
	r, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String("building-management"),
		),
	)

	if err != nil {
		panic(err)
	}

	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(r),
	)
}

func (server *Server) start(
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	roomHandler *handlers.RoomHandler,
	bookingHandler *handlers.BookingHandler,
	announcementHandler *handlers.AnnouncementHandler,
	paymentHandler *handlers.PaymentHandler,
) {
	router := mux.NewRouter()
	router.Use(MiddlewareContentTypeSet)
	router.Use(MiddlewareRequestLog)

	router.HandleFunc("/", handleGreeting).Methods("GET")
	router.HandleFunc("/jwt", authHandler.CreateToken).Methods("POST")
	router.HandleFunc("/logout", authHandler.Logout).Methods("GET")
	router.HandleFunc("/user/{email}", userHandler.Get).Methods("GET")
	router.HandleFunc("/users/{email}", userHandler.SaveProfile).Methods("PUT")
	router.HandleFunc("/users", userHandler.GetAll).Methods("GET")
	router.HandleFunc("/rooms", roomHandler.GetAll).Methods("GET")
	router.HandleFunc("/room/{id}", roomHandler.Get).Methods("GET")
	router.HandleFunc("/book", bookingHandler.Create).Methods("POST")
	router.HandleFunc("/bookings", bookingHandler.Create).Methods("POST")
	router.HandleFunc("/getBookings", bookingHandler.GetAll).Methods("GET")
	router.HandleFunc("/getAnnouncement", announcementHandler.GetAll).Methods("GET")

	protectedGet := router.Methods(http.MethodGet).Subrouter()
	protectedGet.HandleFunc("/getBookings/{email}", bookingHandler.GetOneByGuest)
	protectedGet.HandleFunc("/bookings/host", bookingHandler.GetByHost)
	protectedGet.HandleFunc("/bookings", bookingHandler.GetByGuest)
	protectedGet.Use(authHandler.MiddlewareVerifyToken)

	postAnnouncement := router.Methods(http.MethodPost).Subrouter()
	postAnnouncement.HandleFunc("/announcement", announcementHandler.Create)
	postAnnouncement.Use(authHandler.MiddlewareVerifyToken)
	if server.config.RoleGuard {
		enforcer, err := casbin.NewEnforcerSafe("./rbac_model.conf", "./policy.csv")
		if err != nil {
			log.Fatal(err)
		}
		postAnnouncement.Use(casbinAuthorization.CasbinMiddleware(enforcer))
	}

	if paymentHandler != nil {
		postPayment := router.Methods(http.MethodPost).Subrouter()
		postPayment.HandleFunc("/create-payment-intent", paymentHandler.CreateIntent)
		postPayment.Use(authHandler.MiddlewareVerifyToken)
	}

	cors := gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins(server.config.AllowedOrigins),
		gorillaHandlers.AllowedMethods([]string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type", "Authorization", "Cookie"}),
		gorillaHandlers.AllowCredentials(),
	)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", server.config.Port),
		Handler: cors(router),
	}

	wait := time.Second * 15
	go func() {
		Logger.Infof("building-management is running on port %s", server.config.Port)
		if err := srv.ListenAndServe(); err != nil {
			log.Println(err)
		}
	}()

	c := make(chan os.Signal, 1)

	signal.Notify(c, os.Interrupt)
	signal.Notify(c, syscall.SIGTERM)

	<-c

	ctx, cancel := context.WithTimeout(context.Background(), wait)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Error Shutting Down Server %s", err)
	}
	log.Println("Server Gracefully Stopped")
}

func handleGreeting(writer http.ResponseWriter, req *http.Request) {
	writer.Write([]byte("Hello from building-management Server.."))
}

func MiddlewareContentTypeSet(next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, h *http.Request) {
		rw.Header().Add("Content-Type", "application/json")
		rw.Header().Set("X-Content-Type-Options", "nosniff")
		rw.Header().Set("X-Frame-Options", "DENY")

		next.ServeHTTP(rw, h)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

// MiddlewareRequestLog is purely observational and never affects control flow.
func MiddlewareRequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: rw, status: http.StatusOK}

		next.ServeHTTP(rec, req)

		Logger.WithField("id", uuid.NewString()).
			Infof("%s %s %d %s", req.Method, req.URL.Path, rec.status, time.Since(start))
	})
}
