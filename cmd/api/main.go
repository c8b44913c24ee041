package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/totegamma/timeline/core"
	"github.com/totegamma/timeline/x/auth"
	"github.com/totegamma/timeline/x/data"
	"github.com/totegamma/timeline/x/post"
	"github.com/totegamma/timeline/x/timeline"
	"github.com/totegamma/timeline/x/user"
	"github.com/totegamma/timeline/x/util"

	"github.com/bradfitz/gomemcache/memcache"

	"github.com/redis/go-redis/extra/redisotel/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.7.0"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/plugin/opentelemetry/tracing"
)

type CustomHandler struct {
	slog.Handler
}

func (h *CustomHandler) Handle(ctx context.Context, r slog.Record) error {

	r.AddAttrs(slog.String("type", "app"))

	span := trace.SpanFromContext(ctx)
	if span.SpanContext().IsValid() {
		r.AddAttrs(slog.String("traceID", span.SpanContext().TraceID().String()))
		r.AddAttrs(slog.String("spanID", span.SpanContext().SpanID().String()))
	}

	return h.Handler.Handle(ctx, r)
}

var (
	version = "unknown"
)

func main() {

	handler := &CustomHandler{Handler: slog.NewJSONHandler(os.Stdout, nil)}
	slogger := slog.New(handler)
	slog.SetDefault(slogger)

	if version == "unknown" {
		version = util.GetFullVersion()
	}

	slog.Info(fmt.Sprintf("Timeline %s starting...", version))

	// .env is optional
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to load .env", slog.String("error", err.Error()))
	}

	e := echo.New()
	e.HidePort = true
	e.HideBanner = true
	config := util.Config{}
	configPath := os.Getenv("TIMELINE_CONFIG")
	if configPath == "" {
		configPath = "/etc/timeline/config.yaml"
	}

	err := config.Load(configPath)
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info(fmt.Sprintf("Config loaded! data backend: %s", config.Server.DataBackend))

	if config.Server.EnableTrace {
		cleanup, err := setupTraceProvider(config.Server.TraceEndpoint, "timeline", version)
		if err != nil {
			panic(err)
		}
		defer cleanup()

		skipper := otelecho.WithSkipper(
			func(c echo.Context) bool {
				return c.Path() == "/metrics" || c.Path() == "/health"
			},
		)
		e.Use(otelecho.Middleware("api", skipper))
	}

	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace: "timeline",
		LabelFuncs: map[string]echoprometheus.LabelValueFunc{
			"url": func(c echo.Context, err error) string {
				return c.Path()
			},
		},
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics" || c.Path() == "/health"
		},
	}))

	e.Use(middleware.Recover())

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags), // io writer
		logger.Config{
			SlowThreshold:             300 * time.Millisecond, // Slow SQL threshold
			LogLevel:                  logger.Warn,            // Log level
			IgnoreRecordNotFoundError: true,                   // Ignore ErrRecordNotFound error for logger
			Colorful:                  true,                   // Enable color
		},
	)

	db, err := gorm.Open(postgres.Open(config.Server.Dsn), &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	})
	if err != nil {
		panic("failed to connect database")
	}
	sqlDB, err := db.DB() // for pinging
	if err != nil {
		panic("failed to connect database")
	}
	defer sqlDB.Close()

	err = db.Use(tracing.NewPlugin(
		tracing.WithDBName("postgres"),
	))
	if err != nil {
		panic("failed to setup tracing plugin")
	}

	// Migrate the schema
	slog.Info("start migrate")
	err = db.AutoMigrate(
		&core.Timeline{},
		&core.Post{},
		&core.PostDataPart{},
		&core.User{},
		&core.Blob{},
	)
	if err != nil {
		panic("failed to migrate schema")
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     config.Server.RedisAddr,
		Password: "", // no password set
		DB:       config.Server.RedisDB,
	})
	err = redisotel.InstrumentTracing(
		rdb,
		redisotel.WithAttributes(
			attribute.KeyValue{
				Key:   "db.name",
				Value: attribute.StringValue("redis"),
			},
		),
	)
	if err != nil {
		panic("failed to setup tracing plugin")
	}

	mc := memcache.New(config.Server.MemcachedAddr)
	defer mc.Close()

	var dataRepository data.Repository
	switch config.Server.DataBackend {
	case util.DataBackendPebble:
		pdb, err := data.OpenPebble(config.Server.DataPath, nil)
		if err != nil {
			panic("failed to open content store")
		}
		defer pdb.Close()
		dataRepository = data.NewPebbleRepository(pdb)
	default:
		dataRepository = data.NewRepository(db, mc)
	}

	clock := core.NewSystemClock()

	agent := SetupAgent(db, rdb, mc, dataRepository, clock, config)

	userService := SetupUserService(db, rdb, mc, clock)
	userHandler := user.NewHandler(userService)

	timelineService := SetupTimelineService(db, mc, dataRepository, clock)
	timelineHandler := timeline.NewHandler(timelineService, config.Core())

	postService := SetupPostService(db, rdb, mc, dataRepository, clock, config)
	postHandler := post.NewHandler(postService, config.Core())

	apiV1 := e.Group("", auth.ReceiveGatewayAuthPropagation)

	// user
	apiV1.POST("/users", userHandler.Register)
	apiV1.PATCH("/users/me", userHandler.UpdateMe, auth.RequireRequester)
	apiV1.DELETE("/users/me", userHandler.DeleteMe, auth.RequireRequester)
	apiV1.GET("/users/:id", userHandler.Get)

	// timeline
	apiV1.POST("/timelines", timelineHandler.Create, auth.RequireRequester)
	apiV1.GET("/timelines/:tl", timelineHandler.Get)
	apiV1.PATCH("/timelines/:tl", timelineHandler.Rename, auth.RequireRequester)
	apiV1.DELETE("/timelines/:tl", timelineHandler.Delete, auth.RequireRequester)

	// post
	apiV1.GET("/timelines/:tl/posts", postHandler.List)
	apiV1.POST("/timelines/:tl/posts", postHandler.Create, auth.RequireRequester)
	apiV1.GET("/timelines/:tl/posts/:post", postHandler.Get)
	apiV1.PATCH("/timelines/:tl/posts/:post", postHandler.Patch, auth.RequireRequester)
	apiV1.DELETE("/timelines/:tl/posts/:post", postHandler.Delete, auth.RequireRequester)
	apiV1.GET("/timelines/:tl/posts/:post/data", postHandler.GetFirstData)
	apiV1.GET("/timelines/:tl/posts/:post/data/:index", postHandler.GetData)

	e.GET("/health", func(c echo.Context) (err error) {
		ctx := c.Request().Context()

		err = sqlDB.Ping()
		if err != nil {
			return c.String(http.StatusInternalServerError, "db error")
		}

		err = rdb.Ping(ctx).Err()
		if err != nil {
			return c.String(http.StatusInternalServerError, "redis error")
		}

		return c.String(http.StatusOK, "ok")
	})

	e.GET("/metrics", echoprometheus.NewHandler())

	agent.Boot()
	e.Logger.Fatal(e.Start(config.Server.ListenAddr))
}

func setupTraceProvider(endpoint string, serviceName string, serviceVersion string) (func(), error) {

	exporter, err := otlptracehttp.New(
		context.Background(),
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)

	if err != nil {
		return nil, err
	}

	resource := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
		semconv.ServiceVersionKey.String(serviceVersion),
	)

	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithResource(resource),
	)
	otel.SetTracerProvider(tracerProvider)

	propagator := propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	)
	otel.SetTextMapPropagator(propagator)

	cleanup := func() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		if err := tracerProvider.Shutdown(ctx); err != nil {
			slog.Error(fmt.Sprintf("Failed to shutdown tracer provider: %v", err))
		}
	}
	return cleanup, nil
}
