// Package main vidly API.
//
// @title           Vidly API
// @version         1.0
// @description     Movie rental service (genres, movies, customers, rentals, users).
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description  Use:  Bearer <JWT>
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/perpetual-pelican/vidly-backend/app/echoServer"
	customerctrl "github.com/perpetual-pelican/vidly-backend/app/echoServer/controller/customer"
	genrectrl "github.com/perpetual-pelican/vidly-backend/app/echoServer/controller/genre"
	moviectrl "github.com/perpetual-pelican/vidly-backend/app/echoServer/controller/movie"
	rentalctrl "github.com/perpetual-pelican/vidly-backend/app/echoServer/controller/rental"
	userctrl "github.com/perpetual-pelican/vidly-backend/app/echoServer/controller/user"
	"github.com/perpetual-pelican/vidly-backend/app/echoServer/validation"
	"github.com/perpetual-pelican/vidly-backend/config"
	"github.com/perpetual-pelican/vidly-backend/queue"
	customerrepo "github.com/perpetual-pelican/vidly-backend/repository/customer"
	genrerepo "github.com/perpetual-pelican/vidly-backend/repository/genre"
	movierepo "github.com/perpetual-pelican/vidly-backend/repository/movie"
	rentalrepo "github.com/perpetual-pelican/vidly-backend/repository/rental"
	userrepo "github.com/perpetual-pelican/vidly-backend/repository/user"
	authsvc "github.com/perpetual-pelican/vidly-backend/service/auth"
	customersvc "github.com/perpetual-pelican/vidly-backend/service/customer"
	genresvc "github.com/perpetual-pelican/vidly-backend/service/genre"
	moviesvc "github.com/perpetual-pelican/vidly-backend/service/movie"
	rentalsvc "github.com/perpetual-pelican/vidly-backend/service/rental"
	"github.com/perpetual-pelican/vidly-backend/util/database"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	// DB
	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(cfg.DatabaseURL, cfg.MigrationsDir); err != nil {
		log.Error("migrations failed", "err", err)
		os.Exit(1)
	}

	// redis (rate limiting), optional
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer rdb.Close()
	}

	// rental event publisher, optional
	pub := queue.NewPublisher(cfg.RabbitURL, log)

	// repos
	cr := customerrepo.New(db.DB)
	gr := genrerepo.New(db.DB)
	mr := movierepo.New(db.DB)
	rr := rentalrepo.New(db.DB)
	ur := userrepo.New(db.DB)

	// services
	cs := customersvc.New(cr)
	gs := genresvc.New(gr)
	ms := moviesvc.New(db, mr, gr)
	rs := rentalsvc.New(db, rr, cr)
	as := authsvc.New(ur, cfg.JWTSecret)

	// controllers
	v := validation.New()
	customerC := &customerctrl.Controller{Svc: cs, V: v, Log: log}
	genreC := &genrectrl.Controller{Svc: gs, V: v, Log: log}
	movieC := &moviectrl.Controller{Svc: ms, V: v, Log: log}
	rentalC := &rentalctrl.Controller{Svc: rs, V: v, Pub: pub, Log: log}
	userC := &userctrl.Controller{Svc: as, V: v, Log: log}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e)
	e.Use(echoServer.RateLimit(rdb, 100, time.Minute))
	e.Validator = v

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status":  "ok",
			"message": "Service is healthy and connected",
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Customer: customerC,
		Genre:    genreC,
		Movie:    movieC,
		Rental:   rentalC,
		User:     userC,

		JWTSecret: cfg.JWTSecret,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	slog.Info("starting server", "port", port, "env", cfg.Env)

	e.Logger.Fatal(e.Start(":" + port))
}
