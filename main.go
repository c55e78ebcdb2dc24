// Package main library API.
//
// @title           Library Management API
// @version         1.0
// @description     library service (catalog, students, lending transactions, dashboard).
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

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/arveereed/simple-library-management/app/echoServer"
	authctrl "github.com/arveereed/simple-library-management/app/echoServer/controller/auth"
	bookctrl "github.com/arveereed/simple-library-management/app/echoServer/controller/book"
	dashboardctrl "github.com/arveereed/simple-library-management/app/echoServer/controller/dashboard"
	lendingctrl "github.com/arveereed/simple-library-management/app/echoServer/controller/lending"
	studentctrl "github.com/arveereed/simple-library-management/app/echoServer/controller/student"
	"github.com/arveereed/simple-library-management/app/echoServer/validation"
	"github.com/arveereed/simple-library-management/config"
	bookrepo "github.com/arveereed/simple-library-management/repository/book"
	studentrepo "github.com/arveereed/simple-library-management/repository/student"
	transactionrepo "github.com/arveereed/simple-library-management/repository/transaction"
	userrepo "github.com/arveereed/simple-library-management/repository/user"
	authsvc "github.com/arveereed/simple-library-management/service/auth"
	booksvc "github.com/arveereed/simple-library-management/service/book"
	dashboardsvc "github.com/arveereed/simple-library-management/service/dashboard"
	lendingsvc "github.com/arveereed/simple-library-management/service/lending"
	studentsvc "github.com/arveereed/simple-library-management/service/student"
	"github.com/arveereed/simple-library-management/util/database"
)

func main() {

	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		log.Error("config load failed", "err", err)
		os.Exit(1)
	}

	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	// repos
	br := bookrepo.New(db)
	sr := studentrepo.New(db)
	tr := transactionrepo.New(db)
	ur := userrepo.New(db)

	// services
	as := authsvc.New(ur, cfg.JWTSecret)
	bs := booksvc.New(br)
	ss := studentsvc.New(sr)
	loanPeriod := time.Duration(cfg.LoanPeriodDays) * 24 * time.Hour
	ls := lendingsvc.New(br, sr, tr, loanPeriod, log)
	ds := dashboardsvc.New(br, sr)

	// controllers
	v := validator.New()
	authC := &authctrl.Controller{Svc: as, V: v, Log: log}
	bookC := &bookctrl.Controller{Svc: bs, V: v, Log: log}
	studentC := &studentctrl.Controller{Svc: ss, V: v, Log: log}
	lendingC := &lendingctrl.Controller{Svc: ls, V: v, Log: log}
	dashboardC := &dashboardctrl.Controller{Svc: ds, Log: log}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status":  "ok",
			"message": "Service is healthy and connected",
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Auth:      authC,
		Book:      bookC,
		Student:   studentC,
		Lending:   lendingC,
		Dashboard: dashboardC,

		JWTSecret: cfg.JWTSecret,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	log.Info("starting server", "port", port, "env", cfg.Env, "loan_period_days", cfg.LoanPeriodDays)

	e.Logger.Fatal(e.Start(":" + port))
}
