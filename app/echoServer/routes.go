package echoServer

import (
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/arveereed/simple-library-management/app/echoServer/controller/auth"
	"github.com/arveereed/simple-library-management/app/echoServer/controller/book"
	"github.com/arveereed/simple-library-management/app/echoServer/controller/dashboard"
	"github.com/arveereed/simple-library-management/app/echoServer/controller/lending"
	"github.com/arveereed/simple-library-management/app/echoServer/controller/student"
)

type C struct {
	Auth      *auth.Controller
	Book      *book.Controller
	Student   *student.Controller
	Lending   *lending.Controller
	Dashboard *dashboard.Controller
	JWTSecret string
}

func Register(e *echo.Echo, c C) {
	// Public: identity plus every read view. Anonymous visitors can browse;
	// only the mutating routes care who is asking.
	pub := e.Group("/v1")
	pub.POST("/auth/register", c.Auth.Register)
	pub.POST("/auth/login", c.Auth.Login)

	pub.GET("/books", c.Book.List)
	pub.GET("/books/available", c.Lending.AvailableBooks)
	pub.GET("/students", c.Student.List)
	pub.GET("/transactions", c.Lending.ListActive)
	pub.GET("/dashboard", c.Dashboard.Summary)

	// Authenticated writes
	priv := e.Group("/v1")
	priv.Use(echojwt.WithConfig(echojwt.Config{
		SigningKey:    []byte(c.JWTSecret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims { return jwt.MapClaims{} },
	}))

	priv.POST("/books", c.Book.Create)
	priv.PUT("/books/:id", c.Book.Update)
	priv.DELETE("/books/:id", c.Book.Delete)

	priv.POST("/students", c.Student.Create)
	priv.PUT("/students/:id", c.Student.Update)
	priv.DELETE("/students/:id", c.Student.Delete)

	priv.POST("/transactions/checkout", c.Lending.Checkout)
	priv.POST("/transactions/:id/return", c.Lending.Return)
}
