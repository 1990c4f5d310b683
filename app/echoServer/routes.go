package echoServer

import (
	"github.com/labstack/echo/v4"

	"github.com/perpetual-pelican/vidly-backend/app/echoServer/controller/customer"
	"github.com/perpetual-pelican/vidly-backend/app/echoServer/controller/genre"
	"github.com/perpetual-pelican/vidly-backend/app/echoServer/controller/movie"
	"github.com/perpetual-pelican/vidly-backend/app/echoServer/controller/rental"
	"github.com/perpetual-pelican/vidly-backend/app/echoServer/controller/user"
)

type C struct {
	Customer *customer.Controller
	Genre    *genre.Controller
	Movie    *movie.Controller
	Rental   *rental.Controller
	User     *user.Controller

	JWTSecret string
}

func Register(e *echo.Echo, c C) {
	api := e.Group("/api")

	auth := JWTAuth(c.JWTSecret)
	admin := Admin()
	id := ValidateID()

	// Genres: public reads
	api.GET("/genres", c.Genre.List)
	api.GET("/genres/:id", c.Genre.Detail, id)
	api.POST("/genres", c.Genre.Create, auth)
	api.PUT("/genres/:id", c.Genre.Update, auth, id)
	api.DELETE("/genres/:id", c.Genre.Delete, auth, admin, id)

	// Customers
	api.GET("/customers", c.Customer.List, auth)
	api.GET("/customers/:id", c.Customer.Detail, auth, id)
	api.POST("/customers", c.Customer.Create, auth)
	api.PUT("/customers/:id", c.Customer.Update, auth, id)
	api.DELETE("/customers/:id", c.Customer.Delete, auth, admin, id)

	// Movies: public reads
	api.GET("/movies", c.Movie.List)
	api.GET("/movies/:id", c.Movie.Detail, id)
	api.POST("/movies", c.Movie.Create, auth)
	api.PUT("/movies/:id", c.Movie.Update, auth, id)
	api.DELETE("/movies/:id", c.Movie.Delete, auth, admin, id)

	// Rentals and returns
	api.GET("/rentals", c.Rental.List, auth)
	api.GET("/rentals/:id", c.Rental.Detail, auth, id)
	api.POST("/rentals", c.Rental.Create, auth)
	api.DELETE("/rentals/:id", c.Rental.Delete, auth, admin, id)
	api.POST("/returns", c.Rental.Return, auth)

	// Users
	api.POST("/users", c.User.Register)
	api.GET("/users/me", c.User.Me, auth)
	api.GET("/users", c.User.List, auth, admin)
	api.POST("/login", c.User.Login)
}
