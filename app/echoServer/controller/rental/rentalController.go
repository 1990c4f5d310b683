package rental

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/perpetual-pelican/vidly-backend/app/echoServer/validation"
	"github.com/perpetual-pelican/vidly-backend/model"
	"github.com/perpetual-pelican/vidly-backend/queue"
	rs "github.com/perpetual-pelican/vidly-backend/service/rental"
)

type Controller struct {
	Svc rs.Service
	V   *validation.Validator
	Pub *queue.Publisher
	Log *slog.Logger
}

// GET /api/rentals
func (h *Controller) List(c echo.Context) error {
	rows, err := h.Svc.List(c.Request().Context())
	if err != nil {
		h.Log.Error("rental list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /api/rentals/:id
func (h *Controller) Detail(c echo.Context) error {
	id, _ := c.Get("id").(string)
	rec, err := h.Svc.ByID(c.Request().Context(), id)
	if err != nil {
		h.Log.Error("rental detail", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	if rec == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "The rental with the given ID was not found."})
	}
	return c.JSON(http.StatusOK, rec)
}

// Rent a movie
// @Summary      Rent a movie
// @Description  Atomically decrements stock and creates the rental
// @Tags         rentals
// @Accept       json
// @Produce      json
// @Param        payload  body  model.RentalReq  true  "Customer and movie ids"
// @Success      200  {object}  model.Rental
// @Failure      400  {object}  map[string]any "invalid ids, out of stock, already renting"
// @Failure      500  {object}  map[string]any "transaction failed, data unchanged"
// @Router       /api/rentals [post]
func (h *Controller) Create(c echo.Context) error {
	var req model.RentalReq
	if err := validation.BindStrict(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}

	rec, err := h.Svc.Rent(c.Request().Context(), req.CustomerID, req.MovieID)
	if err != nil {
		switch rs.Code(err) {
		case rs.ErrInvalidCustomer:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid customer id"})
		case rs.ErrInvalidMovie:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid movie id"})
		case rs.ErrOutOfStock:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Movie out of stock"})
		case rs.ErrAlreadyRenting:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Customer is already renting this movie"})
		default:
			h.Log.Error("rent transaction failed", "err", err, "customer_id", req.CustomerID, "movie_id", req.MovieID)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Transaction failed. Data unchanged."})
		}
	}

	h.publish(c, queue.RentalCreated, rec)
	return c.JSON(http.StatusOK, rec)
}

// Return a movie
// @Summary      Return a rented movie
// @Description  Closes the active rental, computes the fee and restores stock
// @Tags         returns
// @Accept       json
// @Produce      json
// @Param        payload  body  model.RentalReq  true  "Customer and movie ids"
// @Success      200  {object}  model.Rental
// @Failure      404  {object}  map[string]any "no active rental"
// @Router       /api/returns [post]
func (h *Controller) Return(c echo.Context) error {
	var req model.RentalReq
	if err := validation.BindStrict(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}

	rec, err := h.Svc.Return(c.Request().Context(), req.CustomerID, req.MovieID)
	if err != nil {
		if rs.Code(err) == rs.ErrNoActiveRental {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "No active rental for customer and movie"})
		}
		h.Log.Error("return transaction failed", "err", err, "customer_id", req.CustomerID, "movie_id", req.MovieID)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Transaction failed. Data unchanged."})
	}

	h.publish(c, queue.RentalReturned, rec)
	return c.JSON(http.StatusOK, rec)
}

// DELETE /api/rentals/:id (admin) — cancel a rental; an active one has
// its stock restored atomically with the delete.
func (h *Controller) Delete(c echo.Context) error {
	id, _ := c.Get("id").(string)
	rec, err := h.Svc.ByID(c.Request().Context(), id)
	if err != nil {
		h.Log.Error("rental lookup", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	if rec == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "The rental with the given ID was not found."})
	}

	if err := h.Svc.Cancel(c.Request().Context(), rec); err != nil {
		h.Log.Error("cancel transaction failed", "err", err, "rental_id", rec.ID)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Transaction failed. Data unchanged."})
	}

	h.publish(c, queue.RentalCanceled, rec)
	return c.JSON(http.StatusOK, rec)
}

func (h *Controller) publish(c echo.Context, typ string, rec *model.Rental) {
	if h.Pub == nil {
		return
	}
	_ = h.Pub.Publish(c.Request().Context(), queue.RentalEvent{
		Type:       typ,
		RentalID:   rec.ID,
		CustomerID: rec.Customer.ID,
		MovieID:    rec.Movie.ID,
		MovieTitle: rec.Movie.Title,
		RentalFee:  rec.RentalFee,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	})
}
