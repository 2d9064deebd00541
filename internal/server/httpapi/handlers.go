package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/2018dayanan/bus-booking-admin-panel/internal/common"
	"github.com/2018dayanan/bus-booking-admin-panel/internal/server/catalog"
	"github.com/2018dayanan/bus-booking-admin-panel/internal/server/users"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type bookingRequest struct {
	TicketID string   `json:"ticketId"`
	Seats    []string `json:"seats"`
	Amount   int64    `json:"amount"`
}

type userRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Role     string `json:"role"`
	Password string `json:"password"`
}

func (r userRequest) profile() users.Profile {
	return users.Profile{Name: r.Name, Email: r.Email, Phone: r.Phone, Address: r.Address, Role: r.Role}
}

func (s *Server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return message(c, http.StatusBadRequest, "Invalid request body")
	}
	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		return message(c, http.StatusBadRequest, "Username and password are required")
	}

	ctx := c.Request().Context()
	token, user, err := s.users.Login(ctx, strings.TrimSpace(req.Username), req.Password)
	switch {
	case errors.Is(err, common.ErrUnauthorized):
		s.logger.Warn(ctx, "login rejected", "username", req.Username)
		return message(c, http.StatusUnauthorized, "Invalid username or password")
	case err != nil:
		s.logger.Error(ctx, "login failed", "error", err)
		return message(c, http.StatusInternalServerError, "Internal server error")
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": "Login successful",
		"token":   token,
		"user":    user.Record(),
	})
}

func (s *Server) verifyToken(c echo.Context) error {
	claims, msg := s.authenticate(c)
	if claims == nil {
		return c.JSON(http.StatusUnauthorized, map[string]any{"valid": false, "message": msg})
	}
	return c.JSON(http.StatusOK, map[string]any{"valid": true, "userId": claims.UserID, "role": claims.Role})
}

func (s *Server) listTickets(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"data":    s.catalog.Tickets(c.Request().Context()),
	})
}

func (s *Server) getTicket(c echo.Context) error {
	t, err := s.catalog.Ticket(c.Request().Context(), c.Param("id"))
	if err != nil {
		return s.failure(c, err, "Ticket not found")
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "data": t})
}

func (s *Server) deleteTicket(c echo.Context) error {
	if err := s.catalog.DeleteTicket(c.Request().Context(), c.Param("id")); err != nil {
		return s.failure(c, err, "Ticket not found")
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "message": "Ticket deleted"})
}

func (s *Server) createTicket(c echo.Context) error {
	var req catalog.Ticket
	if err := c.Bind(&req); err != nil {
		return message(c, http.StatusBadRequest, "Invalid request body")
	}
	t, err := s.catalog.CreateTicket(c.Request().Context(), req)
	if err != nil {
		return s.failure(c, err, "")
	}
	return c.JSON(http.StatusCreated, map[string]any{"success": true, "message": "Ticket created", "data": t})
}

func (s *Server) updateTicket(c echo.Context) error {
	var req catalog.Ticket
	if err := c.Bind(&req); err != nil {
		return message(c, http.StatusBadRequest, "Invalid request body")
	}
	t, err := s.catalog.UpdateTicket(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return s.failure(c, err, "Ticket not found")
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "message": "Ticket updated", "data": t})
}

func (s *Server) listUsers(c echo.Context) error {
	list, err := s.users.List(c.Request().Context())
	if err != nil {
		return s.failure(c, err, "")
	}

	records := make([]map[string]any, 0, len(list))
	for _, u := range list {
		records = append(records, u.Record())
	}
	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"data":    map[string]any{"users": records, "total": len(records)},
	})
}

func (s *Server) getUser(c echo.Context) error {
	u, err := s.users.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return s.failure(c, err, "User not found")
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "data": u.Record()})
}

func (s *Server) createUser(c echo.Context) error {
	var req userRequest
	if err := c.Bind(&req); err != nil {
		return message(c, http.StatusBadRequest, "Invalid request body")
	}
	u, err := s.users.CreateUser(c.Request().Context(), req.Username, req.profile(), req.Password)
	if err != nil {
		return s.failure(c, err, "")
	}
	return c.JSON(http.StatusCreated, map[string]any{"success": true, "message": "User created", "data": u.Record()})
}

func (s *Server) updateUser(c echo.Context) error {
	var req userRequest
	if err := c.Bind(&req); err != nil {
		return message(c, http.StatusBadRequest, "Invalid request body")
	}
	u, err := s.users.UpdateUser(c.Request().Context(), c.Param("id"), req.profile())
	if err != nil {
		return s.failure(c, err, "User not found")
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "message": "User updated", "data": u.Record()})
}

func (s *Server) deleteUser(c echo.Context) error {
	var actingID string
	if claims := claimsFrom(c); claims != nil {
		actingID = claims.UserID
	}
	if err := s.users.DeleteUser(c.Request().Context(), c.Param("id"), actingID); err != nil {
		return s.failure(c, err, "User not found")
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "message": "User deleted"})
}

func (s *Server) listBookings(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"data":    map[string]any{"bookings": s.catalog.Bookings(c.Request().Context())},
	})
}

func (s *Server) createBooking(c echo.Context) error {
	var req bookingRequest
	if err := c.Bind(&req); err != nil {
		return message(c, http.StatusBadRequest, "Invalid request body")
	}

	var userID string
	if claims := claimsFrom(c); claims != nil {
		userID = claims.UserID
	}

	b, err := s.catalog.Book(c.Request().Context(), req.TicketID, userID, req.Seats, req.Amount)
	if err != nil {
		return s.failure(c, err, "Ticket not found")
	}
	return c.JSON(http.StatusCreated, map[string]any{"success": true, "message": "Booking created", "data": b})
}

// failure maps service errors to responses: not found → 404 with notFound,
// validation → 400, duplicates → 409, anything else → 500.
func (s *Server) failure(c echo.Context, err error, notFound string) error {
	var vErr *common.ValidationError
	switch {
	case errors.Is(err, common.ErrNotFound):
		return message(c, http.StatusNotFound, notFound)
	case errors.As(err, &vErr):
		return message(c, http.StatusBadRequest, vErr.Error())
	case errors.Is(err, common.ErrAlreadyExists):
		return message(c, http.StatusConflict, "A user with this username, email or phone already exists")
	}
	s.logger.Error(c.Request().Context(), "request failed", "error", err)
	return message(c, http.StatusInternalServerError, "Internal server error")
}
