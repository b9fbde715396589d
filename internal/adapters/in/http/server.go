package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"myfood/internal/core/application/usecases"
	"myfood/internal/core/application/usecases/commands"
	"myfood/internal/core/application/usecases/queries"
	"myfood/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

type createOrderHandler interface {
	Handle(ctx context.Context, cmd commands.CreateOrderCommand) (kernel.ID, error)
}

type updateOrderHandler interface {
	Handle(ctx context.Context, cmd commands.UpdateOrderCommand) error
}

type deleteOrderHandler interface {
	Handle(ctx context.Context, cmd commands.DeleteOrderCommand) error
}

type markOrderAsMadeHandler interface {
	Handle(ctx context.Context, cmd commands.MarkOrderAsMadeCommand) error
}

type confirmOrderHandler interface {
	Handle(ctx context.Context, cmd commands.ConfirmOrderCommand) error
}

type getAllOrdersHandler interface {
	Handle(ctx context.Context, query queries.GetAllOrdersQuery) ([]queries.OrderProjection, error)
}

type getOrderHandler interface {
	Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderProjection, error)
}

type getKitchenOrdersHandler interface {
	Handle(ctx context.Context, query queries.GetKitchenOrdersQuery) ([]queries.OrderProjection, error)
}

type getUserOrdersHandler interface {
	Handle(ctx context.Context, query queries.GetUserOrdersQuery) ([]queries.OrderProjection, error)
}

type getVisibleMenusHandler interface {
	Handle(ctx context.Context, query queries.GetVisibleMenusQuery) ([]queries.MenuView, error)
}

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	CreateOrder     createOrderHandler
	UpdateOrder     updateOrderHandler
	DeleteOrder     deleteOrderHandler
	MarkOrderAsMade markOrderAsMadeHandler
	ConfirmOrder    confirmOrderHandler

	GetAllOrders     getAllOrdersHandler
	GetOrder         getOrderHandler
	GetKitchenOrders getKitchenOrdersHandler
	GetUserOrders    getUserOrdersHandler
	GetVisibleMenus  getVisibleMenusHandler
}

// Server implements ServerInterface on top of the command and query handlers.
// Commands report no state, so every route that answers with an order reads
// the projection back after the command committed.
type Server struct {
	h      Handlers
	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		h:      handlers,
		logger: logger.With("component", "http_server"),
	}
}

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	orders, err := s.h.GetAllOrders.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrders(orders))
}

// GetOrder handles GET /api/v1/order/{id}. An unknown order is a 404 with no body.
func (s *Server) GetOrder(ctx echo.Context, id int64) error {
	orderID, err := kernel.NewID(id)
	if err != nil {
		return ctx.NoContent(http.StatusNotFound)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	order, err := s.h.GetOrder.Handle(ctx.Request().Context(), query)
	if errors.Is(err, usecases.ErrOrderNotFound) {
		return ctx.NoContent(http.StatusNotFound)
	}
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrder(order))
}

// CreateOrder handles POST /api/v1/order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	cmd, err := commands.NewCreateOrderCommand(nil)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.createOrder(ctx, cmd)
}

// CreateUserOrder handles POST /api/v1/order/user/{userId}. An unknown user is
// a 404 with no body.
func (s *Server) CreateUserOrder(ctx echo.Context, userId int64) error {
	userID, err := kernel.NewID(userId)
	if err != nil {
		return ctx.NoContent(http.StatusNotFound)
	}

	cmd, err := commands.NewCreateOrderCommand(&userID)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.createOrder(ctx, cmd)
}

func (s *Server) createOrder(ctx echo.Context, cmd commands.CreateOrderCommand) error {
	orderID, err := s.h.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if errors.Is(err, usecases.ErrUserNotFound) {
		return ctx.NoContent(http.StatusNotFound)
	}
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.respondWithOrder(ctx, http.StatusOK, orderID)
}

// UpdateOrder handles PUT /api/v1/order/{id}. A missing order wins over a
// malformed body.
func (s *Server) UpdateOrder(ctx echo.Context, id int64) error {
	var body UpdateOrder
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, invalidRequest("Invalid request body"))
	}

	orderID, err := kernel.NewID(id)
	if err != nil {
		return s.fail(ctx, usecases.ErrOrderNotFound)
	}

	cmd, err := newUpdateOrderCommand(orderID, body)
	if err != nil {
		if lookupErr := s.orderExists(ctx, orderID); lookupErr != nil {
			return s.fail(ctx, lookupErr)
		}
		return s.fail(ctx, err)
	}

	if err = s.h.UpdateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return s.respondWithOrder(ctx, http.StatusOK, orderID)
}

// DeleteOrder handles DELETE /api/v1/order/{id}.
func (s *Server) DeleteOrder(ctx echo.Context, id int64) error {
	orderID, err := kernel.NewID(id)
	if err != nil {
		return s.fail(ctx, usecases.ErrOrderNotFound)
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetKitchenOrders handles GET /api/v1/orders/cook.
func (s *Server) GetKitchenOrders(ctx echo.Context) error {
	orders, err := s.h.GetKitchenOrders.Handle(ctx.Request().Context(), queries.NewGetKitchenOrdersQuery())
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrders(orders))
}

// GetUserOrders handles GET /api/v1/orders/user/{userId}. An unknown user is a
// 404 with no body.
func (s *Server) GetUserOrders(ctx echo.Context, userId int64) error {
	userID, err := kernel.NewID(userId)
	if err != nil {
		return ctx.NoContent(http.StatusNotFound)
	}

	query, err := queries.NewGetUserOrdersQuery(userID)
	if err != nil {
		return s.fail(ctx, err)
	}

	orders, err := s.h.GetUserOrders.Handle(ctx.Request().Context(), query)
	if errors.Is(err, usecases.ErrUserNotFound) {
		return ctx.NoContent(http.StatusNotFound)
	}
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrders(orders))
}

// MarkOrderAsMade handles PUT /api/v1/order/markAsMaked/{id}.
func (s *Server) MarkOrderAsMade(ctx echo.Context, id int64) error {
	orderID, err := kernel.NewID(id)
	if err != nil {
		return s.fail(ctx, usecases.ErrOrderNotFound)
	}

	cmd, err := commands.NewMarkOrderAsMadeCommand(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.MarkOrderAsMade.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return s.respondWithOrder(ctx, http.StatusOK, orderID)
}

// ConfirmOrder handles PUT /api/v1/order/finish/{orderId}/{slotId}. A
// non-positive slot id reaches the handler as an unassigned ID so the order
// checks still run first.
func (s *Server) ConfirmOrder(ctx echo.Context, orderId int64, slotId int64) error {
	orderID, err := kernel.NewID(orderId)
	if err != nil {
		return s.fail(ctx, usecases.ErrOrderNotFound)
	}
	var slotID kernel.ID
	if slotId > 0 {
		if slotID, err = kernel.NewID(slotId); err != nil {
			return s.fail(ctx, err)
		}
	}

	cmd, err := commands.NewConfirmOrderCommand(orderID, slotID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.ConfirmOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return s.respondWithOrder(ctx, http.StatusAccepted, orderID)
}

// GetMenus handles GET /api/v1/menus.
func (s *Server) GetMenus(ctx echo.Context) error {
	menus, err := s.h.GetVisibleMenus.Handle(ctx.Request().Context(), queries.NewGetVisibleMenusQuery())
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toMenus(menus))
}

func (s *Server) respondWithOrder(ctx echo.Context, status int, orderID kernel.ID) error {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	order, err := s.h.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(status, toOrder(order))
}

func (s *Server) orderExists(ctx echo.Context, orderID kernel.ID) error {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return err
	}
	_, err = s.h.GetOrder.Handle(ctx.Request().Context(), query)
	return err
}

func (s *Server) fail(ctx echo.Context, err error) error {
	status, body := errorResponse(err)
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method, "path", ctx.Path(), "error", err)
	}
	return ctx.JSON(status, body)
}

func newUpdateOrderCommand(orderID kernel.ID, body UpdateOrder) (commands.UpdateOrderCommand, error) {
	userID, err := optionalID(body.UserId)
	if err != nil {
		return commands.UpdateOrderCommand{}, err
	}
	slotID, err := optionalID(body.SlotId)
	if err != nil {
		return commands.UpdateOrderCommand{}, err
	}
	return commands.NewUpdateOrderCommand(orderID, body.Maked, userID, slotID, body.ActualDate)
}

func optionalID(raw *int64) (*kernel.ID, error) {
	if raw == nil {
		return nil, nil //nolint:nilnil // absent identity
	}
	id, err := kernel.NewID(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
