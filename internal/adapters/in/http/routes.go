package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface lists the operations of api/openapi.json.
type ServerInterface interface {
	GetOrders(ctx echo.Context) error
	GetKitchenOrders(ctx echo.Context) error
	GetUserOrders(ctx echo.Context, userId int64) error
	CreateOrder(ctx echo.Context) error
	CreateUserOrder(ctx echo.Context, userId int64) error
	GetOrder(ctx echo.Context, id int64) error
	UpdateOrder(ctx echo.Context, id int64) error
	DeleteOrder(ctx echo.Context, id int64) error
	MarkOrderAsMade(ctx echo.Context, id int64) error
	ConfirmOrder(ctx echo.Context, orderId int64, slotId int64) error
	GetMenus(ctx echo.Context) error
}

// EchoRouter is satisfied by *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// serverWrapper converts echo contexts to typed parameters.
type serverWrapper struct {
	handler ServerInterface
}

// RegisterHandlersWithBaseURL mounts every operation under baseURL.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	w := serverWrapper{handler: si}

	router.GET(baseURL+"/orders", w.GetOrders)
	router.GET(baseURL+"/orders/cook", w.GetKitchenOrders)
	router.GET(baseURL+"/orders/user/:userId", w.GetUserOrders)
	router.POST(baseURL+"/order", w.CreateOrder)
	router.POST(baseURL+"/order/user/:userId", w.CreateUserOrder)
	router.GET(baseURL+"/order/:id", w.GetOrder)
	router.PUT(baseURL+"/order/:id", w.UpdateOrder)
	router.DELETE(baseURL+"/order/:id", w.DeleteOrder)
	router.PUT(baseURL+"/order/markAsMaked/:id", w.MarkOrderAsMade)
	router.PUT(baseURL+"/order/finish/:orderId/:slotId", w.ConfirmOrder)
	router.GET(baseURL+"/menus", w.GetMenus)
}

func (w serverWrapper) GetOrders(ctx echo.Context) error {
	return w.handler.GetOrders(ctx)
}

func (w serverWrapper) GetKitchenOrders(ctx echo.Context) error {
	return w.handler.GetKitchenOrders(ctx)
}

func (w serverWrapper) GetUserOrders(ctx echo.Context) error {
	userID, err := bindID(ctx, "userId")
	if err != nil {
		return err
	}
	return w.handler.GetUserOrders(ctx, userID)
}

func (w serverWrapper) CreateOrder(ctx echo.Context) error {
	return w.handler.CreateOrder(ctx)
}

func (w serverWrapper) CreateUserOrder(ctx echo.Context) error {
	userID, err := bindID(ctx, "userId")
	if err != nil {
		return err
	}
	return w.handler.CreateUserOrder(ctx, userID)
}

func (w serverWrapper) GetOrder(ctx echo.Context) error {
	id, err := bindID(ctx, "id")
	if err != nil {
		return err
	}
	return w.handler.GetOrder(ctx, id)
}

func (w serverWrapper) UpdateOrder(ctx echo.Context) error {
	id, err := bindID(ctx, "id")
	if err != nil {
		return err
	}
	return w.handler.UpdateOrder(ctx, id)
}

func (w serverWrapper) DeleteOrder(ctx echo.Context) error {
	id, err := bindID(ctx, "id")
	if err != nil {
		return err
	}
	return w.handler.DeleteOrder(ctx, id)
}

func (w serverWrapper) MarkOrderAsMade(ctx echo.Context) error {
	id, err := bindID(ctx, "id")
	if err != nil {
		return err
	}
	return w.handler.MarkOrderAsMade(ctx, id)
}

func (w serverWrapper) ConfirmOrder(ctx echo.Context) error {
	orderID, err := bindID(ctx, "orderId")
	if err != nil {
		return err
	}
	slotID, err := bindID(ctx, "slotId")
	if err != nil {
		return err
	}
	return w.handler.ConfirmOrder(ctx, orderID, slotID)
}

func (w serverWrapper) GetMenus(ctx echo.Context) error {
	return w.handler.GetMenus(ctx)
}

func bindID(ctx echo.Context, name string) (int64, error) {
	var id int64
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return id, nil
}
