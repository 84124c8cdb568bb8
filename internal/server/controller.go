package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/salad-karo/storefront/internal/models"
	"github.com/salad-karo/storefront/internal/usecase"
)

type Controller interface {
	Health(c echo.Context) error
	ListSalads(c echo.Context) error
	PlaceOrder(c echo.Context) error
	RegisterUser(c echo.Context) error
	UpsertCartItem(c echo.Context) error
	RemoveCartItem(c echo.Context) error
	AddFavorite(c echo.Context) error
	RemoveFavorite(c echo.Context) error
}

type controller struct {
	catalogUsecase usecase.CatalogUsecase
	orderUsecase   usecase.OrderUsecase
	userUsecase    usecase.UserUsecase
	mirrorUsecase  usecase.MirrorUsecase
}

func NewHandler(
	catalogUsecase usecase.CatalogUsecase,
	orderUsecase usecase.OrderUsecase,
	userUsecase usecase.UserUsecase,
	mirrorUsecase usecase.MirrorUsecase,
) Controller {
	return &controller{
		catalogUsecase: catalogUsecase,
		orderUsecase:   orderUsecase,
		userUsecase:    userUsecase,
		mirrorUsecase:  mirrorUsecase,
	}
}

func (h *controller) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "salad-karo",
	})
}

func (h *controller) ListSalads(c echo.Context) error {
	ctx := c.Request().Context()
	salads, err := h.catalogUsecase.ListActiveSalads(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if salads == nil {
		salads = []*models.Salad{}
	}
	return c.JSON(http.StatusOK, salads)
}

func (h *controller) PlaceOrder(c echo.Context) error {
	var order models.Order
	if err := c.Bind(&order); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	ctx := c.Request().Context()
	created, err := h.orderUsecase.PlaceOrder(ctx, &order)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *controller) RegisterUser(c echo.Context) error {
	var user models.User
	if err := c.Bind(&user); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(user); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	created, err := h.userUsecase.Register(ctx, &user)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *controller) UpsertCartItem(c echo.Context) error {
	var req models.CartMirrorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	if err := h.mirrorUsecase.CartUpserted(ctx, req.ProductID, req.Quantity); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *controller) RemoveCartItem(c echo.Context) error {
	var req models.CartMirrorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	if err := h.mirrorUsecase.CartRemoved(ctx, req.ProductID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *controller) AddFavorite(c echo.Context) error {
	var req models.FavoriteMirrorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	if err := h.mirrorUsecase.FavoriteAdded(ctx, req.ProductID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *controller) RemoveFavorite(c echo.Context) error {
	var req models.FavoriteMirrorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	if err := h.mirrorUsecase.FavoriteRemoved(ctx, req.ProductID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
