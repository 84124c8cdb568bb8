// Package mirror is the best-effort client for the remote cart and
// favorites endpoints. Callers spawn these notifications after committing
// a local mutation and only ever log the result; a failure never changes
// local state.
package mirror

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/salad-karo/storefront/internal/config"
	"github.com/salad-karo/storefront/internal/models"
	"github.com/salad-karo/storefront/pkg/util"
)

type Client interface {
	CartAdded(ctx context.Context, productID string, quantity int) error
	CartRemoved(ctx context.Context, productID string) error
	FavoriteAdded(ctx context.Context, productID string) error
	FavoriteRemoved(ctx context.Context, productID string) error
}

type client struct {
	http *resty.Client
}

func NewClient(cfg *config.Config) Client {
	httpClient := util.NewRestyClient().
		SetBaseURL(cfg.Mirror.BaseURL)
	return &client{http: httpClient}
}

func (c *client) CartAdded(ctx context.Context, productID string, quantity int) error {
	body := models.CartMirrorRequest{ProductID: productID, Quantity: quantity}
	return c.send(ctx, resty.MethodPost, "/api/cart", body)
}

func (c *client) CartRemoved(ctx context.Context, productID string) error {
	body := models.CartMirrorRequest{ProductID: productID}
	return c.send(ctx, resty.MethodDelete, "/api/cart", body)
}

func (c *client) FavoriteAdded(ctx context.Context, productID string) error {
	body := models.FavoriteMirrorRequest{ProductID: productID}
	return c.send(ctx, resty.MethodPost, "/api/favorites", body)
}

func (c *client) FavoriteRemoved(ctx context.Context, productID string) error {
	body := models.FavoriteMirrorRequest{ProductID: productID}
	return c.send(ctx, resty.MethodDelete, "/api/favorites", body)
}

func (c *client) send(ctx context.Context, method, path string, body any) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	if resp.IsError() {
		return fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode())
	}
	return nil
}
