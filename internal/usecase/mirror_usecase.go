package usecase

import (
	"context"
	"fmt"

	"github.com/salad-karo/storefront/internal/catalog"
	"github.com/salad-karo/storefront/internal/repo/mongodb"
)

// MirrorUsecase receives the best-effort notifications the storefront
// session sends after local mutations. Identifiers are normalized at this
// boundary; deltas for unknown products are still recorded because the
// client's local store is authoritative.
type MirrorUsecase interface {
	CartUpserted(ctx context.Context, productID any, quantity int) error
	CartRemoved(ctx context.Context, productID any) error
	FavoriteAdded(ctx context.Context, productID any) error
	FavoriteRemoved(ctx context.Context, productID any) error
}

type mirrorUsecase struct {
	cartEventRepo mongodb.CartEventRepository
	favoriteRepo  mongodb.FavoriteRepository
}

func NewMirrorUsecase(
	cartEventRepo mongodb.CartEventRepository,
	favoriteRepo mongodb.FavoriteRepository,
) MirrorUsecase {
	return &mirrorUsecase{
		cartEventRepo: cartEventRepo,
		favoriteRepo:  favoriteRepo,
	}
}

func (uc *mirrorUsecase) CartUpserted(ctx context.Context, productID any, quantity int) error {
	id, err := normalizeID(productID)
	if err != nil {
		return err
	}
	return uc.cartEventRepo.Upsert(ctx, id, quantity)
}

func (uc *mirrorUsecase) CartRemoved(ctx context.Context, productID any) error {
	id, err := normalizeID(productID)
	if err != nil {
		return err
	}
	return uc.cartEventRepo.Delete(ctx, id)
}

func (uc *mirrorUsecase) FavoriteAdded(ctx context.Context, productID any) error {
	id, err := normalizeID(productID)
	if err != nil {
		return err
	}
	return uc.favoriteRepo.Add(ctx, id)
}

func (uc *mirrorUsecase) FavoriteRemoved(ctx context.Context, productID any) error {
	id, err := normalizeID(productID)
	if err != nil {
		return err
	}
	return uc.favoriteRepo.Remove(ctx, id)
}

func normalizeID(v any) (string, error) {
	id := catalog.NormalizeID(v)
	if id == "" {
		return "", fmt.Errorf("invalid product id: %v", v)
	}
	return id, nil
}
