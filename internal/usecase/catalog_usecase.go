package usecase

import (
	"context"
	"fmt"

	log "github.com/carousell/ct-go/pkg/logger/log_context"
	"github.com/salad-karo/storefront/internal/catalog"
	"github.com/salad-karo/storefront/internal/models"
	"github.com/salad-karo/storefront/internal/repo/mongodb"
	"github.com/salad-karo/storefront/pkg/util"
)

type CatalogUsecase interface {
	ListActiveSalads(ctx context.Context) ([]*models.Salad, error)
	SeedCatalog(ctx context.Context) error
}

type catalogUsecase struct {
	saladRepo mongodb.SaladRepository
}

func NewCatalogUsecase(saladRepo mongodb.SaladRepository) CatalogUsecase {
	return &catalogUsecase{
		saladRepo: saladRepo,
	}
}

func (uc *catalogUsecase) ListActiveSalads(ctx context.Context) ([]*models.Salad, error) {
	salads, err := uc.saladRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list salads: %w", err)
	}
	return salads, nil
}

// SeedCatalog loads the static catalog into the salads collection when it
// is empty. Runs once at startup.
func (uc *catalogUsecase) SeedCatalog(ctx context.Context) error {
	count, err := uc.saladRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count salads: %w", err)
	}
	if count > 0 {
		return nil
	}

	salads := util.ConvertList(catalog.Products(), func(p models.Product) *models.Salad {
		return &models.Salad{
			ProductID:     catalog.NormalizeID(p.ID),
			Name:          p.Name,
			Description:   p.Description,
			Price:         p.Price,
			OriginalPrice: p.OriginalPrice,
			Image:         p.Image,
			Rating:        p.Rating,
			Reviews:       p.Reviews,
			Badge:         p.Badge,
			IsActive:      true,
		}
	})

	if err := uc.saladRepo.CreateMany(ctx, salads); err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}
	log.Infow(ctx, "seeded salad catalog", "count", len(salads))
	return nil
}
