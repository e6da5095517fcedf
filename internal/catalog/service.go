package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"gorm.io/gorm"

	"github.com/Walid-EM/restaurantsitev0-sub000/pkg/db/models"
	"github.com/Walid-EM/restaurantsitev0-sub000/pkg/enums"
	pkgerrors "github.com/Walid-EM/restaurantsitev0-sub000/pkg/errors"
)

// Service is the catalog read model the ordering core consumes: category
// listing, product lookup, and step resolution per category.
type Service interface {
	ListCategories(ctx context.Context) ([]CategoryDTO, error)
	ListProducts(ctx context.Context, categoryKey string) ([]ProductDTO, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*ProductDTO, error)
	StepsFor(ctx context.Context, categoryKey string) ([]enums.GroupKind, error)
	ResolveProductSteps(ctx context.Context, productID uuid.UUID) (*ProductDTO, []StepDTO, error)
}

type service struct {
	repo Repository
}

// NewService builds the catalog service.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) ListCategories(ctx context.Context) ([]CategoryDTO, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list categories")
	}

	out := make([]CategoryDTO, 0, len(categories))
	for _, category := range categories {
		out = append(out, CategoryDTO{
			ID:    category.ID,
			Key:   category.Key,
			Name:  category.Name,
			Steps: resolveKinds(category.Steps),
		})
	}
	return out, nil
}

func (s *service) ListProducts(ctx context.Context, categoryKey string) ([]ProductDTO, error) {
	var categoryID *uuid.UUID
	if categoryKey != "" {
		category, err := s.findCategory(ctx, categoryKey)
		if err != nil {
			return nil, err
		}
		if category == nil {
			// Unknown category filter yields an empty listing, not an error.
			return []ProductDTO{}, nil
		}
		categoryID = &category.ID
	}

	products, err := s.repo.ListProducts(ctx, categoryID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products")
	}

	out := make([]ProductDTO, 0, len(products))
	for _, product := range products {
		out = append(out, newProductDTO(product))
	}
	return out, nil
}

func (s *service) GetProduct(ctx context.Context, id uuid.UUID) (*ProductDTO, error) {
	product, err := s.repo.FindProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	dto := newProductDTO(*product)
	return &dto, nil
}

// StepsFor resolves the ordered group kinds a category exposes. Unknown
// categories resolve to an empty list: the product is then treated as
// simple, with no configuration stage.
func (s *service) StepsFor(ctx context.Context, categoryKey string) ([]enums.GroupKind, error) {
	category, err := s.findCategory(ctx, categoryKey)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return []enums.GroupKind{}, nil
	}
	return resolveKinds(category.Steps), nil
}

// ResolveProductSteps loads the product plus its fully populated steps.
// Steps whose option group is empty are dropped so the configurator never
// presents a dead-end stage.
func (s *service) ResolveProductSteps(ctx context.Context, productID uuid.UUID) (*ProductDTO, []StepDTO, error) {
	product, err := s.repo.FindProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}

	var kinds []enums.GroupKind
	if product.Category != nil {
		kinds = resolveKinds(product.Category.Steps)
		if len(kinds) == 0 && len(product.Category.Steps) == 0 {
			// Steps may not have been preloaded through the product path.
			fresh, err := s.findCategory(ctx, product.Category.Key)
			if err != nil {
				return nil, nil, err
			}
			if fresh != nil {
				kinds = resolveKinds(fresh.Steps)
			}
		}
	}

	steps := make([]StepDTO, 0, len(kinds))
	var loadErrs error
	for _, kind := range kinds {
		options, err := s.repo.ListOptionsByKind(ctx, kind)
		if err != nil {
			loadErrs = multierr.Append(loadErrs, fmt.Errorf("options for %s: %w", kind, err))
			continue
		}
		if len(options) == 0 {
			continue
		}
		steps = append(steps, StepDTO{
			Kind:        kind,
			MultiSelect: kind.MultiSelect(),
			Options:     newOptionDTOs(options),
		})
	}
	if loadErrs != nil {
		return nil, nil, pkgerrors.Wrap(pkgerrors.CodeDependency, loadErrs, "load option groups")
	}

	dto := newProductDTO(*product)
	return &dto, steps, nil
}

func (s *service) findCategory(ctx context.Context, key string) (*models.Category, error) {
	normalized := NormalizeKey(key)
	if normalized == "" {
		return nil, nil
	}
	category, err := s.repo.FindCategoryByKey(ctx, normalized)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load category")
	}
	return category, nil
}

// resolveKinds dedupes step rows and fixes their order to the canonical
// group sequence, ignoring kinds the service does not know about.
func resolveKinds(steps []models.CategoryStep) []enums.GroupKind {
	seen := map[enums.GroupKind]bool{}
	out := make([]enums.GroupKind, 0, len(steps))
	for _, step := range steps {
		if step.GroupKind.IsValid() && !seen[step.GroupKind] {
			seen[step.GroupKind] = true
			out = append(out, step.GroupKind)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].OrderIndex() < out[j].OrderIndex()
	})
	return out
}

func newProductDTO(product models.Product) ProductDTO {
	dto := ProductDTO{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Image:       product.Image,
		PriceCents:  product.PriceCents,
		Price:       product.PriceCents.Euros(),
		IsAvailable: product.IsAvailable,
	}
	if product.Category != nil {
		dto.CategoryKey = product.Category.Key
	}
	return dto
}

func newOptionDTOs(options []models.Option) []OptionDTO {
	out := make([]OptionDTO, 0, len(options))
	for _, option := range options {
		out = append(out, OptionDTO{
			ID:         option.ID,
			Kind:       option.GroupKind,
			Name:       option.Name,
			PriceCents: option.PriceCents,
			Price:      option.PriceCents.Euros(),
			Image:      option.Image,
		})
	}
	return out
}
