package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/yourorg/catalog/internal/apperrors"
	"github.com/yourorg/catalog/internal/models"
	"github.com/yourorg/catalog/internal/repository"
)

// ProductRepository is the store contract: keyed CRUD plus the
// filter/sort/paginate listing. Both the memory and postgres backends
// satisfy it.
type ProductRepository interface {
	Create(ctx context.Context, p models.Product) (*models.Product, error)
	GetByID(ctx context.Context, id int) (*models.Product, error)
	Update(ctx context.Context, p models.Product) error
	Delete(ctx context.Context, id int) (*models.Product, error)
	List(ctx context.Context, q models.ProductQuery) ([]models.Product, error)
}

type ProductService struct {
	repo ProductRepository
}

func NewProductService(repo ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

func (s *ProductService) CreateProduct(ctx context.Context, p models.Product) (*models.Product, error) {
	// The store assigns the identifier; any client-supplied ID is ignored.
	p.ID = 0
	return s.repo.Create(ctx, p)
}

func (s *ProductService) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("product", strconv.Itoa(id))
		}
		return nil, err
	}
	return product, nil
}

// UpdateProduct replaces the full record. A stale-update signal from
// the store is recovered only when the record has also disappeared;
// otherwise it propagates as an optimistic-lock failure with no retry.
func (s *ProductService) UpdateProduct(ctx context.Context, p models.Product) error {
	err := s.repo.Update(ctx, p)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return apperrors.NewNotFoundError("product", strconv.Itoa(p.ID))
	case errors.Is(err, repository.ErrConflict):
		if _, getErr := s.repo.GetByID(ctx, p.ID); errors.Is(getErr, repository.ErrNotFound) {
			return apperrors.NewNotFoundError("product", strconv.Itoa(p.ID))
		}
		return apperrors.NewOptimisticLockError("product", strconv.Itoa(p.ID))
	default:
		return err
	}
}

// DeleteProduct removes the record and returns what was deleted.
func (s *ProductService) DeleteProduct(ctx context.Context, id int) (*models.Product, error) {
	product, err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("product", strconv.Itoa(id))
		}
		return nil, err
	}
	return product, nil
}

func (s *ProductService) ListProducts(ctx context.Context, q models.ProductQuery) ([]models.Product, error) {
	return s.repo.List(ctx, q)
}
