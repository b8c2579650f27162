package category

import (
	"Culinary-Assistant/domain"
	"Culinary-Assistant/entities"
	"Culinary-Assistant/pkg/database"
	"context"
)

type (
	CategoryService interface {
		CreateCategory(ctx context.Context, req domain.CategoryRequest) (domain.CategoryResponse, error)
		UpdateCategory(ctx context.Context, id uint, req domain.CategoryRequest) (domain.CategoryResponse, error)
		DeleteCategory(ctx context.Context, id uint) error
		GetCategories(ctx context.Context) ([]domain.CategoryResponse, error)
		GetCategoryByID(ctx context.Context, id uint) (domain.CategoryResponse, error)
	}

	categoryService struct {
		categoryRepository CategoryRepository
	}
)

func NewCategoryService(categoryRepository CategoryRepository) CategoryService {
	return &categoryService{categoryRepository: categoryRepository}
}

func (s *categoryService) CreateCategory(ctx context.Context, req domain.CategoryRequest) (domain.CategoryResponse, error) {
	category, err := entities.NewCategory(req.Name, req.Description, req.IconName)
	if err != nil {
		return domain.CategoryResponse{}, err
	}

	taken, err := s.categoryRepository.NameExists(ctx, category.Name, 0)
	if err != nil {
		return domain.CategoryResponse{}, err
	}
	if taken {
		return domain.CategoryResponse{}, domain.ErrCategoryNameConflict(category.Name)
	}

	if err := s.categoryRepository.CreateCategory(ctx, category); err != nil {
		return domain.CategoryResponse{}, err
	}

	return s.toResponse(ctx, category)
}

func (s *categoryService) UpdateCategory(ctx context.Context, id uint, req domain.CategoryRequest) (domain.CategoryResponse, error) {
	category, err := s.categoryRepository.GetCategoryByID(ctx, id)
	if err != nil {
		if database.IsNotFound(err) {
			return domain.CategoryResponse{}, domain.ErrCategoryNotFound
		}
		return domain.CategoryResponse{}, err
	}

	if err := category.SetName(req.Name); err != nil {
		return domain.CategoryResponse{}, err
	}
	category.SetDescription(req.Description)
	category.SetIconName(req.IconName)

	taken, err := s.categoryRepository.NameExists(ctx, category.Name, category.ID)
	if err != nil {
		return domain.CategoryResponse{}, err
	}
	if taken {
		return domain.CategoryResponse{}, domain.ErrCategoryNameConflict(category.Name)
	}

	if err := s.categoryRepository.UpdateCategory(ctx, category); err != nil {
		return domain.CategoryResponse{}, err
	}

	return s.toResponse(ctx, category)
}

func (s *categoryService) DeleteCategory(ctx context.Context, id uint) error {
	if _, err := s.categoryRepository.GetCategoryByID(ctx, id); err != nil {
		if database.IsNotFound(err) {
			return domain.ErrCategoryNotFound
		}
		return err
	}
	return s.categoryRepository.DeleteCategory(ctx, id)
}

func (s *categoryService) GetCategories(ctx context.Context) ([]domain.CategoryResponse, error) {
	categories, err := s.categoryRepository.GetCategories(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		res, err := s.toResponse(ctx, category)
		if err != nil {
			return nil, err
		}
		response = append(response, res)
	}
	return response, nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, id uint) (domain.CategoryResponse, error) {
	category, err := s.categoryRepository.GetCategoryByID(ctx, id)
	if err != nil {
		if database.IsNotFound(err) {
			return domain.CategoryResponse{}, domain.ErrCategoryNotFound
		}
		return domain.CategoryResponse{}, err
	}
	return s.toResponse(ctx, category)
}

func (s *categoryService) toResponse(ctx context.Context, category *entities.Category) (domain.CategoryResponse, error) {
	recipeCount, err := s.categoryRepository.CountRecipes(ctx, category.ID)
	if err != nil {
		return domain.CategoryResponse{}, err
	}
	return domain.CategoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
		IconName:    category.IconName,
		RecipeCount: int(recipeCount),
	}, nil
}
