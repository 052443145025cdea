package recipe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"frescoguard/domain"
	"frescoguard/entities"
	"frescoguard/pkg/metrics"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		GenerateRecipe(ctx context.Context, req domain.GenerateRecipeRequest) (domain.GeneratedRecipe, error)
		SaveRecipe(ctx context.Context, req domain.SaveRecipeRequest, userID string) (domain.Recipe, error)
		GetRecipes(ctx context.Context, userID string) ([]domain.Recipe, error)
		DeleteRecipe(ctx context.Context, id string, userID string) error
	}

	recipeService struct {
		recipeRepository RecipeRepository
		generator        Generator
	}
)

func NewRecipeService(recipeRepository RecipeRepository, generator Generator) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		generator:        generator,
	}
}

func (s *recipeService) GenerateRecipe(ctx context.Context, req domain.GenerateRecipeRequest) (domain.GeneratedRecipe, error) {
	recipe, err := s.generator.Generate(ctx, req.Ingredients)
	if err != nil {
		return domain.GeneratedRecipe{}, err
	}
	metrics.RecipesGenerated.WithLabelValues("request").Inc()
	return recipe, nil
}

func (s *recipeService) SaveRecipe(ctx context.Context, req domain.SaveRecipeRequest, userID string) (domain.Recipe, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.Recipe{}, domain.ErrParseUUID
	}

	ingredients, err := toJSON(req.Ingredients)
	if err != nil {
		return domain.Recipe{}, err
	}
	steps, err := toJSON(req.Steps)
	if err != nil {
		return domain.Recipe{}, err
	}
	foodIDs, err := toJSON(req.FoodIDs)
	if err != nil {
		return domain.Recipe{}, err
	}

	recipe := &entities.Recipe{
		ID:          uuid.New(),
		UserID:      userUUID,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Ingredients: ingredients,
		Steps:       steps,
		CookingTime: req.CookingTime,
		Difficulty:  req.Difficulty,
		FoodIDs:     foodIDs,
	}
	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		return domain.Recipe{}, fmt.Errorf("create recipe: %w", err)
	}
	return toDomain(recipe), nil
}

func (s *recipeService) GetRecipes(ctx context.Context, userID string) ([]domain.Recipe, error) {
	recipes, err := s.recipeRepository.GetRecipes(ctx, userID)
	if err != nil {
		return nil, err
	}

	res := make([]domain.Recipe, 0, len(recipes))
	for _, r := range recipes {
		res = append(res, toDomain(r))
	}
	return res, nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id string, userID string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrRecipeNotFound
	}
	if err := s.recipeRepository.DeleteRecipe(ctx, id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}
	return nil
}

func toJSON(values []string) (datatypes.JSON, error) {
	if values == nil {
		values = []string{}
	}
	b, err := json.Marshal(values)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}

func fromJSON(raw datatypes.JSON) []string {
	values := []string{}
	if len(raw) == 0 {
		return values
	}
	if err := json.Unmarshal(raw, &values); err != nil {
		return []string{}
	}
	return values
}

func toDomain(r *entities.Recipe) domain.Recipe {
	return domain.Recipe{
		ID:          r.ID.String(),
		Title:       r.Title,
		Description: r.Description,
		Ingredients: fromJSON(r.Ingredients),
		Steps:       fromJSON(r.Steps),
		CookingTime: r.CookingTime,
		Difficulty:  r.Difficulty,
		FoodIDs:     fromJSON(r.FoodIDs),
		CreatedAt:   r.CreatedAt,
	}
}
