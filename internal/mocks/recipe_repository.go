package mocks

import (
	"context"
	"frescoguard/entities"
	"sort"
	"sync"
	"time"

	"gorm.io/gorm"
)

type RecipeRepository struct {
	mu      sync.Mutex
	Recipes []*entities.Recipe
	Err     error
}

func (r *RecipeRepository) CreateRecipe(_ context.Context, recipe *entities.Recipe) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	now := time.Now()
	recipe.CreatedAt, recipe.UpdatedAt = now, now
	clone := *recipe
	r.Recipes = append(r.Recipes, &clone)
	return nil
}

func (r *RecipeRepository) GetRecipeByID(_ context.Context, id string, userID string) (*entities.Recipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	for _, recipe := range r.Recipes {
		if recipe.ID.String() == id && recipe.UserID.String() == userID {
			clone := *recipe
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *RecipeRepository) GetRecipes(_ context.Context, userID string) ([]*entities.Recipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	var res []*entities.Recipe
	for _, recipe := range r.Recipes {
		if recipe.UserID.String() == userID {
			clone := *recipe
			res = append(res, &clone)
		}
	}
	sort.SliceStable(res, func(i, j int) bool { return res[i].CreatedAt.After(res[j].CreatedAt) })
	return res, nil
}

func (r *RecipeRepository) DeleteRecipe(_ context.Context, id string, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	for i, recipe := range r.Recipes {
		if recipe.ID.String() == id && recipe.UserID.String() == userID {
			r.Recipes = append(r.Recipes[:i], r.Recipes[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}
