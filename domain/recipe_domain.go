package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessDeleteRecipe = "Receta eliminada correctamente"

	MessageFailedGenerateRecipe = "Error al generar receta"
	MessageFailedSaveRecipe     = "Error al guardar la receta"
	MessageFailedGetRecipes     = "Error al obtener las recetas"
	MessageFailedDeleteRecipe   = "Error al eliminar la receta"
	MessageInvalidIngredients   = "Se requieren ingredientes válidos"
	MessageRecipeNotFound       = "Receta no encontrada"

	ErrRecipeNotFound = errors.New("recipe not found")
	ErrNoIngredients  = errors.New("no ingredients available for recipe generation")
)

type (
	GenerateRecipeRequest struct {
		Ingredients []string `json:"ingredients"`
	}

	GeneratedRecipe struct {
		Title       string   `json:"title"`
		Description string   `json:"description"`
		Ingredients []string `json:"ingredients"`
		Steps       []string `json:"steps"`
		CookingTime int      `json:"cookingTime"`
		Difficulty  string   `json:"difficulty"`
	}

	SaveRecipeRequest struct {
		Title       string   `json:"title" validate:"required" msg:"El título es requerido"`
		Description string   `json:"description"`
		Ingredients []string `json:"ingredients"`
		Steps       []string `json:"steps"`
		CookingTime int      `json:"cookingTime" validate:"gte=0"`
		Difficulty  string   `json:"difficulty"`
		FoodIDs     []string `json:"foodIds" validate:"omitempty,dive,uuid"`
	}

	Recipe struct {
		ID          string    `json:"id"`
		Title       string    `json:"title"`
		Description string    `json:"description"`
		Ingredients []string  `json:"ingredients"`
		Steps       []string  `json:"steps"`
		CookingTime int       `json:"cookingTime"`
		Difficulty  string    `json:"difficulty"`
		FoodIDs     []string  `json:"foodIds"`
		CreatedAt   time.Time `json:"created_at"`
	}
)
