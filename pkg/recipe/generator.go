package recipe

import (
	"context"
	"fmt"
	"frescoguard/domain"
	"math/rand"
	"strings"
)

const (
	mockCookingTime = 30
	mockDifficulty  = "Fácil"
)

type (
	// Generator turns a list of ingredient names into a recipe suggestion.
	Generator interface {
		Generate(ctx context.Context, ingredients []string) (domain.GeneratedRecipe, error)
	}

	templateGenerator struct {
		intN func(n int) int
	}
)

// NewTemplateGenerator builds recipes from fixed Spanish templates.
func NewTemplateGenerator() Generator {
	return &templateGenerator{intN: rand.Intn}
}

// NewTemplateGeneratorWithPicker fixes template selection, mostly for tests.
func NewTemplateGeneratorWithPicker(intN func(n int) int) Generator {
	return &templateGenerator{intN: intN}
}

func (g *templateGenerator) Generate(_ context.Context, ingredients []string) (domain.GeneratedRecipe, error) {
	ingredients = cleanIngredients(ingredients)
	if len(ingredients) == 0 {
		return domain.GeneratedRecipe{}, domain.ErrNoIngredients
	}

	first := ingredients[0]
	titles := []string{
		fmt.Sprintf("Ensalada creativa con %s", strings.Join(ingredients[:min(2, len(ingredients))], " y ")),
		fmt.Sprintf("Sofrito especial de %s", first),
		fmt.Sprintf("Plato combinado con %s", strings.Join(ingredients, ", ")),
		fmt.Sprintf("Receta rápida con %s", first),
	}
	descriptions := []string{
		fmt.Sprintf("Una deliciosa combinación de ingredientes frescos que aprovecha al máximo %s", first),
		"Receta fácil y rápida para usar tus ingredientes antes de que se venzan",
		fmt.Sprintf("Una forma creativa de combinar %d ingredientes en un plato delicioso", len(ingredients)),
	}

	quantities := make([]string, 0, len(ingredients))
	for _, ing := range ingredients {
		quantities = append(quantities, fmt.Sprintf("%s (cantidad según disponibilidad)", ing))
	}

	return domain.GeneratedRecipe{
		Title:       titles[g.intN(len(titles))],
		Description: descriptions[g.intN(len(descriptions))],
		Ingredients: quantities,
		Steps: []string{
			fmt.Sprintf("Preparar %s cortándolo en trozos", first),
			"Cocinar los ingredientes principales a fuego medio",
			"Agregar condimentos al gusto",
			"Servir caliente y disfrutar",
		},
		CookingTime: mockCookingTime,
		Difficulty:  mockDifficulty,
	}, nil
}

func cleanIngredients(ingredients []string) []string {
	cleaned := make([]string, 0, len(ingredients))
	for _, ing := range ingredients {
		if ing = strings.TrimSpace(ing); ing != "" {
			cleaned = append(cleaned, ing)
		}
	}
	return cleaned
}
