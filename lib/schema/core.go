// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"errors"
	"fmt"
	"time"
)

// ListItem is a single entry on an AnyList list.
type ListItem struct {
	// ID is the list service's identifier for the item.
	ID string `json:"id"`

	// Name is the display name (e.g., "Organic Milk").
	Name string `json:"name"`

	// Checked is true once the item has been crossed off.
	Checked bool `json:"checked"`

	// Notes is free-form text shown under the item.
	Notes string `json:"notes,omitempty"`

	// List is the name of the list the item belongs to. Empty when the
	// item was read from a context that already implies the list.
	List string `json:"list,omitempty"`
}

// Validate checks that the item carries its identity. Returns an error
// describing the first invalid field, or nil.
func (item *ListItem) Validate() error {
	if item.ID == "" {
		return errors.New("list item: id is required")
	}
	if item.Name == "" {
		return errors.New("list item: name is required")
	}
	return nil
}

// Ingredient is one line of a recipe's ingredient list.
type Ingredient struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	// Quantity is the amount in Unit. Nil when the recipe gives no
	// amount ("salt to taste").
	Quantity *float64 `json:"quantity,omitempty"`

	// Unit of measurement (e.g., "cups", "tbsp", "oz").
	Unit string `json:"unit,omitempty"`

	// Preparation notes (e.g., "chopped", "boneless, skinless").
	Preparation string `json:"preparation,omitempty"`

	// Checked is set when the ingredient has been ticked off while
	// shopping or cooking. Nil when the source never tracked it.
	Checked *bool `json:"checked,omitempty"`
}

// Validate checks the ingredient's identity fields.
func (ingredient *Ingredient) Validate() error {
	if ingredient.ID == "" {
		return errors.New("ingredient: id is required")
	}
	if ingredient.Name == "" {
		return errors.New("ingredient: name is required")
	}
	if ingredient.Quantity != nil && *ingredient.Quantity < 0 {
		return fmt.Errorf("ingredient: quantity must be >= 0, got %v", *ingredient.Quantity)
	}
	return nil
}

// NutritionalInfo holds per-serving nutrition figures. Every field is
// optional; nil means "not stated", which is different from zero.
type NutritionalInfo struct {
	Calories           *float64 `json:"calories,omitempty"`
	TotalFat           *float64 `json:"totalFat,omitempty"`           // grams
	SaturatedFat       *float64 `json:"saturatedFat,omitempty"`       // grams
	TransFat           *float64 `json:"transFat,omitempty"`           // grams
	Cholesterol        *float64 `json:"cholesterol,omitempty"`        // milligrams
	Sodium             *float64 `json:"sodium,omitempty"`             // milligrams
	TotalCarbohydrates *float64 `json:"totalCarbohydrates,omitempty"` // grams
	DietaryFiber       *float64 `json:"dietaryFiber,omitempty"`       // grams
	TotalSugars        *float64 `json:"totalSugars,omitempty"`        // grams
	AddedSugars        *float64 `json:"addedSugars,omitempty"`        // grams
	Protein            *float64 `json:"protein,omitempty"`            // grams
	VitaminD           *float64 `json:"vitaminD,omitempty"`           // micrograms
	Calcium            *float64 `json:"calcium,omitempty"`            // milligrams
	Iron               *float64 `json:"iron,omitempty"`               // milligrams
	Potassium          *float64 `json:"potassium,omitempty"`          // milligrams
}

// Recipe is a recipe with its ingredients and instructions.
type Recipe struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	// Ingredients in the order the recipe lists them.
	Ingredients []Ingredient `json:"ingredients"`

	// Instructions are the cooking steps, in order.
	Instructions []string `json:"instructions"`

	// PrepTime, CookTime and TotalTime are in minutes.
	PrepTime  *int `json:"prepTime,omitempty"`
	CookTime  *int `json:"cookTime,omitempty"`
	TotalTime *int `json:"totalTime,omitempty"`

	// Servings is the number of portions the recipe makes.
	Servings *int `json:"servings,omitempty"`

	Nutrition *NutritionalInfo `json:"nutrition,omitempty"`

	// Category (e.g., "Dinner", "Dessert") and Cuisine (e.g.,
	// "Italian") are free-form labels.
	Category string `json:"category,omitempty"`
	Cuisine  string `json:"cuisine,omitempty"`

	// Difficulty and Rating are on a 1-5 scale.
	Difficulty *int     `json:"difficulty,omitempty"`
	Rating     *float64 `json:"rating,omitempty"`

	Notes string `json:"notes,omitempty"`

	// Source is where the recipe came from: a URL, a book title.
	Source string   `json:"source,omitempty"`
	Tags   []string `json:"tags,omitempty"`

	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// Validate checks required fields, value ranges and every ingredient.
// Returns an error describing the first invalid field found.
func (recipe *Recipe) Validate() error {
	if recipe.ID == "" {
		return errors.New("recipe: id is required")
	}
	return recipe.validateContent()
}

// validateContent checks everything except the server-assigned ID, so
// that create requests (which carry no ID yet) share the rules.
func (recipe *Recipe) validateContent() error {
	if recipe.Name == "" {
		return errors.New("recipe: name is required")
	}
	durations := []struct {
		name    string
		minutes *int
	}{
		{"prepTime", recipe.PrepTime},
		{"cookTime", recipe.CookTime},
		{"totalTime", recipe.TotalTime},
	}
	for _, duration := range durations {
		if duration.minutes != nil && *duration.minutes < 0 {
			return fmt.Errorf("recipe: %s must be >= 0, got %d", duration.name, *duration.minutes)
		}
	}
	if recipe.Servings != nil && *recipe.Servings < 1 {
		return fmt.Errorf("recipe: servings must be >= 1, got %d", *recipe.Servings)
	}
	if recipe.Difficulty != nil && (*recipe.Difficulty < 1 || *recipe.Difficulty > 5) {
		return fmt.Errorf("recipe: difficulty must be 1-5, got %d", *recipe.Difficulty)
	}
	if recipe.Rating != nil && (*recipe.Rating < 1 || *recipe.Rating > 5) {
		return fmt.Errorf("recipe: rating must be 1-5, got %v", *recipe.Rating)
	}
	for i := range recipe.Ingredients {
		if err := recipe.Ingredients[i].Validate(); err != nil {
			return fmt.Errorf("recipe: ingredients[%d]: %w", i, err)
		}
	}
	return nil
}

// RecipeCollection groups recipes under a name.
type RecipeCollection struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Recipes     []Recipe `json:"recipes"`

	// Owner is the user who created the collection.
	Owner string `json:"owner,omitempty"`

	// IsPublic is nil when visibility was never set; the list service
	// treats that as private.
	IsPublic *bool `json:"isPublic,omitempty"`

	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
	Tags      []string   `json:"tags,omitempty"`
}

// Validate checks the collection's identity and every contained recipe.
func (collection *RecipeCollection) Validate() error {
	if collection.ID == "" {
		return errors.New("recipe collection: id is required")
	}
	return collection.validateContent()
}

func (collection *RecipeCollection) validateContent() error {
	if collection.Name == "" {
		return errors.New("recipe collection: name is required")
	}
	for i := range collection.Recipes {
		if err := collection.Recipes[i].Validate(); err != nil {
			return fmt.Errorf("recipe collection: recipes[%d]: %w", i, err)
		}
	}
	return nil
}
