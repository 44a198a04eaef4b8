// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// AddItemRequest is the body of a call to the "add" endpoint.
type AddItemRequest struct {
	Name  string `json:"name"`
	Notes string `json:"notes,omitempty"`

	// List is the target list. Empty means the configured default list.
	List string `json:"list,omitempty"`

	// Checked creates the item already crossed off.
	Checked *bool `json:"checked,omitempty"`
}

// Validate checks that the item has a name.
func (r *AddItemRequest) Validate() error {
	if r.Name == "" {
		return errors.New("add item request: name is required")
	}
	return nil
}

// UpdateItemRequest is the body of a call to the "update" endpoint. The
// item is targeted by ID or, failing that, by Name.
type UpdateItemRequest struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`

	NewName string  `json:"newName,omitempty"`
	Notes   *string `json:"notes,omitempty"`
	Checked *bool   `json:"checked,omitempty"`
	List    string  `json:"list,omitempty"`
}

// Validate checks that the request targets an item and changes
// something.
func (r *UpdateItemRequest) Validate() error {
	if r.ID == "" && r.Name == "" {
		return errors.New("update item request: id or name is required")
	}
	if r.NewName == "" && r.Notes == nil && r.Checked == nil {
		return errors.New("update item request: no changes requested")
	}
	return nil
}

// RemoveItemRequest is the body of a call to the "remove" endpoint.
type RemoveItemRequest struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
	List string `json:"list,omitempty"`
}

// Validate checks that the request targets an item.
func (r *RemoveItemRequest) Validate() error {
	if r.ID == "" && r.Name == "" {
		return errors.New("remove item request: id or name is required")
	}
	return nil
}

// CheckItemRequest is the body of a call to the "check" endpoint. It
// serves both check_item (Checked true) and uncheck_item.
type CheckItemRequest struct {
	ID      string `json:"id,omitempty"`
	Name    string `json:"name,omitempty"`
	Checked bool   `json:"checked"`
	List    string `json:"list,omitempty"`
}

// Validate checks that the request targets an item.
func (r *CheckItemRequest) Validate() error {
	if r.ID == "" && r.Name == "" {
		return errors.New("check item request: id or name is required")
	}
	return nil
}

// CreateRecipeRequest creates a recipe. The server assigns the ID and
// the timestamps, so the recipe must not carry them.
type CreateRecipeRequest struct {
	Recipe Recipe `json:"recipe"`
}

// Validate checks the recipe content and rejects server-assigned fields.
func (r *CreateRecipeRequest) Validate() error {
	if err := rejectServerAssigned("create recipe request", r.Recipe.ID, r.Recipe.CreatedAt, r.Recipe.UpdatedAt); err != nil {
		return err
	}
	if err := r.Recipe.validateContent(); err != nil {
		return fmt.Errorf("create recipe request: %w", err)
	}
	return nil
}

// RecipePatch is a partial recipe: nil fields are left unchanged.
type RecipePatch struct {
	Name         *string          `json:"name,omitempty"`
	Description  *string          `json:"description,omitempty"`
	Ingredients  []Ingredient     `json:"ingredients,omitempty"`
	Instructions []string         `json:"instructions,omitempty"`
	PrepTime     *int             `json:"prepTime,omitempty"`
	CookTime     *int             `json:"cookTime,omitempty"`
	TotalTime    *int             `json:"totalTime,omitempty"`
	Servings     *int             `json:"servings,omitempty"`
	Nutrition    *NutritionalInfo `json:"nutrition,omitempty"`
	Category     *string          `json:"category,omitempty"`
	Cuisine      *string          `json:"cuisine,omitempty"`
	Difficulty   *int             `json:"difficulty,omitempty"`
	Rating       *float64         `json:"rating,omitempty"`
	Notes        *string          `json:"notes,omitempty"`
	Source       *string          `json:"source,omitempty"`
	Tags         []string         `json:"tags,omitempty"`
}

// Apply returns a copy of recipe with the patch's set fields applied.
// The ID and timestamps are never touched. Slices in the patch replace
// the recipe's slices wholesale.
func (p *RecipePatch) Apply(recipe Recipe) Recipe {
	setString(&recipe.Name, p.Name)
	setString(&recipe.Description, p.Description)
	if p.Ingredients != nil {
		recipe.Ingredients = p.Ingredients
	}
	if p.Instructions != nil {
		recipe.Instructions = p.Instructions
	}
	setPointer(&recipe.PrepTime, p.PrepTime)
	setPointer(&recipe.CookTime, p.CookTime)
	setPointer(&recipe.TotalTime, p.TotalTime)
	setPointer(&recipe.Servings, p.Servings)
	setPointer(&recipe.Nutrition, p.Nutrition)
	setString(&recipe.Category, p.Category)
	setString(&recipe.Cuisine, p.Cuisine)
	setPointer(&recipe.Difficulty, p.Difficulty)
	setPointer(&recipe.Rating, p.Rating)
	setString(&recipe.Notes, p.Notes)
	setString(&recipe.Source, p.Source)
	if p.Tags != nil {
		recipe.Tags = p.Tags
	}
	return recipe
}

// UpdateRecipeRequest patches an existing recipe.
type UpdateRecipeRequest struct {
	ID     string      `json:"id"`
	Recipe RecipePatch `json:"recipe"`
}

// Validate checks that the request targets a recipe.
func (r *UpdateRecipeRequest) Validate() error {
	if r.ID == "" {
		return errors.New("update recipe request: id is required")
	}
	if r.Recipe.Name != nil && *r.Recipe.Name == "" {
		return errors.New("update recipe request: name cannot be cleared")
	}
	return nil
}

// CreateRecipeCollectionRequest creates a recipe collection.
type CreateRecipeCollectionRequest struct {
	Collection RecipeCollection `json:"collection"`
}

// Validate checks the collection content and rejects server-assigned
// fields.
func (r *CreateRecipeCollectionRequest) Validate() error {
	collection := &r.Collection
	if err := rejectServerAssigned("create recipe collection request", collection.ID, collection.CreatedAt, collection.UpdatedAt); err != nil {
		return err
	}
	if err := collection.validateContent(); err != nil {
		return fmt.Errorf("create recipe collection request: %w", err)
	}
	return nil
}

// CollectionPatch is a partial recipe collection.
type CollectionPatch struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Recipes     []Recipe `json:"recipes,omitempty"`
	Owner       *string  `json:"owner,omitempty"`
	IsPublic    *bool    `json:"isPublic,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// Apply returns a copy of collection with the patch's set fields
// applied.
func (p *CollectionPatch) Apply(collection RecipeCollection) RecipeCollection {
	setString(&collection.Name, p.Name)
	setString(&collection.Description, p.Description)
	if p.Recipes != nil {
		collection.Recipes = p.Recipes
	}
	setString(&collection.Owner, p.Owner)
	setPointer(&collection.IsPublic, p.IsPublic)
	if p.Tags != nil {
		collection.Tags = p.Tags
	}
	return collection
}

// UpdateRecipeCollectionRequest patches an existing collection.
type UpdateRecipeCollectionRequest struct {
	ID         string          `json:"id"`
	Collection CollectionPatch `json:"collection"`
}

// Validate checks that the request targets a collection.
func (r *UpdateRecipeCollectionRequest) Validate() error {
	if r.ID == "" {
		return errors.New("update recipe collection request: id is required")
	}
	if r.Collection.Name != nil && *r.Collection.Name == "" {
		return errors.New("update recipe collection request: name cannot be cleared")
	}
	return nil
}

// SortOrder is the direction of a sorted listing.
type SortOrder string

const (
	SortAscending  SortOrder = "asc"
	SortDescending SortOrder = "desc"
)

// PaginationParams selects a page of a listing. Zero values mean "server
// default".
type PaginationParams struct {
	// Page is 1-based.
	Page      int       `json:"page,omitempty"`
	Limit     int       `json:"limit,omitempty"`
	SortBy    string    `json:"sortBy,omitempty"`
	SortOrder SortOrder `json:"sortOrder,omitempty"`
}

// Validate checks page bounds and sort direction.
func (p *PaginationParams) Validate() error {
	if p.Page < 0 {
		return fmt.Errorf("pagination: page must be >= 1, got %d", p.Page)
	}
	if p.Limit < 0 {
		return fmt.Errorf("pagination: limit must be >= 1, got %d", p.Limit)
	}
	switch p.SortOrder {
	case "", SortAscending, SortDescending:
		// Valid.
	default:
		return fmt.Errorf("pagination: unknown sort order %q", p.SortOrder)
	}
	return nil
}

// Query encodes the set parameters as URL query values.
func (p *PaginationParams) Query() url.Values {
	values := url.Values{}
	p.addTo(values)
	return values
}

func (p *PaginationParams) addTo(values url.Values) {
	if p.Page > 0 {
		values.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		values.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.SortBy != "" {
		values.Set("sortBy", p.SortBy)
	}
	if p.SortOrder != "" {
		values.Set("sortOrder", string(p.SortOrder))
	}
}

// RecipeQueryParams filters a recipe listing.
type RecipeQueryParams struct {
	PaginationParams

	// Search matches recipe names and descriptions.
	Search   string   `json:"search,omitempty"`
	Category string   `json:"category,omitempty"`
	Cuisine  string   `json:"cuisine,omitempty"`
	Tags     []string `json:"tags,omitempty"`

	// MinDifficulty and MaxDifficulty bound the 1-5 difficulty.
	MinDifficulty int `json:"minDifficulty,omitempty"`
	MaxDifficulty int `json:"maxDifficulty,omitempty"`

	MinRating float64 `json:"minRating,omitempty"`

	// MaxPrepTime and MaxCookTime are in minutes.
	MaxPrepTime int `json:"maxPrepTime,omitempty"`
	MaxCookTime int `json:"maxCookTime,omitempty"`
}

// Validate checks pagination and filter ranges.
func (q *RecipeQueryParams) Validate() error {
	if err := q.PaginationParams.Validate(); err != nil {
		return err
	}
	if q.MinDifficulty != 0 && (q.MinDifficulty < 1 || q.MinDifficulty > 5) {
		return fmt.Errorf("recipe query: minDifficulty must be 1-5, got %d", q.MinDifficulty)
	}
	if q.MaxDifficulty != 0 && (q.MaxDifficulty < 1 || q.MaxDifficulty > 5) {
		return fmt.Errorf("recipe query: maxDifficulty must be 1-5, got %d", q.MaxDifficulty)
	}
	if q.MinDifficulty != 0 && q.MaxDifficulty != 0 && q.MinDifficulty > q.MaxDifficulty {
		return fmt.Errorf("recipe query: minDifficulty %d exceeds maxDifficulty %d", q.MinDifficulty, q.MaxDifficulty)
	}
	if q.MinRating != 0 && (q.MinRating < 1 || q.MinRating > 5) {
		return fmt.Errorf("recipe query: minRating must be 1-5, got %v", q.MinRating)
	}
	if q.MaxPrepTime < 0 || q.MaxCookTime < 0 {
		return errors.New("recipe query: time limits must be >= 0")
	}
	return nil
}

// Query encodes the set parameters as URL query values. Tags repeat the
// "tags" key once per tag.
func (q *RecipeQueryParams) Query() url.Values {
	values := url.Values{}
	q.PaginationParams.addTo(values)
	setNonEmpty(values, "search", q.Search)
	setNonEmpty(values, "category", q.Category)
	setNonEmpty(values, "cuisine", q.Cuisine)
	for _, tag := range q.Tags {
		values.Add("tags", tag)
	}
	setPositive(values, "minDifficulty", q.MinDifficulty)
	setPositive(values, "maxDifficulty", q.MaxDifficulty)
	if q.MinRating > 0 {
		values.Set("minRating", strconv.FormatFloat(q.MinRating, 'f', -1, 64))
	}
	setPositive(values, "maxPrepTime", q.MaxPrepTime)
	setPositive(values, "maxCookTime", q.MaxCookTime)
	return values
}

func rejectServerAssigned(context, id string, createdAt, updatedAt *time.Time) error {
	if id != "" {
		return fmt.Errorf("%s: id is assigned by the server and must be empty", context)
	}
	if createdAt != nil || updatedAt != nil {
		return fmt.Errorf("%s: timestamps are assigned by the server and must be empty", context)
	}
	return nil
}

func setString(target *string, value *string) {
	if value != nil {
		*target = *value
	}
}

func setPointer[T any](target **T, value *T) {
	if value != nil {
		copied := *value
		*target = &copied
	}
}

func setNonEmpty(values url.Values, key, value string) {
	if value != "" {
		values.Set(key, value)
	}
}

func setPositive(values url.Values, key string, value int) {
	if value > 0 {
		values.Set(key, strconv.Itoa(value))
	}
}
