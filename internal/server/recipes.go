package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/bakingai/bakingai/internal/ingredient"
	"github.com/bakingai/bakingai/internal/recipe"
	"github.com/bakingai/bakingai/internal/validation"
)

type recipesHandler struct {
	loader       RecipeLoader
	validator    *validation.Validator
	defaultLimit int
}

type listRecipesParams struct {
	Search string `query:"search"`
	Page   int    `query:"page" validate:"min=1"`
	Limit  int    `query:"limit" validate:"min=1"`
}

type recipeResponse struct {
	Name                 string           `json:"Recipe Name"`
	Image                string           `json:"Image"`
	CookTime             string           `json:"Cook Time"`
	PrepTime             string           `json:"Prep Time"`
	TotalTime            string           `json:"Total Time"`
	Ingredients          string           `json:"Ingredients"`
	ConvertedIngredients []string         `json:"Converted Ingredients"`
	TotalGrams           ingredient.Grams `json:"Total Grams"`
	Directions           string           `json:"Directions"`
}

type listRecipesResponse struct {
	Recipes      []recipeResponse `json:"recipes"`
	TotalPages   int              `json:"total_pages"`
	CurrentPage  int              `json:"current_page"`
	TotalRecipes int              `json:"total_recipes"`
}

func (h *recipesHandler) handleListRecipes(w http.ResponseWriter, r *http.Request) {
	params, err := h.parseListRecipesParams(r)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	records := h.loader.LoadRecipes(r.Context())
	if len(records) == 0 {
		jsonError(w, "No recipes found", http.StatusNotFound)
		return
	}

	page := recipe.Paginate(records, recipe.Query{
		Search: params.Search,
		Page:   params.Page,
		Limit:  params.Limit,
	})
	resp := listRecipesResponse{
		Recipes:      make([]recipeResponse, 0, len(page.Records)),
		TotalPages:   page.TotalPages,
		CurrentPage:  page.CurrentPage,
		TotalRecipes: page.TotalRecords,
	}
	for _, rec := range page.Records {
		resp.Recipes = append(resp.Recipes, newRecipeResponse(rec))
	}
	jsonOK(w, resp)
}

func (h *recipesHandler) parseListRecipesParams(r *http.Request) (listRecipesParams, error) {
	q := r.URL.Query()
	params := listRecipesParams{
		Search: q.Get("search"),
		Page:   1,
		Limit:  h.defaultLimit,
	}

	var err error
	if params.Page, err = intParam(q.Get("page"), "page", params.Page); err != nil {
		return params, err
	}
	if params.Limit, err = intParam(q.Get("limit"), "limit", params.Limit); err != nil {
		return params, err
	}
	if err := h.validator.Struct(params); err != nil {
		return params, err
	}
	return params, nil
}

func intParam(raw, name string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", name)
	}
	return n, nil
}

func newRecipeResponse(rec recipe.Record) recipeResponse {
	converted := rec.ConvertedIngredients
	if converted == nil {
		converted = []string{}
	}
	return recipeResponse{
		Name:                 rec.Name,
		Image:                rec.ImageURL,
		CookTime:             rec.CookTime,
		PrepTime:             rec.PrepTime,
		TotalTime:            rec.TotalTime,
		Ingredients:          rec.Ingredients,
		ConvertedIngredients: converted,
		TotalGrams:           rec.TotalGrams,
		Directions:           rec.Directions,
	}
}
