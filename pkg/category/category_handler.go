package category

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/expenso/expenso/internal/rest"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type CategoryDTO struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name"`
	Icon     string `json:"icon,omitempty"`
	Color    string `json:"color,omitempty"`
	Position int    `json:"position,omitempty"`
}

type CategoryHandler struct {
	categoryService CategoryService
}

func NewCategoryHandler(categoryService CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService}
}

func (handler *CategoryHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	categories := handler.categoryService.GetAll(r.Context())
	categoryDTOs := make([]CategoryDTO, 0, len(categories))
	for _, c := range categories {
		categoryDTOs = append(categoryDTOs, CategoryToDTO(c))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(categoryDTOs); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	log.Debug("Registering new category")
	w.Header().Set("Content-Type", "application/json")

	var categoryDTO CategoryDTO
	if err := json.NewDecoder(r.Body).Decode(&categoryDTO); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := handler.categoryService.Create(r.Context(), DTOToCategory(categoryDTO))
	if err != nil {
		var validationErr *ValidationError
		if errors.As(err, &validationErr) {
			w.WriteHeader(http.StatusBadRequest)
			if encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
				Error:   "Invalid category",
				Details: validationErr.Error(),
			}); encodeErr != nil {
				http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
			}
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(CategoryToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	vars := mux.Vars(r)
	categoryId := vars["id"]

	var categoryDTO CategoryDTO
	if err := json.NewDecoder(r.Body).Decode(&categoryDTO); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if categoryDTO.ID == "" {
		categoryDTO.ID = categoryId
	}
	if categoryDTO.ID != categoryId {
		http.Error(w, "Invalid category id in request body", http.StatusBadRequest)
		return
	}

	if err := handler.categoryService.Save(r.Context(), DTOToCategory(categoryDTO)); err != nil {
		var validationErr *ValidationError
		if errors.As(err, &validationErr) {
			http.Error(w, validationErr.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(categoryDTO); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	categoryId := vars["id"]

	if err := handler.categoryService.Delete(r.Context(), categoryId); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func CategoryToDTO(category Category) CategoryDTO {
	return CategoryDTO{
		ID:       category.ID,
		Name:     category.Name,
		Icon:     category.Icon,
		Color:    category.Color,
		Position: category.Position,
	}
}

func DTOToCategory(categoryDTO CategoryDTO) Category {
	return Category{
		ID:       categoryDTO.ID,
		Name:     categoryDTO.Name,
		Icon:     categoryDTO.Icon,
		Color:    categoryDTO.Color,
		Position: categoryDTO.Position,
	}
}
