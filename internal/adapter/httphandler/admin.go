package httphandler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Sarhan619/grocery-app/internal/core/domain"
	"github.com/Sarhan619/grocery-app/internal/core/port"
)

// Admin panel surface: table-oriented reads, inserts and
// delete-by-id over products, categories and brands.

type AdminHandler struct {
	admin port.AdminOperator
}

func RegisterAdmin(mux *http.ServeMux, admin port.AdminOperator) {
	h := AdminHandler{admin}
	mux.HandleFunc("GET /v1/admin/products", h.GetProducts)
	mux.HandleFunc("POST /v1/admin/products", h.PostProduct)
	mux.HandleFunc("DELETE /v1/admin/products/{id}", h.DeleteProduct)
	mux.HandleFunc("GET /v1/admin/products/{id}/popularity", h.GetPopularity)
	mux.HandleFunc("GET /v1/admin/categories", h.GetCategories)
	mux.HandleFunc("POST /v1/admin/categories", h.PostCategory)
	mux.HandleFunc("DELETE /v1/admin/categories/{id}", h.DeleteCategory)
	mux.HandleFunc("GET /v1/admin/brands", h.GetBrands)
	mux.HandleFunc("POST /v1/admin/brands", h.PostBrand)
	mux.HandleFunc("DELETE /v1/admin/brands/{id}", h.DeleteBrand)
}

func (h AdminHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	const op = "AdminHandler.GetProducts"
	log := slog.With("op", op)

	ps, err := h.admin.AdminProducts(r.Context())
	if err != nil {
		writeErr(w, err)
		log.Error("failed to read products", "err", err)
		return
	}
	writeJSON(w, http.StatusOK, toProducts(ps))
}

func (h AdminHandler) PostProduct(w http.ResponseWriter, r *http.Request) {
	const op = "AdminHandler.PostProduct"
	log := slog.With("op", op)

	var body ProductInput
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	id, err := h.admin.CreateProduct(r.Context(), domain.ProductInput{
		Name:        body.Name,
		Description: body.Description,
		Price:       body.Price,
		SalePrice:   body.SalePrice,
		ImageURL:    body.ImageURL,
		CategoryID:  body.CategoryID,
		BrandID:     body.BrandID,
		StockCount:  body.StockCount,
		IsOrganic:   body.IsOrganic,
		IsFeatured:  body.IsFeatured,
	})
	if err != nil {
		writeErr(w, err)
		log.Warn("failed to create product", "err", err)
		return
	}

	writeJSON(w, http.StatusCreated, Created{ID: id})
	log.Info("product created", "id", id)
}

func (h AdminHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	const op = "AdminHandler.DeleteProduct"
	log := slog.With("op", op)

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.admin.DeleteProduct(r.Context(), id); err != nil {
		writeErr(w, err)
		log.Warn("failed to delete product", "id", id, "err", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
	log.Info("product deleted", "id", id)
}

func (h AdminHandler) GetPopularity(w http.ResponseWriter, r *http.Request) {
	const op = "AdminHandler.GetPopularity"
	log := slog.With("op", op)

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	n, err := h.admin.ProductPopularity(r.Context(), id)
	if err != nil {
		writeErr(w, err)
		log.Error("failed to read popularity", "id", id, "err", err)
		return
	}

	writeJSON(w, http.StatusOK, Popularity{ProductID: id, AddToCartCount: n})
}

func (h AdminHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	const op = "AdminHandler.GetCategories"
	log := slog.With("op", op)

	cs, err := h.admin.AdminCategories(r.Context())
	if err != nil {
		writeErr(w, err)
		log.Error("failed to read categories", "err", err)
		return
	}
	writeJSON(w, http.StatusOK, toCategories(cs))
}

func (h AdminHandler) PostCategory(w http.ResponseWriter, r *http.Request) {
	const op = "AdminHandler.PostCategory"
	log := slog.With("op", op)

	var body CategoryInput
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	id, err := h.admin.CreateCategory(r.Context(), domain.CategoryInput{
		Name:        body.Name,
		Description: body.Description,
		ImageURL:    body.ImageURL,
	})
	if err != nil {
		writeErr(w, err)
		log.Warn("failed to create category", "err", err)
		return
	}

	writeJSON(w, http.StatusCreated, Created{ID: id})
	log.Info("category created", "id", id)
}

func (h AdminHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	const op = "AdminHandler.DeleteCategory"
	log := slog.With("op", op)

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.admin.DeleteCategory(r.Context(), id); err != nil {
		writeErr(w, err)
		log.Warn("failed to delete category", "id", id, "err", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
	log.Info("category deleted", "id", id)
}

func (h AdminHandler) GetBrands(w http.ResponseWriter, r *http.Request) {
	const op = "AdminHandler.GetBrands"
	log := slog.With("op", op)

	bs, err := h.admin.AdminBrands(r.Context())
	if err != nil {
		writeErr(w, err)
		log.Error("failed to read brands", "err", err)
		return
	}
	writeJSON(w, http.StatusOK, toBrands(bs))
}

func (h AdminHandler) PostBrand(w http.ResponseWriter, r *http.Request) {
	const op = "AdminHandler.PostBrand"
	log := slog.With("op", op)

	var body BrandInput
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	id, err := h.admin.CreateBrand(r.Context(), domain.BrandInput{
		Name:       body.Name,
		CategoryID: body.CategoryID,
	})
	if err != nil {
		writeErr(w, err)
		log.Warn("failed to create brand", "err", err)
		return
	}

	writeJSON(w, http.StatusCreated, Created{ID: id})
	log.Info("brand created", "id", id)
}

func (h AdminHandler) DeleteBrand(w http.ResponseWriter, r *http.Request) {
	const op = "AdminHandler.DeleteBrand"
	log := slog.With("op", op)

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.admin.DeleteBrand(r.Context(), id); err != nil {
		writeErr(w, err)
		log.Warn("failed to delete brand", "id", id, "err", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
	log.Info("brand deleted", "id", id)
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
