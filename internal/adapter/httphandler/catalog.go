package httphandler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Sarhan619/grocery-app/internal/core/domain"
	"github.com/Sarhan619/grocery-app/internal/core/port"
)

// GET /v1/products?category=&q=&min_price=&max_price=&organic=
// GET /v1/products/featured
// GET /v1/products/{id}
// GET /v1/categories
// GET /v1/brands

type CatalogHandler struct {
	catalog port.CatalogProvider
}

func RegisterCatalog(mux *http.ServeMux, catalog port.CatalogProvider) {
	h := CatalogHandler{catalog}
	mux.HandleFunc("GET /v1/products", h.GetProducts)
	mux.HandleFunc("GET /v1/products/featured", h.GetFeatured)
	mux.HandleFunc("GET /v1/products/{id}", h.GetProduct)
	mux.HandleFunc("GET /v1/categories", h.GetCategories)
	mux.HandleFunc("GET /v1/brands", h.GetBrands)
}

func (h CatalogHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetProducts"
	log := slog.With("op", op)

	spec, err := filterSpecFromQuery(r)
	if err != nil {
		http.Error(w, "invalid filter parameters", http.StatusBadRequest)
		log.Warn("failed to parse filter query", "err", err)
		return
	}

	ps, err := h.catalog.ListProducts(r.Context(), spec)
	if err != nil {
		writeErr(w, err)
		log.Error("failed to list products", "err", err)
		return
	}

	writeJSON(w, http.StatusOK, toProducts(ps))
}

func (h CatalogHandler) GetFeatured(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetFeatured"
	log := slog.With("op", op)

	ps, err := h.catalog.FeaturedProducts(r.Context())
	if err != nil {
		writeErr(w, err)
		log.Error("failed to list featured products", "err", err)
		return
	}

	writeJSON(w, http.StatusOK, toProducts(ps))
}

func (h CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetProduct"
	log := slog.With("op", op)

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	p, err := h.catalog.GetProduct(r.Context(), id)
	if err != nil {
		writeErr(w, err)
		log.Warn("failed to get product", "id", id, "err", err)
		return
	}

	writeJSON(w, http.StatusOK, toProduct(p))
}

func (h CatalogHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetCategories"
	log := slog.With("op", op)

	cs, err := h.catalog.ListCategories(r.Context())
	if err != nil {
		writeErr(w, err)
		log.Error("failed to list categories", "err", err)
		return
	}

	writeJSON(w, http.StatusOK, toCategories(cs))
}

func (h CatalogHandler) GetBrands(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetBrands"
	log := slog.With("op", op)

	bs, err := h.catalog.ListBrands(r.Context())
	if err != nil {
		writeErr(w, err)
		log.Error("failed to list brands", "err", err)
		return
	}

	writeJSON(w, http.StatusOK, toBrands(bs))
}

// filterSpecFromQuery builds the filter from the listing query.
// The category parameter doubles as the navigation boundary for
// category links.
func filterSpecFromQuery(r *http.Request) (domain.FilterSpec, error) {
	q := r.URL.Query()

	spec := domain.FilterSpec{
		Category: q.Get("category"),
		Search:   q.Get("q"),
	}

	if s := q.Get("min_price"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return domain.FilterSpec{}, err
		}
		spec.PriceFloor = v
	}

	if s := q.Get("max_price"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return domain.FilterSpec{}, err
		}
		spec.PriceCeil = v
	}

	if s := q.Get("organic"); s != "" {
		v, err := strconv.ParseBool(s)
		if err != nil {
			return domain.FilterSpec{}, err
		}
		spec.OrganicOnly = v
	}

	return spec, nil
}
