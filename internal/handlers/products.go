package handlers

import (
	"net/http"

	"clickconnect-backend/internal/catalog"
)

type productListResponse struct {
	Products []catalog.Entry `json:"products"`
}

// ProductHandler serves the featured products for the storefront grid.
type ProductHandler struct {
	products []catalog.Entry
}

func NewProductHandler(products []catalog.Entry) *ProductHandler {
	return &ProductHandler{products: products}
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, productListResponse{Products: h.products})
}
