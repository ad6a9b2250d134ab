package handlers

import (
	"errors"
	"net/http"

	response "oficina_xpto/internal/adapter/http/dto/response"
	"oficina_xpto/internal/usecase"
	"oficina_xpto/pkg"

	"github.com/gin-gonic/gin"
)

// PublicViewHandler serves the unauthenticated tracking page data. It is the
// only handler mounted outside staff routes, so it leaks nothing beyond the
// PublicOrderResponse shape.

type PublicViewHandler struct {
	usecase usecase.IPublicViewUseCase
}

func NewPublicViewHandler(uc usecase.IPublicViewUseCase) *PublicViewHandler {
	return &PublicViewHandler{usecase: uc}
}

func (h *PublicViewHandler) GetOrderView(c *gin.Context) {
	view, err := h.usecase.GetByOrderID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapPublicViewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPublicOrderView(view))
}

func mapPublicViewError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("OS_NOT_FOUND", "Service order not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
