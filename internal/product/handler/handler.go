package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/productshowcase/catalog-service/internal/product"
	"github.com/productshowcase/catalog-service/internal/product/service"
	"github.com/productshowcase/catalog-service/pkg/logger"
)

// RegisterProductRoutes wires the catalog read endpoints onto r.
func RegisterProductRoutes(r gin.IRoutes, svc service.Service) {
	r.GET("/products", func(c *gin.Context) {
		q := product.ParseListQuery(c.Request.URL.Query())
		page, err := svc.List(c.Request.Context(), q)
		if err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, page)
	})

	r.GET("/categories", func(c *gin.Context) {
		values, err := svc.Categories(c.Request.Context())
		if err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, values)
	})

	r.GET("/brands", func(c *gin.Context) {
		values, err := svc.Brands(c.Request.Context())
		if err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, values)
	})
}

func serverError(c *gin.Context, err error) {
	logger.Errorf("%s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
}
