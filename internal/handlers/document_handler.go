package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sajidul-dev/adboard/backend/internal/models"
	"github.com/sajidul-dev/adboard/backend/internal/repositories"
)

// DocumentHandler handles the generic collection CRUD routes.
type DocumentHandler struct {
	documentRepository repositories.DocumentRepository
	likeRepository     repositories.LikeRepository
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(docRepo repositories.DocumentRepository, likeRepo repositories.LikeRepository) *DocumentHandler {
	return &DocumentHandler{
		documentRepository: docRepo,
		likeRepository:     likeRepo,
	}
}

// RegisterDocumentRoutes registers the generic collection routes. These use
// path parameters, so echo matches every explicitly registered route first.
func (h *DocumentHandler) RegisterDocumentRoutes(e *echo.Echo) {
	e.GET("/:collection", h.ListDocuments)
	e.POST("/:collection", h.InsertDocument)
	e.GET("/:collection/:id", h.GetDocument)
	e.PATCH("/:collection/:id", h.PatchDocument)
	e.DELETE("/:collection/:id", h.DeleteDocument)
}

// ListDocuments lists a collection, filtered by query-string equality.
func (h *DocumentHandler) ListDocuments(c echo.Context) error {
	filters := map[string]string{}
	for field, values := range c.QueryParams() {
		if len(values) > 0 {
			filters[field] = values[0]
		}
	}
	docs, err := h.documentRepository.List(c.Request().Context(), c.Param("collection"), filters)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, docs)
}

// GetDocument retrieves a single document by id.
func (h *DocumentHandler) GetDocument(c echo.Context) error {
	doc, err := h.documentRepository.Get(c.Request().Context(), c.Param("collection"), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, doc)
}

// InsertDocument inserts a new document with a generated id and timestamp.
func (h *DocumentHandler) InsertDocument(c echo.Context) error {
	var body models.Document
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	doc, err := h.documentRepository.Insert(c.Request().Context(), c.Param("collection"), body)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, doc)
}

// PatchDocument shallow-merges the body onto the stored document. A body
// carrying "likers" against posts or ads goes through the like flow instead,
// which also recomputes likesCount and fans out a notification.
func (h *DocumentHandler) PatchDocument(c echo.Context) error {
	var changes models.Document
	if err := c.Bind(&changes); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	collection := c.Param("collection")
	id := c.Param("id")

	if _, hasLikers := changes["likers"]; hasLikers && (collection == "posts" || collection == "ads") {
		doc, err := h.likeRepository.ApplyLikes(c.Request().Context(), collection, id, changes)
		if err != nil {
			return httpError(err)
		}
		return c.JSON(http.StatusOK, doc)
	}

	doc, err := h.documentRepository.Patch(c.Request().Context(), collection, id, changes)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, doc)
}

// DeleteDocument removes a document and returns the removed document.
func (h *DocumentHandler) DeleteDocument(c echo.Context) error {
	doc, err := h.documentRepository.Delete(c.Request().Context(), c.Param("collection"), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, doc)
}
