package handler

import (
	"errors"
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"

	"library-management/domain"
	"library-management/log"
	"library-management/repository"
	"library-management/service"
)

const welcomeMessage = "Welcome to the Library Management System!"

type Handler struct {
	catalog    service.CatalogService
	membership service.MembershipService
	lending    service.LendingService
	query      service.QueryService
}

func New(
	catalog service.CatalogService,
	membership service.MembershipService,
	lending service.LendingService,
	query service.QueryService,
) *Handler {
	return &Handler{
		catalog:    catalog,
		membership: membership,
		lending:    lending,
		query:      query,
	}
}

// Register attaches the full route table.
func (h *Handler) Register(router *gin.Engine) {
	router.GET("/", h.Home)
	router.GET("/ping", h.Ping)
	router.POST("/users", h.AddUser)
	router.POST("/books", h.AddBook)
	router.GET("/books", h.ListBooks)
	router.POST("/borrow", h.Borrow)
	router.POST("/return", h.Return)
}

func (h *Handler) Home(c *gin.Context) {
	c.String(http.StatusOK, welcomeMessage)
}

func (h *Handler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "pong",
	})
}

func (h *Handler) AddUser(c *gin.Context) {
	var req domain.AddUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := h.membership.AddUser(c.Request.Context(), req)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, userResponse(user))
}

func (h *Handler) AddBook(c *gin.Context) {
	var req domain.AddBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	book, err := h.catalog.AddBook(c.Request.Context(), req)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, bookResponse(book))
}

func (h *Handler) Borrow(c *gin.Context) {
	var req domain.LoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	book, err := h.lending.Borrow(c.Request.Context(), req.ISBN, req.UserID)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookResponse(book))
}

func (h *Handler) Return(c *gin.Context) {
	var req domain.LoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	book, err := h.lending.Return(c.Request.Context(), req.ISBN, req.UserID)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookResponse(book))
}

func (h *Handler) ListBooks(c *gin.Context) {
	summaries, err := h.query.ListBooks(c.Request.Context(), c.Query("status"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	books := slices.Collect(summaries)
	if books == nil {
		books = []domain.BookSummary{}
	}
	c.JSON(http.StatusOK, gin.H{"books": books})
}

func (h *Handler) renderError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.GetLogger(c.Request.Context()).WithError(err).Errorf("request failed: %s", err)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func statusFor(err error) int {
	var validationErr *domain.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrBookNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrDuplicateISBN),
		errors.Is(err, domain.ErrDuplicateEmail),
		errors.Is(err, domain.ErrNoCopiesAvailable),
		errors.Is(err, domain.ErrAlreadyBorrowed),
		errors.Is(err, domain.ErrNoActiveLoan):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func bookResponse(book repository.Book) domain.BookResponse {
	return domain.BookResponse{
		ISBN:            book.ISBN,
		Title:           book.Title,
		Author:          book.Author,
		PublicationYear: book.PublicationYear,
		TotalCopies:     book.TotalCopies,
		AvailableCopies: book.AvailableCopies,
	}
}

func userResponse(user repository.User) domain.UserResponse {
	return domain.UserResponse{
		UserID: user.UserID,
		Name:   user.Name,
		Email:  user.Email,
	}
}
