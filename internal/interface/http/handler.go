package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/faq-service/internal/domain/auth"
	"github.com/yanqian/faq-service/internal/domain/faq"
	"github.com/yanqian/faq-service/pkg/util"
)

// Handler wires the HTTP transport to domain services.
type Handler struct {
	authSvc auth.Service
	faqSvc  faq.Service
	logger  *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(authSvc auth.Service, faqSvc faq.Service, logger *slog.Logger) *Handler {
	return &Handler{
		authSvc: authSvc,
		faqSvc:  faqSvc,
		logger:  logger.With("component", "http.handler"),
	}
}

// Signup registers a user and returns a token.
func (h *Handler) Signup(c *gin.Context) {
	var req auth.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "request body must be valid JSON", err))
		return
	}
	resp, err := h.authSvc.Signup(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, domainError(err))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Login exchanges credentials for a token.
func (h *Handler) Login(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "request body must be valid JSON", err))
		return
	}
	resp, err := h.authSvc.Login(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, domainError(err))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CreateFAQ translates and stores a FAQ owned by the caller.
func (h *Handler) CreateFAQ(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		abortWithError(c, unauthorizedError(nil))
		return
	}
	var req faq.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "request body must be valid JSON", err))
		return
	}
	record, err := h.faqSvc.Create(c.Request.Context(), userID, req)
	if err != nil {
		abortWithError(c, domainError(err))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"msg": "FAQ created successfully", "faq": record})
}

// ListFAQs returns one page of FAQs projected into ?lang.
func (h *Handler) ListFAQs(c *gin.Context) {
	req := faq.ListRequest{
		Language: c.Query("lang"),
		Page:     util.AtoiDefault(c.Query("page"), 0),
		PageSize: util.AtoiDefault(c.Query("limit"), 0),
	}
	resp, err := h.faqSvc.List(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, domainError(err))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteFAQ removes a FAQ when the caller owns it.
func (h *Handler) DeleteFAQ(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		abortWithError(c, unauthorizedError(nil))
		return
	}
	if err := h.faqSvc.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		abortWithError(c, domainError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "FAQ deleted successfully"})
}

// Languages lists the languages a listing can be requested in.
func (h *Handler) Languages(c *gin.Context) {
	c.JSON(http.StatusOK, h.faqSvc.Languages())
}

// Health is the liveness probe.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
