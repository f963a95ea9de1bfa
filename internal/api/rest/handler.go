package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-catalog/internal/adapter"
	"github.com/feral-file/ff-catalog/internal/api/middleware"
	"github.com/feral-file/ff-catalog/internal/api/shared/constants"
	"github.com/feral-file/ff-catalog/internal/catalog"
	"github.com/feral-file/ff-catalog/internal/domain"
	"github.com/feral-file/ff-catalog/internal/store"
)

// Handler defines the interface for REST API handlers
type Handler interface {
	// ListNFTs lists NFTs, grouping each page by series
	// GET /api/v1/nfts?pagination={"page":1,"limit":20}&sort=timestampCreate:desc&filter={...}
	ListNFTs(c *gin.Context)

	// ListSeries lists one NFT per series with series totals
	// GET /api/v1/nfts/series?pagination=...&sort=...&filter=...
	ListSeries(c *gin.Context)

	// GetNFT retrieves a single NFT
	// GET /api/v1/nfts/:id?incViews=true
	GetNFT(c *gin.Context)

	// GetNFTHistory lists the ledger operations of an NFT
	// GET /api/v1/nfts/:id/history?grouped=true&bySerie=true&types=sale,transfer&page=1&limit=50
	GetNFTHistory(c *gin.Context)

	// LikeNFT records that the caller likes an NFT (requires a wallet token)
	// POST /api/v1/nfts/:id/like
	LikeNFT(c *gin.Context)

	// TagNFT attaches categories to an NFT (requires an API key)
	// PUT /api/v1/nfts/:id/categories
	TagNFT(c *gin.Context)

	// RecordView counts a view of an NFT, series or user
	// POST /api/v1/views
	RecordView(c *gin.Context)

	// GetSeriesStatus retrieves the owner and lock state of a series
	// GET /api/v1/series/:id/status
	GetSeriesStatus(c *gin.Context)

	// ListCategories lists the category catalog
	// GET /api/v1/categories?page=1&limit=100
	ListCategories(c *gin.Context)

	// CreateCategory adds a category (requires an API key)
	// POST /api/v1/categories
	CreateCategory(c *gin.Context)

	// GetUser retrieves a profile
	// GET /api/v1/users/:id?incViews=true
	GetUser(c *gin.Context)

	// GetUserStats retrieves the activity counters of a wallet
	// GET /api/v1/users/:id/stats
	GetUserStats(c *gin.Context)

	// UpdateProfile updates the caller's own profile (requires a wallet token)
	// PUT /api/v1/users/:id
	UpdateProfile(c *gin.Context)

	// Follow makes the caller follow a user (requires a wallet token)
	// POST /api/v1/users/:id/follow
	Follow(c *gin.Context)

	// Unfollow removes the caller's follow (requires a wallet token)
	// DELETE /api/v1/users/:id/follow
	Unfollow(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	service catalog.Service
	json    adapter.JSON
	jcs     adapter.JCS
}

// NewHandler creates a new REST API handler on top of the catalog service
func NewHandler(service catalog.Service, json adapter.JSON, jcs adapter.JCS) Handler {
	return &handler{
		service: service,
		json:    json,
		jcs:     jcs,
	}
}

var (
	nftListOptions     = catalog.NormalizeOptions{MaxLimit: constants.MAX_NFT_PAGE_SIZE, SortFields: catalog.NFTSortFields}
	historyListOptions = catalog.NormalizeOptions{MaxLimit: constants.MAX_LIST_PAGE_SIZE, SortFields: catalog.HistorySortFields}
	plainListOptions   = catalog.NormalizeOptions{MaxLimit: constants.MAX_LIST_PAGE_SIZE}
)

func (h *handler) viewOptions(c *gin.Context) (catalog.ViewOptions, bool) {
	incViews, ok := parseBoolQuery(c, "incViews")
	if !ok {
		respondValidationError(c, "incViews")
		return catalog.ViewOptions{}, false
	}
	return catalog.ViewOptions{
		IncrementViews: incViews,
		ViewerIP:       c.ClientIP(),
		ViewerWallet:   middleware.ViewerWallet(c),
	}, true
}

// ListNFTs lists NFTs matching the filter
func (h *handler) ListNFTs(c *gin.Context) {
	q, err := ParseListQuery(c, nftListOptions)
	if err != nil {
		respondError(c, err, "Invalid query")
		return
	}

	result, err := h.service.QueryCatalog(c.Request.Context(), q, catalog.ViewOptions{ViewerWallet: middleware.ViewerWallet(c)})
	if err != nil {
		respondError(c, err, "Failed to list NFTs")
		return
	}
	c.JSON(http.StatusOK, result)
}

// ListSeries lists one NFT per series
func (h *handler) ListSeries(c *gin.Context) {
	q, err := ParseListQuery(c, nftListOptions)
	if err != nil {
		respondError(c, err, "Invalid query")
		return
	}

	result, err := h.service.QueryDistinct(c.Request.Context(), q, catalog.ViewOptions{ViewerWallet: middleware.ViewerWallet(c)})
	if err != nil {
		respondError(c, err, "Failed to list series")
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetNFT retrieves a single NFT
func (h *handler) GetNFT(c *gin.Context) {
	opts, ok := h.viewOptions(c)
	if !ok {
		return
	}

	record, err := h.service.GetEntity(c.Request.Context(), c.Param("id"), opts)
	if err != nil {
		respondError(c, err, "Failed to get NFT")
		return
	}
	if opts.IncrementViews {
		// a counted view changes the body on every call
		c.JSON(http.StatusOK, record)
		return
	}
	h.respondEntity(c, record)
}

// GetNFTHistory lists the operations of an NFT
func (h *handler) GetNFTHistory(c *gin.Context) {
	grouped, ok := parseBoolQuery(c, "grouped")
	if !ok {
		respondValidationError(c, "grouped")
		return
	}
	bySerie, ok := parseBoolQuery(c, "bySerie")
	if !ok {
		respondValidationError(c, "bySerie")
		return
	}

	q, err := ParseListQuery(c, historyListOptions)
	if err != nil {
		respondError(c, err, "Invalid query")
		return
	}

	result, err := h.service.GetHistory(c.Request.Context(), catalog.HistoryRequest{
		NFTID:   c.Param("id"),
		BySerie: bySerie,
		Grouped: grouped,
		Types:   parseListParam(c, "types"),
	}, q)
	if err != nil {
		respondError(c, err, "Failed to get history")
		return
	}
	c.JSON(http.StatusOK, result)
}

// LikeNFT records a like from the caller
func (h *handler) LikeNFT(c *gin.Context) {
	wallet := middleware.ViewerWallet(c)
	if wallet == nil {
		respondForbidden(c, "A wallet token is required")
		return
	}

	if err := h.service.Like(c.Request.Context(), *wallet, c.Param("id")); err != nil {
		respondError(c, err, "Failed to like NFT")
		return
	}
	c.Status(http.StatusNoContent)
}

// TagNFT attaches categories to an NFT
func (h *handler) TagNFT(c *gin.Context) {
	var req tagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	if err := h.service.TagNFT(c.Request.Context(), c.Param("id"), req.Codes); err != nil {
		respondError(c, err, "Failed to tag NFT")
		return
	}
	c.Status(http.StatusNoContent)
}

// RecordView counts a view
func (h *handler) RecordView(c *gin.Context) {
	var req viewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	subject := domain.ViewSubject{Kind: domain.SubjectKind(req.Kind), ID: req.ID}
	result, err := h.service.RecordView(c.Request.Context(), subject, c.ClientIP(), middleware.ViewerWallet(c))
	if err != nil {
		respondError(c, err, "Failed to record view")
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetSeriesStatus retrieves the lock state of a series
func (h *handler) GetSeriesStatus(c *gin.Context) {
	status, err := h.service.GetSeriesStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to get series status")
		return
	}
	h.respondEntity(c, status)
}

// ListCategories lists categories
func (h *handler) ListCategories(c *gin.Context) {
	q, err := ParseListQuery(c, plainListOptions)
	if err != nil {
		respondError(c, err, "Invalid query")
		return
	}

	result, err := h.service.ListCategories(c.Request.Context(), q)
	if err != nil {
		respondError(c, err, "Failed to list categories")
		return
	}
	c.JSON(http.StatusOK, result)
}

// CreateCategory adds a category
func (h *handler) CreateCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if req.Code == domain.UncategorizedCode {
		respondValidationError(c, "code")
		return
	}

	category, err := h.service.CreateCategory(c.Request.Context(), store.CreateCategoryInput{
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, err, "Failed to create category")
		return
	}
	c.JSON(http.StatusCreated, category)
}

// GetUser retrieves a profile
func (h *handler) GetUser(c *gin.Context) {
	opts, ok := h.viewOptions(c)
	if !ok {
		return
	}

	user, err := h.service.GetUser(c.Request.Context(), c.Param("id"), opts)
	if err != nil {
		respondError(c, err, "Failed to get user")
		return
	}
	if opts.IncrementViews {
		c.JSON(http.StatusOK, user)
		return
	}
	h.respondEntity(c, user)
}

// GetUserStats retrieves activity counters
func (h *handler) GetUserStats(c *gin.Context) {
	stats, err := h.service.GetUserStats(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to get user stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// UpdateProfile updates the caller's profile
func (h *handler) UpdateProfile(c *gin.Context) {
	walletID := c.Param("id")
	wallet := middleware.ViewerWallet(c)
	if wallet == nil || *wallet != walletID {
		respondForbidden(c, "Only the wallet owner can update this profile")
		return
	}

	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	user, err := h.service.UpdateProfile(c.Request.Context(), store.UpsertProfileInput{
		WalletID: walletID,
		Name:     req.Name,
		Bio:      req.Bio,
		Links:    req.Links,
	})
	if err != nil {
		respondError(c, err, "Failed to update profile")
		return
	}
	c.JSON(http.StatusOK, user)
}

// Follow makes the caller follow a user
func (h *handler) Follow(c *gin.Context) {
	wallet := middleware.ViewerWallet(c)
	if wallet == nil {
		respondForbidden(c, "A wallet token is required")
		return
	}

	result, err := h.service.Follow(c.Request.Context(), c.Param("id"), *wallet)
	if err != nil {
		respondError(c, err, "Failed to follow user")
		return
	}
	c.JSON(http.StatusOK, result)
}

// Unfollow removes the caller's follow
func (h *handler) Unfollow(c *gin.Context) {
	wallet := middleware.ViewerWallet(c)
	if wallet == nil {
		respondForbidden(c, "A wallet token is required")
		return
	}

	result, err := h.service.Unfollow(c.Request.Context(), c.Param("id"), *wallet)
	if err != nil {
		respondError(c, err, "Failed to unfollow user")
		return
	}
	c.JSON(http.StatusOK, result)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "ff-catalog-api",
	})
}
