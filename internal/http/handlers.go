package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mergington/announcements-service/internal/domain"
	"github.com/mergington/announcements-service/internal/log"
	"github.com/mergington/announcements-service/internal/metrics"
	"github.com/mergington/announcements-service/internal/queue"
	"github.com/mergington/announcements-service/internal/repo"
	"github.com/mergington/announcements-service/internal/service"
	"github.com/mergington/announcements-service/internal/timeutil"
)

type Handler struct {
	Store           *repo.Store
	Svc             *service.Service
	Pub             queue.Publisher
	Redis           *repo.Redis
	RateLimitPerMin int
}

func NewHandler(store *repo.Store, svc *service.Service, pub queue.Publisher, rds *repo.Redis, rlPerMin int) *Handler {
	return &Handler{
		Store:           store,
		Svc:             svc,
		Pub:             pub,
		Redis:           rds,
		RateLimitPerMin: rlPerMin,
	}
}

type announcementResp struct {
	ID             string  `json:"id"`
	Message        string  `json:"message"`
	StartDate      *string `json:"start_date"`
	ExpirationDate string  `json:"expiration_date"`
	CreatedAt      string  `json:"created_at"`
}

func toResp(a domain.Announcement) announcementResp {
	return announcementResp{
		ID:             a.ID.Hex(),
		Message:        a.Message,
		StartDate:      timeutil.FormatPtr(a.StartDate),
		ExpirationDate: timeutil.Format(a.ExpirationDate),
		CreatedAt:      timeutil.Format(a.CreatedAt),
	}
}

func toRespList(items []domain.Announcement) []announcementResp {
	out := make([]announcementResp, 0, len(items))
	for _, a := range items {
		out = append(out, toResp(a))
	}
	return out
}

// writeErr maps the service error kinds onto boundary statuses.
func writeErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNoCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrUnknownTeacher):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case service.IsInvalidArgument(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.WithDD(c.Request.Context(), log.L()).Error("announcement op failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
	}
}

type announcementReq struct {
	Message        string  `json:"message"`
	ExpirationDate string  `json:"expiration_date"`
	StartDate      *string `json:"start_date"`
}

func (r announcementReq) input() service.Input {
	return service.Input{
		Message:        r.Message,
		ExpirationDate: r.ExpirationDate,
		StartDate:      r.StartDate,
	}
}

// ListActive godoc
// @Summary Currently active announcements
// @Tags announcements
// @Produce json
// @Success 200 {array} announcementResp
// @Router /api/announcements/active [get]
func (h *Handler) ListActive(c *gin.Context) {
	items, err := h.Svc.ListActive(c.Request.Context())
	if err != nil {
		writeErr(c, err)
		return
	}
	metrics.AnnouncementsActive.Set(float64(len(items)))
	c.JSON(http.StatusOK, toRespList(items))
}

// ListAll godoc
// @Summary All announcements (management view)
// @Tags announcements
// @Produce json
// @Param teacher_username query string true "teacher credential"
// @Success 200 {array} announcementResp
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /api/announcements [get]
func (h *Handler) ListAll(c *gin.Context) {
	items, err := h.Svc.ListAll(c.Request.Context(), c.Query("teacher_username"))
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, toRespList(items))
}

// Create godoc
// @Summary Create announcement
// @Tags announcements
// @Accept json
// @Produce json
// @Param teacher_username query string true "teacher credential"
// @Param payload body announcementReq true "message, expiration_date, start_date(optional)"
// @Success 201 {object} announcementResp
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /api/announcements [post]
func (h *Handler) Create(c *gin.Context) {
	var in announcementReq
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	a, err := h.Svc.Create(c.Request.Context(), c.Query("teacher_username"), in.input())
	if err != nil {
		writeErr(c, err)
		return
	}
	if h.Pub != nil {
		_ = h.Pub.Publish(c.Request.Context(), queue.Exchange, queue.KeyCreated,
			queue.AnnouncementCreated{
				ID:             a.ID.Hex(),
				Message:        a.Message,
				StartDate:      a.StartDate,
				ExpirationDate: a.ExpirationDate,
			}, c.GetString(requestIDKey))
	}
	c.JSON(http.StatusCreated, toResp(*a))
}

// Update godoc
// @Summary Update announcement
// @Tags announcements
// @Accept json
// @Produce json
// @Param id path string true "announcement id"
// @Param teacher_username query string true "teacher credential"
// @Param payload body announcementReq true "message, expiration_date, start_date(optional)"
// @Success 200 {object} announcementResp
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/announcements/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	var in announcementReq
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	a, err := h.Svc.Update(c.Request.Context(), c.Query("teacher_username"), c.Param("id"), in.input())
	if err != nil {
		writeErr(c, err)
		return
	}
	if h.Pub != nil {
		_ = h.Pub.Publish(c.Request.Context(), queue.Exchange, queue.KeyUpdated,
			queue.AnnouncementUpdated{
				ID:             a.ID.Hex(),
				Message:        a.Message,
				StartDate:      a.StartDate,
				ExpirationDate: a.ExpirationDate,
			}, c.GetString(requestIDKey))
	}
	c.JSON(http.StatusOK, toResp(*a))
}

// Delete godoc
// @Summary Delete announcement
// @Tags announcements
// @Produce json
// @Param id path string true "announcement id"
// @Param teacher_username query string true "teacher credential"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/announcements/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.Svc.Delete(c.Request.Context(), c.Query("teacher_username"), id); err != nil {
		writeErr(c, err)
		return
	}
	if h.Pub != nil {
		_ = h.Pub.Publish(c.Request.Context(), queue.Exchange, queue.KeyDeleted,
			queue.AnnouncementDeleted{ID: id}, c.GetString(requestIDKey))
	}
	c.JSON(http.StatusOK, gin.H{"message": "Announcement deleted successfully"})
}

func (h *Handler) Healthz(c *gin.Context) {
	if err := h.Store.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": err.Error()})
		return
	}
	if h.Redis != nil {
		if err := h.Redis.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
