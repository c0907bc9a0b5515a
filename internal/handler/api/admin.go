package api

import (
	"net/http"

	reqdto "event-portal/internal/handler/dto/request"
	resdto "event-portal/internal/handler/dto/response"
	"event-portal/internal/handler/httperr"
	"event-portal/internal/handler/middleware"
	"event-portal/internal/pkg/errs"
	"event-portal/internal/usecase/commands"
	"event-portal/internal/usecase/session"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	sessions *middleware.SessionMiddleware
}

func NewAdminHandler(sessions *middleware.SessionMiddleware) *AdminHandler {
	return &AdminHandler{sessions: sessions}
}

// @Summary Admin login
// @Description Open an admin session on the data service and load the dashboard
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Admin password"
// @Success 200 {object} resdto.DashboardResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /admin/login [post]
func (h *AdminHandler) Login(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := s.Login(c.Request.Context(), req.Password); err != nil {
		if errs.Is(err, session.ErrAdminLoad) {
			httperr.Abort(c, err)
			return
		}
		httperr.AbortWithFeedback(c, err, session.LoginFeedback(err))
		return
	}
	c.JSON(http.StatusOK, resdto.FromDashboardState(s.State()))
}

// @Summary Admin logout
// @Description Drop the admin state and the visitor session
// @Tags admin
// @Success 204
// @Router /admin/logout [post]
func (h *AdminHandler) Logout(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}
	s.Logout()
	h.sessions.EndSession(c, s)
	c.Status(http.StatusNoContent)
}

// @Summary Admin dashboard
// @Description Registrations grouped by event with the calendar state. reload=true fetches events and registrations again.
// @Tags admin
// @Produce json
// @Param reload query bool false "Reload from the data service"
// @Success 200 {object} resdto.DashboardResponse
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /admin/dashboard [get]
func (h *AdminHandler) Dashboard(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}
	if c.Query("reload") == "true" {
		if err := s.LoadAdmin(c.Request.Context()); err != nil {
			httperr.Abort(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, resdto.FromDashboardState(s.State()))
}

// @Summary Editor prefill
// @Description Draft for a new event, or for the event with the given uuid
// @Tags admin
// @Produce json
// @Param uuid query string false "Event UUID"
// @Success 200 {object} resdto.DraftResponse
// @Failure 401 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /admin/events/draft [get]
func (h *AdminHandler) Draft(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}
	d, err := s.Draft(c.Query("uuid"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDraft(d))
}

// @Summary Create an event
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.EventRequest true "Event"
// @Success 201 {object} resdto.EventResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /admin/events [post]
func (h *AdminHandler) CreateEvent(c *gin.Context) {
	h.saveEvent(c, "", http.StatusCreated)
}

// @Summary Update an event
// @Tags admin
// @Accept json
// @Produce json
// @Param uuid path string true "Event UUID"
// @Param request body reqdto.EventRequest true "Event"
// @Success 200 {object} resdto.EventResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /admin/events/{uuid} [put]
func (h *AdminHandler) UpdateEvent(c *gin.Context) {
	h.saveEvent(c, c.Param("uuid"), http.StatusOK)
}

func (h *AdminHandler) saveEvent(c *gin.Context, uuid string, status int) {
	s, ok := currentSession(c)
	if !ok {
		return
	}
	var req reqdto.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	saved, err := s.SaveEvent(c.Request.Context(), uuid, commands.Submitted(req.ToDraft()))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	if saved == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(status, resdto.FromEvent(*saved))
}

// @Summary Delete an event
// @Tags admin
// @Produce json
// @Param uuid path string true "Event UUID"
// @Success 200 {object} resdto.DashboardResponse
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /admin/events/{uuid} [delete]
func (h *AdminHandler) DeleteEvent(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}
	if err := s.DeleteEvent(c.Request.Context(), c.Param("uuid")); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDashboardState(s.State()))
}

// @Summary Delete a registration
// @Description Delete on the data service, then reload events and registrations
// @Tags admin
// @Produce json
// @Param uuid path string true "Registration UUID"
// @Success 200 {object} resdto.DashboardResponse
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /admin/registrations/{uuid} [delete]
func (h *AdminHandler) DeleteRegistration(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}
	if err := s.DeleteRegistration(c.Request.Context(), c.Param("uuid")); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDashboardState(s.State()))
}
