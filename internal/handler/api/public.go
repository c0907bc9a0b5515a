package api

import (
	"net/http"

	reqdto "event-portal/internal/handler/dto/request"
	resdto "event-portal/internal/handler/dto/response"
	"event-portal/internal/handler/httperr"
	"event-portal/internal/pkg/errs"
	"event-portal/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PublicHandler struct{}

func NewPublicHandler() *PublicHandler {
	return &PublicHandler{}
}

// @Summary List events
// @Description Load the events and return the public calendar state
// @Tags events
// @Produce json
// @Success 200 {object} resdto.EventsResponse
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /events [get]
func (h *PublicHandler) Events(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}
	if err := s.LoadEvents(c.Request.Context()); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEventsState(s.State()))
}

// @Summary Register to an event
// @Description Validate the registration form and submit it. Field and contact errors are returned together.
// @Tags events
// @Accept json
// @Produce json
// @Param uuid path string true "Event UUID"
// @Param request body reqdto.RegisterRequest true "Registration form"
// @Success 201 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /events/{uuid}/registrations [post]
func (h *PublicHandler) Register(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	message, err := s.Register(c.Request.Context(), c.Param("uuid"), req.ToForm())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.MessageResponse{Message: message})
}

// @Summary Click a calendar day
// @Description Toggle the day panel for a date of the current month
// @Tags calendar
// @Accept json
// @Produce json
// @Param request body reqdto.DayRequest true "Clicked date"
// @Success 200 {object} resdto.DayClickedResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /calendar/day [post]
func (h *PublicHandler) DayClicked(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}
	var req reqdto.DayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	day, err := req.Day(s.Location())
	if err != nil {
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid date", nil)
		return
	}

	fired := s.DayClicked(day)
	c.JSON(http.StatusOK, resdto.DayClickedResponse{
		Fired:            fired,
		CalendarResponse: resdto.FromCalendar(s.State()),
	})
}

// @Summary Close the day panel
// @Tags calendar
// @Produce json
// @Success 200 {object} resdto.CalendarResponse
// @Router /calendar/day [delete]
func (h *PublicHandler) CloseDay(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}
	s.CloseDay()
	c.JSON(http.StatusOK, resdto.FromCalendar(s.State()))
}

// @Summary Change the calendar view
// @Tags calendar
// @Accept json
// @Produce json
// @Param request body reqdto.ViewRequest true "View mode"
// @Success 200 {object} resdto.CalendarResponse
// @Failure 400 {object} httperr.Response
// @Router /calendar/view [put]
func (h *PublicHandler) SetView(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}
	var req reqdto.ViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := s.SetView(queries.ViewMode(req.Mode)); err != nil {
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, errs.Cause(err).Error(), nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCalendar(s.State()))
}

// @Summary Move the calendar
// @Description Go to the previous or next period of the current view, or to today
// @Tags calendar
// @Accept json
// @Produce json
// @Param request body reqdto.NavigateRequest true "Direction"
// @Success 200 {object} resdto.CalendarResponse
// @Failure 400 {object} httperr.Response
// @Router /calendar/navigate [post]
func (h *PublicHandler) Navigate(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}
	var req reqdto.NavigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := s.Navigate(queries.Direction(req.Direction)); err != nil {
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, errs.Cause(err).Error(), nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCalendar(s.State()))
}
