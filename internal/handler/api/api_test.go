//go:build unit

package api_test

import (
	"context"
	"net/http"
	gohttptest "net/http/httptest"
	"testing"
	"time"

	"event-portal/internal/domain/event"
	"event-portal/internal/domain/registration"
	"event-portal/internal/handler"
	"event-portal/internal/handler/api"
	resdto "event-portal/internal/handler/dto/response"
	"event-portal/internal/handler/middleware"
	"event-portal/internal/pkg/clock"
	"event-portal/internal/pkg/config"
	"event-portal/internal/pkg/cookie"
	"event-portal/internal/pkg/errs"
	"event-portal/internal/pkg/jwt"
	"event-portal/internal/usecase/commands"
	"event-portal/internal/usecase/session"
	"event-portal/tests/common/builder"
	"event-portal/tests/common/httptest"
	"event-portal/tests/common/testutil"
	dataservicemock "event-portal/tests/mock/dataservice"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2026, time.March, 10, 9, 15, 0, 0, time.UTC)

type HandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	ds       *dataservicemock.MockDataService
	registry *session.Registry
	cookies  []*http.Cookie
}

func (s *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	cfg := config.NewTestConfig()

	s.mockCtrl = gomock.NewController(s.T())
	s.ds = dataservicemock.NewMockDataService(s.mockCtrl)
	factory := dataservicemock.NewMockDataServiceFactory(s.mockCtrl)
	factory.EXPECT().New().Return(s.ds, nil).AnyTimes()

	logger := middleware.NewLogger(cfg.Log)
	s.registry = session.NewRegistry(
		factory,
		jwt.NewService(cfg.Session.Secret, cfg.Session.TTL),
		clock.NewMockClock(now),
		cfg,
		logger.GetSlogLogger(),
	)
	sessions := middleware.NewSessionMiddleware(s.registry, cfg)

	s.router = gin.New()
	handler.NewRouter(s.router, cfg, logger, sessions, api.NewPublicHandler(), api.NewAdminHandler(sessions))
	s.cookies = nil
}

func (s *HandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

// do sends the request as the same browser, keeping the last session cookie it was given.
func (s *HandlerTestSuite) do(method, path string, body any) *gohttptest.ResponseRecorder {
	rec := httptest.PerformRequestWithCookies(s.T(), s.router, method, path, body, s.cookies)

	var last *http.Cookie
	for _, c := range httptest.ExtractCookies(rec) {
		if c.Name == cookie.SessionCookieName {
			last = c
		}
	}
	if last != nil {
		if last.MaxAge < 0 {
			s.cookies = nil
		} else {
			s.cookies = []*http.Cookie{last}
		}
	}
	return rec
}

func (s *HandlerTestSuite) login() {
	s.ds.EXPECT().LoginAdmin(gomock.Any(), "secret").Return(nil)
	s.ds.EXPECT().GetEvents(gomock.Any()).Return(builder.Events(1, 2), nil)
	s.ds.EXPECT().GetAdminRegistrations(gomock.Any()).
		Return([]event.AdminRegistration{builder.AdminRegistration(100, 1)}, nil)

	rec := s.do(http.MethodPost, "/api/admin/login", map[string]any{"password": "secret"})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
}

func eventBody(b *builder.EventBuilder) map[string]any {
	return map[string]any{
		"name":            b.Name,
		"description":     b.Description,
		"start_date":      b.Start.Format(time.RFC3339),
		"end_date":        b.End.Format(time.RFC3339),
		"available_slots": b.AvailableSlots,
	}
}

func (s *HandlerTestSuite) TestHealth() {
	rec := s.do(http.MethodGet, "/health", nil)
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	httptest.AssertHeaders(s.T(), rec, map[string]string{"Content-Type": "application/json; charset=utf-8"})
	s.Empty(s.cookies, "health is outside the session scope")
}

func (s *HandlerTestSuite) TestSessionCookie() {
	s.Run("first request starts a session and sets the cookie", func() {
		s.ds.EXPECT().GetEvents(gomock.Any()).Return(builder.Events(1), nil)

		rec := s.do(http.MethodGet, "/api/events", nil)

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		c := httptest.ExtractCookie(rec, cookie.SessionCookieName)
		s.Require().NotNil(c)
		s.True(c.HttpOnly)
		s.Equal(1, s.registry.Len())
	})

	s.Run("the cookie binds later requests to the same session", func() {
		rec := s.do(http.MethodPost, "/api/calendar/navigate", map[string]any{"direction": "next"})

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.Equal(1, s.registry.Len())
	})

	s.Run("a tampered cookie starts a new session", func() {
		s.cookies = []*http.Cookie{{Name: cookie.SessionCookieName, Value: "not-a-token"}}

		rec := s.do(http.MethodDelete, "/api/calendar/day", nil)

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.Equal(2, s.registry.Len())
	})
}

func (s *HandlerTestSuite) TestEvents() {
	s.Run("success: events and their calendar occurrences", func() {
		s.ds.EXPECT().GetEvents(gomock.Any()).Return(builder.Events(1, 2, 3), nil)

		rec := s.do(http.MethodGet, "/api/events", nil)

		var response resdto.EventsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Events, 3)
		s.Require().Len(response.Occurrences, 3)
		s.Equal("Event 1", response.Occurrences[0].Title)
		s.Equal("u1", response.Occurrences[0].Meta.UUID)
		s.Equal("month", string(response.Calendar.ViewMode))
		s.Nil(response.Feedback)
		s.False(response.InFlight.Load)
	})

	s.Run("error: data service failure keeps the previous events", func() {
		s.ds.EXPECT().GetEvents(gomock.Any()).
			Return(nil, errs.Mark(errs.New("connection refused"), errs.ErrTransient))

		rec := s.do(http.MethodGet, "/api/events", nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, session.MsgGeneric)
	})
}

func (s *HandlerTestSuite) TestRegister() {
	url := "/api/events/u1/registrations"
	reqBody := map[string]any{
		"firstName":   "Ada",
		"lastName":    "Lovelace",
		"email":       "ada@example.com",
		"phoneNumber": "",
	}

	s.Run("success: default message when the server sends none", func() {
		s.ds.EXPECT().RegisterToEvent(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, sub registration.Submission) (string, error) {
				s.Equal("u1", sub.EventUUID)
				s.Nil(sub.PhoneNumber)
				return "", nil
			})

		rec := s.do(http.MethodPost, url, reqBody)

		var response resdto.MessageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(commands.DefaultRegisteredMessage, response.Message)
	})

	s.Run("error: 422 with field and group errors together", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("lastName", ""), testutil.Field("email", nil))

		rec := s.do(http.MethodPost, url, body)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, session.MsgInvalidForm)
		var response struct {
			Detail registration.Errors `json:"detail"`
		}
		s.Require().NoError(httptest.DecodeResponseBody(s.T(), rec.Body, &response))
		s.Equal([]string{registration.MsgRequired}, response.Detail.Fields["lastName"])
		s.Equal(registration.MsgContactRequired, response.Detail.Group[registration.ContactGroup])
	})

	s.Run("error: maps data service errors to proper statuses", func() {
		testCases := []struct {
			name       string
			err        error
			expectCode int
		}{
			{name: "already registered", err: errs.Mark(errs.New("already registered"), errs.ErrConflict), expectCode: http.StatusConflict},
			{name: "rejected by server validation", err: errs.Mark(errs.New("event is full"), errs.ErrValidation), expectCode: http.StatusUnprocessableEntity},
			{name: "server down", err: errs.Mark(errs.New("connection refused"), errs.ErrTransient), expectCode: http.StatusBadGateway},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.ds.EXPECT().RegisterToEvent(gomock.Any(), gomock.Any()).Return("", tc.err)

				rec := s.do(http.MethodPost, url, reqBody)

				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: 400 on malformed JSON field types", func() {
		rec := s.do(http.MethodPost, url, map[string]any{"firstName": 42})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *HandlerTestSuite) TestCalendar() {
	s.ds.EXPECT().GetEvents(gomock.Any()).Return(builder.Events(1), nil)
	s.Require().Equal(http.StatusOK, s.do(http.MethodGet, "/api/events", nil).Code)

	s.Run("clicking a day with events opens it", func() {
		rec := s.do(http.MethodPost, "/api/calendar/day", map[string]any{"date": "2026-03-14"})

		var response resdto.DayClickedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Fired)
		s.True(response.Calendar.ActiveDayOpen)
		s.Len(response.ActiveDay, 1)
	})

	s.Run("closing the day panel", func() {
		rec := s.do(http.MethodDelete, "/api/calendar/day", nil)

		var response resdto.CalendarResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.Calendar.ActiveDayOpen)
		s.Empty(response.ActiveDay)
	})

	s.Run("clicking an empty day moves the view without opening it", func() {
		rec := s.do(http.MethodPost, "/api/calendar/day", map[string]any{"date": "2026-03-20"})

		var response resdto.DayClickedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Fired)
		s.False(response.Calendar.ActiveDayOpen)
		s.Equal(20, response.Calendar.ViewDate.Day())
	})

	s.Run("clicking outside the viewed month is ignored", func() {
		rec := s.do(http.MethodPost, "/api/calendar/day", map[string]any{"date": "2026-04-02"})

		var response resdto.DayClickedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.Fired)
		s.Equal(20, response.Calendar.ViewDate.Day())
	})

	s.Run("unparseable date", func() {
		rec := s.do(http.MethodPost, "/api/calendar/day", map[string]any{"date": "14/03/2026"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Invalid date")
	})

	s.Run("switching view and navigating", func() {
		rec := s.do(http.MethodPut, "/api/calendar/view", map[string]any{"mode": "week"})
		var response resdto.CalendarResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("week", string(response.Calendar.ViewMode))

		rec = s.do(http.MethodPost, "/api/calendar/navigate", map[string]any{"direction": "next"})
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(27, response.Calendar.ViewDate.Day())

		rec = s.do(http.MethodPost, "/api/calendar/navigate", map[string]any{"direction": "today"})
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(now.Day(), response.Calendar.ViewDate.Day())
	})

	s.Run("error: 400 on values outside the allowed set", func() {
		httptest.AssertErrorResponse(s.T(), s.do(http.MethodPut, "/api/calendar/view", map[string]any{"mode": "year"}), http.StatusBadRequest, "")
		httptest.AssertErrorResponse(s.T(), s.do(http.MethodPost, "/api/calendar/navigate", map[string]any{"direction": "up"}), http.StatusBadRequest, "")
	})
}

func (s *HandlerTestSuite) TestLogin() {
	s.Run("error: incorrect password", func() {
		s.ds.EXPECT().LoginAdmin(gomock.Any(), "wrong").
			Return(errs.Mark(errs.New("invalid credentials"), errs.ErrUnauthenticated))

		rec := s.do(http.MethodPost, "/api/admin/login", map[string]any{"password": "wrong"})

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, session.MsgIncorrectPassword)
	})

	s.Run("error: blank password never reaches the data service", func() {
		rec := s.do(http.MethodPost, "/api/admin/login", map[string]any{"password": "  "})

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, commands.ErrPasswordRequired.Error())
	})

	s.Run("success: returns the dashboard", func() {
		s.ds.EXPECT().LoginAdmin(gomock.Any(), "secret").Return(nil)
		s.ds.EXPECT().GetEvents(gomock.Any()).Return(builder.Events(1, 2), nil)
		s.ds.EXPECT().GetAdminRegistrations(gomock.Any()).
			Return([]event.AdminRegistration{builder.AdminRegistration(100, 1), builder.AdminRegistration(101, 1)}, nil)

		rec := s.do(http.MethodPost, "/api/admin/login", map[string]any{"password": "secret"})

		var response resdto.DashboardResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Groups, 2, "one group per event")
		s.Equal(int64(1), response.Groups[0].EventID)
		s.Len(response.Groups[0].Registrations, 2)
		s.Equal(int64(2), response.Groups[1].EventID)
		s.NotNil(response.Groups[1].Registrations)
		s.Empty(response.Groups[1].Registrations)
		s.Len(response.Occurrences, 2)
	})

	s.Run("error: wrong password on an already logged in session", func() {
		s.ds.EXPECT().LoginAdmin(gomock.Any(), "wrong").
			Return(errs.Mark(errs.New("invalid credentials"), errs.ErrUnauthenticated))

		rec := s.do(http.MethodPost, "/api/admin/login", map[string]any{"password": "wrong"})

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, session.MsgIncorrectPassword)
	})

	s.Run("error: accepted password with a failing dashboard load", func() {
		s.ds.EXPECT().LoginAdmin(gomock.Any(), "secret").Return(nil)
		s.ds.EXPECT().GetEvents(gomock.Any()).
			Return(nil, errs.Mark(errs.New("connection refused"), errs.ErrTransient))
		s.ds.EXPECT().GetAdminRegistrations(gomock.Any()).Return([]event.AdminRegistration{}, nil).AnyTimes()

		rec := s.do(http.MethodPost, "/api/admin/login", map[string]any{"password": "secret"})

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, session.MsgGeneric)
	})
}

func (s *HandlerTestSuite) TestAdminRequired() {
	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/admin/dashboard"},
		{http.MethodGet, "/api/admin/events/draft"},
		{http.MethodPost, "/api/admin/events"},
		{http.MethodPut, "/api/admin/events/u1"},
		{http.MethodDelete, "/api/admin/events/u1"},
		{http.MethodDelete, "/api/admin/registrations/r1"},
	}

	for _, p := range paths {
		s.Run(p.method+" "+p.path, func() {
			rec := s.do(p.method, p.path, nil)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, session.MsgNotAuthenticated)
		})
	}
}

func (s *HandlerTestSuite) TestDraft() {
	s.login()

	s.Run("new event defaults", func() {
		rec := s.do(http.MethodGet, "/api/admin/events/draft", nil)

		var response resdto.DraftResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC), response.Start.UTC())
		s.Equal(response.Start.Add(time.Hour), response.End)
		s.Equal(event.DefaultAvailableSlots, response.AvailableSlots)
	})

	s.Run("prefilled from the stored event", func() {
		rec := s.do(http.MethodGet, "/api/admin/events/draft?uuid=u2", nil)

		var response resdto.DraftResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Event 2", response.Name)
	})

	s.Run("unknown uuid", func() {
		rec := s.do(http.MethodGet, "/api/admin/events/draft?uuid=nope", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")
	})
}

func (s *HandlerTestSuite) TestEventMutations() {
	s.login()

	s.Run("create", func() {
		b := builder.NewEventBuilder().WithID(3)
		created := b.Build()
		s.ds.EXPECT().CreateEvent(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, d event.Draft) (*event.Event, error) {
				s.Equal(b.Name, d.Name)
				s.True(d.Start.Equal(b.Start))
				return &created, nil
			})

		rec := s.do(http.MethodPost, "/api/admin/events", eventBody(b))

		var response resdto.EventResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("u3", response.UUID)
	})

	s.Run("create: draft rules are enforced before the data service", func() {
		b := builder.NewEventBuilder().WithID(4)
		body := testutil.DtoMap(s.T(), eventBody(b), testutil.Field("end_date", b.Start.Add(-time.Hour).Format(time.RFC3339)))

		rec := s.do(http.MethodPost, "/api/admin/events", body)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")
	})

	s.Run("create: missing dates", func() {
		body := testutil.DtoMap(s.T(), eventBody(builder.NewEventBuilder()), testutil.Field("start_date", nil))
		rec := s.do(http.MethodPost, "/api/admin/events", body)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("update keeps the uuid from the path", func() {
		b := builder.NewEventBuilder().WithID(1).With(func(b *builder.EventBuilder) { b.Name = "Renamed" })
		updated := b.Build()
		s.ds.EXPECT().UpdateEvent(gomock.Any(), "u1", gomock.Any()).Return(&updated, nil)

		rec := s.do(http.MethodPut, "/api/admin/events/u1", eventBody(b))

		var response resdto.EventResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Renamed", response.Name)
		s.Equal("u1", response.UUID)
	})

	s.Run("update of an unknown event", func() {
		rec := s.do(http.MethodPut, "/api/admin/events/nope", eventBody(builder.NewEventBuilder()))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")
	})

	s.Run("delete", func() {
		s.ds.EXPECT().DeleteEvent(gomock.Any(), "u2").Return(nil)

		rec := s.do(http.MethodDelete, "/api/admin/events/u2", nil)

		var response resdto.DashboardResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().NotNil(response.Feedback)
		s.Equal(session.MsgEventDeleted, response.Feedback.Message)
		for _, o := range response.Occurrences {
			s.NotEqual("u2", o.Meta.UUID)
		}
	})

	s.Run("delete registration reloads everything", func() {
		s.ds.EXPECT().DeleteRegistration(gomock.Any(), "r100").Return(nil)
		s.ds.EXPECT().GetEvents(gomock.Any()).Return(builder.Events(1), nil)
		s.ds.EXPECT().GetAdminRegistrations(gomock.Any()).Return([]event.AdminRegistration{}, nil)

		rec := s.do(http.MethodDelete, "/api/admin/registrations/r100", nil)

		var response resdto.DashboardResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Groups, 1)
		s.Equal(int64(1), response.Groups[0].EventID)
		s.Empty(response.Groups[0].Registrations)
	})
}

func (s *HandlerTestSuite) TestDashboard() {
	s.login()

	s.Run("served from memory", func() {
		rec := s.do(http.MethodGet, "/api/admin/dashboard", nil)

		var response resdto.DashboardResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Groups, 2)
		s.Len(response.Groups[0].Registrations, 1)
		s.Empty(response.Groups[1].Registrations)
	})

	s.Run("a rejected admin session falls back to login", func() {
		s.ds.EXPECT().GetEvents(gomock.Any()).Return(builder.Events(1), nil).AnyTimes()
		s.ds.EXPECT().GetAdminRegistrations(gomock.Any()).
			Return(nil, errs.Mark(errs.New("session expired"), errs.ErrUnauthenticated))

		rec := s.do(http.MethodGet, "/api/admin/dashboard?reload=true", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")

		rec = s.do(http.MethodGet, "/api/admin/dashboard", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, session.MsgNotAuthenticated)
	})
}

func (s *HandlerTestSuite) TestLogout() {
	s.login()
	s.Require().Equal(1, s.registry.Len())

	rec := s.do(http.MethodPost, "/api/admin/logout", nil)

	s.Equal(http.StatusNoContent, rec.Code)
	s.Empty(s.cookies, "the session cookie is cleared")
	s.Equal(0, s.registry.Len())

	rec = s.do(http.MethodGet, "/api/admin/dashboard", nil)
	httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, session.MsgNotAuthenticated)
}

func (s *HandlerTestSuite) TestInFlight() {
	s.Require().Equal(http.StatusOK, s.do(http.MethodDelete, "/api/calendar/day", nil).Code)
	cookies := s.cookies

	started := make(chan struct{})
	release := make(chan struct{})
	s.ds.EXPECT().GetEvents(gomock.Any()).
		DoAndReturn(func(context.Context) ([]event.Event, error) {
			close(started)
			<-release
			return builder.Events(1), nil
		})

	first := make(chan int)
	go func() {
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, "/api/events", nil, cookies)
		first <- rec.Code
	}()
	<-started

	rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, "/api/events", nil, cookies)
	httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, session.MsgInFlight)

	close(release)
	s.Equal(http.StatusOK, <-first)
}
