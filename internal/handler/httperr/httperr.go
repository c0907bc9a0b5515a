package httperr

import (
	"net/http"

	"event-portal/internal/domain/registration"
	"event-portal/internal/pkg/errs"
	"event-portal/internal/usecase/session"

	"github.com/gin-gonic/gin"
)

var ErrNoSession = errs.New("no session in request context")

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// StatusFor maps the error taxonomy to an HTTP status.
func StatusFor(err error) int {
	switch {
	case errs.Is(err, errs.ErrInFlight):
		return http.StatusConflict
	case errs.Is(err, errs.ErrValidation):
		return http.StatusUnprocessableEntity
	case errs.Is(err, errs.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errs.Is(err, errs.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusBadGateway
	}
}

// Abort answers with the status and user message for err. Invalid registration
// forms carry their field and group messages as detail.
func Abort(c *gin.Context, err error) {
	AbortWithFeedback(c, err, session.FeedbackFor(err))
}

func AbortWithFeedback(c *gin.Context, err error, fb session.Feedback) {
	var detail any
	var formErr *registration.ValidationError
	if errs.As(err, &formErr) {
		detail = formErr.Errors
	}
	AbortWithError(c, StatusFor(err), err, fb.Message, detail)
}
