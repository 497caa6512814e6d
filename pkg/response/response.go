package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "collab-dashboard/pkg/errors"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Error sends the error with the status carried by an *errors.HTTPError.
// Anything else is rendered as a 400 with the error text.
func Error(c *gin.Context, err error) {
	if !isHTTPError(err) {
		c.JSON(http.StatusBadRequest, Resp{
			ErrorCode: http.StatusBadRequest,
			Message:   err.Error(),
		})
		return
	}

	status := pkgErrors.StatusOf(err)
	if status >= http.StatusInternalServerError {
		InternalError(c, err)
		return
	}
	c.JSON(status, Resp{
		ErrorCode: status,
		Message:   err.Error(),
	})
}

// ErrorWithData sends 400 with an attached payload, e.g. the current view snapshot.
func ErrorWithData(c *gin.Context, err error, data any) {
	status := http.StatusBadRequest
	if isHTTPError(err) {
		status = pkgErrors.StatusOf(err)
	}
	c.JSON(status, Resp{
		ErrorCode: status,
		Message:   err.Error(),
		Data:      data,
	})
}

// InternalError sends 500 internal server error.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}

// Unauthorized sends 401 response.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Resp{
		ErrorCode: 401,
		Message:   "Unauthorized",
	})
}

// TooManyRequests sends 429 response.
func TooManyRequests(c *gin.Context) {
	c.JSON(http.StatusTooManyRequests, Resp{
		ErrorCode: 429,
		Message:   "Too many requests",
	})
}

func isHTTPError(err error) bool {
	var httpErr *pkgErrors.HTTPError
	return errors.As(err, &httpErr)
}
