package response

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"matching-srv/pkg/discord"
	pkgErrors "matching-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

// OK writes a 200 response with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: CodeSuccess,
		Message:   MessageSuccess,
		Data:      data,
	})
}

// Unauthorized writes a 401 response.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Resp{
		ErrorCode: CodeUnauthorized,
		Message:   MessageUnauthorized,
	})
}

// Error writes err as a response. HTTPError and ValidationErrors keep their
// status; anything else becomes a 500 and is reported to Discord if d is set.
func Error(c *gin.Context, err error, d discord.IDiscord) {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		c.JSON(httpErr.StatusCode, Resp{
			ErrorCode: httpErr.Code,
			Message:   httpErr.Message,
		})
		return
	}

	var vErrs pkgErrors.ValidationErrors
	if errors.As(err, &vErrs) {
		c.JSON(http.StatusBadRequest, Resp{
			ErrorCode: CodeValidation,
			Message:   MessageValidation,
			Errors:    vErrs,
		})
		return
	}

	report(c.Request.Context(), d, c.Request.Method+" "+c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: CodeInternal,
		Message:   MessageInternal,
	})
}

// PanicError writes a 500 for a recovered panic value.
func PanicError(c *gin.Context, rec any, d discord.IDiscord) {
	err, ok := rec.(error)
	if !ok {
		err = fmt.Errorf("%v", rec)
	}

	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		Error(c, httpErr, d)
		return
	}

	report(c.Request.Context(), d, "panic: "+c.Request.Method+" "+c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: CodeInternal,
		Message:   MessageInternal,
	})
}

func report(ctx context.Context, d discord.IDiscord, title string, err error) {
	if d == nil {
		return
	}
	_ = d.ReportBug(ctx, fmt.Sprintf("%s\n```%v```", title, err))
}
