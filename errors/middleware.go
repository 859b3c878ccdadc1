package errors

import (
	"errors"

	"github.com/labstack/echo/v4"
)

func CustomHTTPErrorHandler(err error, c echo.Context) {
	e := HttpError{}
	if errors.As(err, &e) {
		// Authentication failures are always opaque. Returning the wrapped
		// message would leak why verification failed.
		if e.Code == Forbidden.Code {
			c.Echo().DefaultHTTPErrorHandler(echo.NewHTTPError(e.Code, Forbidden.Error()), c)
			return
		}
		c.Echo().DefaultHTTPErrorHandler(echo.NewHTTPError(e.Code, err.Error()), c)
		return
	}
	c.Echo().DefaultHTTPErrorHandler(err, c)
}
