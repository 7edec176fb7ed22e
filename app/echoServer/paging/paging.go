package paging

import (
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"
)

const (
	defaultFrom = 0
	defaultSize = 10
)

// Parse reads the from/size query parameters with their defaults.
// from must be >= 0 and size must be > 0.
func Parse(c echo.Context) (from, size int, err error) {
	from, err = intParam(c, "from", defaultFrom)
	if err != nil || from < 0 {
		return 0, 0, errors.New("from must be a non-negative integer")
	}
	size, err = intParam(c, "size", defaultSize)
	if err != nil || size <= 0 {
		return 0, 0, errors.New("size must be a positive integer")
	}
	return from, size, nil
}

func intParam(c echo.Context, name string, def int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
