// Command offsetsd is a small demo HTTP server exercising the offset
// algebra over the wire: apply an offset to a timestamp, test whether a
// timestamp is on-offset, and enumerate a bounded range.
package main

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/mileusna/useragent"
	"github.com/yuin/goldmark"

	"github.com/jpfluger/dateoffsets/aerr"
	"github.com/jpfluger/dateoffsets/alog"
	"github.com/jpfluger/dateoffsets/aoffsets"
)

// httpError wraps err in aerr.Error so the JSON body echo writes for this
// failure is the bare error string rather than echo's default
// {"message": ...} envelope.
func httpError(code int, err error) *echo.HTTPError {
	return echo.NewHTTPError(code, aerr.NewError(err))
}

type customValidator struct {
	validate *validator.Validate
}

func (cv *customValidator) Validate(i interface{}) error {
	return cv.validate.Struct(i)
}

func main() {
	e := echo.New()
	e.Validator = &customValidator{validate: validator.New()}
	e.Use(requestLogger())
	e.Use(middleware.Recover())

	e.GET("/describe", handleDescribe)
	e.POST("/apply", handleApply)
	e.POST("/on-offset", handleOnOffset)
	e.POST("/range", handleRange)

	e.Logger.Fatal(e.Start(":8085"))
}

// requestLogger mirrors the teacher's zerolog-over-echo middleware
// pattern, scoped to the HTTP channel.
func requestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			logger := alog.LOGGER(alog.LOGGER_HTTP)

			ua := useragent.Parse(c.Request().UserAgent())
			event := logger.Info()
			if err != nil {
				event = logger.Err(err)
			}
			event.
				Str("method", c.Request().Method).
				Str("path", c.Request().URL.Path).
				Str("client", ua.Name).
				Dur("latency", time.Since(start)).
				Msg("request")
			return err
		}
	}
}

type ruleCodeRequest struct {
	RuleCode  string `json:"ruleCode" validate:"required"`
	Timestamp string `json:"timestamp" validate:"required"`
}

func (r ruleCodeRequest) parse() (aoffsets.Offset, time.Time, error) {
	offset, err := aoffsets.MakeOffset(r.RuleCode)
	if err != nil {
		return nil, time.Time{}, err
	}
	ts, err := time.Parse(time.RFC3339, r.Timestamp)
	if err != nil {
		return nil, time.Time{}, err
	}
	return offset, ts, nil
}

func handleApply(c echo.Context) error {
	var req ruleCodeRequest
	if err := c.Bind(&req); err != nil {
		return httpError(http.StatusBadRequest, err)
	}
	if err := c.Validate(req); err != nil {
		return httpError(http.StatusBadRequest, err)
	}
	offset, ts, err := req.parse()
	if err != nil {
		return httpError(http.StatusBadRequest, err)
	}
	result, err := offset.Apply(ts)
	if err != nil {
		return httpError(http.StatusUnprocessableEntity, err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"ruleCode": offset.FreqStr(),
		"result":   result.Format(time.RFC3339),
	})
}

func handleOnOffset(c echo.Context) error {
	var req ruleCodeRequest
	if err := c.Bind(&req); err != nil {
		return httpError(http.StatusBadRequest, err)
	}
	if err := c.Validate(req); err != nil {
		return httpError(http.StatusBadRequest, err)
	}
	offset, ts, err := req.parse()
	if err != nil {
		return httpError(http.StatusBadRequest, err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"onOffset": offset.OnOffset(ts)})
}

type rangeRequest struct {
	RuleCode string `json:"ruleCode" validate:"required"`
	Start    string `json:"start" validate:"required"`
	End      string `json:"end,omitempty"`
	Periods  *int   `json:"periods,omitempty" validate:"omitempty,gte=0"`
}

func handleRange(c echo.Context) error {
	var req rangeRequest
	if err := c.Bind(&req); err != nil {
		return httpError(http.StatusBadRequest, err)
	}
	if err := c.Validate(req); err != nil {
		return httpError(http.StatusBadRequest, err)
	}

	offset, err := aoffsets.MakeOffset(req.RuleCode)
	if err != nil {
		return httpError(http.StatusBadRequest, err)
	}
	start, err := time.Parse(time.RFC3339, req.Start)
	if err != nil {
		return httpError(http.StatusBadRequest, err)
	}

	var end *time.Time
	if req.End != "" {
		e, err := time.Parse(time.RFC3339, req.End)
		if err != nil {
			return httpError(http.StatusBadRequest, err)
		}
		end = &e
	}

	dates, err := aoffsets.CollectRange(start, end, req.Periods, offset)
	if err != nil {
		return httpError(http.StatusUnprocessableEntity, err)
	}

	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = d.Format(time.RFC3339)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"dates": out, "count": strconv.Itoa(len(out))})
}

// handleDescribe renders a short markdown cheat sheet of supported
// rule-code prefixes as HTML, via goldmark.
func handleDescribe(c echo.Context) error {
	var buf writerBuffer
	if err := goldmark.Convert([]byte(describeMarkdown), &buf); err != nil {
		return httpError(http.StatusInternalServerError, err)
	}
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}

type writerBuffer struct {
	data []byte
}

func (w *writerBuffer) Write(p []byte) (int, error) {
	w.data = append(w.data, p...)
	return len(p), nil
}

func (w *writerBuffer) Bytes() []byte { return w.data }

const describeMarkdown = `# offsetsd

Supported rule-code prefixes: ` + "`B` `C` `D` `H` `T` `S` `L` `U` `N`" + `
` + "`M` `MS` `BM` `BMS` `Q` `QS` `BQ` `BQS`" + `
` + "`A` `AS` `BA` `BAS` `W` `WOM` `LWOM` `RE` `REQ`" + `

POST ` + "`/apply`" + ` with ` + "`{\"ruleCode\":\"BQ-FEB\",\"timestamp\":\"2024-01-15T00:00:00Z\"}`" + `.
`
