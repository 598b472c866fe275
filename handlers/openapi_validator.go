package handlers

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/labstack/echo/v4"
)

//go:embed myresolver.openapi.yaml
var openapiDocument []byte

// NewOpenAPIValidator loads the embedded OpenAPI document and returns echo
// middleware that rejects requests not matching it: unknown paths get 404,
// unsupported methods 405, schema violations 400 with the bad_parameter code
// (the error handler recognizes openapi3filter.RequestError in the chain).
//
// Returns: (middleware, nil) on success; (nil, error) when the embedded document
// fails to load or validate — a build defect, cmd/main treats it as fatal.
//
// Called from cmd/main when building the echo server.
func NewOpenAPIValidator() (echo.MiddlewareFunc, error) {
	ctx := context.Background()

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(openapiDocument)
	if err != nil {
		return nil, fmt.Errorf("can't load openapi document, err: %w", err)
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("openapi document is invalid, err: %w", err)
	}

	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("can't build openapi router, err: %w", err)
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ectx echo.Context) error {
			req := ectx.Request()

			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				switch {
				case errors.Is(err, routers.ErrPathNotFound):
					return echo.NewHTTPError(http.StatusNotFound, err.Error())
				case errors.Is(err, routers.ErrMethodNotAllowed):
					return echo.NewHTTPError(http.StatusMethodNotAllowed, err.Error())
				default:
					return echo.NewHTTPError(http.StatusBadRequest, err.Error())
				}
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
			}
			if err := openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				var requestError *openapi3filter.RequestError
				if errors.As(err, &requestError) {
					httpErr := echo.NewHTTPError(http.StatusBadRequest, requestError.Error())
					httpErr.Internal = err
					return httpErr
				}
				return echo.NewHTTPError(http.StatusBadRequest, err.Error())
			}

			return next(ectx)
		}
	}, nil
}
