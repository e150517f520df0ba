package middleware

import (
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"ledger-service/pkg/logger"
)

// CompanyScopeMiddleware extracts the company scope the mobile client
// supplies with every supplier call, either as a `companyId` query
// parameter or a `company-id` header, and stores it in the request
// context. The value is client-asserted, not derived from the session;
// that matches the legacy contract, so no new endpoint should rely on
// this middleware for authorization.
func CompanyScopeMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw := c.QueryParam("companyId")
		if raw == "" {
			raw = c.Request().Header.Get("company-id")
		}
		if raw == "" {
			return next(c)
		}

		companyID, err := strconv.Atoi(raw)
		if err != nil {
			log := logger.FromContext(c)
			log.Warn("Ignoring unparseable company scope", zap.String("value", raw))
			return next(c)
		}

		c.Set("company_id", companyID)
		return next(c)
	}
}

// CompanyID returns the company scope extracted by
// CompanyScopeMiddleware, or zero when the request carried none.
func CompanyID(c echo.Context) int {
	if id, ok := c.Get("company_id").(int); ok {
		return id
	}
	return 0
}
