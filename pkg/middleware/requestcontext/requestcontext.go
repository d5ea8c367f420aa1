package requestcontext

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/hubtoken/rwa-ledger/pkg/logger"
)

type requestIdKey struct{}

// New attaches request-scoped values and logger attributes to the fiber
// user context so downstream handlers and usecases log with them.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()

		if rid, ok := c.Locals(requestid.ConfigDefault.ContextKey).(string); ok && rid != "" {
			ctx = context.WithValue(ctx, requestIdKey{}, rid)
			ctx = logger.WithContext(ctx, "requestId", rid)
		}

		c.SetUserContext(ctx)
		return c.Next()
	}
}

// GetRequestId returns the request id from the context, if any.
func GetRequestId(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIdKey{}).(string); ok {
		return rid
	}
	return ""
}
