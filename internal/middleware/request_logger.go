package middleware

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"storefront/internal/logging"
)

// RequestLogger stores a per-request logger in the user context and logs each
// completed request at a level chosen by its status.
func RequestLogger(base *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		l := base.With(
			"method", c.Method(),
			"path", c.Path(),
			"remote_ip", c.IP(),
			"user_agent", c.Get(fiber.HeaderUserAgent),
		)
		if rid := c.GetRespHeader(fiber.HeaderXRequestID); rid != "" {
			l = l.With("request_id", rid)
		}
		c.SetUserContext(logging.IntoContext(c.UserContext(), l))

		start := time.Now()
		err := c.Next()
		if err != nil {
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		dur := time.Since(start)
		status := c.Response().StatusCode()

		switch {
		case err != nil || status >= 500:
			l.Error("request completed", "status", status, "duration_ms", dur.Milliseconds(), "error", errStr(err))
		case status >= 400:
			l.Warn("request completed", "status", status, "duration_ms", dur.Milliseconds())
		default:
			l.Info("request completed", "status", status, "duration_ms", dur.Milliseconds(), "bytes", len(c.Response().Body()))
		}
		return nil
	}
}

func errStr(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
