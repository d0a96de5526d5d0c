package stubapi

import (
	"runtime/debug"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shahidulislam-dev/warehouse-console/internal/domain"
	"github.com/shahidulislam-dev/warehouse-console/internal/observability"
	apperrors "github.com/shahidulislam-dev/warehouse-console/pkg/util"
)

const principalKey = "auth_principal"

// principal is the authenticated caller, resolved from its bearer token.
type principal struct {
	userID int
	email  string
	role   domain.Role
}

func errorHandlingMiddleware(logger *zap.Logger, metrics *observability.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
				err = apperrors.NewInternalError(nil)
			}
			if err != nil {
				domainErr := apperrors.ToDomainError(err)
				metrics.RecordError(c.Path(), c.Method(), domainErr.Code)
				if domainErr.HTTPStatus >= 500 {
					logger.Error("request failed", zap.Error(domainErr))
				}
				c.Status(domainErr.HTTPStatus)
				_ = c.JSON(fiber.Map{"message": domainErr.Message, "code": domainErr.Code})
				err = nil
			}
		}()
		return c.Next()
	}
}

func requestLogger(logger *zap.Logger, metrics *observability.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("X-Request-ID", requestID)

		start := time.Now()
		err := c.Next()
		duration := time.Since(start)

		metrics.RecordRequest(c.Path(), c.Method(), c.Response().StatusCode(), duration)
		logger.Info("request",
			zap.String("request_id", requestID),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", duration))
		return err
	}
}

// requireAuth validates the bearer token and loads the principal. The
// account must still exist and be active: revoking happens server-side by
// flipping the status flag.
func (s *Server) requireAuth(c *fiber.Ctx) error {
	header := c.Get("Authorization")
	if header == "" {
		return apperrors.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("invalid authorization header")
	}

	claims, err := s.tokens.parse(parts[1])
	if err != nil {
		return apperrors.NewUnauthorized("invalid token")
	}

	s.data.mu.Lock()
	acc := s.data.userByEmail(claims.Email())
	s.data.mu.Unlock()
	if acc == nil {
		return apperrors.NewUnauthorized("account not found")
	}
	if !acc.user.Active() {
		return apperrors.NewForbidden("account disabled")
	}

	c.Locals(principalKey, &principal{
		userID: acc.user.ID,
		email:  acc.user.Email,
		role:   claims.Role,
	})
	return c.Next()
}

// requireRole admits only the listed roles.
func requireRole(allowed ...domain.Role) fiber.Handler {
	allowedSet := make(map[domain.Role]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		p, ok := principalFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		if len(allowedSet) == 0 {
			return c.Next()
		}
		if _, exists := allowedSet[p.role]; !exists {
			return apperrors.NewForbidden("insufficient role")
		}
		return c.Next()
	}
}

func principalFromContext(c *fiber.Ctx) (*principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	p, ok := val.(*principal)
	return p, ok
}
