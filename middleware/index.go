package middleware

import (
	"context"
	"errors"
	"strings"
	"time"

	"eldercare_booking/constants"
	"eldercare_booking/helper"
	"eldercare_booking/logger"
	"eldercare_booking/model"
	"eldercare_booking/service"
	"eldercare_booking/utils"

	"github.com/gofiber/fiber/v2"
)

const (
	KeySession = "session"
	KeyActor   = "actor"
	KeyUser    = "user"
)

// ActorResolver tra cứu vai trò hiện tại của người dùng trong phiên
type ActorResolver interface {
	Actor(ctx context.Context, session model.Session) (model.Actor, *model.User, error)
}

func tokenFromRequest(c *fiber.Ctx) string {
	auth := c.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	}
	return c.Cookies("access_token")
}

// Protected kiểm tra chữ ký và hạn dùng của token, gắn Session và Actor vào request
func Protected(resolver ActorResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := tokenFromRequest(c)
		if token == "" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.MISSING_TOKEN, errors.New("no token"))
		}

		session, err := helper.SessionFromToken(token, time.Now())
		if err != nil {
			if errors.Is(err, helper.ErrExpiredToken) {
				return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.EXPIRED_TOKEN, err)
			}
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_TOKEN, err)
		}

		actor, user, err := resolver.Actor(c.UserContext(), *session)
		if err != nil {
			if errors.Is(err, service.ErrUnauthorized) {
				logger.Warning("Token hợp lệ nhưng không tìm thấy người dùng")
				return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.USER_NOT_FOUND, err)
			}
			logger.Error("Lỗi tra cứu người dùng của phiên", err)
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		c.Locals(KeySession, *session)
		c.Locals(KeyActor, actor)
		c.Locals(KeyUser, user)
		return c.Next()
	}
}

// AdminOnly phải đứng sau Protected
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, ok := c.Locals(KeyActor).(model.Actor)
		if !ok || actor.UserID == 0 {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.MISSING_TOKEN, errors.New("no session"))
		}
		if actor.Role != constants.ROLE_ADMIN {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ADMIN_ONLY, errors.New("not admin"))
		}
		return c.Next()
	}
}

func ActorFromLocals(c *fiber.Ctx) model.Actor {
	actor, _ := c.Locals(KeyActor).(model.Actor)
	return actor
}
