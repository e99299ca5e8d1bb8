package middleware

import (
	"strconv"

	"pds-backend/logger"

	"github.com/bwmarrin/snowflake"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

var node *snowflake.Node

// InitRequestID sets up the snowflake node that stamps every request.
func InitRequestID() error {
	var err error
	node, err = snowflake.NewNode(1)
	return err
}

func RequestID(ctx *fiber.Ctx) error {
	id := node.Generate().Int64()
	ctx.Locals("requestID", id)
	ctx.Set("X-Request-ID", strconv.FormatInt(id, 10))

	err := ctx.Next()

	logger.Log.Info("request",
		zap.Int64("request_id", id),
		zap.String("method", ctx.Method()),
		zap.String("path", ctx.Path()),
		zap.Int("status", ctx.Response().StatusCode()),
	)

	return err
}
