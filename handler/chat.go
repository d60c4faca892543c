package handler

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"eldercare_booking/constants"
	"eldercare_booking/logger"
	"eldercare_booking/model"
	"eldercare_booking/service"
	"eldercare_booking/utils"
	"eldercare_booking/validate"

	"github.com/gofiber/fiber/v2"
)

const chatStreamTimeout = 2 * time.Minute

func Chat(c *fiber.Ctx) error {
	input, ok := validate.InputFromLocals[model.ChatInput](c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	reply, err := svc.Chat.Chat(c.UserContext(), input)
	if err != nil {
		return chatError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, reply)
}

func chatError(c *fiber.Ctx, err error) error {
	if errors.Is(err, service.ErrNotConfigured) {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.AI_NOT_CONFIGURED, err)
	}
	return respondError(c, err, "")
}

type chatChunk struct {
	Content string `json:"content,omitempty"`
	Error   string `json:"error,omitempty"`
}

func writeEvent(w *bufio.Writer, payload string) error {
	if _, err := fmt.Fprintf(w, "data: %s\n\n", payload); err != nil {
		return err
	}
	return w.Flush()
}

// ChatStream trả về text/event-stream, mỗi đoạn một dòng data, kết thúc bằng data: [DONE]
func ChatStream(c *fiber.Ctx) error {
	input, ok := validate.InputFromLocals[model.ChatInput](c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	if err := svc.Chat.Ready(); err != nil {
		return chatError(c, err)
	}

	chat := svc.Chat
	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")
	c.Set("X-Accel-Buffering", "no")

	// ctx của fiber được giải phóng sau khi handler trả về, luồng stream dùng context riêng
	c.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
		ctx, cancel := context.WithTimeout(context.Background(), chatStreamTimeout)
		defer cancel()

		err := chat.Stream(ctx, input, func(delta string) error {
			data, err := json.Marshal(chatChunk{Content: delta})
			if err != nil {
				return err
			}
			return writeEvent(w, string(data))
		})
		if err != nil {
			logger.Error("AI Chat Stream Error", err)
			data, _ := json.Marshal(chatChunk{Error: constants.AI_UNAVAILABLE})
			_ = writeEvent(w, string(data))
		}
		_ = writeEvent(w, "[DONE]")
	})
	return nil
}
