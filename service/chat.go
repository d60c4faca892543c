package service

import (
	"context"
	"fmt"
	"strings"

	"eldercare_booking/model"
	"eldercare_booking/store"

	"github.com/pkg/errors"
)

// Completer nhà cung cấp LLM
type Completer interface {
	Complete(ctx context.Context, system string, messages []model.ChatMessage) (*model.ChatReply, error)
	Stream(ctx context.Context, system string, messages []model.ChatMessage, onDelta func(string) error) error
}

const assistantPersona = `Bạn là trợ lý AI thông minh của "Sống Vui Khỏe" - nền tảng kết nối hoạt động sức khỏe cho người cao tuổi tại Quy Nhơn.

NHIỆM VỤ:
- Tư vấn về các hoạt động cụ thể trên website
- Giải thích gói dịch vụ VIP và Standard
- Hướng dẫn đăng ký, đặt lịch, thanh toán
- Hỗ trợ kỹ thuật: đăng nhập, quên mật khẩu

PHONG CÁCH:
- Thân thiện, kiên nhẫn với người cao tuổi
- Dùng từ đơn giản, dễ hiểu
- Trả lời ngắn gọn (2-4 câu)
- Nếu không chắc, khuyên gọi hotline 1900123456

GÓI CHĂM SÓC TOÀN DIỆN:
- Gói Thường: 250,000 VNĐ/ngày, phòng 4-8 người, 3 bữa chính, theo dõi sức khỏe cơ bản
- Gói VIP: 400,000 VNĐ/ngày, phòng đơn hoặc đôi, thực đơn riêng, bác sĩ theo dõi sát sao`

type ChatService struct {
	completer  Completer
	activities store.ActivityStore
}

// NewChatService completer nil nghĩa là chưa cấu hình API key
func NewChatService(completer Completer, activities store.ActivityStore) *ChatService {
	return &ChatService{completer: completer, activities: activities}
}

// SystemPrompt persona cố định cộng danh sách hoạt động đang mở
func (s *ChatService) SystemPrompt(ctx context.Context) (string, error) {
	activities, err := s.activities.List(ctx, model.FilterActivity{}, true)
	if err != nil {
		return "", errors.Wrap(err, "list activities for prompt")
	}
	var b strings.Builder
	b.WriteString(assistantPersona)
	if len(activities) > 0 {
		b.WriteString("\n\nCÁC HOẠT ĐỘNG HIỆN CÓ:\n")
		for i, a := range activities {
			fmt.Fprintf(&b, "%d. %s - %.0fđ/%s (%s)\n", i+1, a.Title, a.Price, a.PriceUnit, strings.ToUpper(a.Package))
			fmt.Fprintf(&b, "   • %s: %s\n", a.Date, a.Time)
			if a.Location != "" {
				fmt.Fprintf(&b, "   • %s\n", a.Location)
			}
		}
	}
	return b.String(), nil
}

func (s *ChatService) prepare(ctx context.Context, input *model.ChatInput) (string, error) {
	if s.completer == nil {
		return "", ErrNotConfigured
	}
	if err := checkStruct(input); err != nil {
		return "", err
	}
	return s.SystemPrompt(ctx)
}

func (s *ChatService) Chat(ctx context.Context, input *model.ChatInput) (*model.ChatReply, error) {
	system, err := s.prepare(ctx, input)
	if err != nil {
		return nil, err
	}
	reply, err := s.completer.Complete(ctx, system, input.Messages)
	if err != nil {
		return nil, errors.Wrap(ErrAIUnavailable, err.Error())
	}
	return reply, nil
}

// Stream gọi onDelta cho từng đoạn văn bản nhận được
func (s *ChatService) Stream(ctx context.Context, input *model.ChatInput, onDelta func(string) error) error {
	system, err := s.prepare(ctx, input)
	if err != nil {
		return err
	}
	if err := s.completer.Stream(ctx, system, input.Messages, onDelta); err != nil {
		return errors.Wrap(ErrAIUnavailable, err.Error())
	}
	return nil
}

// Ready cho handler kiểm tra cấu hình trước khi mở luồng SSE
func (s *ChatService) Ready() error {
	if s.completer == nil {
		return ErrNotConfigured
	}
	return nil
}
