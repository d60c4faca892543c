package service

import (
	"context"
	"fmt"
	"time"

	"eldercare_booking/config"
	"eldercare_booking/constants"
	"eldercare_booking/store"

	"github.com/pkg/errors"
)

// CodeGenerator sinh mã đơn dạng SVK<YYYYMMDD><số thứ tự>, số thứ tự reset theo ngày (giờ ICT)
type CodeGenerator struct {
	counter store.SequenceCounter
}

func NewCodeGenerator(counter store.SequenceCounter) *CodeGenerator {
	return &CodeGenerator{counter: counter}
}

func (g *CodeGenerator) Next(ctx context.Context, now time.Time) (string, error) {
	day := now.In(config.BusinessLocation).Format("20060102")
	seq, err := g.counter.Next(ctx, day)
	if err != nil {
		return "", errors.Wrap(err, "next order sequence")
	}
	return FormatOrderCode(day, seq), nil
}

// FormatOrderCode độ rộng 3 là tối thiểu, quá 999 thì số thứ tự dài hơn
func FormatOrderCode(day string, seq int64) string {
	return fmt.Sprintf("%s%s%03d", constants.ORDER_CODE_PREFIX, day, seq)
}

// withUniqueCode thử ghi với mã mới, gặp trùng mã thì sinh lại tối đa ORDER_CODE_RETRIES lần
func withUniqueCode(ctx context.Context, gen *CodeGenerator, now time.Time, insert func(code string) error) error {
	for attempt := 0; attempt < constants.ORDER_CODE_RETRIES; attempt++ {
		code, err := gen.Next(ctx, now)
		if err != nil {
			return err
		}
		err = insert(code)
		if err == nil {
			return nil
		}
		if !errors.Is(err, store.ErrDuplicateCode) {
			return err
		}
	}
	return ErrDuplicateCode
}
