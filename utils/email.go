package utils

import (
	"bytes"
	"html/template"

	"eldercare_booking/config"
	"eldercare_booking/logger"

	"github.com/pkg/errors"
	"gopkg.in/gomail.v2"
)

type OTPEmailData struct {
	Title   string
	Intro   string
	OTP     string
	Minutes int
}

var otpTemplate = template.Must(template.New("otp").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #10B981;">{{.Title}}</h2>
  <p>{{.Intro}}</p>
  <div style="background-color: #f3f4f6; padding: 20px; text-align: center; margin: 20px 0;">
    <h1 style="color: #10B981; font-size: 36px; margin: 0; letter-spacing: 8px;">{{.OTP}}</h1>
  </div>
  <p style="color: #666;">Mã OTP này có hiệu lực trong <strong>{{.Minutes}} phút</strong>.</p>
  <p style="color: #666;">Nếu bạn không thực hiện yêu cầu này, vui lòng bỏ qua email này.</p>
  <hr style="border: none; border-top: 1px solid #e5e7eb; margin: 30px 0;">
  <p style="color: #999; font-size: 12px;">Email này được gửi từ Sống Vui Khỏe</p>
</div>`))

// SMTPMailer gửi email qua SMTP bằng gomail
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer() *SMTPMailer {
	host := config.ConfigDefault("SMTP_HOST", "smtp.gmail.com")
	port := config.ConfigInt("SMTP_PORT", 587)
	username := config.Config("SMTP_USERNAME")
	from := config.ConfigDefault("SMTP_FROM", username)
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, username, config.Config("SMTP_PASSWORD")),
		from:   from,
	}
}

// SendOTP gửi đồng bộ, caller cần biết kết quả để xóa OTP khi gửi lỗi
func (m *SMTPMailer) SendOTP(to, code, purpose string, minutes int) error {
	data := OTPEmailData{OTP: code, Minutes: minutes}
	subject := "Đặt lại mật khẩu - Sống Vui Khỏe"
	if purpose == "register" {
		subject = "Xác thực tài khoản - Sống Vui Khỏe"
		data.Title = "Chào mừng đến với Sống Vui Khỏe!"
		data.Intro = "Cảm ơn bạn đã đăng ký tài khoản. Vui lòng sử dụng mã OTP bên dưới để xác thực tài khoản:"
	} else {
		data.Title = "Đặt lại mật khẩu"
		data.Intro = "Bạn đã yêu cầu đặt lại mật khẩu. Vui lòng sử dụng mã OTP bên dưới:"
	}

	var body bytes.Buffer
	if err := otpTemplate.Execute(&body, data); err != nil {
		return errors.Wrap(err, "render otp email")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body.String())

	if err := m.dialer.DialAndSend(msg); err != nil {
		logger.Error("Lỗi gửi email OTP", err)
		return errors.Wrap(err, "send otp email")
	}
	return nil
}
