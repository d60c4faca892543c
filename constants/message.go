package constants

const (
	ERROR_INTERNAL_ERROR       = "Lỗi server"
	ERROR_INPUT                = "Dữ liệu không hợp lệ"
	ERROR_PARSE_DATA_TO_LOCALS = "Lỗi parse dữ liệu"
	DATA_INPUT_IS_NOT_NUMBER   = "ID phải là số"
	NOT_FOUND_RECORDS          = "Không tìm thấy dữ liệu"

	MISSING_TOKEN      = "Không có quyền truy cập"
	INVALID_TOKEN      = "Token không hợp lệ"
	EXPIRED_TOKEN      = "Phiên đăng nhập đã hết hạn"
	ADMIN_ONLY         = "Chỉ admin mới có quyền truy cập"
	INVALID_LOGIN      = "Email/Số điện thoại hoặc mật khẩu không đúng"
	MISSING_LOGIN      = "Vui lòng nhập email/số điện thoại và mật khẩu"
	DUPLICATE_ACCOUNT  = "Email hoặc số điện thoại đã được sử dụng"
	USER_NOT_FOUND     = "Không tìm thấy người dùng"
	CANNOT_DELETE_SELF = "Không thể xóa tài khoản đang đăng nhập"
	PROFILE_UPDATED    = "Cập nhật thông tin thành công"
	USER_DELETED       = "Đã xóa người dùng"
	ROLE_UPDATED       = "Cập nhật quyền thành công"

	ORDER_CREATED          = "Đặt hàng thành công"
	ORDER_CREATE_FAILED    = "Lỗi đặt hàng"
	ORDER_NOT_FOUND        = "Không tìm thấy đơn hàng"
	BOOKING_CREATED        = "Đặt dịch vụ thành công"
	BOOKING_NOT_FOUND      = "Không tìm thấy đơn đặt"
	STATUS_UPDATED         = "Cập nhật trạng thái thành công"
	PAYMENT_UPDATED        = "Cập nhật trạng thái thanh toán thành công"
	ILLEGAL_TRANSITION     = "Không thể chuyển sang trạng thái này"
	AMOUNT_MISMATCH        = "Số tiền không khớp với đơn giá và số ngày"
	PAYMENT_QR_UNAVAILABLE = "Đơn hàng không dùng hình thức chuyển khoản"

	OTP_SENT          = "Mã OTP đã được gửi đến email của bạn"
	OTP_VERIFIED      = "Xác thực OTP thành công"
	OTP_INVALID       = "Mã OTP không hợp lệ hoặc đã hết hạn"
	OTP_NOT_VERIFIED  = "Mã OTP không hợp lệ hoặc chưa được xác thực"
	OTP_EMAIL_FAILED  = "Không thể gửi email. Vui lòng thử lại!"
	EMAIL_USED        = "Email đã được sử dụng"
	EMAIL_NOT_EXISTS  = "Email không tồn tại trong hệ thống"
	PASSWORD_RESETTED = "Đặt lại mật khẩu thành công"

	ACTIVITY_NOT_FOUND = "Không tìm thấy hoạt động"
	ACTIVITY_DELETED   = "Đã xóa hoạt động"

	AI_UNAVAILABLE    = "Xin lỗi, AI đang gặp sự cố. Vui lòng thử lại sau."
	AI_NOT_CONFIGURED = "Chưa cấu hình API key cho trợ lý AI"

	UPLOAD_NOT_CONFIGURED = "Chưa cấu hình Cloudinary"
	ERROR_NOT_CONFIGURED  = "Tính năng chưa được cấu hình trên máy chủ"
)
