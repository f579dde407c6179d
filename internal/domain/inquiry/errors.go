package inquiry

import "errors"

var (
	ErrInquiryNotFound = errors.New("inquiry not found")
	ErrInvalidDate     = errors.New("preferred date must be YYYY-MM-DD")
)

// Client-facing messages
const (
	MsgSubmitted   = "문의가 접수되었습니다. 빠른 시일 내에 연락드리겠습니다."
	MsgInvalidBody = "요청 형식이 올바르지 않습니다."
)
