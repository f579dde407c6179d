package services

import (
	"errors"
	"strings"

	"github.com/familysoo/studio-web/internal/pkg/validator"
)

var (
	ErrTypeRequired   = errors.New("content type is required")
	ErrTypeNotAllowed = errors.New("content type is not allowed")
)

// Client-facing messages
const (
	MsgNotConfigured  = "Contentful 환경변수가 설정되지 않았습니다."
	MsgTypeRequired   = "content type 파라미터가 필요합니다. (?type=family|baby|remindWedding)"
	MsgUpstreamFailed = "Contentful 데이터를 가져오는 중 오류가 발생했습니다."
	MsgUnknownError   = "알 수 없는 오류"
)

// MsgTypeNotAllowed lists the accepted content types.
var MsgTypeNotAllowed = "지원되지 않는 content type입니다. 허용되는 타입: " + strings.Join(validator.ContentTypes, ", ")
