package concept

// Client-facing messages
const (
	MsgNotConfigured  = "Contentful 환경변수가 설정되지 않았습니다."
	MsgUpstreamFailed = "Contentful concept 데이터를 가져오는 중 오류가 발생했습니다."
	MsgUnknownError   = "알 수 없는 오류"
)
