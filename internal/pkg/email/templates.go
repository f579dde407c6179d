package email

// BaseTemplate is the base layout for all emails
const BaseTemplate = `<!DOCTYPE html>
<html lang="ko">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <style>
        body {
            margin: 0;
            padding: 0;
            font-family: 'Apple SD Gothic Neo', 'Malgun Gothic', -apple-system, sans-serif;
            background-color: #f7f5f2;
            color: #2b2b2b;
        }
        .container {
            max-width: 600px;
            margin: 0 auto;
            padding: 40px 20px;
        }
        .card {
            background: #ffffff;
            border-radius: 8px;
            padding: 32px;
            border: 1px solid #e8e2da;
        }
        .logo {
            text-align: center;
            margin-bottom: 24px;
            font-size: 20px;
            letter-spacing: 0.08em;
        }
        table.fields {
            width: 100%;
            border-collapse: collapse;
        }
        table.fields th {
            width: 110px;
            text-align: left;
            color: #8a7f72;
            font-weight: normal;
            padding: 8px 0;
            vertical-align: top;
        }
        table.fields td {
            padding: 8px 0;
        }
        .message {
            white-space: pre-wrap;
            background: #faf8f5;
            border-radius: 6px;
            padding: 16px;
            margin-top: 16px;
        }
        .footer {
            text-align: center;
            margin-top: 24px;
            font-size: 12px;
            color: #a39a8f;
        }
    </style>
</head>
<body>
    <div class="container">
        <div class="logo">FAMILY SOO STUDIO</div>
        <div class="card">
            {{.Content}}
        </div>
        <div class="footer">홈페이지 상담 신청 폼에서 자동 발송된 메일입니다.</div>
    </div>
</body>
</html>
`

// InquiryReceivedTemplate renders an InquiryNotice.
const InquiryReceivedTemplate = `
<h2>새 상담 문의가 접수되었습니다</h2>
<table class="fields">
    <tr><th>이름</th><td>{{.Name}}</td></tr>
    <tr><th>연락처</th><td>{{.Phone}}</td></tr>
    {{if .Email}}<tr><th>이메일</th><td>{{.Email}}</td></tr>{{end}}
    <tr><th>촬영 종류</th><td>{{.ShootType}}</td></tr>
    {{if .PreferredDate}}<tr><th>희망 날짜</th><td>{{.PreferredDate}}</td></tr>{{end}}
    {{if .People}}<tr><th>인원</th><td>{{.People}}</td></tr>{{end}}
    <tr><th>접수 시각</th><td>{{.ReceivedAt.Format "2006-01-02 15:04"}}</td></tr>
</table>
{{if .Message}}<div class="message">{{.Message}}</div>{{end}}
`
