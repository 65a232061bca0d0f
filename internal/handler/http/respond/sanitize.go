package respond

import "regexp"

type mask struct {
	re   *regexp.Regexp
	with string
}

// Cookie values go first: a session cookie carries a JWT.
var masks = []mask{
	{regexp.MustCompile(`(session_token=)[^;\s&]+`), "${1}****"},
	{regexp.MustCompile(`eyJ[\w-]+\.[\w-]+\.[\w-]+`), "eyJ****"},
	{regexp.MustCompile(`://([^:/@]+):([^@]+)@`), "://$1:****@"},
	{regexp.MustCompile(`(password=)\S+`), "${1}****"},
}

// SanitizeError は機密情報をマスクしたエラーメッセージを返す
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for _, m := range masks {
		msg = m.re.ReplaceAllString(msg, m.with)
	}
	return msg
}
