package metadomain

import "fmt"

// CodeTokenExpired é o código retornado pela Graph API quando o token de
// acesso expirou ou foi invalidado.
const CodeTokenExpired = 190

// ErrorResponse é o envelope de erro da Graph API.
type ErrorResponse struct {
	Error GraphError `json:"error"`
}

type GraphError struct {
	Message   string `json:"message"`
	Type      string `json:"type"`
	Code      int    `json:"code"`
	Subcode   int    `json:"error_subcode"`
	FBTraceID string `json:"fbtrace_id"`
}

func (e GraphError) Error() string {
	return fmt.Sprintf("erro da Graph API (%s, código %d): %s", e.Type, e.Code, e.Message)
}
