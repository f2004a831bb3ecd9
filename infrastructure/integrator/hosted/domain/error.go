package hosteddomain

import "fmt"

// ErrorResponse representa a estrutura de erro do gateway REST
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}

func (e *ErrorResponse) Error() string {
	if e.Code == "" {
		return e.Message
	}

	return fmt.Sprintf("%s (código: %s)", e.Message, e.Code)
}
