package dto

// Envelope is the uniform wrapper every backend response carries. A response
// is usable only when Status is "success"; otherwise Message explains why.
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// IsSuccess reports whether the backend accepted the request. The backend is
// not entirely consistent about casing ("success" vs "Success").
func (e Envelope) IsSuccess() bool {
	return e.Status == "success" || e.Status == "Success"
}

// FailureMessage returns the backend's explanation for a rejected request.
func (e Envelope) FailureMessage() string {
	return e.Message
}

// ErrorBody is the shape of non-2xx error responses. FastAPI-style backends
// put the reason in "detail", domain failures in "message".
type ErrorBody struct {
	Message string `json:"message"`
	Detail  string `json:"detail"`
}

// Reason returns the most specific error text available.
func (b ErrorBody) Reason() string {
	if b.Message != "" {
		return b.Message
	}
	return b.Detail
}
