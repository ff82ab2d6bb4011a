package output

// Meta carries pagination and bookkeeping info alongside envelope data.
type Meta struct {
	Count    int    `json:"count"`
	Total    *int   `json:"total,omitempty"`
	Page     int    `json:"page,omitempty"`
	PageSize int    `json:"pageSize,omitempty"`
	HasMore  *bool  `json:"hasMore,omitempty"`
	Code     string `json:"code,omitempty"`
}

// Envelope is the uniform JSON output shape for every command.
// Exactly one of Data (success) or Error (failure) carries the payload.
type Envelope struct {
	Success bool        `json:"success"`
	Error   *string     `json:"error"`
	Data    interface{} `json:"data"`
	Meta    *Meta       `json:"meta,omitempty"`
}

// OK builds a success envelope around data.
func OK(data interface{}) Envelope {
	return Envelope{Success: true, Data: data}
}

// OKMeta builds a success envelope with meta attached.
func OKMeta(data interface{}, meta Meta) Envelope {
	return Envelope{Success: true, Data: data, Meta: &meta}
}

// Fail builds a failure envelope around an error message.
func Fail(msg string) Envelope {
	return Envelope{Success: false, Error: &msg}
}

// FailCode builds a failure envelope with a machine-readable code in meta.
func FailCode(msg, code string) Envelope {
	return Envelope{Success: false, Error: &msg, Meta: &Meta{Code: code}}
}
