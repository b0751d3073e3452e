package apiclient

import (
	"bytes"
	"encoding/json"
	"io"
	"net/url"
)

const (
	contentTypeJSON = "application/json"
	contentTypeForm = "application/x-www-form-urlencoded"
)

// Body is an outbound request payload. A nil or empty Body is not sent.
type Body struct {
	contentType string
	data        []byte
	err         error
}

// JSONBody marshals v as the request body.
func JSONBody(v any) *Body {
	b, err := json.Marshal(v)
	return &Body{contentType: contentTypeJSON, data: b, err: err}
}

// RawJSON sends an already serialized JSON document.
func RawJSON(s string) *Body {
	return &Body{contentType: contentTypeJSON, data: []byte(s)}
}

// FormBody sends values url-encoded, as the login endpoint expects.
func FormBody(values url.Values) *Body {
	return &Body{contentType: contentTypeForm, data: []byte(values.Encode())}
}

// WithContentType overrides the content type sent with the body.
func (b *Body) WithContentType(ct string) *Body {
	if b == nil {
		return nil
	}
	c := *b
	c.contentType = ct
	return &c
}

func (b *Body) empty() bool {
	return b == nil || len(b.data) == 0
}

func (b *Body) ContentType() string {
	if b == nil || b.contentType == "" {
		return contentTypeJSON
	}
	return b.contentType
}

func (b *Body) reader() io.Reader {
	if b.empty() {
		return nil
	}
	return bytes.NewReader(b.data)
}
