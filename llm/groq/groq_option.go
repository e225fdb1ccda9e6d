package groq

import "net/http"

const (
	_defaultBaseURL = "https://api.groq.com/openai/v1"
	_defaultModel   = "llama-3.3-70b-versatile"
)

type options struct {
	token      string
	model      string
	baseURL    string
	httpClient *http.Client
}

type Option func(*options)

func WithToken(token string) Option {
	return func(o *options) {
		o.token = token
	}
}

func WithModel(model string) Option {
	return func(o *options) {
		o.model = model
	}
}

func WithBaseURL(baseURL string) Option {
	return func(o *options) {
		o.baseURL = baseURL
	}
}

func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}
