package request

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/antgroup/tripmate/utils/json"
)

// Request performs an HTTP request with an optional string body and
// decodes the JSON response into resp when resp is not nil.
// headKvs are header key/value pairs.
func Request(ctx context.Context, client *http.Client, method, rawURL string, param string, resp interface{}, headKvs ...string) error {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, strings.NewReader(param))
	if err != nil {
		return err
	}
	if len(headKvs)%2 != 0 {
		return errors.New("header be pair")
	}
	for i := 0; i < len(headKvs); i += 2 {
		req.Header.Set(headKvs[i], headKvs[i+1])
	}
	if client == nil {
		client = http.DefaultClient
	}
	res, err := client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return fmt.Errorf("unexpected status %d: %s", res.StatusCode, string(body))
	}
	if resp == nil {
		return nil
	}
	return json.Unmarshal(body, resp)
}

// Get performs a GET with query parameters and decodes the JSON response.
func Get(ctx context.Context, client *http.Client, rawURL string, query url.Values, resp interface{}) error {
	if len(query) > 0 {
		sep := "?"
		if strings.Contains(rawURL, "?") {
			sep = "&"
		}
		rawURL += sep + query.Encode()
	}
	return Request(ctx, client, http.MethodGet, rawURL, "", resp)
}
