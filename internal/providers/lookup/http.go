package lookup

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/buger/jsonparser"
	"github.com/inbucket/html2text"
	"github.com/sandevgo/fakebot/internal/config"
	"github.com/sandevgo/fakebot/internal/core"
)

const maxResponseSize = 64 << 10

var (
	sharedClient     *http.Client
	sharedClientOnce sync.Once
)

// httpClient returns the process-wide client, creating it on first use.
// Deadlines come from the request context.
func httpClient() *http.Client {
	sharedClientOnce.Do(func() {
		sharedClient = &http.Client{
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConnsPerHost: 8,
			},
		}
	})
	return sharedClient
}

// HTTP looks names up in a remote nickname service. The URL template has
// {key} replaced with the lookup key.
type HTTP struct {
	template   string
	format     string
	namePath   []string
	statusPath []string
	statusOK   int64
}

func NewHTTP(template string, cfg *config.NameAPIConfig) *HTTP {
	return &HTTP{
		template:   template,
		format:     cfg.Format,
		namePath:   cfg.GetNamePath(),
		statusPath: cfg.GetStatusPath(),
		statusOK:   cfg.StatusOK,
	}
}

func (h *HTTP) Name() string {
	if u, err := url.Parse(h.template); err == nil && u.Host != "" {
		return "http:" + u.Host
	}
	return "http"
}

func (h *HTTP) Lookup(ctx context.Context, key string) (string, error) {
	target := strings.ReplaceAll(h.template, "{key}", url.PathEscape(key))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", core.FakeUserAgent)

	resp, err := httpClient().Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to query %s: %w", h.Name(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	body := io.LimitReader(resp.Body, maxResponseSize)

	var name string
	if h.format == config.FormatText {
		name, err = h.parseText(body)
	} else {
		name, err = h.parseJSON(body)
	}
	if err != nil {
		return "", err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrNotFound
	}
	return name, nil
}

func (h *HTTP) parseJSON(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read body: %w", err)
	}

	if len(h.statusPath) > 0 {
		status, err := jsonInt(data, h.statusPath...)
		if err != nil {
			return "", fmt.Errorf("%w: status: %v", ErrMalformed, err)
		}
		if status != h.statusOK {
			return "", fmt.Errorf("%w: status %d", ErrNotFound, status)
		}
	}

	name, err := jsonparser.GetString(data, h.namePath...)
	if err != nil {
		return "", fmt.Errorf("%w: name: %v", ErrMalformed, err)
	}
	return name, nil
}

// jsonInt reads an integer that may be encoded as a JSON number or string.
func jsonInt(data []byte, keys ...string) (int64, error) {
	value, typ, _, err := jsonparser.Get(data, keys...)
	if err != nil {
		return 0, err
	}
	switch typ {
	case jsonparser.Number:
		return jsonparser.ParseInt(value)
	case jsonparser.String:
		return strconv.ParseInt(string(value), 10, 64)
	default:
		return 0, fmt.Errorf("unexpected %s", typ)
	}
}

// parseText takes the first non-blank line of a plain text or HTML body.
func (h *HTTP) parseText(r io.Reader) (string, error) {
	text, err := html2text.FromReader(r, html2text.Options{OmitLinks: true})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	sc := bufio.NewScanner(strings.NewReader(text))
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			return line, nil
		}
	}
	return "", ErrNotFound
}
