// Package client sends consultations to the SCPC Boa Vista service over
// HTTP.
package client

import (
	"context"
	"crypto/tls"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"github.com/ianlopshire/go-boavista"
)

const (
	// TestURL is the endpoint of the service's test environment.
	TestURL = "https://bvsntt.bvsnet.com.br"
	// ProductionURL is the endpoint of the production environment.
	ProductionURL = "https://www.bvsnet.com.br"

	queryPath  = "cgi-bin/db2www/netpo028.mbr/string"
	queryParam = "consulta"

	// maxBodySize bounds the response body read into memory.
	maxBodySize = 1 << 20

	defaultTimeout = 30 * time.Second
)

// A StatusError is returned when the service answers with a non-2xx
// HTTP status.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return "boavista: unexpected http status " + e.Status
}

type requestMaker interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client sends consultations and decodes their responses. It is safe
// for concurrent use.
type Client struct {
	baseURL            string
	code               string
	password           string
	http               requestMaker
	insecureSkipVerify bool
	rejectionErrors    bool
	charset            encoding.Encoding
	logger             logrus.FieldLogger
}

// New returns a client for the test environment configured by opts.
func New(opts ...Option) (*Client, error) {
	c := &Client{
		baseURL:         TestURL,
		rejectionErrors: true,
		charset:         charmap.ISO8859_1,
		logger:          logrus.StandardLogger(),
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, errors.Wrap(err, "boavista: client option")
		}
	}
	if c.http == nil {
		c.http = newHTTPClient(c.insecureSkipVerify)
	}
	return c, nil
}

func newHTTPClient(insecureSkipVerify bool) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if insecureSkipVerify {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} // #nosec G402 -- opt-in
	}
	return &http.Client{
		Transport: transport,
		Timeout:   defaultTimeout,
	}
}

// Query sends a consultation built from q and decodes the reply.
//
// Fields 05 and 06 are filled from the client credentials when q leaves
// them empty; q itself is not modified. If the service rejects the
// consultation and rejection errors are enabled, the decoded response is
// returned together with a *boavista.RejectionError.
func (c *Client) Query(ctx context.Context, q boavista.Query) (*boavista.Response, error) {
	q = c.withCredentials(q)

	consult, err := c.encode(q)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url(consult), nil)
	if err != nil {
		return nil, errors.Wrap(err, "boavista: create request")
	}

	log := c.logger.WithFields(logrus.Fields{
		"url":          c.baseURL,
		"query_length": len(consult),
	})
	start := time.Now()

	res, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "boavista: send consultation")
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, maxBodySize))
	if err != nil {
		return nil, errors.Wrap(err, "boavista: read response")
	}

	log = log.WithFields(logrus.Fields{
		"status":   res.StatusCode,
		"bytes":    len(body),
		"duration": time.Since(start),
	})
	if res.StatusCode < 200 || res.StatusCode > 299 {
		log.Warn("consultation failed")
		return nil, &StatusError{StatusCode: res.StatusCode, Status: res.Status}
	}

	resp, err := c.decode(body)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"return_code": resp.Header.ReturnCode,
		"sequence":    resp.Header.Sequence,
		"types":       resp.Types(),
	}).Debug("consultation completed")

	if c.rejectionErrors {
		if err := resp.Err(); err != nil {
			return resp, err
		}
	}
	return resp, nil
}

func (c *Client) withCredentials(q boavista.Query) boavista.Query {
	q = q.Clone()
	if q["05"] == "" {
		q["05"] = c.code
	}
	if q["06"] == "" {
		q["06"] = c.password
	}
	return q
}

// encode builds the consultation string in the service charset.
func (c *Client) encode(q boavista.Query) (string, error) {
	if c.charset == nil {
		return boavista.Build(q), nil
	}

	var sb strings.Builder
	enc := boavista.NewEncoder(&sb)
	enc.SetUseCodepointIndices(true)
	if err := enc.Encode(q); err != nil {
		return "", errors.Wrap(err, "boavista: build consultation")
	}
	s, err := c.charset.NewEncoder().String(sb.String())
	if err != nil {
		return "", errors.Wrap(err, "boavista: consultation not representable in service charset")
	}
	return s, nil
}

func (c *Client) decode(body []byte) (*boavista.Response, error) {
	if c.charset != nil {
		var err error
		if body, err = c.charset.NewDecoder().Bytes(body); err != nil {
			return nil, errors.Wrap(err, "boavista: convert response charset")
		}
	}

	d := boavista.NewDecoder(strings.NewReader(string(body)))
	d.SetUseCodepointIndices(c.charset != nil)

	var resp boavista.Response
	if err := d.Decode(&resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) url(consult string) string {
	v := url.Values{}
	v.Set(queryParam, consult)
	return strings.TrimRight(c.baseURL, "/") + "/" + queryPath + "?" + v.Encode()
}
