package client

import (
	"net/http"
	"net/url"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/encoding"
)

// Option applies a configuration option to a client instance.
type Option func(c *Client) error

// WithCredentials sets the code and password sent in fields 05 and 06
// when a query does not carry its own.
func WithCredentials(code, password string) Option {
	return func(c *Client) error {
		c.code = code
		c.password = password
		return nil
	}
}

// WithProduction selects the production endpoint instead of the test
// one.
func WithProduction(production bool) Option {
	return func(c *Client) error {
		if production {
			c.baseURL = ProductionURL
		} else {
			c.baseURL = TestURL
		}
		return nil
	}
}

// WithBaseURL overrides the service endpoint. It takes precedence over
// WithProduction when applied after it.
func WithBaseURL(rawURL string) Option {
	return func(c *Client) error {
		u, err := url.Parse(rawURL)
		if err != nil {
			return errors.Wrap(err, "invalid base url")
		}
		if u.Scheme == "" || u.Host == "" {
			return errors.Errorf("base url %q must be absolute", rawURL)
		}
		c.baseURL = rawURL
		return nil
	}
}

// WithHTTPClient configures the client to issue requests with hc instead
// of a client of its own. WithInsecureSkipVerify has no effect when it
// is set.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return errors.New("nil http client")
		}
		c.http = hc
		return nil
	}
}

// WithInsecureSkipVerify disables TLS certificate verification. The
// service's test environment has been known to serve certificates that
// do not verify.
func WithInsecureSkipVerify(skip bool) Option {
	return func(c *Client) error {
		c.insecureSkipVerify = skip
		return nil
	}
}

// WithRejectionErrors controls whether Query fails with a
// *boavista.RejectionError when the service rejects a consultation.
// When disabled the response is returned with its error record in place.
// Enabled by default.
func WithRejectionErrors(enabled bool) Option {
	return func(c *Client) error {
		c.rejectionErrors = enabled
		return nil
	}
}

// WithCharset sets the charset of the service. Queries are converted to
// it and responses converted from it to UTF-8, with field widths
// counted in characters. A nil charset sends and decodes raw bytes.
// Defaults to ISO-8859-1.
func WithCharset(charset encoding.Encoding) Option {
	return func(c *Client) error {
		c.charset = charset
		return nil
	}
}

// WithLogger configures the logger used for request diagnostics.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *Client) error {
		if logger == nil {
			return errors.New("nil logger")
		}
		c.logger = logger
		return nil
	}
}
