package data_puller

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/rs/dnscache"
	"github.com/turbot/kgx-ingest-sdk/filepaths"
	"github.com/turbot/kgx-ingest-sdk/rate_limiter"
	"golang.org/x/time/rate"
)

const (
	defaultTimeout     = 30 * time.Minute
	defaultRequestRate = rate.Limit(2)
	defaultBurst       = 1
	defaultConcurrency = 4
)

// Puller downloads source data files over HTTP
type Puller struct {
	client  *http.Client
	limiter *rate_limiter.Limiter
}

type PullerOption func(*Puller)

// WithLimiter replaces the default request limiter
func WithLimiter(d *rate_limiter.Definition) PullerOption {
	return func(p *Puller) {
		p.limiter = rate_limiter.NewLimiter(d)
	}
}

// WithHTTPClient replaces the default client - used by tests
func WithHTTPClient(client *http.Client) PullerOption {
	return func(p *Puller) {
		p.client = client
	}
}

func New(opts ...PullerOption) *Puller {
	p := &Puller{
		client: newCachingClient(),
		limiter: rate_limiter.NewLimiter(&rate_limiter.Definition{
			Name:           "data_puller",
			FillRate:       defaultRequestRate,
			BucketSize:     defaultBurst,
			MaxConcurrency: defaultConcurrency,
		}),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// newCachingClient returns a client whose dialer resolves hosts through a DNS cache
func newCachingClient() *http.Client {
	resolver := &dnscache.Resolver{}
	dialer := &net.Dialer{Timeout: 30 * time.Second}
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DialContext = func(ctx context.Context, network, addr string) (net.Conn, error) {
		host, port, err := net.SplitHostPort(addr)
		if err != nil {
			return nil, err
		}
		ips, err := resolver.LookupHost(ctx, host)
		if err != nil {
			return nil, err
		}
		var conn net.Conn
		err = fmt.Errorf("no addresses found for %s", host)
		for _, ip := range ips {
			conn, err = dialer.DialContext(ctx, network, net.JoinHostPort(ip, port))
			if err == nil {
				return conn, nil
			}
		}
		return nil, err
	}
	return &http.Client{Transport: transport, Timeout: defaultTimeout}
}

// PullViaHTTP downloads sourceUrl into dataDir, naming the file after the last url path segment
// it returns the local path of the downloaded file
func (p *Puller) PullViaHTTP(ctx context.Context, sourceUrl, dataDir string) (string, error) {
	u, err := url.Parse(sourceUrl)
	if err != nil {
		return "", fmt.Errorf("invalid url %s: %w", sourceUrl, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("unsupported url scheme '%s' for %s", u.Scheme, sourceUrl)
	}
	fileName := path.Base(u.Path)
	if fileName == "/" || fileName == "." {
		return "", fmt.Errorf("url %s has no file name", sourceUrl)
	}
	return p.PullToFile(ctx, sourceUrl, filepath.Join(dataDir, fileName))
}

// PullToFile downloads sourceUrl to localPath, writing via a temp file so a failed download
// never leaves a partial file at localPath
func (p *Puller) PullToFile(ctx context.Context, sourceUrl, localPath string) (string, error) {
	if err := filepaths.EnsureDir(filepath.Dir(localPath)); err != nil {
		return "", err
	}

	if err := p.limiter.Wait(ctx); err != nil {
		return "", err
	}
	defer p.limiter.Release()

	slog.Info("Puller: downloading", "url", sourceUrl, "path", localPath)
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sourceUrl, nil)
	if err != nil {
		return "", fmt.Errorf("error creating request for %s: %w", sourceUrl, err)
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("error downloading %s: %w", sourceUrl, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("error downloading %s: unexpected status %s", sourceUrl, resp.Status)
	}

	tmp, err := os.CreateTemp(filepath.Dir(localPath), filepath.Base(localPath)+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("error creating temp file for %s: %w", localPath, err)
	}
	n, err := io.Copy(tmp, resp.Body)
	closeErr := tmp.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(tmp.Name())
		return "", fmt.Errorf("error writing %s: %w", localPath, err)
	}
	if err := os.Rename(tmp.Name(), localPath); err != nil {
		_ = os.Remove(tmp.Name())
		return "", fmt.Errorf("error renaming download to %s: %w", localPath, err)
	}

	slog.Info("Puller: downloaded", "url", sourceUrl, "bytes", n, "duration", time.Since(start))
	return localPath, nil
}
