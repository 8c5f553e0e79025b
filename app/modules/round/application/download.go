package roundservice

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"
)

const (
	downloadTimeout  = 30 * time.Second
	maxRedirects     = 5
	maxScorecardSize = 10 << 20 // 10MB
)

// URLImport enables importing scorecards from links on the allowed hosts.
// A nil Client uses a client with download timeouts and a redirect limit.
type URLImport struct {
	AllowedHosts []string
	Client       *http.Client
}

// EnableURLImport allows ImportScorecardURL for links on cfg.AllowedHosts.
// Without any hosts the feature stays off.
func (s *RoundService) EnableURLImport(cfg URLImport) {
	if len(cfg.AllowedHosts) == 0 {
		return
	}
	if cfg.Client == nil {
		cfg.Client = newDownloadClient()
	}
	s.urlImport = &cfg
}

// newDownloadClient returns an *http.Client configured with sensible defaults
// for downloading scorecard exports (timeout and redirect limits).
func newDownloadClient() *http.Client {
	return &http.Client{
		Timeout: downloadTimeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return fmt.Errorf("too many redirects")
			}
			return nil
		},
	}
}

func newDownloadRequest(ctx context.Context, link string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "golf-trip/1.0")
	req.Header.Set("Accept", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet, text/csv, */*")
	return req, nil
}

// normalizeScorecardURL checks raw against the host allowlist and returns the
// link to download together with a file name whose extension selects the
// parser. Google Sheets links of any form are rewritten to their XLSX export.
func normalizeScorecardURL(raw string, allowedHosts []string) (string, string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" {
		return "", "", fmt.Errorf("%w: not an absolute URL", ErrInvalidScorecardURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", "", fmt.Errorf("%w: unsupported scheme %q", ErrInvalidScorecardURL, u.Scheme)
	}
	if !hostAllowed(u.Hostname(), allowedHosts) {
		return "", "", fmt.Errorf("%w: unsupported host %s", ErrInvalidScorecardURL, u.Hostname())
	}

	if strings.EqualFold(u.Hostname(), "docs.google.com") {
		return googleSheetExport(u)
	}

	u.Fragment = ""
	name := path.Base(u.Path)
	switch strings.ToLower(path.Ext(name)) {
	case ".csv", ".tsv", ".xlsx", ".xls":
		return u.String(), name, nil
	default:
		return "", "", fmt.Errorf("%w: link must point to a .csv, .tsv or .xlsx file", ErrInvalidScorecardURL)
	}
}

func googleSheetExport(u *url.URL) (string, string, error) {
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	id := ""
	for i := 0; i+2 < len(parts); i++ {
		if parts[i] == "spreadsheets" && parts[i+1] == "d" {
			id = parts[i+2]
			break
		}
	}
	if id == "" {
		return "", "", fmt.Errorf("%w: not a Google Sheets link", ErrInvalidScorecardURL)
	}

	query := url.Values{"format": {"xlsx"}}
	gid := u.Query().Get("gid")
	if gid == "" {
		if frag, err := url.ParseQuery(u.Fragment); err == nil {
			gid = frag.Get("gid")
		}
	}
	if gid != "" {
		query.Set("gid", gid)
	}

	export := url.URL{
		Scheme:   "https",
		Host:     "docs.google.com",
		Path:     "/spreadsheets/d/" + id + "/export",
		RawQuery: query.Encode(),
	}
	return export.String(), id + ".xlsx", nil
}

func hostAllowed(host string, allowed []string) bool {
	for _, h := range allowed {
		if strings.EqualFold(strings.TrimSpace(h), host) {
			return true
		}
	}
	return false
}

// download fetches link, refusing bodies over maxScorecardSize.
func (s *RoundService) download(ctx context.Context, link string) ([]byte, error) {
	req, err := newDownloadRequest(ctx, link)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScorecardURL, err)
	}
	resp, err := s.urlImport.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScorecardDownload, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s returned %s", ErrScorecardDownload, req.URL.Host, resp.Status)
	}
	if resp.ContentLength > maxScorecardSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrScorecardTooLarge, resp.ContentLength)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxScorecardSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScorecardDownload, err)
	}
	if len(data) > maxScorecardSize {
		return nil, fmt.Errorf("%w: over %d bytes", ErrScorecardTooLarge, maxScorecardSize)
	}
	return data, nil
}
