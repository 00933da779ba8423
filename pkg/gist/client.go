// Package gist mirrors the journal into a single file of a secret GitHub Gist.
package gist

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v43/github"
	"github.com/pkg/errors"
	"golang.org/x/oauth2"

	"tableflip.dev/journal/pkg/entry"
)

const (
	// FileName is the single file the gist holds.
	FileName = "journal.json"
	// Description is set on gists created by Create.
	Description = "journal entries"

	apiVersion     = "2022-11-28"
	defaultTimeout = 3 * time.Second
)

// Options configure a Client.
type Options struct {
	Token string
	// BaseURL overrides https://api.github.com/.
	BaseURL string
	// Timeout bounds Reachable.
	Timeout time.Duration
	// Transport is the underlying round tripper, http.DefaultTransport if nil.
	Transport http.RoundTripper
}

// Client talks to the Gists API with a bearer token.
type Client struct {
	gh      *github.Client
	timeout time.Duration
}

// New builds a Client. An empty token yields an anonymous client, which is
// only good for Reachable.
func New(opts Options) (*Client, error) {
	base := opts.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	var rt http.RoundTripper = &versionTransport{base: base}
	if opts.Token != "" {
		rt = &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: opts.Token}),
			Base:   rt,
		}
	}

	gh := github.NewClient(&http.Client{Transport: rt})
	if opts.BaseURL != "" {
		raw := opts.BaseURL
		if !strings.HasSuffix(raw, "/") {
			raw += "/"
		}
		u, err := url.Parse(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "gist: parse base url %q", opts.BaseURL)
		}
		gh.BaseURL = u
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{gh: gh, timeout: timeout}, nil
}

// Create makes a new secret gist holding entries and returns its id.
func (c *Client) Create(ctx context.Context, entries []entry.Entry) (string, error) {
	files, err := filesFor(entries)
	if err != nil {
		return "", err
	}
	created, resp, err := c.gh.Gists.Create(ctx, &github.Gist{
		Description: github.String(Description),
		Public:      github.Bool(false),
		Files:       files,
	})
	if err != nil {
		return "", remoteError("create", resp, err)
	}
	if created.GetID() == "" {
		return "", &RemoteError{Op: "create", Err: errors.New("response carried no gist id")}
	}
	return created.GetID(), nil
}

// Fetch returns the entries stored in the gist, or nil when the gist holds no
// journal file or an empty one.
func (c *Client) Fetch(ctx context.Context, id string) ([]entry.Entry, error) {
	g, resp, err := c.gh.Gists.Get(ctx, id)
	if err != nil {
		return nil, remoteError("get", resp, err)
	}
	f, ok := g.Files[FileName]
	if !ok {
		return nil, nil
	}
	content := strings.TrimSpace(f.GetContent())
	if content == "" {
		return nil, nil
	}
	var all []entry.Entry
	if err := json.Unmarshal([]byte(content), &all); err != nil {
		return nil, errors.Wrapf(err, "gist: decode %s in %s", FileName, id)
	}
	if len(all) == 0 {
		return nil, nil
	}
	return all, nil
}

// Update replaces the journal file of the gist with entries.
func (c *Client) Update(ctx context.Context, id string, entries []entry.Entry) error {
	files, err := filesFor(entries)
	if err != nil {
		return err
	}
	_, resp, err := c.gh.Gists.Edit(ctx, id, &github.Gist{Files: files})
	if err != nil {
		return remoteError("update", resp, err)
	}
	return nil
}

// Reachable issues a GET against the API root. Any HTTP response, whatever
// its status, counts as reachable.
func (c *Client) Reachable(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := c.gh.NewRequest(http.MethodGet, "", nil)
	if err != nil {
		return false
	}
	resp, _ := c.gh.Do(ctx, req, nil)
	return resp != nil && resp.Response != nil
}

func filesFor(entries []entry.Entry) (map[github.GistFilename]github.GistFile, error) {
	if entries == nil {
		entries = []entry.Entry{}
	}
	body, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "gist: encode entries")
	}
	return map[github.GistFilename]github.GistFile{
		FileName: {Content: github.String(string(body))},
	}, nil
}

// versionTransport pins the REST API version on every request.
type versionTransport struct {
	base http.RoundTripper
}

func (t *versionTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())
	r.Header.Set("X-GitHub-Api-Version", apiVersion)
	return t.base.RoundTrip(r)
}
