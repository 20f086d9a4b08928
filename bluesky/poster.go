// Package bluesky is a thin XRPC client for publishing posts and
// thread replies. It only covers what the scheduler needs: session
// creation, post records with link facets, and replies.
package bluesky

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"councilbot/types"
)

const defaultHost = "https://bsky.social"

// Poster holds credentials and a session for publishing posts
type Poster struct {
	host     string
	handle   string
	password string

	client    *resty.Client
	accessJwt string
	did       string
}

type sessionResponse struct {
	AccessJwt string `json:"accessJwt"`
	Did       string `json:"did"`
}

type recordResponse struct {
	URI string `json:"uri"`
	CID string `json:"cid"`
}

type strongRef struct {
	URI string `json:"uri"`
	CID string `json:"cid"`
}

type replyRef struct {
	Root   strongRef `json:"root"`
	Parent strongRef `json:"parent"`
}

type facetIndex struct {
	ByteStart int `json:"byteStart"`
	ByteEnd   int `json:"byteEnd"`
}

type facetFeature struct {
	Type string `json:"$type"`
	URI  string `json:"uri"`
}

type facet struct {
	Index    facetIndex     `json:"index"`
	Features []facetFeature `json:"features"`
}

type postRecord struct {
	Type      string    `json:"$type"`
	Text      string    `json:"text"`
	CreatedAt string    `json:"createdAt"`
	Facets    []facet   `json:"facets,omitempty"`
	Reply     *replyRef `json:"reply,omitempty"`
}

// NewPosterFromEnv reads BLUESKY_HANDLE, BLUESKY_PASSWORD and
// optionally BLUESKY_HOST
func NewPosterFromEnv() (*Poster, error) {
	handle := os.Getenv("BLUESKY_HANDLE")
	password := os.Getenv("BLUESKY_PASSWORD")
	if handle == "" || password == "" {
		return nil, fmt.Errorf("BLUESKY_HANDLE and BLUESKY_PASSWORD must be set for live posting")
	}

	host := os.Getenv("BLUESKY_HOST")
	if host == "" {
		host = defaultHost
	}

	return &Poster{
		host:     host,
		handle:   handle,
		password: password,
		client:   resty.New().SetTimeout(30 * time.Second),
	}, nil
}

// Authenticate creates a session; called lazily before the first post
func (p *Poster) Authenticate() error {
	var session sessionResponse
	resp, err := p.client.R().
		SetBody(map[string]string{"identifier": p.handle, "password": p.password}).
		SetResult(&session).
		Post(p.host + "/xrpc/com.atproto.server.createSession")
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	if resp.StatusCode() != 200 {
		return fmt.Errorf("session request rejected with status %d: %s", resp.StatusCode(), resp.String())
	}

	p.accessJwt = session.AccessJwt
	p.did = session.Did
	return nil
}

// PostDocument publishes a base post. When the text contains docURL, a
// link facet is attached over it so clients that do not autolink plain
// text still render a hyperlink.
func (p *Poster) PostDocument(text, docURL string) (types.PostRef, error) {
	record := postRecord{
		Type:      "app.bsky.feed.post",
		Text:      text,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Facets:    linkFacets(text, docURL),
	}
	return p.createRecord(record)
}

// PostReply publishes text as a reply under parent, threading from root
func (p *Poster) PostReply(parent, root types.PostRef, text string) (types.PostRef, error) {
	if root.URI == "" {
		root = parent
	}
	record := postRecord{
		Type:      "app.bsky.feed.post",
		Text:      text,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Reply: &replyRef{
			Root:   strongRef{URI: root.URI, CID: root.CID},
			Parent: strongRef{URI: parent.URI, CID: parent.CID},
		},
	}
	return p.createRecord(record)
}

func (p *Poster) createRecord(record postRecord) (types.PostRef, error) {
	if p.accessJwt == "" {
		if err := p.Authenticate(); err != nil {
			return types.PostRef{}, err
		}
	}

	var created recordResponse
	resp, err := p.client.R().
		SetAuthToken(p.accessJwt).
		SetBody(map[string]interface{}{
			"repo":       p.did,
			"collection": "app.bsky.feed.post",
			"record":     record,
		}).
		SetResult(&created).
		Post(p.host + "/xrpc/com.atproto.repo.createRecord")
	if err != nil {
		return types.PostRef{}, fmt.Errorf("failed to create record: %w", err)
	}
	if resp.StatusCode() != 200 {
		return types.PostRef{}, fmt.Errorf("record rejected with status %d: %s", resp.StatusCode(), resp.String())
	}

	return types.PostRef{URI: created.URI, CID: created.CID}, nil
}

// linkFacets returns a single link facet over the URL's byte range in
// text, or nil when the URL does not appear verbatim
func linkFacets(text, docURL string) []facet {
	if docURL == "" {
		return nil
	}
	start := strings.Index(text, docURL)
	if start < 0 {
		return nil
	}
	return []facet{{
		Index: facetIndex{ByteStart: start, ByteEnd: start + len(docURL)},
		Features: []facetFeature{{
			Type: "app.bsky.richtext.facet#link",
			URI:  docURL,
		}},
	}}
}
