// Package dedupe tracks which documents have already been posted.
//
// The store is a JSON file rewritten after every successful post.
// Posting volume is at most a few dozen items per run, so durability
// after each post wins over write efficiency.
package dedupe

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sort"

	"councilbot/types"
	"councilbot/urlcanon"
)

// Store persists the set of posted document hashes plus a post index
// for thread-reply addressing
type Store struct {
	path   string
	posted map[string]struct{}
	posts  map[string]types.PostRef
	mirror *RedisMirror
}

// storeFile is the on-disk shape written by current versions
type storeFile struct {
	Posted []string                 `json:"posted"`
	Posts  map[string]types.PostRef `json:"posts"`
}

// NewStore loads a posted-document store from path. Three historical
// shapes are accepted: an absent file (empty store), a bare JSON array
// of hashes (legacy), and the current {posted, posts} object. An
// unparseable file is treated as empty rather than fatal: an occasional
// duplicate post beats crashing the run.
func NewStore(path string) *Store {
	s := &Store{
		path:   path,
		posted: make(map[string]struct{}),
		posts:  make(map[string]types.PostRef),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return s
	}

	var current storeFile
	if err := json.Unmarshal(data, &current); err == nil && current.Posted != nil {
		for _, h := range current.Posted {
			s.posted[h] = struct{}{}
		}
		for h, ref := range current.Posts {
			s.posts[h] = ref
		}
		return s
	}

	// Legacy shape: a bare list of hashes
	var legacy []string
	if err := json.Unmarshal(data, &legacy); err == nil {
		for _, h := range legacy {
			s.posted[h] = struct{}{}
		}
		return s
	}

	log.Printf("Warning: unparseable posted file %s, starting with empty store", path)
	return s
}

// AttachMirror adds an optional Redis mirror checked alongside the file
func (s *Store) AttachMirror(m *RedisMirror) {
	s.mirror = m
}

// Hashes returns the raw-URL and canonical-URL hash variants for a
// document. Both are checked and both are written, so records made
// under the legacy raw-URL scheme stay matchable.
func Hashes(source, title, url string) (raw, canon string) {
	raw = hashKey(source, title, url)
	canon = hashKey(source, title, urlcanon.Canonicalize(url))
	return raw, canon
}

func hashKey(source, title, url string) string {
	sum := md5.Sum([]byte(fmt.Sprintf("%s|%s|%s", source, title, url)))
	return hex.EncodeToString(sum[:])
}

// IsPosted reports whether the document was recorded under either hash scheme
func (s *Store) IsPosted(source, title, url string) bool {
	raw, canon := Hashes(source, title, url)
	if _, ok := s.posted[raw]; ok {
		return true
	}
	if _, ok := s.posted[canon]; ok {
		return true
	}
	if s.mirror != nil && (s.mirror.Has(raw) || s.mirror.Has(canon)) {
		return true
	}
	return false
}

// RecordPosted marks a document as posted and persists immediately.
// Both hash variants are written; the post reference is indexed under
// the canonical hash only.
func (s *Store) RecordPosted(source, title, url string, ref types.PostRef) error {
	raw, canon := Hashes(source, title, url)
	s.posted[raw] = struct{}{}
	s.posted[canon] = struct{}{}
	if ref.URI != "" {
		s.posts[canon] = ref
	}

	if s.mirror != nil {
		s.mirror.Mark(raw, canon)
	}
	return s.save()
}

// RefFor returns the stored post reference for a document, if any
func (s *Store) RefFor(source, title, url string) (types.PostRef, bool) {
	_, canon := Hashes(source, title, url)
	ref, ok := s.posts[canon]
	return ref, ok
}

// Count returns the number of recorded hashes
func (s *Store) Count() int {
	return len(s.posted)
}

func (s *Store) save() error {
	hashes := make([]string, 0, len(s.posted))
	for h := range s.posted {
		hashes = append(hashes, h)
	}
	sort.Strings(hashes)

	payload := storeFile{Posted: hashes, Posts: s.posts}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode posted store: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write posted store: %w", err)
	}
	return nil
}
