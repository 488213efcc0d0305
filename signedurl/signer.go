// Package signedurl builds time-limited, HMAC-authenticated screenshot URLs
// that can be embedded without exposing an API key.
//
// The signature covers a canonical string made of a fixed set of options,
// sorted by name, followed by the expiry:
//
//	block_ads=true&url=https://example.com&width=1200&expires=1735689600
//
// and is the lowercase hex HMAC-SHA256 of that string keyed by the account's
// signing secret. The server rebuilds the same string, so the key set, the
// ordering and the value formatting must not change.
package signedurl

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/Render-Screenshot/rs-go/screenshot"
)

const (
	DefaultBaseURL    = "https://api.renderscreenshot.com"
	DefaultAPIVersion = "v1"
)

// signable lists the options a signed URL may carry. Anything else in an
// option set is dropped before signing.
var signable = []string{
	screenshot.KeyURL,
	screenshot.KeyWidth,
	screenshot.KeyHeight,
	screenshot.KeyScale,
	screenshot.KeyMobile,
	screenshot.KeyFullPage,
	screenshot.KeyElement,
	screenshot.KeyFormat,
	screenshot.KeyQuality,
	screenshot.KeyPreset,
	screenshot.KeyDevice,
	screenshot.KeyWaitFor,
	screenshot.KeyDelay,
	screenshot.KeyBlockAds,
	screenshot.KeyBlockTrackers,
	screenshot.KeyBlockCookieBanners,
	screenshot.KeyBlockChatWidgets,
	screenshot.KeyDarkMode,
	screenshot.KeyCacheTTL,
}

// Signable reports whether key is carried by signed URLs.
func Signable(key string) bool {
	return slices.Contains(signable, key)
}

type Signer struct {
	secret     []byte
	baseURL    string
	apiVersion string
}

type Option func(*Signer)

func WithBaseURL(baseURL string) Option {
	return func(s *Signer) { s.baseURL = strings.TrimRight(baseURL, "/") }
}

func WithAPIVersion(v string) Option {
	return func(s *Signer) { s.apiVersion = v }
}

// New returns a Signer keyed by the account's signing secret. The secret is
// only used locally and never appears in the produced URLs.
func New(secret string, opts ...Option) *Signer {
	s := &Signer{
		secret:     []byte(secret),
		baseURL:    DefaultBaseURL,
		apiVersion: DefaultAPIVersion,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Sign returns the signed screenshot URL for o, valid until expiresAt.
// The result depends only on o, expiresAt and the secret.
func (s *Signer) Sign(o screenshot.Options, expiresAt time.Time) string {
	pairs := canonicalPairs(o)
	expires := strconv.FormatInt(expiresAt.Unix(), 10)

	message := join(pairs, false) + sep(pairs) + "expires=" + expires
	signature := s.signature(message)

	var b strings.Builder
	b.WriteString(s.baseURL)
	b.WriteString("/")
	b.WriteString(s.apiVersion)
	b.WriteString("/screenshot?")
	b.WriteString(join(pairs, true))
	b.WriteString(sep(pairs))
	b.WriteString("expires=")
	b.WriteString(expires)
	b.WriteString("&signature=")
	b.WriteString(signature)
	return b.String()
}

// Canonical returns the exact string that Sign authenticates.
func Canonical(o screenshot.Options, expiresAt time.Time) string {
	pairs := canonicalPairs(o)
	return join(pairs, false) + sep(pairs) + "expires=" + strconv.FormatInt(expiresAt.Unix(), 10)
}

// Signature returns the hex HMAC-SHA256 of message under the signer's secret.
func (s *Signer) Signature(message string) string {
	return s.signature(message)
}

func (s *Signer) signature(message string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(message))
	return hex.EncodeToString(mac.Sum(nil))
}

type pair struct {
	key   string
	value string
}

// canonicalPairs selects the signable options present in o, sorted by key.
// No defaults are filled in for missing options.
func canonicalPairs(o screenshot.Options) []pair {
	pairs := make([]pair, 0, len(signable))
	for _, key := range signable {
		v, ok := o.Get(key)
		if !ok {
			continue
		}
		pairs = append(pairs, pair{key: key, value: screenshot.Stringify(v)})
	}
	slices.SortFunc(pairs, func(a, b pair) int { return strings.Compare(a.key, b.key) })
	return pairs
}

// join renders pairs as k=v&k=v. When escape is set the values are query
// escaped for use in a URL; the signed message always uses the raw values.
func join(pairs []pair, escape bool) string {
	var b strings.Builder
	for i, p := range pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(p.key)
		b.WriteByte('=')
		if escape {
			b.WriteString(url.QueryEscape(p.value))
		} else {
			b.WriteString(p.value)
		}
	}
	return b.String()
}

func sep(pairs []pair) string {
	if len(pairs) == 0 {
		return ""
	}
	return "&"
}
