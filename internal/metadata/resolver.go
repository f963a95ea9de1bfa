package metadata

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/feral-file/ff-catalog/internal/adapter"
	"github.com/feral-file/ff-catalog/internal/logger"
)

// DefaultIPFSGateway is used when no gateway is configured
const DefaultIPFSGateway = "https://ipfs.io"

// ErrUnsupportedURI is returned for references that cannot be turned into an HTTP URL
var ErrUnsupportedURI = errors.New("unsupported metadata uri")

// ErrNotJSON is returned when the fetched document is not JSON
var ErrNotJSON = errors.New("metadata document is not json")

// Media describes the main asset of an NFT
type Media struct {
	URL  string `json:"url"`
	Type string `json:"type,omitempty"`
	Size *int64 `json:"size,omitempty"`
}

// Offchain is the normalized off-chain metadata of an NFT
type Offchain struct {
	Title       string                 `json:"title"`
	Description string                 `json:"description,omitempty"`
	Image       string                 `json:"image,omitempty"`
	Media       *Media                 `json:"media,omitempty"`
	Raw         map[string]interface{} `json:"-"`
}

// Config holds the metadata fetcher settings
type Config struct {
	IPFSGateway string
	// Timeout bounds a single document fetch
	Timeout time.Duration
	// RequestsPerSecond caps outbound fetches across all requests; zero disables the limit
	RequestsPerSecond float64
	Burst             int
}

// Fetcher loads and normalizes the off-chain metadata of an NFT
//
//go:generate mockgen -source=resolver.go -destination=../mocks/metadata_fetcher.go -package=mocks -mock_names=Fetcher=MockMetadataFetcher
type Fetcher interface {
	// Fetch loads the document referenced by uri
	Fetch(ctx context.Context, uri string) (*Offchain, error)
}

type fetcher struct {
	httpClient adapter.HTTPClient
	json       adapter.JSON
	limiter    *rate.Limiter
	config     Config
}

// NewFetcher creates a metadata fetcher
func NewFetcher(httpClient adapter.HTTPClient, json adapter.JSON, cfg Config) Fetcher {
	if cfg.IPFSGateway == "" {
		cfg.IPFSGateway = DefaultIPFSGateway
	}
	cfg.IPFSGateway = strings.TrimRight(cfg.IPFSGateway, "/")

	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.RequestsPerSecond > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}

	return &fetcher{
		httpClient: httpClient,
		json:       json,
		limiter:    limiter,
		config:     cfg,
	}
}

func (f *fetcher) Fetch(ctx context.Context, uri string) (*Offchain, error) {
	uri = strings.TrimSpace(uri)
	if uri == "" {
		return nil, fmt.Errorf("%w: empty", ErrUnsupportedURI)
	}

	var body []byte
	if strings.HasPrefix(uri, "data:") {
		decoded, err := decodeDataURI(uri)
		if err != nil {
			return nil, err
		}
		body = decoded
	} else {
		url, err := ResolveURI(uri, f.config.IPFSGateway)
		if err != nil {
			return nil, err
		}

		if f.config.Timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, f.config.Timeout)
			defer cancel()
		}
		if err := f.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("failed to wait for fetch slot: %w", err)
		}

		body, err = f.httpClient.Get(ctx, url)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch metadata %s: %w", url, err)
		}
	}

	if mtype := mimetype.Detect(body); !isJSON(mtype) {
		logger.DebugCtx(ctx, "metadata is not json", zap.String("uri", uri), zap.String("mimeType", mtype.String()))
		return nil, fmt.Errorf("%w: %s", ErrNotJSON, mtype.String())
	}

	var raw map[string]interface{}
	if err := f.json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse metadata: %w", err)
	}

	return f.normalize(raw), nil
}

// isJSON accepts json and its subtypes such as application/geo+json
func isJSON(mtype *mimetype.MIME) bool {
	for m := mtype; m != nil; m = m.Parent() {
		if m.Is("application/json") {
			return true
		}
	}
	return false
}

// normalize reads the marketplace metadata layout:
// {"title", "description", "image", "properties": {"media": {"hash", "type", "size"}}}
// with "name" and "animation_url" accepted as fallbacks.
func (f *fetcher) normalize(raw map[string]interface{}) *Offchain {
	out := &Offchain{Raw: raw}
	out.Title = firstString(raw, "title", "name")
	out.Description = firstString(raw, "description")
	if image := firstString(raw, "image"); image != "" {
		out.Image = f.gatewayURL(image)
	}

	if props, ok := raw["properties"].(map[string]interface{}); ok {
		if media, ok := props["media"].(map[string]interface{}); ok {
			if ref := firstString(media, "hash", "url"); ref != "" {
				out.Media = &Media{URL: f.gatewayURL(ref), Type: firstString(media, "type")}
				if size, ok := media["size"].(float64); ok {
					s := int64(size)
					out.Media.Size = &s
				}
			}
		}
	}
	if out.Media == nil {
		if animation := firstString(raw, "animation_url"); animation != "" {
			out.Media = &Media{URL: f.gatewayURL(animation)}
		}
	}

	return out
}

func (f *fetcher) gatewayURL(ref string) string {
	url, err := ResolveURI(ref, f.config.IPFSGateway)
	if err != nil {
		return ref
	}
	return url
}

// ResolveURI turns an ipfs:// reference, an /ipfs/ path or a bare CID into a gateway URL.
// HTTP(S) URLs are returned unchanged.
func ResolveURI(uri, gateway string) (string, error) {
	gateway = strings.TrimRight(gateway, "/")

	switch {
	case strings.HasPrefix(uri, "http://"), strings.HasPrefix(uri, "https://"):
		return uri, nil
	case strings.HasPrefix(uri, "ipfs://"):
		path := strings.TrimPrefix(strings.TrimPrefix(uri, "ipfs://"), "ipfs/")
		return fmt.Sprintf("%s/ipfs/%s", gateway, path), nil
	case strings.HasPrefix(uri, "/ipfs/"):
		return gateway + uri, nil
	case isCID(uri):
		return fmt.Sprintf("%s/ipfs/%s", gateway, uri), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedURI, uri)
	}
}

// isCID recognizes CIDv0 (Qm...) and base32 CIDv1 (bafy...) identifiers, optionally followed by a path
func isCID(s string) bool {
	head, _, _ := strings.Cut(s, "/")
	switch {
	case strings.HasPrefix(head, "Qm") && len(head) == 46:
		return true
	case strings.HasPrefix(head, "baf") && len(head) >= 50:
		return true
	default:
		return false
	}
}

// decodeDataURI decodes data:application/json[;base64],<payload>
func decodeDataURI(uri string) ([]byte, error) {
	header, payload, ok := strings.Cut(strings.TrimPrefix(uri, "data:"), ",")
	if !ok {
		return nil, fmt.Errorf("%w: invalid data uri", ErrUnsupportedURI)
	}
	if strings.HasSuffix(header, ";base64") {
		decoded, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to decode base64: %w", err)
		}
		return decoded, nil
	}
	return []byte(payload), nil
}

func firstString(m map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		if v, ok := m[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}
