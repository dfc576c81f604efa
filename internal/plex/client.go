// Package plex provides a client for the Plex Media Server HTTP API.
package plex

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/vmunix/healarr/internal/artwork"
)

// Client interacts with the Plex Media Server API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a new Plex client.
func NewClient(baseURL, token string, log *slog.Logger) *Client {
	if log == nil {
		log = slog.Default()
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		token:   token,
		log:     log.With("component", "plex"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// url builds a fully-qualified request URL with the auth token appended
// as a query parameter.
func (c *Client) url(path string, query url.Values) string {
	if query == nil {
		query = url.Values{}
	}
	query.Set("X-Plex-Token", c.token)
	return c.baseURL + path + "?" + query.Encode()
}

// ArtworkURL returns the fully-qualified URL for a relative artwork
// reference as reported by Plex (e.g. /library/metadata/42/thumb/1).
func (c *Client) ArtworkURL(ref string) string {
	return c.url(ref, nil)
}

// Identity holds Plex server identity information.
type Identity struct {
	Name    string
	Version string
}

// identityResponse is the XML response from the root endpoint.
type identityResponse struct {
	XMLName      xml.Name `xml:"MediaContainer"`
	FriendlyName string   `xml:"friendlyName,attr"`
	Version      string   `xml:"version,attr"`
}

// GetIdentity returns the Plex server name and version.
// A failure here means the server is unreachable or the token is invalid.
func (c *Client) GetIdentity(ctx context.Context) (*Identity, error) {
	var result identityResponse
	if err := c.getXML(ctx, c.url("/", nil), &result); err != nil {
		return nil, err
	}
	return &Identity{
		Name:    result.FriendlyName,
		Version: result.Version,
	}, nil
}

// Section represents a Plex library section.
type Section struct {
	Key   string `xml:"key,attr"`
	Title string `xml:"title,attr"`
	Type  string `xml:"type,attr"`
}

// sectionsResponse is the XML response from /library/sections.
type sectionsResponse struct {
	XMLName  xml.Name  `xml:"MediaContainer"`
	Sections []Section `xml:"Directory"`
}

// GetSections returns all library sections.
func (c *Client) GetSections(ctx context.Context) ([]Section, error) {
	var result sectionsResponse
	if err := c.getXML(ctx, c.url("/library/sections", nil), &result); err != nil {
		return nil, err
	}
	return result.Sections, nil
}

// FindSectionByName finds a library section by name (case-insensitive).
// Returns nil if not found.
func (c *Client) FindSectionByName(ctx context.Context, name string) (*Section, error) {
	sections, err := c.GetSections(ctx)
	if err != nil {
		return nil, err
	}

	for _, sec := range sections {
		if strings.EqualFold(sec.Title, name) {
			return &sec, nil
		}
	}

	return nil, nil
}

// Item is a media item (or collection) with its artwork references.
type Item struct {
	RatingKey string
	Title     string
	Type      string // movie, show, collection
	GUID      string // cross-reference identifier, e.g. themoviedb://603
	Thumb     string // relative poster reference, may be empty
	Art       string // relative background reference, may be empty
}

// ArtworkRef returns the item's relative artwork reference for the slot,
// or the empty string when the slot has none.
func (i Item) ArtworkRef(slot artwork.Slot) string {
	if slot == artwork.SlotPoster {
		return i.Thumb
	}
	return i.Art
}

// itemXML is the XML representation of a Plex item.
type itemXML struct {
	RatingKey string `xml:"ratingKey,attr"`
	Title     string `xml:"title,attr"`
	Type      string `xml:"type,attr"`
	GUID      string `xml:"guid,attr"`
	Thumb     string `xml:"thumb,attr"`
	Art       string `xml:"art,attr"`
}

// itemsResponse is the XML response from /library/sections/{key}/all
// and /library/sections/{key}/collections.
type itemsResponse struct {
	XMLName     xml.Name  `xml:"MediaContainer"`
	Videos      []itemXML `xml:"Video"`     // Movies, episodes
	Directories []itemXML `xml:"Directory"` // TV shows, collections
}

func (r itemsResponse) items() []Item {
	all := make([]itemXML, 0, len(r.Videos)+len(r.Directories))
	all = append(all, r.Videos...)
	all = append(all, r.Directories...)
	items := make([]Item, len(all))
	for i, it := range all {
		items[i] = Item{
			RatingKey: it.RatingKey,
			Title:     it.Title,
			Type:      it.Type,
			GUID:      it.GUID,
			Thumb:     it.Thumb,
			Art:       it.Art,
		}
	}
	return items
}

// ListItems returns all items in a library section.
func (c *Client) ListItems(ctx context.Context, sectionKey string) ([]Item, error) {
	var result itemsResponse
	reqURL := c.url(fmt.Sprintf("/library/sections/%s/all", sectionKey), nil)
	if err := c.getXML(ctx, reqURL, &result); err != nil {
		return nil, err
	}
	return result.items(), nil
}

// ListCollections returns the named collections of a library section.
// Collections carry the same artwork slots as regular items.
func (c *Client) ListCollections(ctx context.Context, sectionKey string) ([]Item, error) {
	var result itemsResponse
	reqURL := c.url(fmt.Sprintf("/library/sections/%s/collections", sectionKey), nil)
	if err := c.getXML(ctx, reqURL, &result); err != nil {
		return nil, err
	}
	return result.items(), nil
}

// DownloadArtwork fetches the bytes behind a relative artwork reference.
func (c *Client) DownloadArtwork(ctx context.Context, ref string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.ArtworkURL(ref), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return data, nil
}

// UploadArtwork uploads artwork bytes for the given item and slot.
func (c *Client) UploadArtwork(ctx context.Context, ratingKey string, slot artwork.Slot, data []byte) error {
	endpoint := "posters"
	if slot == artwork.SlotBackground {
		endpoint = "arts"
	}
	reqURL := c.url(fmt.Sprintf("/library/metadata/%s/%s", ratingKey, endpoint), nil)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "image/jpeg")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("upload failed with status: %d", resp.StatusCode)
	}

	if c.log != nil {
		c.log.Debug("artwork uploaded", "rating_key", ratingKey, "slot", slot.String(), "bytes", len(data))
	}
	return nil
}

// getXML performs a GET against a fully-built URL and decodes the XML body.
func (c *Client) getXML(ctx context.Context, reqURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/xml")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	if err := xml.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
