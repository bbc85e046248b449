package services

import (
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/mateusfonseca/dorsetMusicCollection/internal/utils"

	"github.com/microcosm-cc/bluemonday"
)

// Release is one master release returned by the catalog: the grouping of
// equivalent pressings of an album that the search treats as a single result.
type Release struct {
	ID         int
	Title      string // "<artist> - <album>"
	Year       int
	Country    string
	CoverImage string
	Styles     []string
	URL        string // canonical page on the catalog's website
	Have       int
	Want       int
}

// Popularity is the community score used to rank releases.
func (r Release) Popularity() int {
	return r.Have + r.Want
}

// Catalog searches an external music catalog for master releases matching a
// style and a year. Handlers depend on this interface so tests can swap in a
// double for the real Discogs client.
type Catalog interface {
	Search(style string, year int) ([]Release, error)
}

const (
	discogsBaseURL = "https://api.discogs.com"
	discogsSiteURL = "https://www.discogs.com"
	searchPerPage  = 100
	searchCacheTTL = 5 * time.Minute
)

// DiscogsClient queries the Discogs database search API.
// https://www.discogs.com/developers#page:database,header:database-search
type DiscogsClient struct {
	client    *http.Client
	baseURL   string
	token     string
	userAgent string
	cache     *utils.Cache
	sanitizer *bluemonday.Policy
}

func NewDiscogsClient(token string) *DiscogsClient {
	return &DiscogsClient{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL:   discogsBaseURL,
		token:     token,
		userAgent: "dorsetMusicCollection/0.1",
		cache:     utils.NewCache(64),
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// sanitizeText strips any markup from a catalog-supplied string. The policy
// entity-escapes its output, so unescape to keep names like "Simon & Garfunkel"
// intact.
func (d *DiscogsClient) sanitizeText(s string) string {
	return html.UnescapeString(d.sanitizer.Sanitize(s))
}

type searchResponse struct {
	Pagination struct {
		Page  int `json:"page"`
		Pages int `json:"pages"`
	} `json:"pagination"`
	Results []searchResult `json:"results"`
}

type searchResult struct {
	ID         int      `json:"id"`
	Title      string   `json:"title"`
	Year       string   `json:"year"` // the search API returns years as strings
	Country    string   `json:"country"`
	CoverImage string   `json:"cover_image"`
	URI        string   `json:"uri"`
	Style      []string `json:"style"`
	Community  struct {
		Have int `json:"have"`
		Want int `json:"want"`
	} `json:"community"`
}

// Search fetches every page of master-release results for the given style and
// year and flattens them into one ordered slice. A zero-length result is a
// normal outcome, not an error.
func (d *DiscogsClient) Search(style string, year int) ([]Release, error) {
	cacheKey := fmt.Sprintf("discogs:search:%s:%d", style, year)
	if cached := d.cache.Get(cacheKey); cached != nil {
		if releases, ok := cached.([]Release); ok {
			return releases, nil
		}
	}

	var releases []Release
	for page := 1; ; page++ {
		resp, err := d.searchPage(style, year, page)
		if err != nil {
			return nil, err
		}
		for _, res := range resp.Results {
			releases = append(releases, Release{
				ID:         res.ID,
				Title:      d.sanitizeText(res.Title),
				Year:       utils.StringToInt(res.Year),
				Country:    d.sanitizeText(res.Country),
				CoverImage: res.CoverImage,
				Styles:     res.Style,
				URL:        discogsSiteURL + res.URI,
				Have:       res.Community.Have,
				Want:       res.Community.Want,
			})
		}
		if page >= resp.Pagination.Pages {
			break
		}
	}

	d.cache.Set(cacheKey, releases, searchCacheTTL)
	return releases, nil
}

func (d *DiscogsClient) searchPage(style string, year, page int) (*searchResponse, error) {
	params := url.Values{}
	params.Set("type", "master")
	params.Set("style", style)
	params.Set("year", strconv.Itoa(year))
	params.Set("per_page", strconv.Itoa(searchPerPage))
	params.Set("page", strconv.Itoa(page))

	req, err := http.NewRequest("GET", d.baseURL+"/database/search?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build search request: %w", err)
	}
	req.Header.Set("User-Agent", d.userAgent)
	// Unauthenticated queries still work but may omit fields such as images.
	if d.token != "" {
		req.Header.Set("Authorization", "Discogs token="+d.token)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog returned status %d", resp.StatusCode)
	}

	var sr searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}
	return &sr, nil
}
