package cms

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/georgeey123/ghanada-works/internal/config"
	"github.com/georgeey123/ghanada-works/internal/domain/content"
)

const (
	contentTypeCategory     = "category"
	contentTypeProject      = "project"
	contentTypeSiteSettings = "siteSettings"
)

// Client queries the Contentful Content Delivery API and implements
// content.Source. A request that cannot reach the CMS fails with
// content.ErrBackendUnavailable; the client never falls back to the demo
// dataset mid-session.
type Client struct {
	baseURL     string
	spaceID     string
	environment string
	token       string
	client      *http.Client
	tr          *Transformer
	log         *zap.Logger
}

func NewClient(cfg config.CMSConfig, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		spaceID:     cfg.SpaceID,
		environment: cfg.Environment,
		token:       cfg.AccessToken,
		client:      &http.Client{Timeout: 30 * time.Second},
		tr:          NewTransformer(log),
		log:         log,
	}
}

func (c *Client) Categories(ctx context.Context) ([]content.Category, error) {
	payload, err := c.getEntries(ctx, url.Values{
		"content_type": {contentTypeCategory},
		"order":        {"fields.sortOrder"},
	})
	if err != nil {
		return nil, err
	}
	out := make([]content.Category, 0, len(payload.Items))
	for _, item := range payload.Items {
		out = append(out, c.tr.ToCategory(item))
	}
	return out, nil
}

func (c *Client) Category(ctx context.Context, slug string) (*content.Category, error) {
	payload, err := c.getEntries(ctx, url.Values{
		"content_type": {contentTypeCategory},
		"fields.slug":  {slug},
		"limit":        {"1"},
	})
	if err != nil {
		return nil, err
	}
	if len(payload.Items) == 0 {
		return nil, content.ErrCategoryNotFound
	}
	cat := c.tr.ToCategory(payload.Items[0])
	return &cat, nil
}

func (c *Client) Projects(ctx context.Context, categorySlug string) ([]content.Project, error) {
	query := url.Values{
		"content_type": {contentTypeProject},
		"order":        {"-fields.publishedDate"},
		"include":      {"2"},
	}
	if categorySlug != "" {
		cat, err := c.Category(ctx, categorySlug)
		if errors.Is(err, content.ErrCategoryNotFound) {
			return []content.Project{}, nil
		}
		if err != nil {
			return nil, err
		}
		query.Set("fields.category.sys.id", cat.ID)
	}

	payload, err := c.getEntries(ctx, query)
	if err != nil {
		return nil, err
	}
	out := make([]content.Project, 0, len(payload.Items))
	for _, item := range payload.Items {
		out = append(out, c.tr.ToProject(item))
	}
	return out, nil
}

func (c *Client) Project(ctx context.Context, slug string) (*content.Project, error) {
	payload, err := c.getEntries(ctx, url.Values{
		"content_type": {contentTypeProject},
		"fields.slug":  {slug},
		"include":      {"2"},
		"limit":        {"1"},
	})
	if err != nil {
		return nil, err
	}
	if len(payload.Items) == 0 {
		return nil, content.ErrProjectNotFound
	}
	p := c.tr.ToProject(payload.Items[0])
	return &p, nil
}

func (c *Client) SiteSettings(ctx context.Context) (content.SiteSettings, error) {
	payload, err := c.getEntries(ctx, url.Values{
		"content_type": {contentTypeSiteSettings},
		"include":      {"2"},
		"limit":        {"1"},
	})
	if err != nil {
		return content.SiteSettings{}, err
	}
	if len(payload.Items) == 0 {
		return content.DefaultSiteSettings(), nil
	}

	entry := payload.Items[0]
	c.resolveSettingsAssets(ctx, entry)
	return c.tr.ToSiteSettings(entry), nil
}

func (c *Client) RecentWork(ctx context.Context, count int) ([]content.Project, error) {
	query := url.Values{
		"content_type": {contentTypeProject},
		"order":        {"-fields.publishedDate"},
		"include":      {"2"},
	}
	if count > 0 {
		query.Set("limit", strconv.Itoa(count))
	}
	payload, err := c.getEntries(ctx, query)
	if err != nil {
		return nil, err
	}
	out := make([]content.Project, 0, len(payload.Items))
	for _, item := range payload.Items {
		out = append(out, c.tr.ToProject(item))
	}
	return out, nil
}

// resolveSettingsAssets fetches the hero image and photographer photo when
// they arrive as bare asset links rather than inlined records. The two
// lookups run concurrently; a failed lookup degrades that one field to
// absent instead of failing the whole settings read.
func (c *Client) resolveSettingsAssets(ctx context.Context, rec map[string]any) {
	fields := entryFields(rec)
	if fields == nil {
		return
	}

	type pendingAsset struct {
		key string
		id  string
	}
	var pending []pendingAsset
	for _, key := range []string{"heroImage", "photographerPhoto"} {
		raw, ok := fields[key].(map[string]any)
		if !ok {
			continue
		}
		if _, resolved := raw["fields"].(map[string]any); resolved {
			continue
		}
		id, ok := linkTarget(raw)
		if !ok {
			delete(fields, key)
			continue
		}
		pending = append(pending, pendingAsset{key: key, id: id})
	}
	if len(pending) == 0 {
		return
	}

	resolved := make([]map[string]any, len(pending))
	g, gctx := errgroup.WithContext(ctx)
	for i, pa := range pending {
		g.Go(func() error {
			asset, err := c.getAsset(gctx, pa.id)
			if err != nil {
				c.log.Warn("failed to resolve settings asset",
					zap.String("field", pa.key),
					zap.String("asset_id", pa.id),
					zap.Error(err))
				return nil
			}
			resolved[i] = asset
			return nil
		})
	}
	_ = g.Wait()

	for i, pa := range pending {
		if resolved[i] != nil {
			fields[pa.key] = resolved[i]
		} else {
			delete(fields, pa.key)
		}
	}
}

func (c *Client) getEntries(ctx context.Context, query url.Values) (*entriesPayload, error) {
	endpoint := fmt.Sprintf("%s/spaces/%s/environments/%s/entries?%s",
		c.baseURL, c.spaceID, c.environment, query.Encode())

	body, err := c.getJSON(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var payload entriesPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: decoding entries response: %v", content.ErrBackendUnavailable, err)
	}
	payload.resolveLinks()
	return &payload, nil
}

func (c *Client) getAsset(ctx context.Context, id string) (map[string]any, error) {
	endpoint := fmt.Sprintf("%s/spaces/%s/environments/%s/assets/%s",
		c.baseURL, c.spaceID, c.environment, url.PathEscape(id))

	body, err := c.getJSON(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var asset map[string]any
	if err := json.Unmarshal(body, &asset); err != nil {
		return nil, fmt.Errorf("decoding asset %s: %w", id, err)
	}
	return asset, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", content.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", content.ErrBackendUnavailable, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: cms responded %s: %s",
			content.ErrBackendUnavailable, resp.Status, strings.TrimSpace(string(body)))
	}
	return body, nil
}
