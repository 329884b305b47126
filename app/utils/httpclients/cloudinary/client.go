package cloudinary

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"jajresources.com/image-gateway/app/utils/httpclients"
	"resty.dev/v3"
)

const listPageSize = 500

var RestyClient *resty.Client

func Init() {
	RestyClient = httpclients.NewClient("CloudinaryClient")
}

type Resource struct {
	PublicID  string          `json:"public_id"`
	SecureURL string          `json:"secure_url"`
	Tags      []string        `json:"tags"`
	Context   ResourceContext `json:"context,omitempty"`
}

// ResourceContext holds contextual metadata. Upload responses nest user
// attributes under "custom"; older admin responses return them flat.
type ResourceContext map[string]any

func (c ResourceContext) Value(key string) string {
	if custom, ok := c["custom"].(map[string]any); ok {
		if value, ok := custom[key].(string); ok && value != "" {
			return value
		}
	}
	if value, ok := c[key].(string); ok {
		return value
	}
	return ""
}

type ResourcesPage struct {
	Resources  []Resource `json:"resources"`
	NextCursor string     `json:"next_cursor"`
}

type UploadParams struct {
	// File is a remote URL or a data URI.
	File string
	// Tags is omitted from the request when nil.
	Tags    []string
	Context map[string]string
}

type ExplicitParams struct {
	PublicID string
	// Tags is always sent; an empty list clears the asset's tags.
	Tags    []string
	Context map[string]string
}

type APIError struct {
	Op         string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("cloudinary %s: status %d: %s", e.Op, e.StatusCode, e.Message)
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

type destroyResponse struct {
	Result string `json:"result"`
}

type Client struct {
	config Config
	rest   *resty.Client
	now    func() time.Time
}

func NewClient() (*Client, error) {
	config, err := ConfigFromEnv()
	if err != nil {
		return nil, err
	}
	if RestyClient == nil {
		Init()
	}
	return NewClientWithConfig(config, RestyClient), nil
}

func NewClientWithConfig(config Config, rest *resty.Client) *Client {
	return &Client{
		config: config,
		rest:   rest,
		now:    time.Now,
	}
}

func (c *Client) CloudName() string {
	return c.config.CloudName
}

// ListResources fetches one page of image resources with tags and context.
func (c *Client) ListResources(ctx context.Context, nextCursor string) (*ResourcesPage, error) {
	var page ResourcesPage
	req := c.rest.R().
		SetContext(ctx).
		SetBasicAuth(c.config.APIKey, c.config.APISecret).
		SetQueryParams(map[string]string{
			"max_results": strconv.Itoa(listPageSize),
			"context":     "true",
			"tags":        "true",
		}).
		SetResult(&page).
		SetError(&errorResponse{})
	if nextCursor != "" {
		req.SetQueryParam("next_cursor", nextCursor)
	}
	resp, err := req.Get(c.config.endpoint("/resources/image"))
	if err := checkResponse("list resources", resp, err); err != nil {
		return nil, err
	}
	return &page, nil
}

// ListAllResources follows next_cursor until the listing is exhausted.
func (c *Client) ListAllResources(ctx context.Context) ([]Resource, error) {
	resources := make([]Resource, 0)
	cursor := ""
	for {
		page, err := c.ListResources(ctx, cursor)
		if err != nil {
			return nil, err
		}
		resources = append(resources, page.Resources...)
		if page.NextCursor == "" || page.NextCursor == cursor {
			return resources, nil
		}
		cursor = page.NextCursor
	}
}

func (c *Client) Upload(ctx context.Context, params UploadParams) (*Resource, error) {
	form := map[string]string{
		"file": params.File,
	}
	if params.Tags != nil {
		form["tags"] = strings.Join(params.Tags, ",")
	}
	if len(params.Context) > 0 {
		form["context"] = EncodeContext(params.Context)
	}

	var resource Resource
	resp, err := c.signedRequest(ctx, form).
		SetResult(&resource).
		Post(c.config.endpoint("/image/upload"))
	if err := checkResponse("upload", resp, err); err != nil {
		return nil, err
	}
	return &resource, nil
}

// Explicit updates tags and context of an existing upload.
func (c *Client) Explicit(ctx context.Context, params ExplicitParams) (*Resource, error) {
	form := map[string]string{
		"public_id": params.PublicID,
		"type":      "upload",
		"tags":      strings.Join(params.Tags, ","),
	}
	if len(params.Context) > 0 {
		form["context"] = EncodeContext(params.Context)
	}

	var resource Resource
	resp, err := c.signedRequest(ctx, form).
		SetResult(&resource).
		Post(c.config.endpoint("/image/explicit"))
	if err := checkResponse("explicit", resp, err); err != nil {
		return nil, err
	}
	return &resource, nil
}

func (c *Client) Destroy(ctx context.Context, publicID string) error {
	var result destroyResponse
	resp, err := c.signedRequest(ctx, map[string]string{"public_id": publicID}).
		SetResult(&result).
		Post(c.config.endpoint("/image/destroy"))
	if err := checkResponse("destroy", resp, err); err != nil {
		return err
	}
	if result.Result != "ok" {
		return &APIError{Op: "destroy", StatusCode: resp.StatusCode(), Message: result.Result}
	}
	return nil
}

func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.rest.R().
		SetContext(ctx).
		SetBasicAuth(c.config.APIKey, c.config.APISecret).
		SetError(&errorResponse{}).
		Get(c.config.endpoint("/ping"))
	return checkResponse("ping", resp, err)
}

func (c *Client) signedRequest(ctx context.Context, form map[string]string) *resty.Request {
	form["timestamp"] = strconv.FormatInt(c.now().Unix(), 10)
	form["signature"] = SignParams(form, c.config.APISecret)
	form["api_key"] = c.config.APIKey
	return c.rest.R().
		SetContext(ctx).
		SetFormData(form).
		SetError(&errorResponse{})
}

func checkResponse(op string, resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("cloudinary %s: %w", op, err)
	}
	if !resp.IsError() {
		return nil
	}
	message := resp.Status()
	if body, ok := resp.Error().(*errorResponse); ok && body.Error.Message != "" {
		message = body.Error.Message
	}
	return &APIError{Op: op, StatusCode: resp.StatusCode(), Message: message}
}
