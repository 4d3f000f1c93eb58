// Package spoonacular is the recipe provider client.
package spoonacular

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const (
	DefaultBaseURL = "https://api.spoonacular.com"

	quotaHeader = "X-API-Quota-Used"
)

type (
	Client interface {
		GetRecipeInformation(ctx context.Context, id int) (*RecipeInformation, error)
		GetIngredientInformation(ctx context.Context, id int, amount float64, unit string) (*IngredientInformation, error)
		SearchRecipes(ctx context.Context, params SearchParams) (*SearchResult, error)
	}

	Config struct {
		BaseURL string
		APIKey  string
		Timeout time.Duration
	}

	client struct {
		http   *resty.Client
		cache  ResponseCache
		logger *zap.Logger
	}
)

// NewClient builds the provider client. A nil cache disables response caching.
func NewClient(cfg Config, cache ResponseCache, logger *zap.Logger) Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cache == nil {
		cache = noCache{}
	}

	http := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json").
		SetQueryParam("apiKey", cfg.APIKey)

	return &client{http: http, cache: cache, logger: logger}
}

func (c *client) GetRecipeInformation(ctx context.Context, id int) (*RecipeInformation, error) {
	var info RecipeInformation
	path := fmt.Sprintf("/recipes/%d/information", id)
	if err := c.get(ctx, path, url.Values{"includeNutrition": {"true"}}, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

func (c *client) GetIngredientInformation(ctx context.Context, id int, amount float64, unit string) (*IngredientInformation, error) {
	var info IngredientInformation
	path := fmt.Sprintf("/food/ingredients/%d/information", id)
	params := url.Values{
		"amount": {strconv.FormatFloat(amount, 'f', -1, 64)},
		"unit":   {unit},
	}
	if err := c.get(ctx, path, params, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

func (c *client) SearchRecipes(ctx context.Context, params SearchParams) (*SearchResult, error) {
	number := params.Number
	if number <= 0 {
		number = 10
	}
	q := url.Values{
		"addRecipeInformation": {"true"},
		"addRecipeNutrition":   {"true"},
		"offset":               {strconv.Itoa(params.Offset)},
		"number":               {strconv.Itoa(number)},
	}
	if params.Query != "" {
		q.Set("query", params.Query)
	}
	if params.Diet != "" {
		q.Set("diet", params.Diet)
	}
	if len(params.Intolerances) > 0 {
		q.Set("intolerances", strings.Join(params.Intolerances, ","))
	}

	var result SearchResult
	if err := c.get(ctx, "/recipes/complexSearch", q, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *client) get(ctx context.Context, path string, params url.Values, out any) error {
	key := cacheKey(path, params)
	if body, ok := c.cache.Get(ctx, key); ok {
		return json.Unmarshal(body, out)
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParamsFromValues(params).
		Get(path)
	if err != nil {
		c.logger.Error("spoonacular request failed", zap.String("path", path), zap.Error(err))
		return err
	}

	if quota := resp.Header().Get(quotaHeader); quota != "" {
		c.logger.Info("spoonacular quota used", zap.String("quota", quota))
	}

	if resp.IsError() {
		c.logger.Error("spoonacular api error",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode()),
			zap.String("body", resp.String()),
		)
		return fmt.Errorf("spoonacular returned status %d: %s", resp.StatusCode(), resp.String())
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("failed to decode spoonacular response: %w", err)
	}
	c.cache.Set(ctx, key, resp.Body())
	return nil
}

func cacheKey(path string, params url.Values) string {
	return "spoonacular:" + path + "?" + params.Encode()
}
