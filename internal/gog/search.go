package gog

import (
	"context"
	"encoding/json"
	"log/slog"
)

// Search looks up products matching term and returns their ids.
// found is false when the response carries no products key at all, which
// is distinct from an empty list. Entries without an id are skipped.
func (c *Client) Search(ctx context.Context, term string) (ids []int64, found bool, err error) {
	params := map[string]string{
		"mediaType": "game",
		"search":    term,
	}

	body, err := c.get(ctx, OpSearch, c.searchURL, params)
	if err != nil {
		return nil, false, err
	}

	var result searchResponse
	if err := json.Unmarshal([]byte(body), &result); err != nil {
		slog.Debug("decode search response", "error", err)
		return nil, false, NewAPIError(OpSearch, 0, ErrInvalidResponse)
	}

	if result.Products == nil {
		slog.Debug("search response has no products key", "term", term)
		return nil, false, nil
	}

	ids = make([]int64, 0, len(*result.Products))
	for _, product := range *result.Products {
		if product.ID == nil {
			continue
		}
		ids = append(ids, *product.ID)
	}

	slog.Debug("search completed",
		"term", term,
		"products", len(ids))

	return ids, true, nil
}
