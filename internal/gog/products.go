package gog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
)

// Downloads fetches the installer records of a product.
// found is false when the response lacks downloads.installers.
func (c *Client) Downloads(ctx context.Context, productID int64) (installers []Installer, found bool, err error) {
	url := fmt.Sprintf("%s/%d", c.productURL, productID)
	params := map[string]string{
		"expand": "downloads",
	}

	body, err := c.get(ctx, OpInspect, url, params)
	if err != nil {
		return nil, false, err
	}

	var result productResponse
	if err := json.Unmarshal([]byte(body), &result); err != nil {
		slog.Debug("decode product response", "product_id", productID, "error", err)
		return nil, false, NewAPIError(OpInspect, 0, ErrInvalidResponse)
	}

	if result.Downloads == nil || result.Downloads.Installers == nil {
		slog.Debug("product has no installers", "product_id", productID)
		return nil, false, nil
	}

	slog.Debug("product inspected",
		"product_id", productID,
		"title", result.Title,
		"installers", len(*result.Downloads.Installers))

	return *result.Downloads.Installers, true, nil
}
