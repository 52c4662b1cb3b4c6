package backendapi

import (
	"context"
	"net/http"
)

var productWrappers = []string{"products", "data", "content", "items"}

func decodeProducts(body []byte) []Product {
	items := listItems(body, productWrappers...)
	products := make([]Product, 0, len(items))
	for _, item := range items {
		products = append(products, normalizeProduct(item))
	}
	return products
}

// ListAllProducts returns the public catalog from the catalog API.
func (c *Client) ListAllProducts(ctx context.Context) ([]Product, error) {
	resp, err := c.do(ctx, request{operation: "catalog.list_all", method: http.MethodGet, path: "/api/v1/product/list-all", catalog: true})
	if err != nil {
		return nil, err
	}
	return decodeProducts(resp.body), nil
}

// VendorProducts returns the signed-in vendor's products.
func (c *Client) VendorProducts(ctx context.Context, token string) ([]Product, error) {
	resp, err := c.do(ctx, request{operation: "vendor.products", method: http.MethodGet, path: "/api/products", token: token})
	if err != nil {
		return nil, err
	}
	return decodeProducts(resp.body), nil
}

// VendorProductStats returns the vendor product list used for dashboard
// counts. The backend may wrap it in products or data.
func (c *Client) VendorProductStats(ctx context.Context, token string) ([]Product, error) {
	resp, err := c.do(ctx, request{operation: "vendor.product_stats", method: http.MethodGet, path: "/api/products/list", token: token})
	if err != nil {
		return nil, err
	}
	return decodeProducts(resp.body), nil
}

// CreateProduct adds a vendor product.
func (c *Client) CreateProduct(ctx context.Context, token string, input ProductInput) error {
	body, err := jsonBody(input)
	if err != nil {
		return err
	}
	_, err = c.do(ctx, request{operation: "vendor.product_create", method: http.MethodPost, path: "/api/products/add", token: token, body: body})
	return err
}

// UpdateProduct replaces a vendor product.
func (c *Client) UpdateProduct(ctx context.Context, token string, productID string, input ProductInput) error {
	body, err := jsonBody(input)
	if err != nil {
		return err
	}
	_, err = c.do(ctx, request{operation: "vendor.product_update", method: http.MethodPut, path: "/api/products/update/" + pathID(productID), token: token, body: body})
	return err
}

// DeleteProduct removes a vendor product.
func (c *Client) DeleteProduct(ctx context.Context, token string, productID string) error {
	_, err := c.do(ctx, request{operation: "vendor.product_delete", method: http.MethodDelete, path: "/api/products/delete/" + pathID(productID), token: token})
	return err
}
