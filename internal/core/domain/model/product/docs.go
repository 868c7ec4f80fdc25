// Package product models the menu: items a customer can put in the cart and
// the administrator maintains from the dashboard.
//
// Key business rules:
//   - Names are NFKC-normalized, stripped of markup and 1..255 characters long
//   - Descriptions are optional and at most 1000 characters
//   - Prices are whole yen between 0 and 1,000,000
//   - Image URLs, when present, are absolute http(s) URLs
//   - Categories, when present, are one of バーガー, サイド, 飲み物
//   - Only active products can be ordered
package product
