package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const timeFormat = time.RFC3339Nano

const fieldSeparator = "|"

// EncodeKeysetToken creates an opaque token from the sort key of the last row of a page.
// Drafts are ordered by last update time with the draft id as tie breaker.
func EncodeKeysetToken(updatedAt time.Time, id string) string {
	return EncodeMultiFieldToken(updatedAt.UTC().Format(timeFormat), id)
}

// DecodeKeysetToken parses a token produced by EncodeKeysetToken.
func DecodeKeysetToken(token string) (time.Time, string, error) {
	parts, err := DecodeMultiFieldToken(token)
	if err != nil {
		return time.Time{}, "", err
	}
	if len(parts) != 2 || parts[1] == "" {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (split)")
	}
	updatedAt, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (updated_at parse): %w", err)
	}
	return updatedAt, parts[1], nil
}

// EncodePageToken creates a token for the next page of a page-numbered listing.
// The filter fingerprint ties the token to the query it was issued for.
func EncodePageToken(page int, filter string) string {
	return EncodeMultiFieldToken(strconv.Itoa(page), filter)
}

// DecodePageToken parses a token produced by EncodePageToken and checks it belongs to filter.
func DecodePageToken(token string, filter string) (int, error) {
	parts, err := DecodeMultiFieldToken(token)
	if err != nil {
		return 0, err
	}
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid pagination token format (split)")
	}
	page, err := strconv.Atoi(parts[0])
	if err != nil || page < 1 {
		return 0, fmt.Errorf("invalid pagination token format (page parse)")
	}
	if parts[1] != filter {
		return 0, fmt.Errorf("pagination token does not match the query")
	}
	return page, nil
}

// EncodeMultiFieldToken creates a token with any number of string fields.
// Fields must not contain the separator.
func EncodeMultiFieldToken(fields ...string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(strings.Join(fields, fieldSeparator)))
}

// DecodeMultiFieldToken decodes a token into its component fields.
func DecodeMultiFieldToken(token string) ([]string, error) {
	decodedBytes, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	return strings.Split(string(decodedBytes), fieldSeparator), nil
}
