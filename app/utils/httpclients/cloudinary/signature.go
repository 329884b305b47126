package cloudinary

import (
	"crypto/sha1"
	"encoding/base64"
	"encoding/hex"
	"sort"
	"strings"
)

// parameters that are sent but never signed
var unsignedParams = map[string]struct{}{
	"file":          {},
	"api_key":       {},
	"cloud_name":    {},
	"resource_type": {},
}

// SignParams computes the SHA-1 request signature: non-empty parameters sorted by
// name, joined as k=v pairs with '&', suffixed with the API secret.
func SignParams(params map[string]string, apiSecret string) string {
	keys := make([]string, 0, len(params))
	for key, value := range params {
		if _, skip := unsignedParams[key]; skip || value == "" {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, len(keys))
	for i, key := range keys {
		pairs[i] = key + "=" + params[key]
	}
	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + apiSecret))
	return hex.EncodeToString(sum[:])
}

// EncodeContext renders context attributes as key=value pairs separated by '|'.
// '=' and '|' inside values are backslash escaped.
func EncodeContext(attributes map[string]string) string {
	keys := make([]string, 0, len(attributes))
	for key := range attributes {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	escaper := strings.NewReplacer("=", `\=`, "|", `\|`)
	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, escaper.Replace(key)+"="+escaper.Replace(attributes[key]))
	}
	return strings.Join(pairs, "|")
}

// DataURI embeds raw bytes as an upload source.
func DataURI(mimeType string, data []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
