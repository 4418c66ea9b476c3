package ocr

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// DecodeImage decodes an image payload that is either bare base64 or a
// data URI of the form "data:image/png;base64,...". Screenshot clients
// send both.
func DecodeImage(payload string) ([]byte, error) {
	trimmed := strings.TrimSpace(payload)
	if trimmed == "" {
		return nil, fmt.Errorf("image payload is empty")
	}
	if strings.HasPrefix(trimmed, "data:") {
		idx := strings.Index(trimmed, "base64,")
		if idx == -1 {
			return nil, fmt.Errorf("data URI is not base64 encoded")
		}
		trimmed = trimmed[idx+len("base64,"):]
	}
	data, err := base64.StdEncoding.DecodeString(trimmed)
	if err != nil {
		return nil, fmt.Errorf("decoding base64 image: %w", err)
	}
	return data, nil
}
