package store

import "encoding/json"

// Interest tags are persisted as a JSON-encoded text column so the same
// queries run unchanged on both postgres and sqlite.

func encodeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}

	raw, err := json.Marshal(tags)
	if err != nil {
		return "", err
	}

	return string(raw), nil
}

func decodeTags(raw string) ([]string, error) {
	if raw == "" {
		return []string{}, nil
	}

	var tags []string
	if err := json.Unmarshal([]byte(raw), &tags); err != nil {
		return nil, err
	}

	return tags, nil
}
