package corpus

import (
	"encoding/json"
	"fmt"
)

// Decode parses a raw corpus asset into a Corpus.
// The asset is either a bare JSON array of verse records, or a full Corpus
// object (the shape the cache snapshot uses). A bare array is the shape the
// embedded dataset ships in.
func Decode(data []byte) (*Corpus, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty corpus asset")
	}

	// Skip leading whitespace to sniff the top-level JSON shape.
	i := 0
	for i < len(data) && (data[i] == ' ' || data[i] == '\t' || data[i] == '\n' || data[i] == '\r') {
		i++
	}
	if i == len(data) {
		return nil, fmt.Errorf("empty corpus asset")
	}

	if data[i] == '[' {
		var verses []Verse
		if err := json.Unmarshal(data, &verses); err != nil {
			return nil, fmt.Errorf("failed to decode verse array: %w", err)
		}
		return &Corpus{Verses: verses}, nil
	}

	var c Corpus
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to decode corpus: %w", err)
	}
	return &c, nil
}

// Encode serializes a Corpus for cache persistence.
func Encode(c *Corpus) ([]byte, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode corpus: %w", err)
	}
	return data, nil
}
