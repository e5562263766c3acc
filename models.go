package apod

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNoURL is returned when a picture has no usable link to its media.
var ErrNoURL = errors.New("invalid url")

// Metadata describes a single "Astronomy Picture of the Day" entry.
type Metadata struct {
	Title       string  `json:"title"`
	Explanation string  `json:"explanation"`
	Copyright   *string `json:"copyright,omitempty"`
	URL         string  `json:"url"`
	HDURL       *string `json:"hdurl,omitempty"`
	MediaType   string  `json:"media_type"`
}

// UnmarshalJSON decodes the API payload, rejecting documents that lack
// one of the required fields. Unknown fields are ignored.
func (m *Metadata) UnmarshalJSON(b []byte) error {
	var raw struct {
		Title       *string `json:"title"`
		Explanation *string `json:"explanation"`
		Copyright   *string `json:"copyright"`
		URL         *string `json:"url"`
		HDURL       *string `json:"hdurl"`
		MediaType   *string `json:"media_type"`
	}

	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	required := []struct {
		name  string
		value *string
	}{
		{"title", raw.Title},
		{"explanation", raw.Explanation},
		{"url", raw.URL},
		{"media_type", raw.MediaType},
	}
	for _, f := range required {
		if f.value == nil {
			return fmt.Errorf("missing field %q", f.name)
		}
	}

	*m = Metadata{
		Title:       *raw.Title,
		Explanation: *raw.Explanation,
		Copyright:   raw.Copyright,
		URL:         *raw.URL,
		HDURL:       raw.HDURL,
		MediaType:   *raw.MediaType,
	}

	return nil
}

// PreferredURL picks the link worth downloading: the HD variant of an image
// when there is one, the regular URL otherwise.
func (m *Metadata) PreferredURL() (string, error) {

	switch {
	case m.MediaType == "image" && m.HDURL != nil && *m.HDURL != "":
		return *m.HDURL, nil
	case m.URL != "":
		return m.URL, nil
	}

	return "", ErrNoURL
}
