package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gorm.io/datatypes"
)

// Metadata is the per-type part of a content record. Only job and
// testimonial carry one; page, guide and faq have none.
type Metadata interface {
	ContentType() ContentType
}

type JobMetadata struct {
	Company  string `json:"company"`
	Location string `json:"location"`
	Salary   string `json:"salary"`
}

func (JobMetadata) ContentType() ContentType { return ContentJob }

type TestimonialMetadata struct {
	Author string `json:"author"`
	Rating int    `json:"rating"`
}

func (TestimonialMetadata) ContentType() ContentType { return ContentTestimonial }

var ErrRatingOutOfRange = errors.New("metadata.rating must be between 1 and 5")

// DecodeMetadata reads raw JSON into the variant selected by t. Keys that
// do not belong to the variant are dropped, as is any bag sent for page,
// guide or faq (nil is returned for those). A testimonial always needs a
// rating; job fields are all optional, so an empty job bag is nil.
func DecodeMetadata(t ContentType, raw json.RawMessage) (Metadata, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("unknown content type %q", t)
	}
	if isEmptyJSON(raw) {
		if t == ContentTestimonial {
			return nil, ErrRatingOutOfRange
		}
		return nil, nil
	}

	switch t {
	case ContentJob:
		var m JobMetadata
		if err := decodeVariant(raw, &m); err != nil {
			return nil, err
		}
		m.Company = strings.TrimSpace(m.Company)
		m.Location = strings.TrimSpace(m.Location)
		m.Salary = strings.TrimSpace(m.Salary)
		return m, nil
	case ContentTestimonial:
		var m TestimonialMetadata
		if err := decodeVariant(raw, &m); err != nil {
			return nil, err
		}
		m.Author = strings.TrimSpace(m.Author)
		if m.Rating < 1 || m.Rating > 5 {
			return nil, ErrRatingOutOfRange
		}
		return m, nil
	default:
		return nil, nil
	}
}

// EncodeMetadata produces the column value; nil metadata is stored as NULL.
func EncodeMetadata(m Metadata) (datatypes.JSON, error) {
	if m == nil {
		return nil, nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}

// TypedMetadata decodes the stored column back into its variant.
func (m CMSContentModel) TypedMetadata() (Metadata, error) {
	return DecodeMetadata(m.Type, json.RawMessage(m.Metadata))
}

func decodeVariant(raw json.RawMessage, v any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid metadata: %w", err)
	}
	return nil
}

func isEmptyJSON(raw json.RawMessage) bool {
	s := strings.TrimSpace(string(raw))
	return s == "" || s == "null" || s == "{}"
}
