// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for nobel-fetcher.
//
// Laureate records mirror the Nobel Prize API v2 wire format. Every field is
// optional: the API omits keys freely, so callers go through the accessor
// methods, which report absence as a *MissingKeyError instead of panicking.
package types

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// English is the only language the laureate report reads.
const English = "en"

// LocalizedString maps a language code to a translated value.
type LocalizedString map[string]string

// Get returns the value for lang and whether the key is present. A present
// but empty value is returned as is.
func (s LocalizedString) Get(lang string) (string, bool) {
	v, ok := s[lang]
	return v, ok
}

// Laureate is one record of the API's "laureates" array.
type Laureate struct {
	ID          string          `json:"id,omitempty" yaml:"id,omitempty"`
	KnownName   LocalizedString `json:"knownName,omitempty" yaml:"knownName,omitempty"`
	NobelPrizes []Prize         `json:"nobelPrizes,omitempty" yaml:"nobelPrizes,omitempty"`
}

// Prize is one entry of a laureate's nobelPrizes sequence.
type Prize struct {
	AwardYear    AwardYear     `json:"awardYear,omitempty" yaml:"awardYear,omitempty"`
	Affiliations []Affiliation `json:"affiliations,omitempty" yaml:"affiliations,omitempty"`
}

// Affiliation is an institution the laureate belonged to when awarded.
type Affiliation struct {
	Name LocalizedString `json:"name,omitempty" yaml:"name,omitempty"`
}

// AwardYear holds the raw award year. The API sends it as a string ("1903")
// but older payloads use a bare number, so both are accepted. Any other JSON
// value is kept verbatim and later fails Int.
type AwardYear string

// UnmarshalJSON never fails: strings are unquoted, null leaves the year
// empty and everything else is stored as raw JSON text.
func (y *AwardYear) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*y = AwardYear(strings.TrimSpace(s))
		return nil
	}
	*y = AwardYear(strings.TrimSpace(string(data)))
	return nil
}

// Int coerces the award year to an integer.
func (y AwardYear) Int() (int, error) {
	n, err := strconv.Atoi(string(y))
	if err != nil {
		return 0, fmt.Errorf("awardYear %q is not an integer", string(y))
	}
	return n, nil
}

// MissingKeyError reports a key that a laureate record does not carry.
type MissingKeyError struct {
	Key string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("'%s' not found in laureate data", e.Key)
}

func missing(key string) error { return &MissingKeyError{Key: key} }

// FullName returns knownName.en.
func (l Laureate) FullName() (string, error) {
	if l.KnownName == nil {
		return "", missing("knownName")
	}
	name, ok := l.KnownName.Get(English)
	if !ok {
		return "", missing("knownName." + English)
	}
	return name, nil
}

// FirstPrize returns nobelPrizes[0].
func (l Laureate) FirstPrize() (Prize, error) {
	if l.NobelPrizes == nil {
		return Prize{}, missing("nobelPrizes")
	}
	if len(l.NobelPrizes) == 0 {
		return Prize{}, missing("nobelPrizes[0]")
	}
	return l.NobelPrizes[0], nil
}

// FirstAwardYear returns nobelPrizes[0].awardYear as an integer.
func (l Laureate) FirstAwardYear() (int, error) {
	p, err := l.FirstPrize()
	if err != nil {
		return 0, err
	}
	if p.AwardYear == "" {
		return 0, missing("nobelPrizes[0].awardYear")
	}
	return p.AwardYear.Int()
}

// FirstAffiliation returns nobelPrizes[0].affiliations[0].name.en.
func (l Laureate) FirstAffiliation() (string, error) {
	p, err := l.FirstPrize()
	if err != nil {
		return "", err
	}
	if len(p.Affiliations) == 0 {
		return "", missing("nobelPrizes[0].affiliations[0]")
	}
	name, ok := p.Affiliations[0].Name.Get(English)
	if !ok {
		return "", missing("nobelPrizes[0].affiliations[0].name." + English)
	}
	return name, nil
}
