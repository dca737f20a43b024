// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package openalex

import "github.com/SpectraGen/openalex-scrapping/pkg/types"

// OpenAlex API JSON structures. Only the fields the pipeline consumes are
// declared; everything else in the (large) work payload is ignored.

type worksResponse struct {
	Meta    workMeta   `json:"meta"`
	Results []workJSON `json:"results"`
}

type workMeta struct {
	Count   int `json:"count"`
	PerPage int `json:"per_page"`
	Page    int `json:"page"`
}

type workJSON struct {
	ID              string            `json:"id"`
	DisplayName     string            `json:"display_name"`
	DOI             string            `json:"doi"`
	PublicationYear int               `json:"publication_year"`
	PublicationDate string            `json:"publication_date"`
	CitedByCount    int               `json:"cited_by_count"`
	RelevanceScore  *float64          `json:"relevance_score"`
	Authorships     []authorshipJSON  `json:"authorships"`
	PrimaryLocation *locationJSON     `json:"primary_location"`
	HostVenue       *venueJSON        `json:"host_venue"`
	OpenAccess      *openAccessJSON   `json:"open_access"`
	Concepts        []displayNameJSON `json:"concepts"`
}

type authorshipJSON struct {
	Author displayNameJSON `json:"author"`
}

type displayNameJSON struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

type locationJSON struct {
	Source         *displayNameJSON `json:"source"`
	LandingPageURL string           `json:"landing_page_url"`
}

type venueJSON struct {
	DisplayName string `json:"display_name"`
}

type openAccessJSON struct {
	IsOA                     *bool  `json:"is_oa"`
	OAStatus                 string `json:"oa_status"`
	OAURL                    string `json:"oa_url"`
	AnyRepositoryHasFulltext bool   `json:"any_repository_has_fulltext"`
}

// decodeWork converts a raw API work into a typed record, substituting the
// documented defaults for missing fields so downstream stages never branch on
// absence.
func decodeWork(raw workJSON) types.Work {
	w := types.Work{
		ID:              raw.ID,
		Title:           raw.DisplayName,
		Year:            raw.PublicationYear,
		DOI:             raw.DOI,
		Journal:         "Unknown",
		Citations:       raw.CitedByCount,
		OAStatus:        "unknown",
		PublicationDate: raw.PublicationDate,
		RelevanceScore:  raw.RelevanceScore,
	}

	if w.Title == "" {
		w.Title = "Untitled"
	}

	if raw.PrimaryLocation != nil {
		w.LandingPageURL = raw.PrimaryLocation.LandingPageURL
		if raw.PrimaryLocation.Source != nil && raw.PrimaryLocation.Source.DisplayName != "" {
			w.Journal = raw.PrimaryLocation.Source.DisplayName
		}
	}
	if raw.HostVenue != nil {
		w.Venue = raw.HostVenue.DisplayName
	}
	if raw.OpenAccess != nil {
		w.IsOA = raw.OpenAccess.IsOA
		w.OAURL = raw.OpenAccess.OAURL
		w.RepositoryFulltext = raw.OpenAccess.AnyRepositoryHasFulltext
		if raw.OpenAccess.OAStatus != "" {
			w.OAStatus = raw.OpenAccess.OAStatus
		}
	}

	for _, authorship := range raw.Authorships {
		if authorship.Author.DisplayName != "" {
			w.Authors = append(w.Authors, authorship.Author.DisplayName)
		}
	}
	for _, concept := range raw.Concepts {
		if concept.DisplayName != "" {
			w.Concepts = append(w.Concepts, concept.DisplayName)
		}
	}

	return w
}
