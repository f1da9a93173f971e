package news

import "time"

type BatchRequest struct {
	Items []ItemInput `json:"items" validate:"required"`
}

type ItemInput struct {
	Title          string    `json:"title"`
	Summary        string    `json:"summary"`
	PublishedAt    time.Time `json:"published_at"`
	URL            string    `json:"url"`
	ManufacturerID *string   `json:"manufacturer_id"`
	SourceID       string    `json:"source_id"`
	Publisher      string    `json:"publisher"`
	Lang           string    `json:"lang"`
	Entities       []string  `json:"entities"`
	Categories     []string  `json:"categories"`
}

// Ingest outcomes. Every submitted item gets exactly one of these so callers
// can tell "nothing to do" apart from partial failure.
const (
	ResultCreated          = "created"
	ResultSkippedDuplicate = "skipped_duplicate"
	ResultRejected         = "rejected"
)

type ItemResult struct {
	Index  int    `json:"index"`
	Status string `json:"status"`
	ID     string `json:"id,omitempty"`
	Reason string `json:"reason,omitempty"`
}

type BatchResult struct {
	Results  []ItemResult `json:"results"`
	Created  int          `json:"created"`
	Skipped  int          `json:"skipped"`
	Rejected int          `json:"rejected"`
	Total    int          `json:"total"`
}
