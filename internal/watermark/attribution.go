package watermark

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-exam-watermark/models"
)

// Registry looks up attempts whose token starts with a prefix.
type Registry interface {
	FindAttemptsByTokenPrefix(ctx context.Context, examID int64, prefix string) ([]models.Attempt, error)
}

// IsForeign reports whether candidate was not produced from own. Only as
// many leading digits as candidate holds are compared, since channels carry
// truncated tokens.
func IsForeign(own Token, candidate string) bool {
	return !own.HasPrefix(candidate)
}

// Matcher attributes foreign watermarks to their owners.
type Matcher struct {
	registry Registry
}

// NewMatcher returns a Matcher backed by registry.
func NewMatcher(registry Registry) *Matcher {
	return &Matcher{registry: registry}
}

// Resolve returns the owner of candidate within exam examID. It returns nil
// when no attempt or more than one attempt matches.
func (m *Matcher) Resolve(ctx context.Context, examID int64, candidate string) (*models.Identity, error) {
	attempts, err := m.registry.FindAttemptsByTokenPrefix(ctx, examID, strings.ToLower(candidate))
	if err != nil {
		return nil, fmt.Errorf("error looking up watermark %q: %w", candidate, err)
	}
	if len(attempts) != 1 {
		return nil, nil
	}

	identity := attempts[0].Identity()
	return &identity, nil
}

// Attribute scans every string answer of snapshot and returns one result per
// foreign watermark occurrence.
func (m *Matcher) Attribute(ctx context.Context, examID int64, own Token, snapshot models.Snapshot) ([]models.Attribution, error) {
	var found []models.Attribution

	for _, answer := range snapshot.Answers() {
		for _, candidate := range FindWatermarks(answer.Text) {
			if !IsForeign(own, candidate) {
				continue
			}

			source, err := m.Resolve(ctx, examID, candidate)
			if err != nil {
				return nil, err
			}

			found = append(found, models.Attribution{
				Time:      snapshot.Time,
				Field:     answer.Field,
				Answer:    answer.Text,
				Watermark: candidate,
				Source:    source,
			})
		}
	}

	return found, nil
}
