package analyze

import (
	"context"

	"github.com/vk/kettlegraph/internal/ctxlog"
	"github.com/vk/kettlegraph/internal/model"
)

// Reconcile chooses between the extractor's edge list and the analyzer's
// broader re-derivation: whichever yields more edges wins, with ties going to
// the extractor. The rule is deliberately count-based: when the two methods
// disagree on individual edges rather than just count, the larger list is
// taken as-is, an accepted approximation rather than a guaranteed superset.
// The result is always at least as long as the extractor's list.
func Reconcile(ctx context.Context, extracted, rederived []model.Edge) []model.Edge {
	if len(rederived) > len(extracted) {
		ctxlog.FromContext(ctx).Debug("Re-derived hop list replaces extracted edges.",
			"extracted", len(extracted), "rederived", len(rederived))
		return rederived
	}
	return extracted
}
