package suggestion

import (
	"context"
	"time"
)

// Observer is told about every suggestion request.
type Observer interface {
	ObserveSuggestion(available bool, elapsed time.Duration)
}

type observed struct {
	next     Gateway
	observer Observer
}

// Observed reports each call on g to o. A nil observer returns g unchanged.
func Observed(g Gateway, o Observer) Gateway {
	if o == nil {
		return g
	}
	return &observed{next: g, observer: o}
}

func (g *observed) Suggest(ctx context.Context, problem string) Result {
	start := time.Now()
	res := g.next.Suggest(ctx, problem)
	g.observer.ObserveSuggestion(res.Available, time.Since(start))
	return res
}
