package globals

import (
	"context"
	"kinnosuke/lib/scrapers/kinnosuke"
)

type key struct{}

type Value struct {
	Client *kinnosuke.Client
}

func Set(ctx context.Context, value *Value) context.Context {
	return context.WithValue(ctx, key{}, value)
}

func Get(ctx context.Context) *Value {
	return ctx.Value(key{}).(*Value)
}
