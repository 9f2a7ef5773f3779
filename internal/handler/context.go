package handler

type ContextKey string

var (
	SubCtxKey  ContextKey = "sub"
	BaristaCtx ContextKey = "barista"
)
