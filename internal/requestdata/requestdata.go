package requestdata

import (
	"context"

	"github.com/google/uuid"

	"github.com/mvickers/diarisk-backend/internal/types"
)

type ctxKey struct{}

var requestDataKey = ctxKey{}

// RequestData is the request-scoped identity resolved by the auth
// middleware. Handlers read it instead of any ambient current-user state;
// a nil RequestData means the request is anonymous.
type RequestData struct {
	SessionToken string
	UserID       uuid.UUID
	User         *types.User
}

func WithRequestData(ctx context.Context, rd *RequestData) context.Context {
	return context.WithValue(ctx, requestDataKey, rd)
}

func GetRequestData(ctx context.Context) *RequestData {
	val := ctx.Value(requestDataKey)
	if rd, ok := val.(*RequestData); ok {
		return rd
	}
	return nil
}
