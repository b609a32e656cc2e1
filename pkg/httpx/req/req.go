package req

import (
	"context"
	"net/http"
	"strings"

	"git.appkode.ru/pub/go/failure"
	"github.com/go-playground/validator/v10"

	"numroute/pkg/errcodes"
)

var validate = validator.New(validator.WithRequiredStructEnabled()) //nolint:gochecknoglobals // skip

// Query returns a trimmed query parameter, or def when it is absent or blank.
func Query(r *http.Request, name, def string) string {
	value := strings.TrimSpace(r.URL.Query().Get(name))
	if value == "" {
		return def
	}

	return value
}

func Validate(ctx context.Context, dest any) error {
	if err := validate.StructCtx(ctx, dest); err != nil {
		return failure.NewInvalidArgumentError(
			"validation error",
			failure.WithCode(errcodes.ValidationError),
			failure.WithDescription(err.Error()),
		)
	}

	return nil
}
