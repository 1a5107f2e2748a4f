package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/maxwellkiplagat/Deliveroo/internal/adapters/in/http/httpmodels"
	"github.com/maxwellkiplagat/Deliveroo/internal/core/application/usecases/commands"
	"github.com/maxwellkiplagat/Deliveroo/internal/core/application/wizard"
	"github.com/maxwellkiplagat/Deliveroo/internal/core/domain/model/kernel"
	"github.com/maxwellkiplagat/Deliveroo/internal/core/domain/model/parcel"
	"github.com/maxwellkiplagat/Deliveroo/internal/core/ports"
	"github.com/maxwellkiplagat/Deliveroo/internal/pkg/errs"
)

// writeError maps a core error onto an HTTP response. Validation failures
// become 400 with the offending field, business rule rejections 409,
// missing objects 404, and anything unrecognized a retryable 500.
func writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, commands.ErrNoParcelFound),
		errors.Is(err, wizard.ErrWizardNotFound):
		return c.JSON(http.StatusNotFound, httpmodels.Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})

	case errors.Is(err, commands.ErrNotParcelOwner):
		return forbidden(c, err.Error())

	case errors.Is(err, ports.ErrPaymentDeclined):
		return c.JSON(http.StatusPaymentRequired, httpmodels.Error{
			Code:    http.StatusPaymentRequired,
			Message: err.Error(),
		})

	case errors.Is(err, parcel.ErrInvalidTransition),
		errors.Is(err, parcel.ErrLocationUpdateRejected),
		errors.Is(err, parcel.ErrParcelNotEditable),
		errors.Is(err, commands.ErrParcelAlreadyAssigned),
		errors.Is(err, commands.ErrNoAvailableCouriersFound),
		errors.Is(err, wizard.ErrWizardNotReady):
		return c.JSON(http.StatusConflict, httpmodels.Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})

	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return badRequest(c, paramName(err), err.Error())

	default:
		return c.JSON(http.StatusInternalServerError, httpmodels.Error{
			Code:      http.StatusInternalServerError,
			Message:   "Internal server error",
			Retryable: true,
		})
	}
}

// paramName extracts the offending parameter from a validation error.
func paramName(err error) string {
	var required *errs.ValueIsRequiredError
	if errors.As(err, &required) {
		return required.ParamName
	}
	var invalid *errs.ValueIsInvalidError
	if errors.As(err, &invalid) {
		return invalid.ParamName
	}
	var outOfRange *errs.ValueIsOutOfRangeError
	if errors.As(err, &outOfRange) {
		return outOfRange.ParamName
	}
	return ""
}

func badRequest(c echo.Context, field, message string) error {
	return c.JSON(http.StatusBadRequest, httpmodels.Error{
		Code:    http.StatusBadRequest,
		Message: message,
		Field:   field,
	})
}

func forbidden(c echo.Context, message string) error {
	return c.JSON(http.StatusForbidden, httpmodels.Error{
		Code:    http.StatusForbidden,
		Message: message,
	})
}

// optPoint builds an optional GeoPoint from a lat/lng pair. Both
// coordinates must be present together.
func optPoint(lat, lng *float64) (*kernel.GeoPoint, error) {
	if lat == nil && lng == nil {
		return nil, nil
	}
	if lat == nil || lng == nil {
		return nil, errs.NewValueIsRequiredError("both lat and lng")
	}
	point, err := kernel.NewGeoPoint(*lat, *lng)
	if err != nil {
		return nil, err
	}
	return &point, nil
}
