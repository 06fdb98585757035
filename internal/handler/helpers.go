package handler

import (
	"errors"
	"net/http"
	"reflect"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"shiftdesk/internal/apierror"
	"shiftdesk/internal/service"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid JSON: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusBadRequest, apierror.NewValidation(fields))
		return false
	}
	return true
}

// pathID parses the :id path parameter. Writes a 404 on failure so malformed
// ids are indistinguishable from missing records.
func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Not found"))
		return uuid.Nil, false
	}
	return id, true
}

// writeServiceError maps service sentinel errors to HTTP status codes:
// input errors → 400, capability denials → 403, hidden/missing → 404,
// conflicts → 409. Anything unrecognized becomes a 500 through the
// error-handler middleware.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, apierror.New("Not found"))
	case errors.Is(err, service.ErrForbidden),
		errors.Is(err, service.ErrStatusChangeForbidden):
		c.JSON(http.StatusForbidden, apierror.New(err.Error()))
	case errors.Is(err, service.ErrPTOConflict),
		errors.Is(err, service.ErrDuplicateAssignment),
		errors.Is(err, service.ErrDuplicatePTO),
		errors.Is(err, service.ErrDuplicatePreference),
		errors.Is(err, service.ErrDuplicateLunchBreak),
		errors.Is(err, service.ErrDuplicateUsername),
		errors.Is(err, service.ErrAssignmentLocked),
		errors.Is(err, service.ErrCannotUnlock):
		c.JSON(http.StatusConflict, apierror.New(err.Error()))
	case errors.Is(err, service.ErrBadReference),
		errors.Is(err, service.ErrInvalidDate),
		errors.Is(err, service.ErrInvalidTime),
		errors.Is(err, service.ErrPasswordMismatch),
		errors.Is(err, service.ErrInvalidPTOTransition),
		errors.Is(err, service.ErrPaidExceedsDuration):
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
	default:
		_ = c.Error(err)
	}
}
