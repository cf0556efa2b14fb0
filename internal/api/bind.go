package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/gearkit/cycloid"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// validatorInstance returns the singleton validator, configured to name
// fields by their json tags in error messages.
func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			tag := fld.Tag.Get("json")
			if tag == "-" || tag == "" {
				return fld.Name
			}
			if idx := strings.Index(tag, ","); idx >= 0 {
				tag = tag[:idx]
			}
			return tag
		})
		validate = v
	})
	return validate
}

// paramsRequest is the wire shape of a design submission. Validation is
// a service-boundary concern: the engine itself accepts any fully
// populated record.
type paramsRequest struct {
	PinCount              int     `json:"pin_count" validate:"required,gte=4"`
	PinCircleRadius       float64 `json:"pin_circle_radius" validate:"required,gt=0"`
	PinRadius             float64 `json:"pin_radius" validate:"required,gt=0"`
	Eccentricity          float64 `json:"eccentricity" validate:"gte=0"`
	HoleRadius            float64 `json:"hole_radius" validate:"gte=0"`
	Resolution            int     `json:"resolution" validate:"omitempty,gte=3"`
	Tolerance             float64 `json:"tolerance" validate:"gte=0"`
	HoleTolerance         float64 `json:"hole_tolerance" validate:"gte=0"`
	OutputPinCount        int     `json:"output_pin_count" validate:"gte=0"`
	OutputPinRadius       float64 `json:"output_pin_radius" validate:"gte=0"`
	OutputPinCircleRadius float64 `json:"output_pin_circle_radius" validate:"gte=0"`
	DriveConfig           string  `json:"drive_config" validate:"omitempty,oneof=housing_fixed output_fixed"`
}

// params converts the wire shape into the engine's value type.
func (req paramsRequest) params() cycloid.Parameters {
	dc := cycloid.HousingFixed
	if req.DriveConfig == "output_fixed" {
		dc = cycloid.OutputFixed
	}
	return cycloid.Parameters{
		PinCount:              req.PinCount,
		PinCircleRadius:       req.PinCircleRadius,
		PinRadius:             req.PinRadius,
		Eccentricity:          req.Eccentricity,
		HoleRadius:            req.HoleRadius,
		Resolution:            req.Resolution,
		Tolerance:             req.Tolerance,
		HoleTolerance:         req.HoleTolerance,
		OutputPinCount:        req.OutputPinCount,
		OutputPinRadius:       req.OutputPinRadius,
		OutputPinCircleRadius: req.OutputPinCircleRadius,
		DriveConfig:           dc,
	}
}

// bindParams decodes and validates a design submission from the request
// body. On failure it writes the error response and returns false.
func bindParams(w http.ResponseWriter, r *http.Request) (cycloid.Parameters, bool) {
	var req paramsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, fmt.Sprintf("decode body: %v", err))
		return cycloid.Parameters{}, false
	}
	if err := validatorInstance().Struct(req); err != nil {
		respondError(w, r, http.StatusUnprocessableEntity, validationMessage(err))
		return cycloid.Parameters{}, false
	}
	return req.params(), true
}

// validationMessage flattens validator errors into one readable line.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s: failed %q", fe.Field(), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}
