// Package measurement validates the made-to-measure questionnaire and turns it into a custom cart line.
package measurement

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/go-playground/validator/v10"

	appErrors "github.com/shopdarven/storefront/internal/errors"
	"github.com/shopdarven/storefront/internal/models"
	"github.com/shopdarven/storefront/internal/pricing"
)

// Form is the questionnaire as submitted. Numeric fields are pointers so that a missing
// value and an explicit zero can be told apart; only presence is checked.
type Form struct {
	Color      string `json:"color"`
	Cuffs      string `json:"cuffs" validate:"required,oneof=yes no"`
	CollarType string `json:"collar_type" validate:"required,oneof=sherwani shirt"`
	BottomWear string `json:"bottom_wear" validate:"required,oneof=pajama shalwar"`

	Collar       *float64 `json:"collar" validate:"required"`
	Shoulder     *float64 `json:"shoulder" validate:"required"`
	Chest        *float64 `json:"chest" validate:"required"`
	Sleeves      *float64 `json:"sleeves" validate:"required"`
	KameezLength *float64 `json:"length" validate:"required"`

	ShalwarLength *float64 `json:"shalwar_length" validate:"required_if=BottomWear shalwar"`

	PajamaLength *float64 `json:"pajama_length" validate:"required_if=BottomWear pajama"`
	Waist        *float64 `json:"waist" validate:"required_if=BottomWear pajama"`
	Thigh        *float64 `json:"thigh" validate:"required_if=BottomWear pajama"`
}

// Validate checks form against the fabric it will be cut from and returns the color to
// record. Color is only required when the fabric offers a color list.
func Validate(validate *validator.Validate, form *Form, fabric *models.CustomFabric) (string, error) {
	appErr := appErrors.ValidationError("Validation failed")

	if err := validate.Struct(form); err != nil {
		var validationErrs validator.ValidationErrors
		if !errors.As(err, &validationErrs) {
			return "", fmt.Errorf("unexpected validation error: %w", err)
		}

		appErr.WithDetails(appErrors.FromValidation(validationErrs).Details)
	}

	color := models.StandardColor

	if len(fabric.Colors) > 0 {
		switch {
		case form.Color == "":
			appErr.WithDetail("Field color is required")
		case !slices.Contains(fabric.Colors, form.Color):
			appErr.WithDetail(fmt.Sprintf("Field color must be one of: %v", fabric.Colors))
		default:
			color = form.Color
		}
	}

	if len(appErr.Details) > 0 {
		return "", appErr
	}

	return color, nil
}

// Compose builds the measurements of a validated form. Only the branch matching the
// bottom wear is kept.
func Compose(form *Form) models.Measurements {
	m := models.Measurements{
		MeasurementType: models.MeasurementTypeCustom,
		Cuffs:           models.Cuffs(form.Cuffs),
		CollarType:      models.CollarType(form.CollarType),
		BottomWear:      models.BottomWear(form.BottomWear),
		Collar:          deref(form.Collar),
		Shoulder:        deref(form.Shoulder),
		Chest:           deref(form.Chest),
		Sleeves:         deref(form.Sleeves),
		KameezLength:    deref(form.KameezLength),
	}

	switch m.BottomWear {
	case models.BottomWearShalwar:
		m.Shalwar = &models.ShalwarMeasurements{Length: deref(form.ShalwarLength)}
	case models.BottomWearPajama:
		m.Pajama = &models.PajamaMeasurements{
			Length: deref(form.PajamaLength),
			Waist:  deref(form.Waist),
			Thigh:  deref(form.Thigh),
		}
	}

	return m
}

// LineRequest is everything needed to turn a fabric and a validated form into a cart line.
type LineRequest struct {
	Fabric   *models.CustomFabric
	Form     *Form
	Color    string
	Meters   float64
	Quantity int
	Image    string
	Now      time.Time
}

// BuildLineItem composes the custom line. Its price is the fabric's 4-meter reference
// price scaled to the chosen meters, rounded once.
func BuildLineItem(req LineRequest) models.LineItem {
	return models.LineItem{
		ID:       fmt.Sprintf("custom-%d-%d", req.Fabric.ID, req.Now.UnixMilli()),
		Type:     models.LineTypeCustom,
		Name:     "Custom Suit - " + req.Fabric.Name,
		Price:    pricing.CustomFabricPrice(req.Fabric.Price, req.Meters),
		Quantity: req.Quantity,
		Image:    req.Image,
		Details: models.CustomDetails{
			Fabric:       req.Fabric.Name,
			Material:     req.Fabric.Material,
			Color:        req.Color,
			Meters:       req.Meters,
			Measurements: Compose(req.Form),
		},
	}
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}

	return *v
}
