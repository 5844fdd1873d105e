package models

import (
	"errors"
	"fmt"
)

type Cuffs string

const (
	CuffsYes Cuffs = "yes"
	CuffsNo  Cuffs = "no"
)

type CollarType string

const (
	CollarSherwani CollarType = "sherwani"
	CollarShirt    CollarType = "shirt"
)

type BottomWear string

const (
	BottomWearPajama  BottomWear = "pajama"
	BottomWearShalwar BottomWear = "shalwar"
)

// MeasurementTypeCustom is the only measurement type the storefront records.
const MeasurementTypeCustom = "custom"

type ShalwarMeasurements struct {
	Length float64 `json:"length"`
}

type PajamaMeasurements struct {
	Length float64 `json:"length"`
	Waist  float64 `json:"waist"`
	Thigh  float64 `json:"thigh"`
}

// Measurements is the composed made-to-measure questionnaire attached to a custom suit.
// Exactly one of Shalwar or Pajama is set, matching BottomWear.
type Measurements struct {
	MeasurementType string     `json:"measurement_type"`
	Cuffs           Cuffs      `json:"cuffs"`
	CollarType      CollarType `json:"collar_type"`
	BottomWear      BottomWear `json:"bottom_wear"`

	Collar       float64 `json:"collar"`
	Shoulder     float64 `json:"shoulder"`
	Chest        float64 `json:"chest"`
	Sleeves      float64 `json:"sleeves"`
	KameezLength float64 `json:"kameez_length"`

	Shalwar *ShalwarMeasurements `json:"shalwar,omitempty"`
	Pajama  *PajamaMeasurements  `json:"pajama,omitempty"`
}

func (m Measurements) Clone() Measurements {
	if m.Shalwar != nil {
		s := *m.Shalwar
		m.Shalwar = &s
	}

	if m.Pajama != nil {
		p := *m.Pajama
		m.Pajama = &p
	}

	return m
}

var ErrBottomWearMismatch = errors.New("bottom wear measurements do not match bottom wear")

func (m Measurements) Check() error {
	if m.Cuffs != CuffsYes && m.Cuffs != CuffsNo {
		return fmt.Errorf("invalid cuffs option %q", m.Cuffs)
	}

	if m.CollarType != CollarSherwani && m.CollarType != CollarShirt {
		return fmt.Errorf("invalid collar type %q", m.CollarType)
	}

	switch m.BottomWear {
	case BottomWearShalwar:
		if m.Shalwar == nil || m.Pajama != nil {
			return ErrBottomWearMismatch
		}
	case BottomWearPajama:
		if m.Pajama == nil || m.Shalwar != nil {
			return ErrBottomWearMismatch
		}
	default:
		return fmt.Errorf("invalid bottom wear %q", m.BottomWear)
	}

	return nil
}
